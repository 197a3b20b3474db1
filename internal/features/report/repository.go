package report

import (
	"context"
	"time"

	"go-ehs/internal/common/errs"
	"go-ehs/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	Get(ctx context.Context, id string) (*Report, error)
	List(ctx context.Context, page, limit int) ([]ReportListItem, int64, error)
	FindByYear(ctx context.Context, year int) ([]Report, error)
	Update(ctx context.Context, id string, report *Report) error
	Delete(ctx context.Context, id string) error
}

type ReportRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewReportRepository(mongodb *database.MongodbDB) ReportRepository {
	return &ReportRepositoryImpl{
		Collection: mongodb.DB.Collection("reports"),
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt

	_, err := r.Collection.InsertOne(ctx, report)
	return err
}

func (r *ReportRepositoryImpl) Get(ctx context.Context, id string) (*Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids read as missing documents, matching the
		// original API's CastError handling
		return nil, errs.NotFound("Report not found")
	}

	var report Report
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("Report not found")
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) List(ctx context.Context, page, limit int) ([]ReportListItem, int64, error) {
	skip := int64((page - 1) * limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "reportDate", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit)).
		SetProjection(bson.M{
			"companyName":                   1,
			"reportPeriod":                  1,
			"reportType":                    1,
			"reportDate":                    1,
			"createdBy":                     1,
			"metrics.lagging.incidentCount": 1,
		})

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reports []ReportListItem
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *ReportRepositoryImpl) FindByYear(ctx context.Context, year int) ([]Report, error) {
	startDate := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	cursor, err := r.Collection.Find(ctx, bson.M{
		"reportDate": bson.M{"$gte": startDate, "$lte": endDate},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepositoryImpl) Update(ctx context.Context, id string, report *Report) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NotFound("Report not found")
	}

	report.UpdatedAt = time.Now()

	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, report)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.NotFound("Report not found")
	}
	return nil
}

func (r *ReportRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NotFound("Report not found")
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("Report not found")
	}
	return nil
}
