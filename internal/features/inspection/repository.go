package inspection

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

type InspectionRepository interface {
	Create(ctx context.Context, inspection *Inspection) error
	Get(ctx context.Context, id string) (*Inspection, error)
	List(ctx context.Context, filter InspectionFilter, page, limit int) ([]Inspection, int64, error)
	Update(ctx context.Context, id string, inspection *Inspection) error
	Delete(ctx context.Context, id string) error
}

type InspectionRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewInspectionRepository(mongodb *database.MongodbDB) InspectionRepository {
	return &InspectionRepositoryImpl{
		Collection: mongodb.DB.Collection("inspections"),
	}
}

func (r *InspectionRepositoryImpl) Create(ctx context.Context, inspection *Inspection) error {
	if inspection.ID.IsZero() {
		inspection.ID = primitive.NewObjectID()
	}
	inspection.CreatedAt = time.Now()
	inspection.UpdatedAt = inspection.CreatedAt

	_, err := r.Collection.InsertOne(ctx, inspection)
	return err
}

func (r *InspectionRepositoryImpl) Get(ctx context.Context, id string) (*Inspection, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NotFound("Inspection not found")
	}

	var inspection Inspection
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&inspection)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("Inspection not found")
		}
		return nil, err
	}
	return &inspection, nil
}

// buildQuery translates the optional list filters into a Mongo query.
func buildQuery(filter InspectionFilter) bson.M {
	query := bson.M{}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		dateRange := bson.M{}
		if filter.StartDate != nil {
			dateRange["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			dateRange["$lte"] = *filter.EndDate
		}
		query["inspectionDate"] = dateRange
	}
	return query
}

func (r *InspectionRepositoryImpl) List(ctx context.Context, filter InspectionFilter, page, limit int) ([]Inspection, int64, error) {
	query := buildQuery(filter)
	skip := int64((page - 1) * limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "inspectionDate", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var inspections []Inspection
	if err := cursor.All(ctx, &inspections); err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return inspections, total, nil
}

func (r *InspectionRepositoryImpl) Update(ctx context.Context, id string, inspection *Inspection) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NotFound("Inspection not found")
	}

	inspection.UpdatedAt = time.Now()

	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": oid}, inspection)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.NotFound("Inspection not found")
	}
	return nil
}

func (r *InspectionRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NotFound("Inspection not found")
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errs.NotFound("Inspection not found")
	}
	return nil
}
