package report

import (
	"context"
	"math"
	"time"

	"go-ehs/internal/common/errs"
	"go-ehs/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportService interface {
	CreateReport(ctx context.Context, report *Report, actor *utils.UserClaims) error
	GetReport(ctx context.Context, id string) (*Report, error)
	ListReports(ctx context.Context, page, limit int) (*ReportPage, error)
	UpdateReport(ctx context.Context, id string, report *Report, actor *utils.UserClaims) (*Report, error)
	DeleteReport(ctx context.Context, id string, actor *utils.UserClaims) error
	MetricsSummary(ctx context.Context, year int) (*MetricsSummary, error)
	Recommendations(ctx context.Context, id string) (*Recommendations, error)
	ExportReport(ctx context.Context, id, format string) ([]byte, string, error)
}

type ReportServiceImpl struct {
	ReportRepo ReportRepository
}

func NewReportService(reportRepo ReportRepository) ReportService {
	return &ReportServiceImpl{ReportRepo: reportRepo}
}

// canModify is the uniform write-access rule: the creator or an admin.
func canModify(report *Report, actor *utils.UserClaims) bool {
	return actor.IsAdmin() || report.CreatedBy.Hex() == actor.UserID
}

func (s *ReportServiceImpl) CreateReport(ctx context.Context, report *Report, actor *utils.UserClaims) error {
	if report.ReportType == "" {
		report.ReportType = ReportMonthly
	}
	if report.ReportDate.IsZero() {
		report.ReportDate = time.Now()
	}
	if err := report.Validate(); err != nil {
		return err
	}

	creator, err := primitive.ObjectIDFromHex(actor.UserID)
	if err != nil {
		return errs.Unauthorized("Invalid user ID")
	}
	report.CreatedBy = creator
	report.ApplyRiskRatings()

	return s.ReportRepo.Create(ctx, report)
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (*Report, error) {
	return s.ReportRepo.Get(ctx, id)
}

func (s *ReportServiceImpl) ListReports(ctx context.Context, page, limit int) (*ReportPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	reports, total, err := s.ReportRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []ReportListItem{}
	}

	return &ReportPage{
		Reports:      reports,
		CurrentPage:  page,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		TotalReports: total,
	}, nil
}

// UpdateReport replaces the stored document with the submitted one,
// preserving identity fields. Last write wins; there is no concurrency
// token in the data model.
func (s *ReportServiceImpl) UpdateReport(ctx context.Context, id string, update *Report, actor *utils.UserClaims) (*Report, error) {
	existing, err := s.ReportRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canModify(existing, actor) {
		return nil, errs.Unauthorized("Not authorized to update this report")
	}

	if update.ReportType == "" {
		update.ReportType = existing.ReportType
	}
	if update.ReportDate.IsZero() {
		update.ReportDate = existing.ReportDate
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	update.ID = existing.ID
	update.CreatedBy = existing.CreatedBy
	update.CreatedAt = existing.CreatedAt
	update.ApplyRiskRatings()

	if err := s.ReportRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return update, nil
}

func (s *ReportServiceImpl) DeleteReport(ctx context.Context, id string, actor *utils.UserClaims) error {
	existing, err := s.ReportRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !canModify(existing, actor) {
		return errs.Unauthorized("Not authorized to delete this report")
	}

	return s.ReportRepo.Delete(ctx, id)
}

func (s *ReportServiceImpl) MetricsSummary(ctx context.Context, year int) (*MetricsSummary, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	reports, err := s.ReportRepo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	return Summarize(reports, year), nil
}

func (s *ReportServiceImpl) Recommendations(ctx context.Context, id string) (*Recommendations, error) {
	report, err := s.ReportRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return GenerateRecommendations(report), nil
}

func (s *ReportServiceImpl) ExportReport(ctx context.Context, id, format string) ([]byte, string, error) {
	report, err := s.ReportRepo.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "csv":
		return ExportCSV(report)
	case "xlsx":
		return ExportXLSX(report)
	default:
		return nil, "", errs.Invalid("Unsupported format: " + format)
	}
}
