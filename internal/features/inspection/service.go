package inspection

import (
	"context"
	"math"
	"time"

	"go-ehs/internal/common/errs"
	"go-ehs/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InspectionService interface {
	CreateInspection(ctx context.Context, inspection *Inspection, actor *utils.UserClaims) error
	GetInspection(ctx context.Context, id string) (*Inspection, error)
	ListInspections(ctx context.Context, filter InspectionFilter, page, limit int) (*InspectionPage, error)
	UpdateInspection(ctx context.Context, id string, inspection *Inspection, actor *utils.UserClaims) (*Inspection, error)
	DeleteInspection(ctx context.Context, id string, actor *utils.UserClaims) error
}

type InspectionServiceImpl struct {
	InspectionRepo InspectionRepository
}

func NewInspectionService(inspectionRepo InspectionRepository) InspectionService {
	return &InspectionServiceImpl{InspectionRepo: inspectionRepo}
}

func (s *InspectionServiceImpl) CreateInspection(ctx context.Context, inspection *Inspection, actor *utils.UserClaims) error {
	if inspection.InspectionDate.IsZero() {
		inspection.InspectionDate = time.Now()
	}
	if inspection.Status == "" {
		inspection.Status = StatusDraft
	}
	for i := range inspection.Findings {
		if inspection.Findings[i].Status == "" {
			inspection.Findings[i].Status = FindingOpen
		}
	}
	if err := inspection.Validate(); err != nil {
		return err
	}

	inspector, err := primitive.ObjectIDFromHex(actor.UserID)
	if err != nil {
		return errs.Unauthorized("Invalid user ID")
	}
	inspection.Inspector = inspector

	if err := s.InspectionRepo.Create(ctx, inspection); err != nil {
		return err
	}
	inspection.ComputeCounts()
	return nil
}

func (s *InspectionServiceImpl) GetInspection(ctx context.Context, id string) (*Inspection, error) {
	inspection, err := s.InspectionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	inspection.ComputeCounts()
	return inspection, nil
}

func (s *InspectionServiceImpl) ListInspections(ctx context.Context, filter InspectionFilter, page, limit int) (*InspectionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	inspections, total, err := s.InspectionRepo.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	if inspections == nil {
		inspections = []Inspection{}
	}
	for i := range inspections {
		inspections[i].ComputeCounts()
	}

	return &InspectionPage{
		Inspections:      inspections,
		CurrentPage:      page,
		TotalPages:       int(math.Ceil(float64(total) / float64(limit))),
		TotalInspections: total,
	}, nil
}

// canUpdate allows the inspector, the reviewer, or an admin to edit.
func canUpdate(inspection *Inspection, actor *utils.UserClaims) bool {
	if actor.IsAdmin() {
		return true
	}
	if inspection.Inspector.Hex() == actor.UserID {
		return true
	}
	return !inspection.ReviewedBy.IsZero() && inspection.ReviewedBy.Hex() == actor.UserID
}

func (s *InspectionServiceImpl) UpdateInspection(ctx context.Context, id string, update *Inspection, actor *utils.UserClaims) (*Inspection, error) {
	existing, err := s.InspectionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canUpdate(existing, actor) {
		return nil, errs.Unauthorized("Not authorized to update this inspection")
	}

	if update.InspectionDate.IsZero() {
		update.InspectionDate = existing.InspectionDate
	}
	if update.InspectionType == "" {
		update.InspectionType = existing.InspectionType
	}
	if update.Location == "" {
		update.Location = existing.Location
	}
	if update.Status == "" {
		update.Status = existing.Status
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	update.ID = existing.ID
	update.Inspector = existing.Inspector
	update.CreatedAt = existing.CreatedAt

	// Moving into Reviewed records who reviewed it
	if update.Status == StatusReviewed && existing.Status != StatusReviewed {
		reviewer, err := primitive.ObjectIDFromHex(actor.UserID)
		if err != nil {
			return nil, errs.Unauthorized("Invalid user ID")
		}
		update.ReviewedBy = reviewer
	} else if update.ReviewedBy.IsZero() {
		update.ReviewedBy = existing.ReviewedBy
	}

	if err := s.InspectionRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	update.ComputeCounts()
	return update, nil
}

func (s *InspectionServiceImpl) DeleteInspection(ctx context.Context, id string, actor *utils.UserClaims) error {
	existing, err := s.InspectionRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && existing.Inspector.Hex() != actor.UserID {
		return errs.Unauthorized("Not authorized to delete this inspection")
	}

	return s.InspectionRepo.Delete(ctx, id)
}
