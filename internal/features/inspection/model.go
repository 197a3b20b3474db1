package inspection

import (
	"fmt"
	"time"

	"go-ehs/internal/common/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InspectionType string

const (
	TypeSafetyWalk          InspectionType = "Safety Walk"
	TypeWorkplaceInspection InspectionType = "Workplace Inspection"
	TypeEquipmentInspection InspectionType = "Equipment Inspection"
	TypeManagementTour      InspectionType = "Management Tour"
)

func (t InspectionType) Valid() bool {
	switch t {
	case TypeSafetyWalk, TypeWorkplaceInspection, TypeEquipmentInspection, TypeManagementTour:
		return true
	}
	return false
}

type FindingCategory string

const (
	CategoryHousekeeping FindingCategory = "Housekeeping"
	CategoryFireSafety   FindingCategory = "Fire Safety"
	CategoryElectrical   FindingCategory = "Electrical"
	CategoryPPE          FindingCategory = "PPE"
	CategoryErgonomics   FindingCategory = "Ergonomics"
	CategoryChemical     FindingCategory = "Chemical"
	CategoryOther        FindingCategory = "Other"
)

func (c FindingCategory) Valid() bool {
	switch c {
	case CategoryHousekeeping, CategoryFireSafety, CategoryElectrical, CategoryPPE,
		CategoryErgonomics, CategoryChemical, CategoryOther:
		return true
	}
	return false
}

type FindingSeverity string

const (
	SeverityLow    FindingSeverity = "Low"
	SeverityMedium FindingSeverity = "Medium"
	SeverityHigh   FindingSeverity = "High"
)

func (s FindingSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type FindingStatus string

const (
	FindingOpen       FindingStatus = "Open"
	FindingInProgress FindingStatus = "In Progress"
	FindingClosed     FindingStatus = "Closed"
)

func (s FindingStatus) Valid() bool {
	switch s {
	case FindingOpen, FindingInProgress, FindingClosed:
		return true
	}
	return false
}

type InspectionStatus string

const (
	StatusDraft     InspectionStatus = "Draft"
	StatusSubmitted InspectionStatus = "Submitted"
	StatusReviewed  InspectionStatus = "Reviewed"
	StatusClosed    InspectionStatus = "Closed"
)

func (s InspectionStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusReviewed, StatusClosed:
		return true
	}
	return false
}

type Finding struct {
	Category       FindingCategory    `bson:"category" json:"category"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Severity       FindingSeverity    `bson:"severity" json:"severity"`
	Status         FindingStatus      `bson:"status" json:"status"`
	ActionRequired string             `bson:"actionRequired,omitempty" json:"actionRequired,omitempty"`
	AssignedTo     primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	DueDate        *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	ClosureDate    *time.Time         `bson:"closureDate,omitempty" json:"closureDate,omitempty"`
}

type Inspection struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	InspectionDate time.Time          `bson:"inspectionDate" json:"inspectionDate"`
	InspectionType InspectionType     `bson:"inspectionType" json:"inspectionType"`
	Location       string             `bson:"location" json:"location"`
	Inspector      primitive.ObjectID `bson:"inspector,omitempty" json:"inspector,omitempty"`
	Findings       []Finding          `bson:"findings,omitempty" json:"findings,omitempty"`
	Status         InspectionStatus   `bson:"status" json:"status"`
	ReviewedBy     primitive.ObjectID `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	Comments       string             `bson:"comments,omitempty" json:"comments,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`

	// Derived on read, never stored
	OpenFindingsCount int `bson:"-" json:"openFindingsCount"`
	HighSeverityCount int `bson:"-" json:"highSeverityCount"`
}

// ComputeCounts fills the derived finding counters. Open means anything
// not yet Closed.
func (i *Inspection) ComputeCounts() {
	open, high := 0, 0
	for _, finding := range i.Findings {
		if finding.Status != FindingClosed {
			open++
		}
		if finding.Severity == SeverityHigh {
			high++
		}
	}
	i.OpenFindingsCount = open
	i.HighSeverityCount = high
}

func (i *Inspection) Validate() error {
	if i.InspectionDate.IsZero() {
		return errs.Invalid("Inspection date is required")
	}
	if !i.InspectionType.Valid() {
		return errs.Invalid(fmt.Sprintf("Invalid inspection type: %s", i.InspectionType))
	}
	if i.Location == "" {
		return errs.Invalid("Location is required")
	}
	if i.Status != "" && !i.Status.Valid() {
		return errs.Invalid(fmt.Sprintf("Invalid inspection status: %s", i.Status))
	}
	for _, finding := range i.Findings {
		if finding.Category != "" && !finding.Category.Valid() {
			return errs.Invalid(fmt.Sprintf("Invalid finding category: %s", finding.Category))
		}
		if finding.Severity != "" && !finding.Severity.Valid() {
			return errs.Invalid(fmt.Sprintf("Invalid finding severity: %s", finding.Severity))
		}
		if finding.Status != "" && !finding.Status.Valid() {
			return errs.Invalid(fmt.Sprintf("Invalid finding status: %s", finding.Status))
		}
	}
	return nil
}

type InspectionFilter struct {
	Location  string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

type InspectionPage struct {
	Inspections      []Inspection `json:"inspections"`
	CurrentPage      int          `json:"currentPage"`
	TotalPages       int          `json:"totalPages"`
	TotalInspections int64        `json:"totalInspections"`
}
