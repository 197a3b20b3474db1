package report

import (
	"fmt"
	"time"

	"go-ehs/internal/common/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportType string

const (
	ReportMonthly   ReportType = "Monthly"
	ReportQuarterly ReportType = "Quarterly"
	ReportAnnual    ReportType = "Annual"
)

type RiskRating string

const (
	RatingLow      RiskRating = "Low"
	RatingMedium   RiskRating = "Medium"
	RatingHigh     RiskRating = "High"
	RatingCritical RiskRating = "Critical"
)

// RiskRatingFor is the single source of truth for probability/severity
// scoring. Both inputs are expected in [1,5].
func RiskRatingFor(probability, severity int) RiskRating {
	score := probability * severity
	switch {
	case score >= 15:
		return RatingCritical
	case score >= 10:
		return RatingHigh
	case score >= 5:
		return RatingMedium
	default:
		return RatingLow
	}
}

// RiskProtocol identifies one of the fixed critical-risk protocols tracked
// per reporting period. A closed set so typos fail validation instead of
// silently creating new map keys.
type RiskProtocol string

const (
	ProtocolWorkingAtHeight    RiskProtocol = "workingAtHeight"
	ProtocolConfinedSpace      RiskProtocol = "confinedSpace"
	ProtocolEnergyIsolation    RiskProtocol = "energyIsolation"
	ProtocolLiftingOperations  RiskProtocol = "liftingOperations"
	ProtocolVehiclesAndDriving RiskProtocol = "vehiclesAndDriving"
	ProtocolHotWork            RiskProtocol = "hotWork"
)

// RiskProtocols fixes iteration order wherever critical risks are walked.
var RiskProtocols = []RiskProtocol{
	ProtocolWorkingAtHeight,
	ProtocolConfinedSpace,
	ProtocolEnergyIsolation,
	ProtocolLiftingOperations,
	ProtocolVehiclesAndDriving,
	ProtocolHotWork,
}

func (p RiskProtocol) Valid() bool {
	for _, known := range RiskProtocols {
		if p == known {
			return true
		}
	}
	return false
}

type ControlStatus string

const (
	ControlEffective        ControlStatus = "effective"
	ControlAdequate         ControlStatus = "adequate"
	ControlNeedsImprovement ControlStatus = "needsImprovement"
	ControlInadequate       ControlStatus = "inadequate"
)

func (s ControlStatus) Valid() bool {
	switch s {
	case ControlEffective, ControlAdequate, ControlNeedsImprovement, ControlInadequate:
		return true
	}
	return false
}

type CriticalRisk struct {
	Name      string        `bson:"name" json:"name"`
	Status    ControlStatus `bson:"status" json:"status"`
	Changes   string        `bson:"changes,omitempty" json:"changes,omitempty"`
	Incidents int           `bson:"incidents" json:"incidents"`
}

// ComplianceCategory is one of the seven ISO 45001 OHSMS elements scored in
// the compliance sub-document.
type ComplianceCategory string

const (
	CategoryContext     ComplianceCategory = "context"
	CategoryLeadership  ComplianceCategory = "leadership"
	CategoryPlanning    ComplianceCategory = "planning"
	CategorySupport     ComplianceCategory = "support"
	CategoryOperation   ComplianceCategory = "operation"
	CategoryPerformance ComplianceCategory = "performance"
	CategoryImprovement ComplianceCategory = "improvement"
)

var ComplianceCategories = []ComplianceCategory{
	CategoryContext,
	CategoryLeadership,
	CategoryPlanning,
	CategorySupport,
	CategoryOperation,
	CategoryPerformance,
	CategoryImprovement,
}

func (c ComplianceCategory) Valid() bool {
	for _, known := range ComplianceCategories {
		if c == known {
			return true
		}
	}
	return false
}

type ComplianceStatus string

const (
	FullyCompliant     ComplianceStatus = "Fully Compliant"
	PartiallyCompliant ComplianceStatus = "Partially Compliant"
	NonCompliant       ComplianceStatus = "Non-Compliant"
)

type Compliance struct {
	Status              ComplianceStatus              `bson:"status" json:"status"`
	OhsmsScore          float64                       `bson:"ohsmsScore,omitempty" json:"ohsmsScore,omitempty"`
	Categories          map[ComplianceCategory]string `bson:"categories,omitempty" json:"categories,omitempty"`
	UpcomingRegulations string                        `bson:"upcomingRegulations,omitempty" json:"upcomingRegulations,omitempty"`
	ComplianceIssues    []string                      `bson:"complianceIssues,omitempty" json:"complianceIssues,omitempty"`
	ComplianceActions   string                        `bson:"complianceActions,omitempty" json:"complianceActions,omitempty"`
}

type LaggingMetrics struct {
	IncidentCount               int     `bson:"incidentCount" json:"incidentCount"`
	NearMissCount               int     `bson:"nearMissCount" json:"nearMissCount"`
	FirstAidCount               int     `bson:"firstAidCount" json:"firstAidCount"`
	MedicalTreatmentCount       int     `bson:"medicalTreatmentCount" json:"medicalTreatmentCount"`
	LostTimeIncidents           int     `bson:"lostTimeIncidents" json:"lostTimeIncidents"`
	TotalRecordableIncidentRate float64 `bson:"totalRecordableIncidentRate,omitempty" json:"totalRecordableIncidentRate,omitempty"`
	LostTimeIncidentRate        float64 `bson:"lostTimeIncidentRate,omitempty" json:"lostTimeIncidentRate,omitempty"`
	SeverityRate                float64 `bson:"severityRate,omitempty" json:"severityRate,omitempty"`
}

type LeadingMetrics struct {
	InspectionsCompleted int `bson:"inspectionsCompleted" json:"inspectionsCompleted"`
	InspectionsPlanned   int `bson:"inspectionsPlanned" json:"inspectionsPlanned"`
	// Pointer so an unreported month is distinguishable from 0%
	TrainingCompleted  *float64 `bson:"trainingCompleted,omitempty" json:"trainingCompleted,omitempty"`
	SafetyObservations int      `bson:"safetyObservations" json:"safetyObservations"`
	SafetyMeetings     int      `bson:"safetyMeetings" json:"safetyMeetings"`
	HazardsIdentified  int      `bson:"hazardsIdentified" json:"hazardsIdentified"`
	HazardsClosed      int      `bson:"hazardsClosed" json:"hazardsClosed"`
}

type Metrics struct {
	Lagging LaggingMetrics `bson:"lagging" json:"lagging"`
	Leading LeadingMetrics `bson:"leading" json:"leading"`
}

type KPI struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Target      float64 `bson:"target" json:"target"`
	Actual      float64 `bson:"actual" json:"actual"`
	Unit        string  `bson:"unit" json:"unit"`
	Year        int     `bson:"year" json:"year"`
	// Near Miss Rate inputs
	NearMissCount int     `bson:"nearMissCount,omitempty" json:"nearMissCount,omitempty"`
	HoursWorked   float64 `bson:"hoursWorked,omitempty" json:"hoursWorked,omitempty"`
	// Critical Risk Verification inputs
	TotalTasks    int `bson:"totalTasks,omitempty" json:"totalTasks,omitempty"`
	VerifiedTasks int `bson:"verifiedTasks,omitempty" json:"verifiedTasks,omitempty"`
	// Electrical Safety Compliance inputs
	AuditItems     int `bson:"auditItems,omitempty" json:"auditItems,omitempty"`
	CompliantItems int `bson:"compliantItems,omitempty" json:"compliantItems,omitempty"`
}

type IncidentType string

const (
	IncidentNearMiss         IncidentType = "Near Miss"
	IncidentFirstAid         IncidentType = "First Aid"
	IncidentMedicalTreatment IncidentType = "Medical Treatment"
	IncidentLostTime         IncidentType = "Lost Time"
	IncidentFatality         IncidentType = "Fatality"
)

func (t IncidentType) Valid() bool {
	switch t {
	case IncidentNearMiss, IncidentFirstAid, IncidentMedicalTreatment, IncidentLostTime, IncidentFatality:
		return true
	}
	return false
}

type WorkStatus string

const (
	StatusOpen       WorkStatus = "Open"
	StatusInProgress WorkStatus = "In Progress"
	StatusClosed     WorkStatus = "Closed"
)

func (s WorkStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type Incident struct {
	Type        IncidentType `bson:"type" json:"type"`
	Date        time.Time    `bson:"date" json:"date"`
	Location    string       `bson:"location" json:"location"`
	Description string       `bson:"description" json:"description"`
	RootCause   string       `bson:"rootCause,omitempty" json:"rootCause,omitempty"`
	Actions     string       `bson:"actions,omitempty" json:"actions,omitempty"`
	Status      WorkStatus   `bson:"status" json:"status"`
}

type RiskAssessment struct {
	Risk        string     `bson:"risk" json:"risk"`
	Probability int        `bson:"probability" json:"probability"`
	Severity    int        `bson:"severity" json:"severity"`
	Rating      RiskRating `bson:"rating" json:"rating"`
}

type SafetyInitiatives struct {
	Current  string   `bson:"current,omitempty" json:"current,omitempty"`
	Upcoming []string `bson:"upcoming,omitempty" json:"upcoming,omitempty"`
}

type Analysis struct {
	Trends               []string `bson:"trends,omitempty" json:"trends,omitempty"`
	PositiveObservations []string `bson:"positiveObservations,omitempty" json:"positiveObservations,omitempty"`
	ConcernAreas         []string `bson:"concernAreas,omitempty" json:"concernAreas,omitempty"`
	Recommendations      []string `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
}

type HistoricalEntry struct {
	Period      string `bson:"period" json:"period"`
	Incidents   int    `bson:"incidents" json:"incidents"`
	NearMisses  int    `bson:"nearMisses" json:"nearMisses"`
	Inspections int    `bson:"inspections" json:"inspections"`
}

type Report struct {
	ID                primitive.ObjectID            `bson:"_id,omitempty" json:"_id"`
	CompanyName       string                        `bson:"companyName" json:"companyName"`
	ReportPeriod      string                        `bson:"reportPeriod" json:"reportPeriod"`
	ReportType        ReportType                    `bson:"reportType" json:"reportType"`
	ReportDate        time.Time                     `bson:"reportDate" json:"reportDate"`
	CreatedBy         primitive.ObjectID            `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	Metrics           Metrics                       `bson:"metrics" json:"metrics"`
	KPIs              []KPI                         `bson:"kpis,omitempty" json:"kpis,omitempty"`
	HistoricalData    []HistoricalEntry             `bson:"historicalData,omitempty" json:"historicalData,omitempty"`
	Compliance        Compliance                    `bson:"compliance" json:"compliance"`
	CriticalRisks     map[RiskProtocol]CriticalRisk `bson:"criticalRisks,omitempty" json:"criticalRisks,omitempty"`
	Incidents         []Incident                    `bson:"incidents,omitempty" json:"incidents,omitempty"`
	RiskAssessment    []RiskAssessment              `bson:"riskAssessment,omitempty" json:"riskAssessment,omitempty"`
	SafetyInitiatives SafetyInitiatives             `bson:"safetyInitiatives,omitempty" json:"safetyInitiatives,omitempty"`
	Analysis          Analysis                      `bson:"analysis,omitempty" json:"analysis,omitempty"`
	CreatedAt         time.Time                     `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time                     `bson:"updated_at" json:"updated_at"`
}

// ApplyRiskRatings recomputes every assessment rating from its probability
// and severity. Called on every create and update so ratings can never go
// stale.
func (r *Report) ApplyRiskRatings() {
	for i := range r.RiskAssessment {
		r.RiskAssessment[i].Rating = RiskRatingFor(r.RiskAssessment[i].Probability, r.RiskAssessment[i].Severity)
	}
}

// HighRiskCount counts assessments rated High or Critical.
func (r *Report) HighRiskCount() int {
	count := 0
	for _, risk := range r.RiskAssessment {
		if risk.Rating == RatingHigh || risk.Rating == RatingCritical {
			count++
		}
	}
	return count
}

// Validate checks required fields and closed enums.
func (r *Report) Validate() error {
	if r.CompanyName == "" {
		return errs.Invalid("Company name is required")
	}
	if r.ReportPeriod == "" {
		return errs.Invalid("Report period is required")
	}
	switch r.ReportType {
	case ReportMonthly, ReportQuarterly, ReportAnnual:
	default:
		return errs.Invalid(fmt.Sprintf("Invalid report type: %s", r.ReportType))
	}
	switch r.Compliance.Status {
	case FullyCompliant, PartiallyCompliant, NonCompliant:
	default:
		return errs.Invalid("Compliance status is required")
	}
	if r.Compliance.OhsmsScore < 0 || r.Compliance.OhsmsScore > 100 {
		return errs.Invalid("OHSMS score must be between 0 and 100")
	}
	for category := range r.Compliance.Categories {
		if !category.Valid() {
			return errs.Invalid(fmt.Sprintf("Unknown compliance category: %s", category))
		}
	}
	for protocol, risk := range r.CriticalRisks {
		if !protocol.Valid() {
			return errs.Invalid(fmt.Sprintf("Unknown critical risk protocol: %s", protocol))
		}
		if risk.Status != "" && !risk.Status.Valid() {
			return errs.Invalid(fmt.Sprintf("Invalid control status: %s", risk.Status))
		}
	}
	for _, ra := range r.RiskAssessment {
		if ra.Risk == "" {
			return errs.Invalid("Risk area is required")
		}
		if ra.Probability < 1 || ra.Probability > 5 {
			return errs.Invalid("Probability must be between 1 and 5")
		}
		if ra.Severity < 1 || ra.Severity > 5 {
			return errs.Invalid("Severity must be between 1 and 5")
		}
	}
	for _, inc := range r.Incidents {
		if !inc.Type.Valid() {
			return errs.Invalid(fmt.Sprintf("Invalid incident type: %s", inc.Type))
		}
		if inc.Status != "" && !inc.Status.Valid() {
			return errs.Invalid(fmt.Sprintf("Invalid incident status: %s", inc.Status))
		}
		if inc.Location == "" || inc.Description == "" {
			return errs.Invalid("Incident location and description are required")
		}
	}
	return nil
}

// ReportListItem is the lightweight projection returned by the paginated
// listing.
type ReportListItem struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	CompanyName  string             `bson:"companyName" json:"companyName"`
	ReportPeriod string             `bson:"reportPeriod" json:"reportPeriod"`
	ReportType   ReportType         `bson:"reportType" json:"reportType"`
	ReportDate   time.Time          `bson:"reportDate" json:"reportDate"`
	CreatedBy    primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	Metrics      struct {
		Lagging struct {
			IncidentCount int `bson:"incidentCount" json:"incidentCount"`
		} `bson:"lagging" json:"lagging"`
	} `bson:"metrics" json:"metrics"`
}

type ReportPage struct {
	Reports      []ReportListItem `json:"reports"`
	CurrentPage  int              `json:"currentPage"`
	TotalPages   int              `json:"totalPages"`
	TotalReports int64            `json:"totalReports"`
}
