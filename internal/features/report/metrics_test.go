package report

import (
	"math"
	"testing"
	"time"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func reportWithLeading(planned, completed int, training *float64) Report {
	return Report{
		Metrics: Metrics{
			Leading: LeadingMetrics{
				InspectionsPlanned:   planned,
				InspectionsCompleted: completed,
				TrainingCompleted:    training,
			},
		},
	}
}

func TestInspectionCompletion(t *testing.T) {
	tests := []struct {
		name    string
		reports []Report
		want    float64
	}{
		{
			name:    "No reports",
			reports: nil,
			want:    0,
		},
		{
			name: "Nothing planned excluded from average",
			reports: []Report{
				reportWithLeading(0, 5, nil),
				reportWithLeading(10, 5, nil),
			},
			want: 50,
		},
		{
			name: "Averages per-report ratios",
			reports: []Report{
				reportWithLeading(10, 10, nil),
				reportWithLeading(10, 5, nil),
			},
			want: 75,
		},
		{
			name: "All reports without planned inspections",
			reports: []Report{
				reportWithLeading(0, 3, nil),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inspectionCompletion(tt.reports)
			if !floatEquals(got, tt.want) {
				t.Errorf("inspectionCompletion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrainingCompletion(t *testing.T) {
	eighty := 80.0
	ninety := 90.0
	zero := 0.0

	tests := []struct {
		name    string
		reports []Report
		want    float64
	}{
		{"No reports", nil, 0},
		{
			name: "Missing values excluded",
			reports: []Report{
				reportWithLeading(0, 0, &eighty),
				reportWithLeading(0, 0, nil),
				reportWithLeading(0, 0, &ninety),
			},
			want: 85,
		},
		{
			name: "Reported zero still counts",
			reports: []Report{
				reportWithLeading(0, 0, &zero),
				reportWithLeading(0, 0, &eighty),
			},
			want: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trainingCompletion(tt.reports)
			if !floatEquals(got, tt.want) {
				t.Errorf("trainingCompletion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopRiskAreas(t *testing.T) {
	reports := []Report{
		{
			RiskAssessment: []RiskAssessment{
				{Risk: "A", Rating: RatingHigh},
				{Risk: "A", Rating: RatingLow},
				{Risk: "A", Rating: RatingLow},
				{Risk: "B", Rating: RatingCritical},
				{Risk: "B", Rating: RatingHigh},
			},
		},
	}

	areas := topRiskAreas(reports)
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(areas))
	}
	// B has more high/critical entries despite A having more total entries
	if areas[0].Name != "B" || areas[0].HighCount != 2 || areas[0].Count != 2 {
		t.Errorf("first area = %+v, want B with highCount 2", areas[0])
	}
	if areas[1].Name != "A" || areas[1].HighCount != 1 || areas[1].Count != 3 {
		t.Errorf("second area = %+v, want A with highCount 1 count 3", areas[1])
	}
}

func TestTopRiskAreasTieBreaks(t *testing.T) {
	reports := []Report{
		{
			RiskAssessment: []RiskAssessment{
				{Risk: "Zeta", Rating: RatingHigh},
				{Risk: "Alpha", Rating: RatingHigh},
			},
		},
	}

	areas := topRiskAreas(reports)
	if areas[0].Name != "Alpha" || areas[1].Name != "Zeta" {
		t.Errorf("equal counts should sort by name: got %s, %s", areas[0].Name, areas[1].Name)
	}
}

func TestTopRiskAreasCapsAtFive(t *testing.T) {
	var assessments []RiskAssessment
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		assessments = append(assessments, RiskAssessment{Risk: name, Rating: RatingHigh})
	}

	areas := topRiskAreas([]Report{{RiskAssessment: assessments}})
	if len(areas) != 5 {
		t.Errorf("expected top 5 areas, got %d", len(areas))
	}
}

func TestComplianceStatus(t *testing.T) {
	t.Run("No reports stays all zero", func(t *testing.T) {
		got := complianceStatus(nil)
		if got.FullyCompliant != 0 || got.PartiallyCompliant != 0 || got.NonCompliant != 0 {
			t.Errorf("complianceStatus(nil) = %+v, want all zeros", got)
		}
	})

	t.Run("Percentages over all reports", func(t *testing.T) {
		reports := []Report{
			{Compliance: Compliance{Status: FullyCompliant}},
			{Compliance: Compliance{Status: FullyCompliant}},
			{Compliance: Compliance{Status: PartiallyCompliant}},
			{Compliance: Compliance{Status: NonCompliant}},
		}
		got := complianceStatus(reports)
		if !floatEquals(got.FullyCompliant, 50) {
			t.Errorf("FullyCompliant = %v, want 50", got.FullyCompliant)
		}
		if !floatEquals(got.PartiallyCompliant, 25) {
			t.Errorf("PartiallyCompliant = %v, want 25", got.PartiallyCompliant)
		}
		if !floatEquals(got.NonCompliant, 25) {
			t.Errorf("NonCompliant = %v, want 25", got.NonCompliant)
		}
	})
}

func TestKpiMetricsDeduplicatesByLatestReport(t *testing.T) {
	january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	reports := []Report{
		{
			ReportDate: june,
			KPIs:       []KPI{{ID: "nearMissRate", Actual: 12, Year: 2026}},
		},
		{
			ReportDate: january,
			KPIs: []KPI{
				{ID: "nearMissRate", Actual: 5, Year: 2026},
				{ID: "criticalRiskVerification", Actual: 90, Year: 2026},
				{ID: "staleKpi", Actual: 1, Year: 2025},
			},
		},
	}

	kpis := kpiMetrics(reports, 2026)
	if len(kpis) != 2 {
		t.Fatalf("expected 2 KPIs, got %d", len(kpis))
	}
	// Sorted by id
	if kpis[0].ID != "criticalRiskVerification" || kpis[1].ID != "nearMissRate" {
		t.Errorf("unexpected KPI order: %s, %s", kpis[0].ID, kpis[1].ID)
	}
	if kpis[1].Actual != 12 {
		t.Errorf("nearMissRate should come from the latest report: got %v, want 12", kpis[1].Actual)
	}
}

func TestSummarize(t *testing.T) {
	training := 90.0
	reports := []Report{
		{
			ReportDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Metrics: Metrics{
				Lagging: LaggingMetrics{
					IncidentCount:         2,
					NearMissCount:         5,
					FirstAidCount:         1,
					MedicalTreatmentCount: 1,
					LostTimeIncidents:     1,
				},
				Leading: LeadingMetrics{
					InspectionsPlanned:   10,
					InspectionsCompleted: 8,
					TrainingCompleted:    &training,
				},
			},
			Compliance: Compliance{Status: FullyCompliant},
		},
		{
			ReportDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			Metrics: Metrics{
				Lagging: LaggingMetrics{IncidentCount: 1, NearMissCount: 3},
			},
			Compliance: Compliance{Status: NonCompliant},
		},
	}

	summary := Summarize(reports, 2026)

	if summary.TotalReports != 2 {
		t.Errorf("TotalReports = %d, want 2", summary.TotalReports)
	}
	if summary.TotalIncidents != 3 {
		t.Errorf("TotalIncidents = %d, want 3", summary.TotalIncidents)
	}
	if summary.TotalNearMisses != 8 {
		t.Errorf("TotalNearMisses = %d, want 8", summary.TotalNearMisses)
	}
	if summary.TotalLostTimeIncidents != 1 {
		t.Errorf("TotalLostTimeIncidents = %d, want 1", summary.TotalLostTimeIncidents)
	}
	// Second report planned nothing, so only the first contributes
	if !floatEquals(summary.InspectionCompletion, 80) {
		t.Errorf("InspectionCompletion = %v, want 80", summary.InspectionCompletion)
	}
	if !floatEquals(summary.TrainingCompletion, 90) {
		t.Errorf("TrainingCompletion = %v, want 90", summary.TrainingCompletion)
	}
	if !floatEquals(summary.ComplianceStatus.FullyCompliant, 50) {
		t.Errorf("FullyCompliant = %v, want 50", summary.ComplianceStatus.FullyCompliant)
	}
	if summary.HighRiskAreas == nil || summary.KPIs == nil {
		t.Error("slices must be non-nil so the JSON encodes as [] rather than null")
	}
}

func TestSummarizeEmptyYear(t *testing.T) {
	summary := Summarize(nil, 2026)

	if summary.TotalReports != 0 || summary.TotalIncidents != 0 {
		t.Errorf("empty year should be all zeros: %+v", summary)
	}
	if summary.InspectionCompletion != 0 || summary.TrainingCompletion != 0 {
		t.Errorf("empty year completion rates should be 0")
	}
	if len(summary.HighRiskAreas) != 0 || len(summary.KPIs) != 0 {
		t.Errorf("empty year should have no risk areas or KPIs")
	}
}
