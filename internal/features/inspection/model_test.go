package inspection

import (
	"testing"
	"time"
)

func validInspection() *Inspection {
	return &Inspection{
		InspectionDate: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		InspectionType: TypeSafetyWalk,
		Location:       "Production Hall A",
		Status:         StatusDraft,
	}
}

func TestInspectionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(i *Inspection)
		wantErr bool
	}{
		{"Valid inspection", func(i *Inspection) {}, false},
		{"Missing date", func(i *Inspection) { i.InspectionDate = time.Time{} }, true},
		{"Unknown type", func(i *Inspection) { i.InspectionType = "Spot Check" }, true},
		{"Missing location", func(i *Inspection) { i.Location = "" }, true},
		{"Unknown status", func(i *Inspection) { i.Status = "Pending" }, true},
		{"Unknown finding category", func(i *Inspection) {
			i.Findings = []Finding{{Category: "Noise", Severity: SeverityLow, Status: FindingOpen}}
		}, true},
		{"Unknown finding severity", func(i *Inspection) {
			i.Findings = []Finding{{Category: CategoryPPE, Severity: "Extreme", Status: FindingOpen}}
		}, true},
		{"Unknown finding status", func(i *Inspection) {
			i.Findings = []Finding{{Category: CategoryPPE, Severity: SeverityLow, Status: "Done"}}
		}, true},
		{"Valid finding", func(i *Inspection) {
			i.Findings = []Finding{{Category: CategoryElectrical, Severity: SeverityHigh, Status: FindingInProgress}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := validInspection()
			tt.mutate(i)
			err := i.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeCounts(t *testing.T) {
	i := validInspection()
	i.Findings = []Finding{
		{Category: CategoryHousekeeping, Severity: SeverityHigh, Status: FindingOpen},
		{Category: CategoryPPE, Severity: SeverityHigh, Status: FindingClosed},
		{Category: CategoryChemical, Severity: SeverityLow, Status: FindingInProgress},
	}

	i.ComputeCounts()

	// In-progress findings are still open
	if i.OpenFindingsCount != 2 {
		t.Errorf("OpenFindingsCount = %d, want 2", i.OpenFindingsCount)
	}
	// Severity counts are independent of status
	if i.HighSeverityCount != 2 {
		t.Errorf("HighSeverityCount = %d, want 2", i.HighSeverityCount)
	}
}

func TestComputeCountsNoFindings(t *testing.T) {
	i := validInspection()
	i.ComputeCounts()
	if i.OpenFindingsCount != 0 || i.HighSeverityCount != 0 {
		t.Errorf("counts without findings = %d/%d, want 0/0", i.OpenFindingsCount, i.HighSeverityCount)
	}
}
