package report

import (
	"sort"
	"time"
)

type RiskArea struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	HighCount int    `json:"highCount"`
}

type ComplianceBreakdown struct {
	FullyCompliant     float64 `json:"fullyCompliant"`
	PartiallyCompliant float64 `json:"partiallyCompliant"`
	NonCompliant       float64 `json:"nonCompliant"`
}

type MetricsSummary struct {
	TotalReports           int                 `json:"totalReports"`
	TotalIncidents         int                 `json:"totalIncidents"`
	TotalNearMisses        int                 `json:"totalNearMisses"`
	TotalFirstAidCases     int                 `json:"totalFirstAidCases"`
	TotalMedicalTreatments int                 `json:"totalMedicalTreatments"`
	TotalLostTimeIncidents int                 `json:"totalLostTimeIncidents"`
	InspectionCompletion   float64             `json:"inspectionCompletion"`
	TrainingCompletion     float64             `json:"trainingCompletion"`
	HighRiskAreas          []RiskArea          `json:"highRiskAreas"`
	ComplianceStatus       ComplianceBreakdown `json:"complianceStatus"`
	KPIs                   []KPI               `json:"kpis"`
}

// Summarize reduces a year's reports to the dashboard summary. Every step
// tolerates missing sub-documents: zero values contribute nothing to sums
// and averages.
func Summarize(reports []Report, year int) *MetricsSummary {
	summary := &MetricsSummary{
		TotalReports:  len(reports),
		HighRiskAreas: []RiskArea{},
		KPIs:          []KPI{},
	}

	for _, r := range reports {
		lagging := r.Metrics.Lagging
		summary.TotalIncidents += lagging.IncidentCount
		summary.TotalNearMisses += lagging.NearMissCount
		summary.TotalFirstAidCases += lagging.FirstAidCount
		summary.TotalMedicalTreatments += lagging.MedicalTreatmentCount
		summary.TotalLostTimeIncidents += lagging.LostTimeIncidents
	}

	summary.InspectionCompletion = inspectionCompletion(reports)
	summary.TrainingCompletion = trainingCompletion(reports)
	summary.HighRiskAreas = topRiskAreas(reports)
	summary.ComplianceStatus = complianceStatus(reports)
	summary.KPIs = kpiMetrics(reports, year)

	return summary
}

// inspectionCompletion averages completed/planned over reports that
// actually planned inspections. A report with nothing planned is left out
// of the average entirely rather than dragging it down as 0%.
func inspectionCompletion(reports []Report) float64 {
	var total float64
	validReports := 0

	for _, r := range reports {
		planned := r.Metrics.Leading.InspectionsPlanned
		completed := r.Metrics.Leading.InspectionsCompleted

		if planned > 0 {
			total += float64(completed) / float64(planned)
			validReports++
		}
	}

	if validReports == 0 {
		return 0
	}
	return total / float64(validReports) * 100
}

// trainingCompletion is the simple average over reports that reported the
// field at all.
func trainingCompletion(reports []Report) float64 {
	var total float64
	validReports := 0

	for _, r := range reports {
		if r.Metrics.Leading.TrainingCompleted != nil {
			total += *r.Metrics.Leading.TrainingCompleted
			validReports++
		}
	}

	if validReports == 0 {
		return 0
	}
	return total / float64(validReports)
}

// topRiskAreas groups every risk assessment by area name and returns the
// five areas with the most High/Critical entries. Ties fall back to total
// count, then name, so the output is stable.
func topRiskAreas(reports []Report) []RiskArea {
	counts := make(map[string]*RiskArea)
	var order []string

	for _, r := range reports {
		for _, risk := range r.RiskAssessment {
			area, ok := counts[risk.Risk]
			if !ok {
				area = &RiskArea{Name: risk.Risk}
				counts[risk.Risk] = area
				order = append(order, risk.Risk)
			}
			area.Count++
			if risk.Rating == RatingHigh || risk.Rating == RatingCritical {
				area.HighCount++
			}
		}
	}

	areas := make([]RiskArea, 0, len(order))
	for _, name := range order {
		areas = append(areas, *counts[name])
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].HighCount != areas[j].HighCount {
			return areas[i].HighCount > areas[j].HighCount
		}
		if areas[i].Count != areas[j].Count {
			return areas[i].Count > areas[j].Count
		}
		return areas[i].Name < areas[j].Name
	})

	if len(areas) > 5 {
		areas = areas[:5]
	}
	return areas
}

func complianceStatus(reports []Report) ComplianceBreakdown {
	var fully, partially, non int

	for _, r := range reports {
		switch r.Compliance.Status {
		case FullyCompliant:
			fully++
		case PartiallyCompliant:
			partially++
		case NonCompliant:
			non++
		}
	}

	// Denominator 1 when empty keeps the all-zero distribution instead of NaN
	total := len(reports)
	if total == 0 {
		total = 1
	}

	return ComplianceBreakdown{
		FullyCompliant:     float64(fully) / float64(total) * 100,
		PartiallyCompliant: float64(partially) / float64(total) * 100,
		NonCompliant:       float64(non) / float64(total) * 100,
	}
}

// kpiMetrics deduplicates KPIs for the year by id, keeping the value from
// the most recently dated report.
func kpiMetrics(reports []Report, year int) []KPI {
	type dated struct {
		kpi        KPI
		reportDate time.Time
	}
	latest := make(map[string]dated)

	for _, r := range reports {
		for _, kpi := range r.KPIs {
			if kpi.Year != year {
				continue
			}
			current, ok := latest[kpi.ID]
			if !ok || r.ReportDate.After(current.reportDate) {
				latest[kpi.ID] = dated{kpi: kpi, reportDate: r.ReportDate}
			}
		}
	}

	kpis := make([]KPI, 0, len(latest))
	for _, entry := range latest {
		kpis = append(kpis, entry.kpi)
	}
	sort.Slice(kpis, func(i, j int) bool { return kpis[i].ID < kpis[j].ID })
	return kpis
}
