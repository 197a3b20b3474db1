package report

import "fmt"

type Recommendations struct {
	Recommendations  []string `json:"recommendations"`
	CriticalActions  []string `json:"criticalActions"`
	ImprovementAreas []string `json:"improvementAreas"`
}

// GenerateRecommendations derives suggested actions from a report's data.
// The rules used to live in the dashboard client; they now run server-side
// so every consumer sees the same suggestions. The report is not mutated.
func GenerateRecommendations(r *Report) *Recommendations {
	result := &Recommendations{
		Recommendations:  []string{},
		CriticalActions:  []string{},
		ImprovementAreas: []string{},
	}

	if r.Metrics.Lagging.IncidentCount > 3 {
		result.Recommendations = append(result.Recommendations,
			"Implement additional incident investigation training to address high incident rate")
	}

	if trained := r.Metrics.Leading.TrainingCompleted; trained != nil && *trained < 85 {
		result.Recommendations = append(result.Recommendations,
			"Develop a training compliance improvement plan to address gaps")
		result.CriticalActions = append(result.CriticalActions,
			"Bring training compliance above 85% within next 30 days")
	}

	// Walk protocols in their fixed order so output is deterministic
	for _, protocol := range RiskProtocols {
		risk, ok := r.CriticalRisks[protocol]
		if !ok {
			continue
		}
		if risk.Status == ControlInadequate || risk.Status == ControlNeedsImprovement {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Review and strengthen controls for %s", risk.Name))
			if risk.Status == ControlInadequate {
				result.CriticalActions = append(result.CriticalActions,
					fmt.Sprintf("Immediate reassessment of %s controls required", risk.Name))
			}
		}
	}

	var highRisks []RiskAssessment
	for _, risk := range r.RiskAssessment {
		if risk.Rating == RatingHigh || risk.Rating == RatingCritical {
			highRisks = append(highRisks, risk)
		}
	}
	if len(highRisks) > 0 {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Focus on risk reduction for the %d high/critical risk areas identified", len(highRisks)))
		for _, risk := range highRisks {
			result.ImprovementAreas = append(result.ImprovementAreas,
				fmt.Sprintf("Develop mitigation plan for %s", risk.Risk))
		}
	}

	return result
}
