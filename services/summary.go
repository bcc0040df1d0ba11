package services

import (
	"math"

	"risk-hand/models"
)

// Derived views over a product aggregate. All functions are pure.

// ProductSummary bundles the derived views served by the summary endpoint.
type ProductSummary struct {
	ProductID         string                   `json:"product_id"`
	OverallRisk       models.RiskLevel         `json:"overall_risk"`
	CompletionPercent int                      `json:"completion_percent"`
	RiskDistribution  map[models.RiskLevel]int `json:"risk_distribution"`
	AssessmentCount   int                      `json:"assessment_count"`
}

// OverallRisk returns the most severe risk level among the assessments, or
// not_started when there are none (or all are not started).
func OverallRisk(assessments []models.SectionAssessment) models.RiskLevel {
	worst := models.RiskNotStarted
	worstRank := models.RiskLevelRank(worst)
	for _, a := range assessments {
		if r := models.RiskLevelRank(a.RiskLevel); r > worstRank {
			worst = a.RiskLevel
			worstRank = r
		}
	}
	return worst
}

// CompletionPercent returns round(100 * started / total), where started means
// any level other than not_started. Zero when there are no assessments.
func CompletionPercent(assessments []models.SectionAssessment) int {
	if len(assessments) == 0 {
		return 0
	}
	started := 0
	for _, a := range assessments {
		if a.RiskLevel != models.RiskNotStarted {
			started++
		}
	}
	return int(math.Round(100 * float64(started) / float64(len(assessments))))
}

// RiskDistribution returns a histogram of risk levels across the assessments.
func RiskDistribution(assessments []models.SectionAssessment) map[models.RiskLevel]int {
	dist := make(map[models.RiskLevel]int)
	for _, a := range assessments {
		dist[a.RiskLevel]++
	}
	return dist
}

// Summarize computes all derived views for one product aggregate.
func Summarize(p *models.Product) ProductSummary {
	return ProductSummary{
		ProductID:         p.ID,
		OverallRisk:       OverallRisk(p.Assessments),
		CompletionPercent: CompletionPercent(p.Assessments),
		RiskDistribution:  RiskDistribution(p.Assessments),
		AssessmentCount:   len(p.Assessments),
	}
}
