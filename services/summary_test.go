package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-hand/models"
)

func assessmentsWith(levels ...models.RiskLevel) []models.SectionAssessment {
	out := make([]models.SectionAssessment, 0, len(levels))
	for i, l := range levels {
		out = append(out, models.SectionAssessment{
			ProductID: "p",
			SectionID: fmt.Sprintf("section-%d", i),
			RiskLevel: l,
		})
	}
	return out
}

func TestOverallRisk(t *testing.T) {
	t.Run("empty means not started", func(t *testing.T) {
		assert.Equal(t, models.RiskNotStarted, OverallRisk(nil))
	})

	t.Run("all not started means not started", func(t *testing.T) {
		got := OverallRisk(assessmentsWith(models.RiskNotStarted, models.RiskNotStarted))
		assert.Equal(t, models.RiskNotStarted, got)
	})

	t.Run("most severe wins", func(t *testing.T) {
		got := OverallRisk(assessmentsWith(models.RiskPass, models.RiskCritical, models.RiskNotStarted))
		assert.Equal(t, models.RiskCritical, got)
	})

	t.Run("severity order respected", func(t *testing.T) {
		got := OverallRisk(assessmentsWith(models.RiskPassMitigation, models.RiskRefinementNeeded, models.RiskPass))
		assert.Equal(t, models.RiskRefinementNeeded, got)
	})

	t.Run("fail below critical", func(t *testing.T) {
		got := OverallRisk(assessmentsWith(models.RiskFail, models.RiskCritical))
		assert.Equal(t, models.RiskCritical, got)
	})
}

func TestCompletionPercent(t *testing.T) {
	t.Run("no assessments", func(t *testing.T) {
		assert.Equal(t, 0, CompletionPercent(nil))
	})

	t.Run("all started", func(t *testing.T) {
		got := CompletionPercent(assessmentsWith(models.RiskPass, models.RiskFail))
		assert.Equal(t, 100, got)
	})

	t.Run("two of three started rounds to 67", func(t *testing.T) {
		got := CompletionPercent(assessmentsWith(models.RiskPass, models.RiskCritical, models.RiskNotStarted))
		assert.Equal(t, 67, got)
	})

	t.Run("one of three started rounds to 33", func(t *testing.T) {
		got := CompletionPercent(assessmentsWith(models.RiskPass, models.RiskNotStarted, models.RiskNotStarted))
		assert.Equal(t, 33, got)
	})

	t.Run("half rounds up", func(t *testing.T) {
		got := CompletionPercent(assessmentsWith(models.RiskPass, models.RiskNotStarted))
		assert.Equal(t, 50, got)
	})
}

func TestRiskDistribution(t *testing.T) {
	dist := RiskDistribution(assessmentsWith(
		models.RiskPass, models.RiskPass, models.RiskCritical, models.RiskNotStarted))

	assert.Equal(t, 2, dist[models.RiskPass])
	assert.Equal(t, 1, dist[models.RiskCritical])
	assert.Equal(t, 1, dist[models.RiskNotStarted])
	assert.Len(t, dist, 3)
}

func TestSummarize(t *testing.T) {
	p := &models.Product{
		ID:          "prod-x",
		Assessments: assessmentsWith(models.RiskPass, models.RiskCritical, models.RiskNotStarted),
	}

	s := Summarize(p)
	require.Equal(t, "prod-x", s.ProductID)
	assert.Equal(t, models.RiskCritical, s.OverallRisk)
	assert.Equal(t, 67, s.CompletionPercent)
	assert.Equal(t, 3, s.AssessmentCount)
	assert.Equal(t, 1, s.RiskDistribution[models.RiskPass])
}
