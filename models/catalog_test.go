package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskLevelOrdering(t *testing.T) {
	order := []RiskLevel{
		RiskNotStarted,
		RiskPass,
		RiskPassMitigation,
		RiskRefinementNeeded,
		RiskFail,
		RiskCritical,
	}
	for i := 1; i < len(order); i++ {
		assert.Less(t, RiskLevelRank(order[i-1]), RiskLevelRank(order[i]),
			"%s must rank below %s", order[i-1], order[i])
	}
}

func TestRiskLevelRankUnknown(t *testing.T) {
	assert.Equal(t, -1, RiskLevelRank("bogus"))
	assert.False(t, ValidRiskLevel("bogus"))
	assert.True(t, ValidRiskLevel(RiskPassMitigation))
}

func TestRiskLevelsMetadata(t *testing.T) {
	levels := RiskLevels()
	require.Len(t, levels, 6)
	for i, l := range levels {
		assert.Equal(t, i, l.Rank)
		assert.NotEmpty(t, l.Label)
		assert.NotEmpty(t, l.Color)
	}
}

func TestSectionCatalog(t *testing.T) {
	t.Run("known sections resolve", func(t *testing.T) {
		for _, id := range []string{"bees", "groundwater", "residues", "toxicology", "aquatics"} {
			s, ok := SectionByID(id)
			require.True(t, ok, "section %s must exist", id)
			assert.Equal(t, id, s.ID)
			assert.NotEmpty(t, s.Group)
		}
	})

	t.Run("unknown section rejected", func(t *testing.T) {
		_, ok := SectionByID("astrology")
		assert.False(t, ok)
	})

	t.Run("groups cover every indexed section", func(t *testing.T) {
		total := 0
		for _, g := range SectionGroups() {
			for _, s := range g.Sections {
				assert.Equal(t, g.ID, s.Group)
				total++
			}
		}
		assert.Equal(t, SectionCount(), total)
	})

	t.Run("water sections carry their subgroup", func(t *testing.T) {
		gw, ok := SectionByID("groundwater")
		require.True(t, ok)
		assert.Equal(t, "water", gw.Subgroup)
	})
}
