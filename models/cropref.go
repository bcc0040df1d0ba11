package models

// Crop reference catalog: read-only companion tables seeded at startup or via
// the cropctl importer. EPPO codes identify crops, FOCUS scenarios cover the
// EU exposure models, Annex I commodities mirror Reg 396/2005.

// EPPOCode is one entry of the EPPO plant taxonomy.
type EPPOCode struct {
	Code          string `json:"code" gorm:"primaryKey;size:16"`
	PreferredName string `json:"preferred_name" gorm:"not null"`
	// Level is the taxonomy rank, e.g. "species" or "genus".
	Level      string `json:"level,omitempty" gorm:"index"`
	ParentCode string `json:"parent_code,omitempty" gorm:"index;size:16"`
}

// TableName sets the explicit table name.
func (EPPOCode) TableName() string {
	return "eppo_codes"
}

// FocusScenario is one standardized FOCUS exposure scenario.
type FocusScenario struct {
	ID uint `json:"id" gorm:"primaryKey"`
	// Model is the FOCUS model family: "gw" (PEARL/PELMO) or "sw" (SWASH).
	Model        string `json:"model" gorm:"index;not null"`
	ScenarioCode string `json:"scenario_code" gorm:"uniqueIndex;not null"`
	Location     string `json:"location"`
	// Crops is a comma-separated list of EPPO codes covered by the scenario.
	Crops string `json:"crops,omitempty"`
}

// TableName sets the explicit table name.
func (FocusScenario) TableName() string {
	return "focus_scenarios"
}

// Annex1Commodity is one commodity of Reg 396/2005 Annex I.
type Annex1Commodity struct {
	Code string `json:"code" gorm:"primaryKey;size:16"`
	Name string `json:"name" gorm:"not null"`
	// HierarchyLevel: 1 = group, 2 = subgroup, 3 = individual commodity.
	HierarchyLevel int    `json:"hierarchy_level" gorm:"index"`
	ParentCode     string `json:"parent_code,omitempty" gorm:"index;size:16"`
	// UnitWeightG feeds the IESTI calculation in PRIMo.
	UnitWeightG float64 `json:"unit_weight_g,omitempty"`
}

// TableName sets the explicit table name.
func (Annex1Commodity) TableName() string {
	return "annex1_commodities"
}
