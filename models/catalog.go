package models

// Static catalogs: the specialist section taxonomy and the risk-level enum.
// Both are configuration data and never mutated at runtime, so they live in
// code rather than in tables.

// RiskLevel is the outcome of a section assessment, ordered by severity.
type RiskLevel string

const (
	RiskNotStarted       RiskLevel = "not_started"
	RiskPass             RiskLevel = "pass"
	RiskPassMitigation   RiskLevel = "pass_with_mitigation"
	RiskRefinementNeeded RiskLevel = "refinement_needed"
	RiskFail             RiskLevel = "fail"
	RiskCritical         RiskLevel = "critical"
)

// RiskLevelInfo carries display metadata for one risk level.
type RiskLevelInfo struct {
	ID    RiskLevel `json:"id"`
	Label string    `json:"label"`
	Color string    `json:"color"`
	Rank  int       `json:"rank"`
}

// riskLevels is ordered least to most severe; Rank mirrors the slice index.
var riskLevels = []RiskLevelInfo{
	{ID: RiskNotStarted, Label: "Not started", Color: "#9e9e9e", Rank: 0},
	{ID: RiskPass, Label: "Pass", Color: "#2e7d32", Rank: 1},
	{ID: RiskPassMitigation, Label: "Pass with mitigation", Color: "#8bc34a", Rank: 2},
	{ID: RiskRefinementNeeded, Label: "Refinement / data required", Color: "#ff9800", Rank: 3},
	{ID: RiskFail, Label: "Fail", Color: "#e53935", Rank: 4},
	{ID: RiskCritical, Label: "Critical", Color: "#7b1fa2", Rank: 5},
}

var riskRanks = func() map[RiskLevel]int {
	m := make(map[RiskLevel]int, len(riskLevels))
	for _, rl := range riskLevels {
		m[rl.ID] = rl.Rank
	}
	return m
}()

// RiskLevels returns the full enum, least severe first.
func RiskLevels() []RiskLevelInfo {
	out := make([]RiskLevelInfo, len(riskLevels))
	copy(out, riskLevels)
	return out
}

// RiskLevelRank returns the severity rank of a level, -1 if unknown.
func RiskLevelRank(level RiskLevel) int {
	if r, ok := riskRanks[level]; ok {
		return r
	}
	return -1
}

// ValidRiskLevel reports whether the given level is part of the enum.
func ValidRiskLevel(level RiskLevel) bool {
	_, ok := riskRanks[level]
	return ok
}

// Section is one fixed regulatory specialist topic a product is assessed
// against, e.g. "bees" or "groundwater".
type Section struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Group    string `json:"group"`
	Subgroup string `json:"subgroup,omitempty"`
}

// SectionGroup is one top-level block of the taxonomy.
type SectionGroup struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Sections []Section `json:"sections"`
}

var sectionGroups = []SectionGroup{
	{
		ID: "physchem", Label: "Physical & Chemical Properties",
		Sections: []Section{
			{ID: "phys_chem", Label: "Physical and chemical properties", Group: "physchem"},
			{ID: "methods_analysis", Label: "Methods of analysis", Group: "physchem"},
		},
	},
	{
		ID: "tox", Label: "Mammalian Toxicology",
		Sections: []Section{
			{ID: "toxicology", Label: "Toxicology", Group: "tox"},
			{ID: "operator_exposure", Label: "Operator and worker exposure", Group: "tox"},
		},
	},
	{
		ID: "residues", Label: "Residues",
		Sections: []Section{
			{ID: "residues", Label: "Residues and MRLs", Group: "residues"},
			{ID: "dietary_risk", Label: "Consumer dietary risk", Group: "residues"},
		},
	},
	{
		ID: "fate", Label: "Environmental Fate",
		Sections: []Section{
			{ID: "fate_soil", Label: "Fate in soil", Group: "fate", Subgroup: "soil"},
			{ID: "groundwater", Label: "Groundwater", Group: "fate", Subgroup: "water"},
			{ID: "surface_water", Label: "Surface water and sediment", Group: "fate", Subgroup: "water"},
		},
	},
	{
		ID: "ecotox", Label: "Ecotoxicology",
		Sections: []Section{
			{ID: "birds_mammals", Label: "Birds and wild mammals", Group: "ecotox"},
			{ID: "aquatics", Label: "Aquatic organisms", Group: "ecotox"},
			{ID: "bees", Label: "Bees", Group: "ecotox"},
			{ID: "non_target_arthropods", Label: "Non-target arthropods", Group: "ecotox"},
			{ID: "soil_organisms", Label: "Earthworms and soil organisms", Group: "ecotox"},
			{ID: "non_target_plants", Label: "Non-target plants", Group: "ecotox"},
		},
	},
}

var sectionIndex = func() map[string]Section {
	m := make(map[string]Section)
	for _, g := range sectionGroups {
		for _, s := range g.Sections {
			m[s.ID] = s
		}
	}
	return m
}()

// SectionGroups returns the full taxonomy.
func SectionGroups() []SectionGroup {
	out := make([]SectionGroup, len(sectionGroups))
	copy(out, sectionGroups)
	return out
}

// SectionByID looks up a section in the catalog.
func SectionByID(id string) (Section, bool) {
	s, ok := sectionIndex[id]
	return s, ok
}

// SectionCount returns the number of sections in the catalog.
func SectionCount() int {
	return len(sectionIndex)
}
