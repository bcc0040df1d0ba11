package models

import (
	"time"

	"gorm.io/datatypes"
)

// SectionAssessment stores one risk verdict for a specialist section of a
// product. At most one row exists per (product, section); writes go through
// an upsert on that pair.
type SectionAssessment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProductID string `json:"product_id" gorm:"index:idx_assessments_product_section,unique;size:64;not null"`
	// SectionID references the static section catalog, e.g. "bees".
	SectionID string `json:"section_id" gorm:"index:idx_assessments_product_section,unique;size:64;not null"`

	RiskLevel RiskLevel `json:"risk_level" gorm:"index;default:'not_started'"`
	Summary   string    `json:"summary,omitempty" gorm:"type:text"`
	Assessor  string    `json:"assessor,omitempty"`

	// Open-ended key/value details, currently a single "notes" entry.
	Details datatypes.JSON `json:"details,omitempty"`
	// Per-use risk overrides, keyed by GAP use ID.
	UseOutcomes datatypes.JSON `json:"use_outcomes,omitempty"`
}

// TableName sets the explicit table name.
func (SectionAssessment) TableName() string {
	return "assessments"
}
