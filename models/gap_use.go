package models

import (
	"time"
)

// GAPUse is one registered crop/application scenario for a product within a
// country. Use IDs are unique within a product; Position preserves the order
// of uses inside their country block.
type GAPUse struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProductID string `json:"product_id" gorm:"index:idx_gap_uses_product_use,unique;size:64;not null"`
	UseID     string `json:"use_id" gorm:"index:idx_gap_uses_product_use,unique;size:64;not null"`

	CountryCode string `json:"country_code" gorm:"index;size:2;not null"`
	Position    int    `json:"position"`

	Description string `json:"description"`
	Notes       string `json:"notes,omitempty" gorm:"type:text"`
}

// TableName sets the explicit table name.
func (GAPUse) TableName() string {
	return "gap_uses"
}
