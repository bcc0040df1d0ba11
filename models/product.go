package models

import (
	"time"
)

// ProductType classifies a regulated plant protection product.
type ProductType string

const (
	TypeHerbicide    ProductType = "herbicide"
	TypeInsecticide  ProductType = "insecticide"
	TypeFungicide    ProductType = "fungicide"
	TypeGrowthReg    ProductType = "plant_growth_regulator"
	TypeMolluscicide ProductType = "molluscicide"
	TypeOther        ProductType = "other"
)

// ApprovalStatus tracks where a product sits in the approval process.
type ApprovalStatus string

const (
	StatusPending     ApprovalStatus = "pending"
	StatusApproved    ApprovalStatus = "approved"
	StatusNotApproved ApprovalStatus = "not_approved"
	StatusWithdrawn   ApprovalStatus = "withdrawn"
)

// Product is a regulated substance/product under assessment. The ID is a
// stable slug so seed data and clients can address the aggregate directly.
type Product struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name            string      `json:"name" gorm:"not null"`
	ActiveSubstance string      `json:"active_substance" gorm:"index"`
	ProductType     ProductType `json:"product_type" gorm:"index"`
	Programme       string      `json:"programme,omitempty" gorm:"index"`
	SubmissionType  string      `json:"submission_type,omitempty"`

	ApprovalStatus ApprovalStatus `json:"approval_status" gorm:"index;default:'pending'"`
	SubmissionDate *time.Time     `json:"submission_date,omitempty"`
	DecisionDate   *time.Time     `json:"decision_date,omitempty"`

	Conclusion string `json:"conclusion,omitempty" gorm:"type:text"`

	// Owned collections, loaded on aggregate fetch only.
	Assessments []SectionAssessment `json:"assessments,omitempty" gorm:"foreignKey:ProductID"`
	Uses        []GAPUse            `json:"uses,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName sets the explicit table name.
func (Product) TableName() string {
	return "products"
}
