package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxMode is the subcategory's tax override setting.
type TaxMode string

const (
	TaxApplicable    TaxMode = "APPLICABLE"
	TaxNotApplicable TaxMode = "NOT_APPLICABLE"
	TaxInherit       TaxMode = "INHERIT"
)

func (m TaxMode) Valid() bool {
	switch m {
	case TaxApplicable, TaxNotApplicable, TaxInherit:
		return true
	}
	return false
}

// TaxModeFromBool maps the API's nullable tax_applicable flag (null means inherit).
func TaxModeFromBool(v *bool) TaxMode {
	switch {
	case v == nil:
		return TaxInherit
	case *v:
		return TaxApplicable
	default:
		return TaxNotApplicable
	}
}

type Subcategory struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID    uuid.UUID `json:"category_id" gorm:"type:uuid;not null;uniqueIndex:idx_subcategories_category_name"`
	Name          string    `json:"name" gorm:"not null;uniqueIndex:idx_subcategories_category_name"`
	Image         string    `json:"image,omitempty"`
	Description   string    `json:"description,omitempty"`
	TaxMode       TaxMode   `json:"tax_mode" gorm:"type:varchar(16);not null;default:'INHERIT'"`
	TaxPercentage *float64  `json:"tax_percentage"`
	IsActive      bool      `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Subcategory) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// NormalizeTax keeps a percentage only for an explicit APPLICABLE override.
func (s *Subcategory) NormalizeTax() {
	if s.TaxMode == "" {
		s.TaxMode = TaxInherit
	}
	if s.TaxMode != TaxApplicable {
		s.TaxPercentage = nil
	}
}
