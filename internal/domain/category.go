package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the root of the menu hierarchy.
type Category struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"not null;uniqueIndex"`
	Image         string    `json:"image,omitempty"`
	Description   string    `json:"description,omitempty"`
	TaxApplicable bool      `json:"tax_applicable" gorm:"not null;default:false"`
	TaxPercentage *float64  `json:"tax_percentage,omitempty"`
	IsActive      bool      `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// NormalizeTax drops a stored percentage when tax is not applicable.
func (c *Category) NormalizeTax() {
	if !c.TaxApplicable {
		c.TaxPercentage = nil
	}
}
