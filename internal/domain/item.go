package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PricingType string

const (
	PricingStatic        PricingType = "STATIC"
	PricingComplimentary PricingType = "COMPLIMENTARY"
	PricingDiscounted    PricingType = "DISCOUNTED"
	PricingTiered        PricingType = "TIERED"
	PricingDynamic       PricingType = "DYNAMIC"
)

func ParsePricingType(s string) (PricingType, bool) {
	switch t := PricingType(s); t {
	case PricingStatic, PricingComplimentary, PricingDiscounted, PricingTiered, PricingDynamic:
		return t, true
	}
	return "", false
}

// DayCode is a three-letter weekday code as stored in availability day sets.
type DayCode string

const (
	Sunday    DayCode = "SUN"
	Monday    DayCode = "MON"
	Tuesday   DayCode = "TUE"
	Wednesday DayCode = "WED"
	Thursday  DayCode = "THU"
	Friday    DayCode = "FRI"
	Saturday  DayCode = "SAT"
)

var dayCodes = [...]DayCode{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func DayCodeOf(w time.Weekday) DayCode {
	return dayCodes[w]
}

func (d DayCode) Valid() bool {
	for _, c := range dayCodes {
		if c == d {
			return true
		}
	}
	return false
}

// Slot is a configured "HH:MM" interval, end excluded.
type Slot struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

type Availability struct {
	Days  []DayCode `json:"days"`
	Slots []Slot    `json:"slots" validate:"dive"`
}

func (a *Availability) Configured() bool {
	return a != nil && len(a.Days) > 0 && len(a.Slots) > 0
}

func (a *Availability) OpenOn(day DayCode) bool {
	for _, d := range a.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Addon is kept loosely typed: {id, name, price, is_mandatory, groupId?}.
type Addon map[string]any

// Item belongs to exactly one of CategoryID / SubcategoryID.
type Item struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID    *uuid.UUID     `json:"category_id" gorm:"type:uuid;index;uniqueIndex:idx_items_category_name"`
	SubcategoryID *uuid.UUID     `json:"subcategory_id" gorm:"type:uuid;index;uniqueIndex:idx_items_subcategory_name"`
	Name          string         `json:"name" gorm:"not null;uniqueIndex:idx_items_category_name;uniqueIndex:idx_items_subcategory_name"`
	Description   string         `json:"description,omitempty"`
	Image         string         `json:"image,omitempty"`
	IsActive      bool           `json:"is_active" gorm:"not null;default:true;index"`
	PricingType   PricingType    `json:"pricing_type" gorm:"type:varchar(16);not null"`
	PricingConfig map[string]any `json:"pricing_config" gorm:"serializer:json"`
	IsBookable    bool           `json:"is_bookable" gorm:"not null;default:false"`
	Availability  *Availability  `json:"availability,omitempty" gorm:"serializer:json"`
	Addons        []Addon        `json:"addons" gorm:"serializer:json"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// HasSingleParent reports whether exactly one parent reference is set.
func (i *Item) HasSingleParent() bool {
	return (i.CategoryID != nil) != (i.SubcategoryID != nil)
}
