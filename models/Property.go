package models

import "time"

// Property type values.
const (
	PropertyTypeHouse = "HOUSE"
	PropertyTypePlot  = "PLOT"
)

// Property status values.
const (
	PropertyStatusAvailable = "AVAILABLE"
	PropertyStatusSold      = "SOLD"
)

type Property struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Price       float64         `gorm:"not null" json:"price"`
	Location    string          `gorm:"not null;index" json:"location"`
	Type        string          `gorm:"type:varchar(10);default:'HOUSE'" json:"type"` // HOUSE, PLOT
	AreaSqft    int             `gorm:"not null" json:"areaSqft"`
	Bedrooms    int             `gorm:"default:0" json:"bedrooms"` // stored but meaningless for PLOT
	Bathrooms   int             `gorm:"default:0" json:"bathrooms"`
	Description string          `gorm:"type:text" json:"description"`
	PhoneNumber string          `json:"phoneNumber"`
	Status      string          `gorm:"type:varchar(10);default:'AVAILABLE';index" json:"status"` // AVAILABLE, SOLD
	Images      []PropertyImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
