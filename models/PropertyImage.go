package models

import "time"

// PropertyImage is owned exclusively by one Property. Rows are created and
// deleted alongside the parent; an image never outlives its property.
type PropertyImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"propertyId"`
	ImageURL   string    `gorm:"type:text;not null" json:"imageUrl"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}
