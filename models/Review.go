package models

import "time"

// Review is a visitor testimonial. Submissions always start unapproved and
// stay invisible to the public until an admin approves them.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	Approved  bool      `gorm:"default:false;index" json:"approved"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
