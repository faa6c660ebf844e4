package models

import "time"

type Review struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Content string  `gorm:"type:text;not null" json:"content"`
	Rating  float64 `gorm:"not null;default:0" json:"rating"`

	// Timestamp is set once at creation (UTC); UpdatedAt is refreshed by
	// gorm on every save.
	Timestamp time.Time `json:"timestamp"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID       uint `gorm:"not null" json:"user_id"`
	RestaurantID uint `gorm:"not null" json:"restaurant_id"`
}

func (Review) TableName() string {
	return "review"
}
