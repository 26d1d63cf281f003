package models

import "time"

// Booking is the persisted record for a confirmed-or-pending job.
// TotalPrice is always the server-computed figure; clients never write it.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Reference string `gorm:"size:40;uniqueIndex;not null" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Email        string `gorm:"size:100" json:"email"`
	Phone        string `gorm:"size:20" json:"phone"`

	ServiceID string   `gorm:"size:40;not null" json:"service_id"`
	AddonIDs  []string `gorm:"serializer:json;type:text" json:"addon_ids"`

	TotalPrice int `json:"total_price"`

	Address      string `gorm:"size:255" json:"address"`
	Neighborhood string `gorm:"size:60" json:"neighborhood"`

	Date     string `gorm:"size:10" json:"date"`
	TimeSlot string `gorm:"size:10" json:"time_slot"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
