package models

import "time"

// Arena represents a bookable facility with a single hourly timeline.
type Arena struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Address       string    `bson:"address" json:"address"`
	City          string    `bson:"city" json:"city"`
	Country       string    `bson:"country" json:"country"`
	Latitude      float64   `bson:"latitude" json:"latitude"`
	Longitude     float64   `bson:"longitude" json:"longitude"`
	PricePerHour  float64   `bson:"price_per_hour" json:"price_per_hour"` // major currency units
	Currency      string    `bson:"currency" json:"currency"`
	ContactEmail  string    `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactNumber string    `bson:"contact_number,omitempty" json:"contact_number,omitempty"`
	CoverImageURL string    `bson:"cover_image_url,omitempty" json:"cover_image_url,omitempty"`
	CreatedBy     string    `bson:"created_by" json:"created_by"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
