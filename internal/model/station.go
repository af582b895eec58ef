package model

import "time"

// Station is a charging site stored in the charging_stations collection.
type Station struct {
	Name           string    `firestore:"name" json:"name" yaml:"name"`
	Address        string    `firestore:"address" json:"address" yaml:"address"`
	Latitude       float64   `firestore:"latitude" json:"latitude" yaml:"latitude"`
	Longitude      float64   `firestore:"longitude" json:"longitude" yaml:"longitude"`
	TotalSpots     int       `firestore:"total_spots" json:"total_spots" yaml:"total_spots"`
	AvailableSpots int       `firestore:"available_spots" json:"available_spots" yaml:"available_spots"`
	PowerOutput    string    `firestore:"power_output" json:"power_output" yaml:"power_output"` // display string, e.g. "Up to 50 kW"
	PricePerKWh    float64   `firestore:"price_per_kwh" json:"price_per_kwh" yaml:"price_per_kwh"`
	IsAvailable    bool      `firestore:"is_available" json:"is_available" yaml:"is_available"`
	CreatedAt      time.Time `firestore:"created_at,serverTimestamp" json:"created_at" yaml:"-"`
}
