package model

import "time"

// Charger is a single connector belonging to a Station.
type Charger struct {
	StationID   string    `firestore:"station_id" json:"station_id" yaml:"-"`
	Name        string    `firestore:"name" json:"name" yaml:"name"`
	Type        string    `firestore:"type" json:"type" yaml:"type"`
	Power       float64   `firestore:"power" json:"power" yaml:"power"` // kW
	PricePerKWh float64   `firestore:"price_per_kwh" json:"price_per_kwh" yaml:"-"`
	IsAvailable bool      `firestore:"is_available" json:"is_available" yaml:"is_available"`
	CreatedAt   time.Time `firestore:"created_at,serverTimestamp" json:"created_at" yaml:"-"`
}
