package model

import "time"

// User represents an app user in the users collection
type User struct {
	FirstName   string    `firestore:"first_name" json:"first_name" yaml:"first_name"`
	LastName    string    `firestore:"last_name" json:"last_name" yaml:"last_name"`
	Email       string    `firestore:"email" json:"email" yaml:"email"`
	PhoneNumber string    `firestore:"phone_number" json:"phone_number" yaml:"phone_number"`
	CreatedAt   time.Time `firestore:"created_at,serverTimestamp" json:"created_at" yaml:"-"`
}
