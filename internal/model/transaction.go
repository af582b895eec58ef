package model

import "time"

const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction is a wallet movement. UserID is not checked against the
// users collection.
type Transaction struct {
	UserID          string    `firestore:"user_id" json:"user_id" yaml:"user_id"`
	Amount          float64   `firestore:"amount" json:"amount" yaml:"amount"`
	TransactionType string    `firestore:"transaction_type" json:"transaction_type" yaml:"transaction_type"`
	Description     string    `firestore:"description" json:"description" yaml:"description"`
	Status          string    `firestore:"status" json:"status" yaml:"status"`
	CreatedAt       time.Time `firestore:"created_at,serverTimestamp" json:"created_at" yaml:"-"`
}
