package model

// Firestore collection names written by the seeder.
const (
	CollectionStations     = "charging_stations"
	CollectionChargers     = "chargers"
	CollectionUsers        = "users"
	CollectionTransactions = "transactions"
)
