package domain

import "time"

// Client represents a client in the trainer's roster.
// The roster is an upstream collaborator of the booking core: sessions
// reference clients by id, the core never mutates client profiles.
type Client struct {
	ID        string
	Name      string
	Contact   string
	Goal      string
	StartDate time.Time
	HeightCm  *int

	// Progress записи измерений состава тела в хронологическом порядке
	Progress []ProgressEntry

	CreatedAt time.Time
}

// ProgressEntry одна запись прогресса клиента
type ProgressEntry struct {
	Date         time.Time
	WeightKg     float64
	BodyFatPct   *float64
	MuscleMassKg *float64
}
