package model

import "time"

// Trip is a read-only snapshot of a user's trip.
type Trip struct {
	ID                  string
	UserID              string
	Destination         string
	StartDate           time.Time
	EndDate             time.Time
	Budget              float64
	Interests           []string
	TravelStyle         string
	SpecialRequirements string
}

// OwnedBy reports whether userID owns the trip.
func (t Trip) OwnedBy(userID string) bool {
	return t.ID != "" && userID != "" && t.UserID == userID
}
