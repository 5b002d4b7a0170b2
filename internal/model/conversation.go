package model

import "time"

// ConversationTurn is one persisted (query, response) pair. Turns are append-only.
type ConversationTurn struct {
	ID        string
	UserID    string
	TripID    string // empty when the query had no trip
	Query     string
	Response  string
	AgentUsed string
	Timestamp time.Time
}
