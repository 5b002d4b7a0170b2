package repository

// AppendOptions holds the fields of a new turn.
type AppendOptions struct {
	UserID    string
	TripID    string
	Query     string
	Response  string
	AgentUsed string
}

// ScopeOptions selects turns by exact user, and by trip when TripID is set.
// An empty TripID matches every turn of the user.
type ScopeOptions struct {
	UserID string
	TripID string
}

// Validate checks the scope has a user.
func (o ScopeOptions) Validate() error {
	if o.UserID == "" {
		return ErrMissingUser
	}
	return nil
}

// Validate checks the turn has a user and a query.
func (o AppendOptions) Validate() error {
	if o.UserID == "" {
		return ErrMissingUser
	}
	if o.Query == "" {
		return ErrInvalidTurn
	}
	return nil
}
