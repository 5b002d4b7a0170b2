package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert turn")
	ErrFailedToList   = errors.New("failed to list turns")
	ErrFailedToDelete = errors.New("failed to delete turns")
	ErrMissingUser    = errors.New("user id is required")
	ErrInvalidTurn    = errors.New("turn query is required")
)
