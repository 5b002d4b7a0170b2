package repository

import "errors"

var ErrFailedToGet = errors.New("failed to get trip")
