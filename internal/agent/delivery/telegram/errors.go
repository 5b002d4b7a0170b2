package telegram

import "errors"

var (
	errNoSender     = errors.New("message has no sender")
	errBadSignature = errors.New("webhook secret token mismatch")
)
