package domain

import "errors"

// Sentinel errors returned by ParseSignal. Check them with errors.Is.
var (
	ErrEmptySignal    = errors.New("empty signal")
	ErrUnknownVariant = errors.New("unknown signal variant")
	ErrInvalidPayload = errors.New("invalid signal payload")
)
