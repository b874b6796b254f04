package models

import "errors"

var (
	// ErrValidation marks rejected user input; no state was mutated.
	ErrValidation = errors.New("validation failed")

	// ErrStorage marks a failed read or write against the key-value store.
	ErrStorage = errors.New("storage failure")

	// ErrAlreadyClaimed is returned when a reward was claimed before.
	ErrAlreadyClaimed = errors.New("reward already claimed")

	// ErrNotUnlocked is returned when a reward's threshold has not been reached.
	ErrNotUnlocked = errors.New("reward not unlocked")

	// ErrSyncFailed marks a failed best-effort sync; local state is already
	// committed and must not be rolled back.
	ErrSyncFailed = errors.New("sync failed")
)
