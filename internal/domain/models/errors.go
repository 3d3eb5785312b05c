package models

import "errors"

// Typed outcomes returned across component boundaries. Only the HTTP layer
// translates these into display messages and status codes.
var (
	// ErrTextTooShort rejects input below the configured minimum length.
	// Recoverable locally once the input is fixed.
	ErrTextTooShort = errors.New("text is below the minimum length")

	// ErrQuotaExhausted rejects a submission once the period quota for the
	// derived tier is used up. Recoverable only via a plan upgrade.
	ErrQuotaExhausted = errors.New("submission quota exhausted for the current billing period")

	// ErrScoringFailed marks a transient scorer failure. Nothing is
	// persisted, so retrying the whole submit call is safe.
	ErrScoringFailed = errors.New("scoring failed")

	// ErrPersistenceFailed marks a transient store failure at the commit
	// point. Nothing is persisted, so retrying the whole submit call is safe.
	ErrPersistenceFailed = errors.New("failed to persist submission")

	ErrNotFound  = errors.New("submission not found")
	ErrForbidden = errors.New("submission belongs to a different user")
)
