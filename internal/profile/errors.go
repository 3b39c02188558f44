// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package profile

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store operations. Handlers map these to HTTP
// status codes; the store never knows about HTTP.
var (
	// ErrUnknownChallenge is returned when a challenge id does not resolve
	// against the catalog.
	ErrUnknownChallenge = errors.New("unknown challenge")

	// ErrInsufficientBalance is returned when a redemption amount exceeds
	// the wallet balance. The wallet is left untouched.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrOnboardingRequired is returned when personalized content is
	// requested before onboarding answers were submitted.
	ErrOnboardingRequired = errors.New("onboarding not completed")
)

// ValidationError reports a rejected input value. The operation that returned
// it performed no mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
