// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates m < 1 or n < 1.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: at least one supply and one demand node required")

// ErrNeedRandSource indicates that no *rand.Rand was configured
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRange indicates a quantity range that cannot produce positive
// quantities, or a cost range that cannot produce non-negative costs.
var ErrInvalidRange = errors.New("builder: invalid range")

// builderErrorf attaches the method name to a sentinel.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
