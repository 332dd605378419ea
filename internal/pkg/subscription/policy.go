package subscription

import (
	"fmt"
	"strconv"

	"github.com/yourmove-ai/admin-dashboard/internal/pkg/env"
)

// DefaultMaxGrantDays matches the bound the production dashboard puts on its
// day-count inputs.
const DefaultMaxGrantDays = 100000

// Policy carries input bounds enforced at the operator-facing layer. The
// core operations themselves only require positive day counts.
type Policy struct {
	MaxGrantDays int
}

// PolicyFromEnv reads ACCESS_MAX_DAYS, falling back to the default on a
// missing or unusable value.
func PolicyFromEnv() Policy {
	maxDays := DefaultMaxGrantDays
	if v, err := strconv.Atoi(env.GetEnv("ACCESS_MAX_DAYS", "")); err == nil && v > 0 {
		maxDays = v
	}
	return Policy{MaxGrantDays: maxDays}
}

// ValidateDays checks an operator-supplied day count against the policy.
func (p Policy) ValidateDays(days int) error {
	if days < 1 {
		return fmt.Errorf("day count must be at least 1")
	}
	if days > p.MaxGrantDays {
		return fmt.Errorf("day count must not exceed %d", p.MaxGrantDays)
	}
	return nil
}
