package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// DefaultSteps is the balanced step count used when none is given.
const DefaultSteps = 10

// Steps describes how a gradient distributes its colors across the zones
// between anchors. It is either Balanced (a single total count) or Weighted
// (an explicit count per zone).
type Steps struct {
	count    int
	weights  []int
	weighted bool
}

// Balanced spreads count steps evenly over all zones; the last zone absorbs
// any remainder. A count of zero selects DefaultSteps.
func Balanced(count int) Steps {
	if count == 0 {
		count = DefaultSteps
	}
	return Steps{count: count}
}

// Weighted assigns weights[i] interpolated colors to zone i.
// There must be exactly one weight per pair of adjacent anchors.
func Weighted(weights ...int) Steps {
	return Steps{weights: slices.Clone(weights), weighted: true}
}

// IsWeighted reports whether the steps were created with Weighted.
func (s Steps) IsWeighted() bool {
	return s.weighted
}

// IsZero reports whether s is the zero value, which behaves as Balanced(DefaultSteps).
func (s Steps) IsZero() bool {
	return !s.weighted && s.count == 0
}

// Count returns the balanced total, or zero for weighted steps.
func (s Steps) Count() int {
	if s.weighted {
		return 0
	}
	if s.count == 0 {
		return DefaultSteps
	}
	return s.count
}

// Weights returns a copy of the per-zone weights, or nil for balanced steps.
func (s Steps) Weights() []int {
	if !s.weighted {
		return nil
	}
	return slices.Clone(s.weights)
}

// Total returns the balanced count or the sum of all weights.
func (s Steps) Total() int {
	if s.weighted {
		return lo.Sum(s.weights)
	}
	return s.Count()
}

// String renders balanced steps as "40" and weighted steps as "[20,40,60]".
func (s Steps) String() string {
	if !s.weighted {
		return strconv.Itoa(s.Count())
	}

	parts := lo.Map(s.weights, func(w int, _ int) string {
		return strconv.Itoa(w)
	})
	return "[" + strings.Join(parts, ",") + "]"
}

// MarshalText implements encoding.TextMarshaler.
func (s Steps) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Steps) UnmarshalText(text []byte) error {
	parsed, err := ParseSteps(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSteps reads the textual form produced by String.
// A bare integer is balanced; a comma separated list, optionally wrapped in
// brackets, is weighted. An empty string yields the default.
func ParseSteps(text string) (Steps, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Balanced(0), nil
	}

	bracketed := strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]")
	if !bracketed && !strings.Contains(text, ",") {
		count, err := strconv.Atoi(text)
		if err != nil {
			return Steps{}, fmt.Errorf("parse steps %q: %w", text, err)
		}
		return Balanced(count), nil
	}

	text = strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
	if strings.TrimSpace(text) == "" {
		return Weighted(), nil
	}

	var weights []int
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		w, err := strconv.Atoi(field)
		if err != nil {
			return Steps{}, fmt.Errorf("parse steps %q: %w", text, err)
		}
		weights = append(weights, w)
	}

	return Weighted(weights...), nil
}

// validate checks the steps against the number of anchors they will be applied to.
func (s Steps) validate(anchors int) error {
	if !s.weighted {
		if s.count < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeSteps, s.count)
		}
		return nil
	}

	for i, w := range s.weights {
		if w < 0 {
			return fmt.Errorf("%w: zone %d has %d", ErrNegativeSteps, i, w)
		}
		if w == 0 {
			return fmt.Errorf("%w: zone %d", ErrEmptyZone, i)
		}
	}

	if zones := anchors - 1; len(s.weights) != zones {
		return fmt.Errorf("%w: %d weights for %d zones", ErrStepSpecMismatch, len(s.weights), zones)
	}

	return nil
}

// effectiveCount is the balanced total actually generated for the given
// number of anchors. Every anchor needs a slot, so smaller counts are raised.
func (s Steps) effectiveCount(anchors int) int {
	return max(s.Count(), anchors)
}

// numberOfSteps returns the highest step a caller can address meaningfully.
func (s Steps) numberOfSteps(anchors int) int {
	if s.weighted {
		return s.Total()
	}
	return s.effectiveCount(anchors)
}

// zones returns how many interpolated colors each zone receives.
func (s Steps) zones(anchors int) []int {
	if s.weighted {
		return slices.Clone(s.weights)
	}

	zones := anchors - 1
	if zones < 1 {
		return nil
	}

	remaining := s.effectiveCount(anchors) - anchors
	perZone := remaining/zones + 1

	out := make([]int, zones)
	for i := range out {
		out[i] = perZone
	}
	out[zones-1] += remaining % zones

	return out
}
