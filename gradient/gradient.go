// Package gradient generates linear RGB color gradients between anchor colors.
//
// A Gradient holds an ordered list of anchor colors and a step layout.
// Colors are generated lazily on first read and cached until
// the next mutation. Steps are distributed either evenly (Balanced) or per
// zone (Weighted), and generated colors can be looked up by step index or by
// percentage.
package gradient

import (
	"fmt"
	"math"
	"sync"

	"github.com/huestep/huestep/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Default anchor colors used by Reset.
const (
	DefaultFrom = "#ffffff"
	DefaultTo   = "#000000"
)

// Gradient is a lazily generated color gradient. It is safe for concurrent use.
type Gradient struct {
	mu sync.RWMutex

	anchors       []string
	steps         Steps
	numberOfSteps int

	dirty     bool
	generated []string
	err       error
}

// New creates a gradient from anchors and steps.
// Nil anchors and zero Steps select the defaults of Reset.
func New(anchors []string, steps Steps) *Gradient {
	g := Default()
	if anchors != nil {
		g.SetColors(anchors...)
	}
	if !steps.IsZero() {
		g.SetSteps(steps)
	}
	return g
}

// Default returns a white to black gradient with DefaultSteps balanced steps.
func Default() *Gradient {
	return new(Gradient).Reset()
}

// Reset restores the default anchors and steps.
func (g *Gradient) Reset() *Gradient {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.anchors = []string{DefaultFrom, DefaultTo}
	g.steps = Balanced(DefaultSteps)
	g.invalidate()
	return g
}

// SetColors replaces the anchor colors.
func (g *Gradient) SetColors(anchors ...string) *Gradient {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.anchors = slices.Clone(anchors)
	g.invalidate()
	return g
}

// SetSteps replaces the step layout.
func (g *Gradient) SetSteps(steps Steps) *Gradient {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.steps = steps
	g.invalidate()
	return g
}

// invalidate recomputes derived state and drops the cache. Callers hold the write lock.
func (g *Gradient) invalidate() {
	g.numberOfSteps = g.steps.numberOfSteps(len(g.anchors))
	g.dirty = true
	g.generated = nil
	g.err = nil
}

// Colors returns the anchor colors as they were set.
func (g *Gradient) Colors() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.anchors)
}

// Steps returns the step layout.
func (g *Gradient) Steps() Steps {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.steps
}

// NumberOfSteps returns the balanced step count, or the sum of the weights
// for weighted gradients.
func (g *Gradient) NumberOfSteps() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.numberOfSteps
}

// IsWeighted reports whether steps are distributed per zone.
func (g *Gradient) IsWeighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.steps.IsWeighted()
}

// Validate reports whether the current configuration can be generated.
func (g *Gradient) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, err := parseAnchors(g.anchors, g.steps)
	return err
}

// GeneratedColors returns every generated color, starting with the first
// anchor and ending with the last.
func (g *Gradient) GeneratedColors() ([]string, error) {
	generated, _, err := g.generate()
	if err != nil {
		return nil, err
	}
	return slices.Clone(generated), nil
}

// Len returns the number of generated colors.
func (g *Gradient) Len() (int, error) {
	generated, _, err := g.generate()
	return len(generated), err
}

// ColorByStep returns the color at step. Steps below zero resolve to the
// first color and steps past the end resolve to the last one.
func (g *Gradient) ColorByStep(step int) (string, error) {
	generated, _, err := g.generate()
	if err != nil {
		return "", err
	}
	return generated[lo.Clamp(step, 0, len(generated)-1)], nil
}

// ColorByPercent maps percent onto floor(percent/100*(NumberOfSteps-1)) and
// returns the color at that step. Percentages at or below 0 return the first
// color and percentages at or above 100 return the last.
func (g *Gradient) ColorByPercent(percent float64) (string, error) {
	generated, numberOfSteps, err := g.generate()
	if err != nil {
		return "", err
	}
	return generated[stepByPercent(percent, numberOfSteps, len(generated))], nil
}

// StepByPercent returns the step ColorByPercent resolves percent to.
func (g *Gradient) StepByPercent(percent float64) (int, error) {
	generated, numberOfSteps, err := g.generate()
	if err != nil {
		return 0, err
	}
	return stepByPercent(percent, numberOfSteps, len(generated)), nil
}

func stepByPercent(percent float64, numberOfSteps, length int) int {
	switch {
	case math.IsNaN(percent) || percent <= 0:
		return 0
	case percent >= 100:
		return length - 1
	}

	step := int(math.Floor(percent / 100 * float64(numberOfSteps-1)))
	return lo.Clamp(step, 0, length-1)
}

// generate fills the cache if a mutation invalidated it and returns it
// together with the number of steps it was generated for.
func (g *Gradient) generate() ([]string, int, error) {
	g.mu.RLock()
	if !g.dirty {
		defer g.mu.RUnlock()
		return g.generated, g.numberOfSteps, g.err
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.dirty {
		g.generated, g.err = build(g.anchors, g.steps)
		g.dirty = false

		if g.err != nil {
			log.Warnf("gradient %v %s: %v", g.anchors, g.steps, g.err)
		} else {
			log.WithFields(log.Fields{
				"anchors":  len(g.anchors),
				"steps":    g.steps.String(),
				"weighted": g.steps.IsWeighted(),
				"colors":   len(g.generated),
			}, "gradient generated")
		}
	}

	return g.generated, g.numberOfSteps, g.err
}

// parseAnchors validates steps against anchors and decodes every anchor.
func parseAnchors(anchors []string, steps Steps) ([]RGB, error) {
	if len(anchors) == 0 {
		return nil, ErrNoAnchors
	}

	if err := steps.validate(len(anchors)); err != nil {
		return nil, err
	}

	parsed := make([]RGB, len(anchors))
	for i, anchor := range anchors {
		c, err := Parse(anchor)
		if err != nil {
			return nil, fmt.Errorf("anchor %d: %w", i, err)
		}
		parsed[i] = c
	}

	return parsed, nil
}

// build generates the full color sequence: the first anchor followed by the
// interpolated colors of each zone in anchor order.
func build(anchors []string, steps Steps) ([]string, error) {
	parsed, err := parseAnchors(anchors, steps)
	if err != nil {
		return nil, err
	}

	first := parsed[0].Hex()

	if len(parsed) == 1 {
		n := 1
		if !steps.IsWeighted() {
			n = steps.effectiveCount(1)
		}
		return lo.Times(n, func(int) string { return first }), nil
	}

	zones := steps.zones(len(parsed))
	generated := make([]string, 0, 1+lo.Sum(zones))
	generated = append(generated, first)

	for i, n := range zones {
		generated = interpolateZone(generated, parsed[i], parsed[i+1], n)
	}

	return generated, nil
}
