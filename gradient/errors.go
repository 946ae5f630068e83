package gradient

import "errors"

var (
	// ErrInvalidColor is returned for anchors that are not #rrggbb or #rgb hex strings.
	ErrInvalidColor = errors.New("invalid color format")

	// ErrNoAnchors is returned when a gradient has no anchor colors at all.
	ErrNoAnchors = errors.New("gradient requires at least one anchor color")

	// ErrStepSpecMismatch is returned when the number of weights differs from the number of zones.
	ErrStepSpecMismatch = errors.New("weighted steps do not match anchor zones")

	// ErrNegativeSteps is returned for step counts below zero.
	ErrNegativeSteps = errors.New("step count must not be negative")

	// ErrEmptyZone is returned for a weighted zone of zero steps, which would skip its closing anchor.
	ErrEmptyZone = errors.New("weighted zone must have at least one step")
)
