package maze

import "strconv"

// Cost is a flood-fill potential. It is an 8-bit unsigned value whose
// arithmetic saturates at 0 and MaxCost instead of wrapping; the inversion
// base and the unknown sentinel below only make sense inside [0, 255].
type Cost uint8

const (
	MaxCost Cost = 255

	// UnknownCost marks a cell the flood-fill never touched during a run.
	UnknownCost Cost = 200
	// InversionBase is subtracted from when a reverse path wins the
	// comparison: path cells become InversionBase - cost.
	InversionBase Cost = 100

	DeadEndPenalty Cost = 12
	VisitIncrement Cost = 3
	RelaxStep      Cost = 3
	// relaxMargin is how far above its seed distance a vacated cell may
	// sit before backtrack relaxation lowers it.
	relaxMargin Cost = 6
	// reverseCorrection is taken off the reverse virtual pass length.
	reverseCorrection Cost = 4
)

// Add returns c+n clamped to MaxCost.
func (c Cost) Add(n Cost) Cost {
	if s := c + n; s >= c {
		return s
	}
	return MaxCost
}

// Sub returns c-n clamped to 0.
func (c Cost) Sub(n Cost) Cost {
	if n > c {
		return 0
	}
	return c - n
}

func (c Cost) String() string {
	return strconv.Itoa(int(c))
}

// costOf converts a distance to a Cost, saturating.
func costOf(n int) Cost {
	switch {
	case n < 0:
		return 0
	case n > int(MaxCost):
		return MaxCost
	default:
		return Cost(n)
	}
}
