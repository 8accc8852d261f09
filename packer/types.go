package packer

import "github.com/nestlab/irregularpack/oracle"

// Strategy selects how a single bin is packed.
type Strategy int

const (
	// StrategyBottomLeft orders pieces largest-first and places each with
	// the oracle's bottom-left scoring.
	StrategyBottomLeft Strategy = iota

	// StrategyBestFit mirrors StrategyBottomLeft with the oracle's best-fit
	// scoring.
	StrategyBestFit

	// StrategyGenetic searches over piece orderings and per-piece
	// orientations with a genetic algorithm, scoring individuals by the
	// material efficiency their greedy placement achieves.
	StrategyGenetic
)

// String renders the strategy's wire tag.
func (s Strategy) String() string {
	switch s {
	case StrategyBottomLeft:
		return "bottom_left"
	case StrategyBestFit:
		return "best_fit"
	case StrategyGenetic:
		return "genetic"
	default:
		return "unknown"
	}
}

// oracleStrategy maps a packer strategy to the oracle scoring it drives.
// StrategyGenetic always scores its internal greedy evaluations bottom-left;
// the search dimension genetic adds is ordering and orientation, not scoring.
func (s Strategy) oracleStrategy() oracle.Strategy {
	if s == StrategyBestFit {
		return oracle.StrategyBestFit
	}
	return oracle.StrategyBottomLeft
}

// DefaultRotationAngles is the orientation table used when Options.
// RotationAngles is empty and AllowRotation is true.
var DefaultRotationAngles = []int{0, 90, 180, 270}

// Options configures a single Pack call.
type Options struct {
	BinWidth       float64
	BinHeight      float64
	AllowRotation  bool
	RotationAngles []int
	Margin         float64
	Strategy       Strategy

	// Seed drives the genetic algorithm's RNG. Seed==0 selects a fixed
	// default stream, matching every other deterministic-by-default
	// strategy in this module.
	Seed int64
}

// Validate reports a non-nil error when Options describes an ill-posed
// call: a non-positive bin dimension, a rotation angle outside [0, 360), or
// a negative margin.
func (o Options) Validate() error {
	if o.BinWidth <= 0 || o.BinHeight <= 0 {
		return ErrNonPositiveBin
	}
	if o.Margin < 0 {
		return ErrNegativeMargin
	}
	for _, a := range o.RotationAngles {
		if a < 0 || a >= 360 {
			return ErrRotationAngleOutOfRange
		}
	}
	return nil
}

// rotationAngles resolves the effective orientation-angle table.
func (o Options) rotationAngles() []int {
	if !o.AllowRotation {
		return []int{0}
	}
	if len(o.RotationAngles) == 0 {
		return DefaultRotationAngles
	}
	return o.RotationAngles
}

// Piece is one input entry: quantity identical copies of polygon, requested
// under id.
type Piece struct {
	ID       string
	Polygon  []Point
	Quantity int
}

// Point mirrors geom.Point so packer's public surface does not force
// callers to import the geom package for simple construction. Conversion is
// a straight field copy.
type Point struct {
	X, Y float64
}

// Orientation is one entry of an expanded piece's orientation table: the
// rotated-then-normalized polygon at Rotation degrees, and its area (equal
// across every orientation of the same piece, since rotation preserves
// area).
type Orientation struct {
	Rotation int
	Polygon  []Point
	Area     float64
}

// Placement is one piece placed inside a bin.
type Placement struct {
	ID         string
	OriginalID string
	CopyNumber int
	Polygon    []Point
	X, Y       float64
	Rotation   int
	Area       float64
}

// Unplaced is a piece copy that found no legal position. It retains enough
// of the original request geometry for the scheduler to regroup it into the
// next bin's batch.
type Unplaced struct {
	OriginalID string
	CopyNumber int
	Polygon    []Point
}

// Result is the outcome of one Pack call.
type Result struct {
	Placed   []Placement
	Unplaced []Unplaced
}
