package scheduler

import (
	"time"

	"github.com/nestlab/irregularpack/packer"
)

// Options configures a scheduler run. Embedding packer.Options keeps every
// bin in the run configured identically.
type Options struct {
	packer.Options

	// MaxBins caps the number of bins the scheduler will open. Zero means
	// unlimited.
	MaxBins int
}

// Bin is one round of the scheduler: the pieces placed in it, the pieces
// that ended the run unplaceable (only non-empty on the last bin of the
// run), and its own efficiency and timing.
type Bin struct {
	ID            int
	Width         float64
	Height        float64
	Placed        []packer.Placement
	Unplaced      []packer.Unplaced
	Efficiency    float64
	ExecutionTime time.Duration
	TotalPieces   int
}

// Summary aggregates a run's bins.
type Summary struct {
	TotalBins           int
	TotalPiecesPlaced   int
	TotalPiecesUnplaced int
	AverageEfficiency   float64
	TotalExecutionTime  time.Duration
	BinEfficiencies     []float64
}

// Result is the outcome of one scheduler run.
type Result struct {
	Bins    []Bin
	Summary Summary
}
