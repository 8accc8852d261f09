package packer

import "github.com/nestlab/irregularpack/oracle"

// Pack runs the single-bin packer: it prepares pieces (normalize,
// orientation table, quantity expansion, largest-first sort) and then
// places them with the strategy named in opts, returning every piece that
// found a position and every piece that did not.
func Pack(pieces []Piece, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	units, err := prepare(pieces, opts)
	if err != nil {
		return Result{}, err
	}

	container := oracle.Container{Width: opts.BinWidth, Height: opts.BinHeight}

	var (
		placed        []Placement
		unplacedUnits []unit
	)
	if opts.Strategy == StrategyGenetic {
		placed, unplacedUnits = runGenetic(units, container, opts.Strategy.oracleStrategy(), opts.Seed, opts.Margin)
	} else {
		placed, unplacedUnits = placeInOrder(units, container, opts.Strategy.oracleStrategy(), opts.Margin)
	}

	unplaced := make([]Unplaced, len(unplacedUnits))
	for i, u := range unplacedUnits {
		unplaced[i] = Unplaced{
			OriginalID: u.originalID,
			CopyNumber: u.copyNumber,
			Polygon:    u.original,
		}
	}

	return Result{Placed: placed, Unplaced: unplaced}, nil
}
