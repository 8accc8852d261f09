package scheduler

import (
	"time"

	"github.com/nestlab/irregularpack/packer"
)

// Run packs pieces across as many bins as necessary. Each round calls
// packer.Pack on the current batch; a round that places at least one piece
// opens a new Bin and the next batch becomes that round's unplaced pieces,
// regrouped by original identifier. A round that places nothing ends the
// loop and its batch is reported as the run's unplaceable leftover.
func Run(pieces []packer.Piece, opts Options) (Result, error) {
	var bins []Bin
	remaining := pieces
	binID := 1

	for len(remaining) > 0 {
		if opts.MaxBins > 0 && binID > opts.MaxBins {
			break
		}

		start := time.Now()
		res, err := packer.Pack(remaining, opts.Options)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, err
		}

		if len(res.Placed) == 0 {
			break
		}

		bins = append(bins, Bin{
			ID:            binID,
			Width:         opts.BinWidth,
			Height:        opts.BinHeight,
			Placed:        res.Placed,
			Unplaced:      nil,
			Efficiency:    efficiency(res.Placed, opts.BinWidth, opts.BinHeight),
			ExecutionTime: elapsed,
			TotalPieces:   len(res.Placed),
		})

		remaining = regroup(res.Unplaced)
		binID++
	}

	if len(remaining) > 0 {
		leftover := expandToUnplaced(remaining)
		if len(bins) > 0 {
			bins[len(bins)-1].Unplaced = leftover
		} else {
			bins = append(bins, Bin{
				ID:       1,
				Width:    opts.BinWidth,
				Height:   opts.BinHeight,
				Unplaced: leftover,
			})
		}
	}

	return Result{Bins: bins, Summary: summarize(bins)}, nil
}

// efficiency computes the percentage of bin area covered by placed pieces.
func efficiency(placed []packer.Placement, width, height float64) float64 {
	area := width * height
	if area <= 0 {
		return 0
	}
	used := 0.0
	for _, p := range placed {
		used += p.Area
	}
	return used / area * 100
}

// regroup turns a packer.Unplaced list back into Pieces for the next bin,
// grouping copies by OriginalID and counting quantity.
func regroup(unplaced []packer.Unplaced) []packer.Piece {
	if len(unplaced) == 0 {
		return nil
	}

	order := make([]string, 0)
	byID := make(map[string]*packer.Piece)
	for _, u := range unplaced {
		p, ok := byID[u.OriginalID]
		if !ok {
			p = &packer.Piece{ID: u.OriginalID, Polygon: u.Polygon, Quantity: 0}
			byID[u.OriginalID] = p
			order = append(order, u.OriginalID)
		}
		p.Quantity++
	}

	pieces := make([]packer.Piece, len(order))
	for i, id := range order {
		pieces[i] = *byID[id]
	}
	return pieces
}

// expandToUnplaced converts a Piece batch (each representing `quantity`
// identical copies) into individual Unplaced entries, one per copy.
func expandToUnplaced(pieces []packer.Piece) []packer.Unplaced {
	var out []packer.Unplaced
	for _, p := range pieces {
		for n := 1; n <= p.Quantity; n++ {
			out = append(out, packer.Unplaced{OriginalID: p.ID, CopyNumber: n, Polygon: p.Polygon})
		}
	}
	return out
}

func summarize(bins []Bin) Summary {
	if len(bins) == 0 {
		return Summary{}
	}

	s := Summary{TotalBins: len(bins), BinEfficiencies: make([]float64, len(bins))}
	for i, b := range bins {
		s.TotalPiecesPlaced += b.TotalPieces
		s.TotalPiecesUnplaced += len(b.Unplaced)
		s.AverageEfficiency += b.Efficiency
		s.TotalExecutionTime += b.ExecutionTime
		s.BinEfficiencies[i] = b.Efficiency
	}
	s.AverageEfficiency /= float64(len(bins))
	return s
}
