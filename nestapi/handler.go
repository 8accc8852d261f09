package nestapi

import (
	"errors"

	"github.com/nestlab/irregularpack/packer"
	"github.com/nestlab/irregularpack/scheduler"
)

// ErrInternal wraps an unexpected failure from the packing core (an
// invariant violation, not a first-class "no position" or "unplaced"
// result). Handle never returns a ValidationError wrapped in ErrInternal
// or vice versa; the two are always distinguishable via IsValidation.
var ErrInternal = errors.New("nestapi: internal packing failure")

// Handle validates req, runs the scheduler, and assembles the wire
// response. The returned error is non-nil only for a ValidationError
// (malformed input) or ErrInternal (an unexpected core failure); a
// well-formed but unsatisfiable request is reported as a normal Response
// with Success true and an empty placement.
func Handle(req Request) (Response, error) {
	pieces, err := toPieces(req)
	if err != nil {
		return Response{}, err
	}

	opts, err := toSchedulerOptions(req)
	if err != nil {
		return Response{}, err
	}

	result, err := scheduler.Run(pieces, opts)
	if err != nil {
		return Response{}, errors.Join(ErrInternal, err)
	}

	return toResponse(result), nil
}

func toResponse(result scheduler.Result) Response {
	bins := make([]BinResponse, len(result.Bins))
	for i, b := range result.Bins {
		bins[i] = BinResponse{
			BinID:              b.ID,
			BinWidth:           b.Width,
			BinHeight:          b.Height,
			PlacedPieces:       toPlacedResponses(b.Placed),
			UnplacedPieces:     toUnplacedResponses(b.Unplaced),
			MaterialEfficiency: round2(b.Efficiency),
			ExecutionTime:      b.ExecutionTime.Seconds(),
			TotalPieces:        b.TotalPieces,
		}
	}

	summary := SummaryResponse{
		TotalBins:           result.Summary.TotalBins,
		TotalPiecesPlaced:   result.Summary.TotalPiecesPlaced,
		TotalPiecesUnplaced: result.Summary.TotalPiecesUnplaced,
		AverageEfficiency:   round2(result.Summary.AverageEfficiency),
		TotalExecutionTime:  result.Summary.TotalExecutionTime.Seconds(),
		BinEfficiencies:     roundAll(result.Summary.BinEfficiencies),
	}

	message := "ok"
	if summary.TotalPiecesPlaced == 0 {
		message = "no piece could be placed in a bin of the requested dimensions"
	} else if summary.TotalPiecesUnplaced > 0 {
		message = "some pieces could not be placed"
	}

	return Response{Success: true, Bins: bins, Summary: summary, Message: message}
}

func toPlacedResponses(placed []packer.Placement) []PlacedPieceResponse {
	out := make([]PlacedPieceResponse, len(placed))
	for i, p := range placed {
		out[i] = PlacedPieceResponse{
			ID:         p.ID,
			OriginalID: p.OriginalID,
			Points:     toPointResponses(p.Polygon),
			X:          p.X,
			Y:          p.Y,
			Rotation:   p.Rotation,
			Area:       round2(p.Area),
		}
	}
	return out
}

func toUnplacedResponses(unplaced []packer.Unplaced) []UnplacedPieceResponse {
	out := make([]UnplacedPieceResponse, len(unplaced))
	for i, u := range unplaced {
		out[i] = UnplacedPieceResponse{
			OriginalID: u.OriginalID,
			CopyNumber: u.CopyNumber,
			Points:     toPointResponses(u.Polygon),
		}
	}
	return out
}

func toPointResponses(points []packer.Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = round2(v)
	}
	return out
}
