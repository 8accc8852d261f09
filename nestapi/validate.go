package nestapi

import (
	"strings"

	"github.com/nestlab/irregularpack/packer"
	"github.com/nestlab/irregularpack/scheduler"
)

// resolveStrategy maps the algorithm/strategy wire tag to a packer
// strategy, accepting both "genetic" and "genetic_algorithm".
func resolveStrategy(tag string) (packer.Strategy, bool) {
	switch strings.ToLower(tag) {
	case "bottom_left":
		return packer.StrategyBottomLeft, true
	case "best_fit":
		return packer.StrategyBestFit, true
	case "genetic", "genetic_algorithm":
		return packer.StrategyGenetic, true
	default:
		return 0, false
	}
}

// rotationAngles resolves rotation_angles, falling back to expanding
// rotation_step into a table of angles 0, step, 2*step, … < 360 when
// rotation_angles was not supplied.
func rotationAngles(req Request) []int {
	if len(req.RotationAngles) > 0 {
		return req.RotationAngles
	}
	if req.RotationStep > 0 {
		var angles []int
		for a := 0.0; a < 360; a += req.RotationStep {
			angles = append(angles, int(a))
		}
		return angles
	}
	return nil
}

// toPieces validates and converts the request's pieces into packer.Piece
// values.
func toPieces(req Request) ([]packer.Piece, error) {
	if len(req.Pieces) == 0 {
		return nil, errNoPieces
	}

	seen := make(map[string]bool, len(req.Pieces))
	pieces := make([]packer.Piece, len(req.Pieces))
	for i, p := range req.Pieces {
		if len(p.Points) < 3 {
			return nil, errDegeneratePiece
		}
		if p.Quantity < 1 {
			return nil, errNonPositiveQty
		}
		if seen[p.ID] {
			return nil, errDuplicatePieceID
		}
		seen[p.ID] = true

		poly := make([]packer.Point, len(p.Points))
		for j, pt := range p.Points {
			poly[j] = packer.Point{X: pt.X, Y: pt.Y}
		}
		pieces[i] = packer.Piece{ID: p.ID, Polygon: poly, Quantity: p.Quantity}
	}
	return pieces, nil
}

// toSchedulerOptions validates and converts the request's configuration
// into scheduler.Options.
func toSchedulerOptions(req Request) (scheduler.Options, error) {
	if req.BinWidth <= 0 || req.BinHeight <= 0 {
		return scheduler.Options{}, errNonPositiveBin
	}
	if req.Margin < 0 {
		return scheduler.Options{}, errNegativeMargin
	}

	strategy, ok := resolveStrategy(req.strategyTag())
	if !ok {
		return scheduler.Options{}, errUnknownStrategy
	}

	angles := rotationAngles(req)
	for _, a := range angles {
		if a < 0 || a >= 360 {
			return scheduler.Options{}, errRotationAngle
		}
	}

	return scheduler.Options{
		Options: packer.Options{
			BinWidth:       req.BinWidth,
			BinHeight:      req.BinHeight,
			AllowRotation:  req.allowRotation(),
			RotationAngles: angles,
			Margin:         req.Margin,
			Strategy:       strategy,
		},
		MaxBins: req.MaxBins,
	}, nil
}
