package packer_test

import (
	"testing"

	"github.com/nestlab/irregularpack/packer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectPoints(w, h float64) []packer.Point {
	return []packer.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}

func TestPack_SingleRectangleFits(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(10, 10), Quantity: 1}}
	opts := packer.Options{BinWidth: 20, BinHeight: 20, Strategy: packer.StrategyBottomLeft}

	res, err := packer.Pack(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Placed, 1)
	assert.Empty(t, res.Unplaced)
	assert.Equal(t, 0.0, res.Placed[0].X)
	assert.Equal(t, 0.0, res.Placed[0].Y)
	assert.Equal(t, 0, res.Placed[0].Rotation)
}

func TestPack_TwoRectanglesSideBySide(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(10, 10), Quantity: 2}}
	opts := packer.Options{BinWidth: 25, BinHeight: 10, Strategy: packer.StrategyBottomLeft}

	res, err := packer.Pack(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Placed, 2)
	assert.Empty(t, res.Unplaced)

	var xs []float64
	for _, p := range res.Placed {
		xs = append(xs, p.X)
	}
	assert.ElementsMatch(t, []float64{0, 10}, xs)
}

func TestPack_UnplaceablePiece(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(100, 100), Quantity: 1}}
	opts := packer.Options{BinWidth: 50, BinHeight: 50, Strategy: packer.StrategyBottomLeft}

	res, err := packer.Pack(pieces, opts)
	require.NoError(t, err)
	assert.Empty(t, res.Placed)
	require.Len(t, res.Unplaced, 1)
	assert.Equal(t, "a", res.Unplaced[0].OriginalID)
	assert.Equal(t, 1, res.Unplaced[0].CopyNumber)
}

func TestPack_RotationRequired(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(30, 5), Quantity: 1}}
	opts := packer.Options{
		BinWidth: 10, BinHeight: 30,
		AllowRotation: true,
		Strategy:      packer.StrategyBottomLeft,
	}

	res, err := packer.Pack(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Placed, 1)
	assert.Contains(t, []int{90, 270}, res.Placed[0].Rotation)
}

func TestPack_MarginKeepsPiecesApart(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(10, 10), Quantity: 2}}
	opts := packer.Options{BinWidth: 25, BinHeight: 10, Strategy: packer.StrategyBottomLeft, Margin: 2}

	res, err := packer.Pack(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Placed, 2)

	dx := res.Placed[1].X - res.Placed[0].X
	if dx < 0 {
		dx = -dx
	}
	assert.GreaterOrEqual(t, dx, 12.0, "margin must push the second piece at least 2 units clear of the first")
}

func TestPack_DegeneratePieceRejected(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: []packer.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, Quantity: 1}}
	_, err := packer.Pack(pieces, packer.Options{BinWidth: 10, BinHeight: 10})
	assert.Error(t, err)
}

func TestPack_DuplicateIDRejected(t *testing.T) {
	pieces := []packer.Piece{
		{ID: "a", Polygon: rectPoints(1, 1), Quantity: 1},
		{ID: "a", Polygon: rectPoints(1, 1), Quantity: 1},
	}
	_, err := packer.Pack(pieces, packer.Options{BinWidth: 10, BinHeight: 10})
	assert.Error(t, err)
}

func TestPack_Genetic_Deterministic(t *testing.T) {
	pieces := []packer.Piece{
		{ID: "a", Polygon: rectPoints(10, 10), Quantity: 3},
		{ID: "b", Polygon: rectPoints(5, 5), Quantity: 2},
	}
	opts := packer.Options{BinWidth: 30, BinHeight: 30, Strategy: packer.StrategyGenetic, Seed: 42}

	res1, err1 := packer.Pack(pieces, opts)
	res2, err2 := packer.Pack(pieces, opts)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, res1, res2)
	assert.NotEmpty(t, res1.Placed)
}

func TestOptions_Validate(t *testing.T) {
	assert.Error(t, packer.Options{BinWidth: 0, BinHeight: 10}.Validate())
	assert.Error(t, packer.Options{BinWidth: 10, BinHeight: 10, RotationAngles: []int{400}}.Validate())
	assert.NoError(t, packer.Options{BinWidth: 10, BinHeight: 10}.Validate())
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "bottom_left", packer.StrategyBottomLeft.String())
	assert.Equal(t, "best_fit", packer.StrategyBestFit.String())
	assert.Equal(t, "genetic", packer.StrategyGenetic.String())
}
