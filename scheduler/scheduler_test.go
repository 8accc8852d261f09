package scheduler_test

import (
	"testing"

	"github.com/nestlab/irregularpack/packer"
	"github.com/nestlab/irregularpack/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectPoints(w, h float64) []packer.Point {
	return []packer.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}

func TestRun_SpilloverAcrossThreeBins(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(10, 10), Quantity: 5}}
	opts := scheduler.Options{Options: packer.Options{BinWidth: 20, BinHeight: 10, Strategy: packer.StrategyBottomLeft}}

	res, err := scheduler.Run(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Bins, 3)
	assert.Equal(t, 2, res.Bins[0].TotalPieces)
	assert.Equal(t, 2, res.Bins[1].TotalPieces)
	assert.Equal(t, 1, res.Bins[2].TotalPieces)
	assert.Equal(t, 5, res.Summary.TotalPiecesPlaced)
	assert.Equal(t, 0, res.Summary.TotalPiecesUnplaced)
	assert.Equal(t, 3, res.Summary.TotalBins)
}

func TestRun_SingleBinFits(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(10, 10), Quantity: 1}}
	opts := scheduler.Options{Options: packer.Options{BinWidth: 20, BinHeight: 20, Strategy: packer.StrategyBottomLeft}}

	res, err := scheduler.Run(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Bins, 1)
	assert.InDelta(t, 25.0, res.Bins[0].Efficiency, 1e-6)
}

func TestRun_UnplaceablePieceReportsGlobalLeftover(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(100, 100), Quantity: 1}}
	opts := scheduler.Options{Options: packer.Options{BinWidth: 50, BinHeight: 50, Strategy: packer.StrategyBottomLeft}}

	res, err := scheduler.Run(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Bins, 1)
	assert.Empty(t, res.Bins[0].Placed)
	require.Len(t, res.Bins[0].Unplaced, 1)
	assert.Equal(t, 1, res.Summary.TotalPiecesUnplaced)
}

func TestRun_MaxBinsCapsLoop(t *testing.T) {
	pieces := []packer.Piece{{ID: "a", Polygon: rectPoints(10, 10), Quantity: 5}}
	opts := scheduler.Options{
		Options: packer.Options{BinWidth: 20, BinHeight: 10, Strategy: packer.StrategyBottomLeft},
		MaxBins: 1,
	}

	res, err := scheduler.Run(pieces, opts)
	require.NoError(t, err)
	require.Len(t, res.Bins, 1)
	assert.Equal(t, 2, res.Bins[0].TotalPieces)
	assert.Equal(t, 3, res.Summary.TotalPiecesUnplaced, "three copies never got a bin because of the cap")
}
