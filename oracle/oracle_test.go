package oracle_test

import (
	"testing"

	"github.com/nestlab/irregularpack/geom"
	"github.com/nestlab/irregularpack/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom.Polygon {
	return geom.Polygon{{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side}}
}

func TestFindPosition_EmptyBinPlacesAtOrigin(t *testing.T) {
	container := oracle.Container{Width: 20, Height: 20}
	pos, ok := oracle.FindPosition(container, nil, square(10), oracle.Options{Strategy: oracle.StrategyBottomLeft})
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, pos)
}

func TestFindPosition_SecondPieceSlidesRight(t *testing.T) {
	container := oracle.Container{Width: 25, Height: 10}
	placed := []geom.Polygon{geom.Translate(square(10), 0, 0)}

	pos, ok := oracle.FindPosition(container, placed, square(10), oracle.Options{Strategy: oracle.StrategyBottomLeft})
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 10, Y: 0}, pos)
}

func TestFindPosition_NoLegalPosition(t *testing.T) {
	container := oracle.Container{Width: 50, Height: 50}
	pos, ok := oracle.FindPosition(container, nil, square(100), oracle.Options{})
	assert.False(t, ok)
	assert.Equal(t, geom.Point{}, pos)
}

func TestFindPosition_AvoidsOverlap(t *testing.T) {
	container := oracle.Container{Width: 20, Height: 20}
	placed := []geom.Polygon{geom.Translate(square(10), 0, 0)}

	pos, ok := oracle.FindPosition(container, placed, square(10), oracle.Options{Strategy: oracle.StrategyBottomLeft})
	require.True(t, ok)

	translated := geom.Translate(square(10), pos.X, pos.Y)
	assert.False(t, geom.Intersects(translated, placed[0]))
}

func TestFindPosition_Deterministic(t *testing.T) {
	container := oracle.Container{Width: 40, Height: 40}
	placed := []geom.Polygon{geom.Translate(square(10), 0, 0), geom.Translate(square(10), 10, 0)}

	pos1, ok1 := oracle.FindPosition(container, placed, square(7), oracle.Options{Strategy: oracle.StrategyBottomLeft})
	pos2, ok2 := oracle.FindPosition(container, placed, square(7), oracle.Options{Strategy: oracle.StrategyBottomLeft})
	require.Equal(t, ok1, ok2)
	assert.Equal(t, pos1, pos2)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "bottom_left", oracle.StrategyBottomLeft.String())
	assert.Equal(t, "best_fit", oracle.StrategyBestFit.String())
}
