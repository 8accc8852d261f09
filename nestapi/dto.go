package nestapi

import (
	"encoding/json"
	"fmt"
)

// Point accepts either `{"x":..,"y":..}` or `[x, y]` on the wire, matching
// both shapes the original request schema allows.
type Point struct {
	X float64
	Y float64
}

// MarshalJSON always emits the object form.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{p.X, p.Y})
}

// UnmarshalJSON accepts an object `{"x":..,"y":..}` or a 2-element array
// `[x, y]`.
func (p *Point) UnmarshalJSON(data []byte) error {
	var obj struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		p.X, p.Y = obj.X, obj.Y
		return nil
	}

	var arr [2]float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("nestapi: point must be {x,y} or [x,y]: %w", err)
	}
	p.X, p.Y = arr[0], arr[1]
	return nil
}

// PieceRequest is one entry of the request's pieces array.
type PieceRequest struct {
	ID       string  `json:"id"`
	Points   []Point `json:"points"`
	Quantity int     `json:"quantity"`
}

// Request is the decoded body of POST /nest.
type Request struct {
	Pieces []PieceRequest `json:"pieces"`

	BinWidth  float64 `json:"bin_width"`
	BinHeight float64 `json:"bin_height"`

	// Algorithm and Strategy are aliases; either may be set. Resolve with
	// strategyTag().
	Algorithm string `json:"algorithm"`
	Strategy  string `json:"strategy"`

	// AllowRotation defaults to true; RawAllowRotation distinguishes "not
	// sent" from "sent false" for that default.
	RawAllowRotation *bool `json:"allow_rotation"`

	RotationAngles []int   `json:"rotation_angles"`
	RotationStep   float64 `json:"rotation_step"`
	Margin         float64 `json:"margin"`
	MaxBins        int     `json:"max_bins"`
}

// strategyTag resolves the algorithm/strategy alias, defaulting to
// "bottom_left" when neither is set.
func (r Request) strategyTag() string {
	if r.Strategy != "" {
		return r.Strategy
	}
	if r.Algorithm != "" {
		return r.Algorithm
	}
	return "bottom_left"
}

// allowRotation resolves the allow_rotation default of true.
func (r Request) allowRotation() bool {
	if r.RawAllowRotation == nil {
		return true
	}
	return *r.RawAllowRotation
}

// PlacedPieceResponse is one placed piece in the wire response.
type PlacedPieceResponse struct {
	ID         string  `json:"id"`
	OriginalID string  `json:"original_id"`
	Points     []Point `json:"points"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Rotation   int     `json:"rotation"`
	Area       float64 `json:"area"`
}

// UnplacedPieceResponse is one unplaced piece in the wire response.
type UnplacedPieceResponse struct {
	OriginalID string  `json:"original_id"`
	CopyNumber int     `json:"copy_number"`
	Points     []Point `json:"points"`
}

// BinResponse is one bin in the wire response.
type BinResponse struct {
	BinID              int                     `json:"bin_id"`
	BinWidth           float64                 `json:"bin_width"`
	BinHeight          float64                 `json:"bin_height"`
	PlacedPieces       []PlacedPieceResponse   `json:"placed_pieces"`
	UnplacedPieces     []UnplacedPieceResponse `json:"unplaced_pieces"`
	MaterialEfficiency float64                 `json:"material_efficiency"`
	ExecutionTime      float64                 `json:"execution_time"`
	TotalPieces        int                     `json:"total_pieces"`
}

// SummaryResponse is the wire response's summary object.
type SummaryResponse struct {
	TotalBins           int       `json:"total_bins"`
	TotalPiecesPlaced   int       `json:"total_pieces_placed"`
	TotalPiecesUnplaced int       `json:"total_pieces_unplaced"`
	AverageEfficiency   float64   `json:"average_efficiency"`
	TotalExecutionTime  float64   `json:"total_execution_time"`
	BinEfficiencies     []float64 `json:"bin_efficiencies"`
}

// Response is the wire response body.
type Response struct {
	Success bool            `json:"success"`
	Bins    []BinResponse   `json:"bins"`
	Summary SummaryResponse `json:"summary"`
	Message string          `json:"message"`
}
