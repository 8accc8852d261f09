// Command nestcli is a demo driver for the nesting core: it loads a piece
// list (hardcoded or from a JSON file), runs the scheduler, and prints a
// summary. Exit code 0 on success, nonzero on validation or runtime
// failure.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nestlab/irregularpack/nestapi"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if nestapi.IsValidation(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type cliOptions struct {
	file           string
	binWidth       float64
	binHeight      float64
	strategy       string
	allowRotation  bool
	rotationAngles []int
	margin         float64
	maxBins        int
	verbose        bool
}

func newRootCmd() *cobra.Command {
	var opt cliOptions

	cmd := &cobra.Command{
		Use:          "nestcli",
		Short:        "Pack irregular pieces into rectangular bins",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt)
		},
	}

	cmd.Flags().StringVar(&opt.file, "file", "", "path to a JSON piece list ({\"pieces\":[...]}); a hardcoded demo is used when omitted")
	cmd.Flags().Float64Var(&opt.binWidth, "bin-width", 100, "bin width")
	cmd.Flags().Float64Var(&opt.binHeight, "bin-height", 100, "bin height")
	cmd.Flags().StringVar(&opt.strategy, "strategy", "bottom_left", "bottom_left | best_fit | genetic")
	cmd.Flags().BoolVar(&opt.allowRotation, "allow-rotation", true, "allow rotated placements")
	cmd.Flags().IntSliceVar(&opt.rotationAngles, "rotation-angles", []int{0, 90, 180, 270}, "allowed rotation angles")
	cmd.Flags().Float64Var(&opt.margin, "margin", 0, "margin between pieces")
	cmd.Flags().IntVar(&opt.maxBins, "max-bins", 0, "cap on the number of bins (0 = unlimited)")
	cmd.Flags().BoolVarP(&opt.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(opt cliOptions) error {
	level := charmlog.InfoLevel
	if opt.verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{ReportTimestamp: true, Level: level})

	pieces, err := loadPieces(opt.file)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d piece definitions", len(pieces))

	req := nestapi.Request{
		Pieces:           pieces,
		BinWidth:         opt.binWidth,
		BinHeight:        opt.binHeight,
		Strategy:         opt.strategy,
		RawAllowRotation: &opt.allowRotation,
		RotationAngles:   opt.rotationAngles,
		Margin:           opt.margin,
		MaxBins:          opt.maxBins,
	}

	resp, err := nestapi.Handle(req)
	if err != nil {
		return err
	}

	logger.Infof("packed %d/%d pieces across %d bin(s), average efficiency %.2f%%",
		resp.Summary.TotalPiecesPlaced,
		resp.Summary.TotalPiecesPlaced+resp.Summary.TotalPiecesUnplaced,
		resp.Summary.TotalBins,
		resp.Summary.AverageEfficiency,
	)
	for _, bin := range resp.Bins {
		logger.Infof("bin %d: %d placed, %d unplaced, efficiency %.2f%%",
			bin.BinID, len(bin.PlacedPieces), len(bin.UnplacedPieces), bin.MaterialEfficiency)
	}
	if resp.Summary.TotalPiecesUnplaced > 0 {
		logger.Warnf("%d piece(s) never found a bin", resp.Summary.TotalPiecesUnplaced)
	}
	return nil
}

// loadPieces reads a JSON piece list from path, or returns a small built-in
// demo set when path is empty.
func loadPieces(path string) ([]nestapi.PieceRequest, error) {
	if path == "" {
		return demoPieces(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var body struct {
		Pieces []nestapi.PieceRequest `json:"pieces"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	return body.Pieces, nil
}

func demoPieces() []nestapi.PieceRequest {
	return []nestapi.PieceRequest{
		{
			ID:       "rect",
			Points:   []nestapi.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			Quantity: 5,
		},
		{
			ID:       "wedge",
			Points:   []nestapi.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 15}},
			Quantity: 3,
		},
	}
}
