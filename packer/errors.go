package packer

import "errors"

var (
	// ErrDegeneratePiece is returned when a piece's polygon has fewer than
	// three vertices.
	ErrDegeneratePiece = errors.New("packer: piece polygon has fewer than 3 points")

	// ErrNonPositiveBin is returned when the bin width or height is <= 0.
	ErrNonPositiveBin = errors.New("packer: bin dimensions must be positive")

	// ErrNonPositiveQuantity is returned when a piece's quantity is < 1.
	ErrNonPositiveQuantity = errors.New("packer: piece quantity must be >= 1")

	// ErrDuplicateID is returned when two input pieces share an identifier.
	ErrDuplicateID = errors.New("packer: duplicate piece id")

	// ErrRotationAngleOutOfRange is returned when a configured rotation
	// angle falls outside [0, 360).
	ErrRotationAngleOutOfRange = errors.New("packer: rotation angle out of range")

	// ErrNegativeMargin is returned when Options.Margin is < 0.
	ErrNegativeMargin = errors.New("packer: margin must be >= 0")
)
