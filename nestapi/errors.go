package nestapi

import "errors"

// ValidationError is returned by Handle when the request is malformed:
// a piece with fewer than 3 points, a non-positive bin dimension, an
// unrecognized strategy tag, or a rotation angle outside [0, 360). It is
// a client error, distinct from an internal anomaly.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is a ValidationError, for transports
// that need to map it to a 4xx status rather than a 5xx.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var (
	errNoPieces         = validationErrorf("nestapi: request has no pieces")
	errDegeneratePiece  = validationErrorf("nestapi: piece must have at least 3 points")
	errNonPositiveQty   = validationErrorf("nestapi: piece quantity must be >= 1")
	errNonPositiveBin   = validationErrorf("nestapi: bin_width and bin_height must be positive")
	errUnknownStrategy  = validationErrorf("nestapi: unrecognized strategy tag")
	errRotationAngle    = validationErrorf("nestapi: rotation angle must be in [0, 360)")
	errDuplicatePieceID = validationErrorf("nestapi: duplicate piece id")
	errNegativeMargin   = validationErrorf("nestapi: margin must be >= 0")
)
