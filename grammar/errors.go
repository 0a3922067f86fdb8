package grammar

import "errors"

// Sentinel errors for verbalization. All are terminal: the caller must
// change the input rather than retry.
var (
	// ErrNegativeNumber indicates the input integer was negative.
	ErrNegativeNumber = errors.New("number must be non-negative")

	// ErrUnsupportedPolicy indicates a grammar policy other than R1.
	ErrUnsupportedPolicy = errors.New("unsupported grammar policy")

	// ErrOutOfRange indicates the number exceeds the defined lexical bands.
	ErrOutOfRange = errors.New("number exceeds the defined lexical bands")
)
