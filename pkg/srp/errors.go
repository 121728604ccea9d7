package srp

import (
	"errors"
	"fmt"
)

// Protocol failure modes. Every one of them is fatal for the session it
// occurs in: the handshake instance moves to the rejected phase and all
// derived material is discarded.
var (
	// ErrInvalidPublicKey indicates a received public key is congruent
	// to 0 mod N, which would force a known shared secret.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidProof indicates the client's proof M did not match the
	// server's expected value.
	ErrInvalidProof = errors.New("invalid proof")

	// ErrInvalidStrongProof indicates the server's proof M2 did not
	// match the client's expected value.
	ErrInvalidStrongProof = errors.New("invalid strong proof")

	// ErrInvalidHandshakeState indicates a state machine call was made
	// out of order (e.g. verifying a proof before the handshake ran).
	ErrInvalidHandshakeState = errors.New("invalid handshake state")

	// ErrInvalidHexString indicates a malformed textual domain constant.
	ErrInvalidHexString = errors.New("invalid hex string")
)

// KeyLengthMismatchError indicates a received key, salt, or modulus has
// the wrong byte width for the configured domain parameters.
type KeyLengthMismatchError struct {
	Given    int
	Expected int
}

// Error implements the error interface.
func (e *KeyLengthMismatchError) Error() string {
	return fmt.Sprintf("key length mismatch: got %d bytes, expected %d bytes", e.Given, e.Expected)
}

// IsKeyLengthMismatch reports whether err is a KeyLengthMismatchError.
func IsKeyLengthMismatch(err error) bool {
	var klm *KeyLengthMismatchError
	return errors.As(err, &klm)
}
