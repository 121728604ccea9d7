package protocol

import "fmt"

// ErrorCode represents a standardized error code a transport can relay
// to the peer without leaking anything beyond the failure class.
type ErrorCode string

// Protocol error codes.
const (
	// ErrCodeKeyLengthMismatch indicates a received key, salt, or
	// modulus has the wrong byte width for the configured group.
	ErrCodeKeyLengthMismatch ErrorCode = "KEY_LENGTH_MISMATCH"
	// ErrCodeInvalidPublicKey indicates a received public key was
	// congruent to 0 mod N.
	ErrCodeInvalidPublicKey ErrorCode = "INVALID_PUBLIC_KEY"
	// ErrCodeInvalidProof indicates the client's proof did not match.
	ErrCodeInvalidProof ErrorCode = "INVALID_PROOF"
	// ErrCodeInvalidStrongProof indicates the server's counter-proof
	// did not match.
	ErrCodeInvalidStrongProof ErrorCode = "INVALID_STRONG_PROOF"
	// ErrCodeHandshakeOrder indicates a handshake message arrived out
	// of sequence.
	ErrCodeHandshakeOrder ErrorCode = "HANDSHAKE_ORDER"
	// ErrCodeUnknownUser indicates no credentials exist for the
	// presented username.
	ErrCodeUnknownUser ErrorCode = "UNKNOWN_USER"
	// ErrCodeSessionExpired indicates the server discarded the
	// handshake before the proof arrived.
	ErrCodeSessionExpired ErrorCode = "SESSION_EXPIRED"
	// ErrCodeInvalidConfiguration indicates invalid domain parameters
	// or widths.
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
)

// ErrorResponse represents a standardized wire error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new ErrorResponse.
func NewError(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithDetails creates a new ErrorResponse with details.
func NewErrorWithDetails(code ErrorCode, message, details string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewKeyLengthMismatchError creates a key length mismatch error.
func NewKeyLengthMismatchError(given, expected int) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeKeyLengthMismatch, "Key length mismatch",
		fmt.Sprintf("got %d bytes, expected %d bytes", given, expected))
}

// NewInvalidPublicKeyError creates an invalid public key error.
func NewInvalidPublicKeyError() *ErrorResponse {
	return NewError(ErrCodeInvalidPublicKey, "Public key is congruent to 0 mod N")
}

// NewInvalidProofError creates an invalid proof error.
func NewInvalidProofError() *ErrorResponse {
	return NewError(ErrCodeInvalidProof, "Client proof does not match")
}

// NewInvalidStrongProofError creates an invalid strong proof error.
func NewInvalidStrongProofError() *ErrorResponse {
	return NewError(ErrCodeInvalidStrongProof, "Server proof does not match")
}

// NewHandshakeOrderError creates a handshake ordering error.
func NewHandshakeOrderError(details string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeHandshakeOrder, "Handshake message out of sequence", details)
}

// NewUnknownUserError creates an unknown user error.
func NewUnknownUserError(username string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeUnknownUser, "Unknown user", username)
}

// NewSessionExpiredError creates a session expired error.
func NewSessionExpiredError() *ErrorResponse {
	return NewError(ErrCodeSessionExpired, "Handshake session expired")
}

// NewInvalidConfigurationError creates an invalid configuration error.
func NewInvalidConfigurationError(details string) *ErrorResponse {
	return NewErrorWithDetails(ErrCodeInvalidConfiguration, "Invalid configuration", details)
}
