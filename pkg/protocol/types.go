// Package protocol defines the message shapes exchanged between SRP
// peers and the transport-facing error codes. Field order and byte
// widths matter for interoperability; binary values travel base64-coded
// inside JSON.
package protocol

import (
	"encoding/json"
	"fmt"
)

// UserDetails is the durable per-user record produced by credential
// derivation at signup and persisted by an external credential store.
// The verifier is security-equivalent to a secret and is never
// transmitted again after initial creation.
type UserDetails struct {
	Username string `json:"username"`
	Salt     []byte `json:"salt"`     // SALT_LENGTH bytes
	Verifier []byte `json:"verifier"` // KEY_LENGTH bytes
}

// UserHandshake opens the handshake, client to server.
type UserHandshake struct {
	Username        string `json:"username"`
	ClientPublicKey []byte `json:"client_publickey"` // A, at most KEY_LENGTH bytes
}

// ServerHandshake answers a UserHandshake, server to client.
type ServerHandshake struct {
	Salt            []byte `json:"salt"`             // SALT_LENGTH bytes
	ServerPublicKey []byte `json:"server_publickey"` // B, at most KEY_LENGTH bytes
}

// ClientProof carries M, the client's evidence of the shared secret,
// client to server.
type ClientProof struct {
	Proof []byte `json:"proof"` // hash width
}

// ServerProof carries M2, the server's counter-proof, server to client.
// It is only ever sent after the client's proof validated.
type ServerProof struct {
	StrongProof []byte `json:"strong_proof"` // hash width
}

// Marshal encodes a protocol message as JSON.
func Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a protocol message from JSON into msg.
func Unmarshal(data []byte, msg any) error {
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	return nil
}
