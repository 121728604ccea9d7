package srp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/fzdarsky/srp6go/pkg/protocol"
)

// Phase tags a handshake state machine so out-of-order calls are
// rejected instead of silently operating on uninitialized fields.
type Phase int

// Handshake phases shared by both roles.
const (
	// PhaseIdle means no handshake has started.
	PhaseIdle Phase = iota
	// PhaseAwaitingServer means the client sent A and waits for the
	// server handshake (client role only).
	PhaseAwaitingServer
	// PhaseAwaitingProof means the side waits for the peer's proof.
	PhaseAwaitingProof
	// PhaseVerified means mutual authentication succeeded.
	PhaseVerified
	// PhaseRejected means the handshake failed; all derived material
	// has been discarded.
	PhaseRejected
)

// String returns the phase name for logging and errors.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingServer:
		return "awaiting-server"
	case PhaseAwaitingProof:
		return "awaiting-proof"
	case PhaseVerified:
		return "verified"
	case PhaseRejected:
		return "rejected"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Option configures a handshake state machine.
type Option func(*options)

type options struct {
	random   io.Reader
	hardened bool
}

// WithRandom injects the random source used for ephemeral secrets.
// Production code uses crypto/rand by default; tests inject fixed
// bytes to replay published vectors through the same code path.
func WithRandom(r io.Reader) Option {
	return func(o *options) { o.random = r }
}

// WithHardenedPasswords enables PBKDF2 password stretching, matching
// credentials created with the same option on GenerateUserSecrets.
func WithHardenedPasswords() Option {
	return func(o *options) { o.hardened = true }
}

func applyOptions(opts []Option) options {
	o := options{random: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Server is the host-side handshake state machine. One instance owns
// the secret material of exactly one authentication attempt; concurrent
// sessions each need their own instance.
type Server struct {
	params *Params
	random io.Reader
	phase  Phase

	bigA *Number // client public key
	bigB *Number // server public key
	b    *Number // server ephemeral secret
	u    *Number // scrambling value, recomputed independently
	s    *Number // session secret

	key           []byte // strong session key K
	expectedProof []byte // M the client must present
}

// NewServer creates a host state machine for one authentication attempt.
func NewServer(params *Params, opts ...Option) *Server {
	o := applyOptions(opts)
	return &Server{
		params: params,
		random: o.random,
		phase:  PhaseIdle,
	}
}

// Phase returns the current handshake phase.
func (s *Server) Phase() Phase {
	return s.phase
}

// ContinueHandshake answers the client's opening message: it generates
// a fresh ephemeral pair (b, B) and returns the stored salt together
// with B. The session secret, session key, and the proof the client is
// expected to present are all computed eagerly here, so VerifyProof is
// a pure comparison.
func (s *Server) ContinueHandshake(user *protocol.UserDetails, clientPublicKey []byte) (*protocol.ServerHandshake, error) {
	if s.phase != PhaseIdle {
		return nil, fmt.Errorf("%w: continue_handshake in phase %s", ErrInvalidHandshakeState, s.phase)
	}
	if len(clientPublicKey) > s.params.KeyLength {
		return nil, &KeyLengthMismatchError{Given: len(clientPublicKey), Expected: s.params.KeyLength}
	}
	if len(user.Verifier) > s.params.KeyLength {
		return nil, &KeyLengthMismatchError{Given: len(user.Verifier), Expected: s.params.KeyLength}
	}

	bigA := NewNumberFromBytesBE(clientPublicKey)
	v := NewNumberFromBytesBE(user.Verifier)

	b, err := RandomNumber(s.random, s.params.EphemeralLength)
	if err != nil {
		return nil, err
	}
	bigB := computeServerPublicKey(s.params, v, b)

	secret, err := computeHostSessionSecret(s.params, bigA, bigB, b, v)
	if err != nil {
		s.reject()
		return nil, err
	}

	s.bigA = bigA
	s.bigB = bigB
	s.b = b
	s.u = computeScrambler(s.params, bigA, bigB)
	s.s = secret
	s.key = interleaveSessionKey(s.params, secret)
	s.expectedProof = computeProof(s.params, user.Username, user.Salt, bigA, bigB, s.key)
	s.phase = PhaseAwaitingProof

	return &protocol.ServerHandshake{
		Salt:            user.Salt,
		ServerPublicKey: bigB.PadBE(s.params.KeyLength),
	}, nil
}

// VerifyProof checks the client's proof M against the expected value.
// On a match it returns the counter-proof M2 and the raw session
// secret S; on a mismatch it returns ErrInvalidProof and discards all
// session material without ever computing M2. The counter-proof must
// not reach the wire unless the client is authenticated.
func (s *Server) VerifyProof(clientProof []byte) (*protocol.ServerProof, []byte, error) {
	if s.phase != PhaseAwaitingProof {
		return nil, nil, fmt.Errorf("%w: verify_proof in phase %s", ErrInvalidHandshakeState, s.phase)
	}
	if subtle.ConstantTimeCompare(clientProof, s.expectedProof) != 1 {
		s.reject()
		return nil, nil, ErrInvalidProof
	}

	strongProof := computeStrongProof(s.params, s.bigA, s.expectedProof, s.key)
	secret := s.s.BytesBE()
	s.phase = PhaseVerified

	return &protocol.ServerProof{StrongProof: strongProof}, secret, nil
}

// StrongKey returns the derived session key K after successful
// verification.
func (s *Server) StrongKey() ([]byte, error) {
	if s.phase != PhaseVerified {
		return nil, fmt.Errorf("%w: strong key requested in phase %s", ErrInvalidHandshakeState, s.phase)
	}
	return s.key, nil
}

// ClearSecrets zeroizes the session's secret material. The instance is
// unusable afterwards; every new attempt needs a new Server.
func (s *Server) ClearSecrets() {
	s.b.clear()
	s.s.clear()
	s.b, s.s = nil, nil
	wipeBytes(s.key)
	wipeBytes(s.expectedProof)
	s.key, s.expectedProof = nil, nil
	s.phase = PhaseRejected
}

// reject discards all session material after a failure. Nothing derived
// in a failed session may be reused.
func (s *Server) reject() {
	s.ClearSecrets()
}
