package srp

// Pure protocol functions. Each computes exactly one SRP value; the
// state machines in client.go and server.go sequence them. All values
// folded into a hash are zero-padded big-endian (network byte order) to
// the configured width, the convention under which the RFC 5054
// Appendix B vectors reproduce.

// computeMultiplier computes k = H(N | PAD(g)).
func computeMultiplier(p *Params) *Number {
	return NewNumberFromBytesBE(hashBytes(p.N.BytesBE(), p.G.PadBE(p.KeyLength)))
}

// derivePrivateKey computes x = H(s | H(I | ":" | p)). x exists only
// transiently, during verifier generation or client-side S derivation.
func derivePrivateKey(username, password string, salt []byte) *Number {
	inner := hashBytes([]byte(username), []byte(":"), []byte(password))
	return NewNumberFromBytesBE(hashBytes(salt, inner))
}

// computeVerifier computes v = g^x mod N.
func computeVerifier(p *Params, x *Number) *Number {
	return p.G.ModPow(x, p.N)
}

// computeClientPublicKey computes A = g^a mod N.
func computeClientPublicKey(p *Params, a *Number) *Number {
	return p.G.ModPow(a, p.N)
}

// computeServerPublicKey computes B = (k*v + g^b) mod N.
func computeServerPublicKey(p *Params, v, b *Number) *Number {
	kv := p.Multiplier().Mul(v).Mod(p.N)
	gb := p.G.ModPow(b, p.N)
	return kv.Add(gb).Mod(p.N)
}

// computeScrambler computes u = H(PAD(A) | PAD(B)). Both sides must
// arrive at the same u for their session secrets to match.
func computeScrambler(p *Params, bigA, bigB *Number) *Number {
	return hashNumbers(p.KeyLength, bigA, bigB)
}

// computeHostSessionSecret computes S = (A * v^u)^b mod N after
// rejecting a degenerate client key. The check must run before any
// exponentiation: A ≡ 0 (mod N) would force S = 0.
func computeHostSessionSecret(p *Params, bigA, bigB, b, v *Number) (*Number, error) {
	if bigA.Mod(p.N).IsZero() {
		return nil, ErrInvalidPublicKey
	}
	u := computeScrambler(p, bigA, bigB)
	base := bigA.Mul(v.ModPow(u, p.N)).Mod(p.N)
	return base.ModPow(b, p.N), nil
}

// computeClientSessionSecret computes
//
//	S = (B - k*g^x) ^ (a + u*x) mod N
//
// after rejecting a degenerate server key. Number is unsigned, so when
// B < k*g^x the subtraction wraps around the modulus: (N - k*g^x) + B.
// A single correction suffices because both operands are already
// reduced mod N.
func computeClientSessionSecret(p *Params, bigA, bigB, a, x *Number) (*Number, error) {
	if bigB.Mod(p.N).IsZero() {
		return nil, ErrInvalidPublicKey
	}
	u := computeScrambler(p, bigA, bigB)
	if u.IsZero() {
		return nil, ErrInvalidPublicKey
	}
	exp := a.Add(u.Mul(x))
	kgx := p.Multiplier().Mul(p.G.ModPow(x, p.N)).Mod(p.N)
	var base *Number
	if bigB.Cmp(kgx) < 0 {
		base = p.N.Sub(kgx).Add(bigB)
	} else {
		base = bigB.Sub(kgx)
	}
	return base.ModPow(exp, p.N), nil
}

// interleaveSessionKey derives the strong session key K from S: S is
// zero-padded to KeyLength bytes, the even-indexed and odd-indexed byte
// subsequences are hashed independently, and the two digests are
// interleaved byte-by-byte into a key of twice the hash width.
func interleaveSessionKey(p *Params, s *Number) []byte {
	padded := s.PadBE(p.KeyLength)
	half := p.KeyLength / 2
	even := make([]byte, half)
	odd := make([]byte, half)
	for i := 0; i < half; i++ {
		even[i] = padded[2*i]
		odd[i] = padded[2*i+1]
	}
	evenHash := hashBytes(even)
	oddHash := hashBytes(odd)

	key := make([]byte, StrongKeyLength)
	for i := 0; i < HashLength; i++ {
		key[2*i] = evenHash[i]
		key[2*i+1] = oddHash[i]
	}
	return key
}

// computeProof computes the client's proof
//
//	M = H(H(N) XOR H(g) | H(I) | s | A | B | K)
//
// with s padded to SaltLength and A, B to KeyLength. The XOR term and
// H(I) keep their native hash width.
func computeProof(p *Params, username string, salt []byte, bigA, bigB *Number, key []byte) []byte {
	hashN := hashBytes(p.N.PadBE(p.KeyLength))
	hashG := hashBytes(p.G.BytesBE())
	xor := make([]byte, HashLength)
	for i := range xor {
		xor[i] = hashN[i] ^ hashG[i]
	}
	return hashBytes(
		xor,
		hashBytes([]byte(username)),
		padBytes(salt, p.SaltLength),
		bigA.PadBE(p.KeyLength),
		bigB.PadBE(p.KeyLength),
		key,
	)
}

// computeStrongProof computes the server's counter-proof M2 = H(A | M | K).
func computeStrongProof(p *Params, bigA *Number, proof, key []byte) []byte {
	return hashBytes(bigA.PadBE(p.KeyLength), proof, key)
}

// padBytes left-pads raw with zeros to width bytes. Oversized input is
// a caller bug; the handshake layer validates widths first.
func padBytes(raw []byte, width int) []byte {
	if len(raw) >= width {
		return raw[len(raw)-width:]
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	return out
}

// wipeBytes zeroizes a byte slice in place.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
