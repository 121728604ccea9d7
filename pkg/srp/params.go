// Package srp implements the Secure Remote Password protocol (SRP-6a,
// RFC 2945/5054) for zero-knowledge password authentication: protocol
// primitives, one-shot credential derivation, and the host and client
// handshake state machines.
package srp

// Params bundles the shared, immutable domain parameters of an SRP
// group together with the byte widths everything else is validated
// against. Both peers MUST use identical parameters; mismatched widths
// silently produce non-matching proofs even with a correct password.
type Params struct {
	// N is the large safe prime modulus; all arithmetic is done mod N.
	N *Number
	// G is the group generator.
	G *Number
	// KeyLength is the byte width of N. Public keys and the session
	// secret are zero-padded to this width wherever they are hashed.
	KeyLength int
	// SaltLength is the byte width of per-user salts.
	SaltLength int
	// EphemeralLength is the number of random bytes drawn for the
	// ephemeral secrets a and b.
	EphemeralLength int

	k *Number // multiplier k = H(N | PAD(g)), fixed per (N, g)
}

// DefaultEphemeralLength is the entropy (in bytes) of the ephemeral
// secrets a and b unless a group overrides it.
const DefaultEphemeralLength = 32

// NewParams validates and assembles domain parameters. The modulus is
// given as a big-endian hex string (the textual form domain constants
// are distributed in); its byte width must equal keyLength exactly.
func NewParams(modulusHex string, generator uint64, keyLength, saltLength int) (*Params, error) {
	n, err := ParseNumber(modulusHex)
	if err != nil {
		return nil, err
	}
	if n.NumBytes() != keyLength {
		return nil, &KeyLengthMismatchError{Given: n.NumBytes(), Expected: keyLength}
	}
	if generator < 2 {
		return nil, &KeyLengthMismatchError{Given: 0, Expected: 1}
	}
	p := &Params{
		N:               n,
		G:               NewNumber(generator),
		KeyLength:       keyLength,
		SaltLength:      saltLength,
		EphemeralLength: DefaultEphemeralLength,
	}
	p.k = computeMultiplier(p)
	return p, nil
}

// Multiplier returns the SRP-6a multiplier k = H(N | PAD(g)). The value
// depends only on (N, g), so it is computed once per parameter set.
func (p *Params) Multiplier() *Number {
	return p.k
}

func mustParams(modulusHex string, generator uint64, keyLength, saltLength int) *Params {
	p, err := NewParams(modulusHex, generator, keyLength, saltLength)
	if err != nil {
		panic(err)
	}
	return p
}

// Vetted groups from RFC 5054 Appendix A. Group 1024 exists for the
// official test vectors; use 2048 bits or more in production.
var (
	// RFC5054Group1024 is the 1024-bit group (g = 2).
	RFC5054Group1024 = mustParams(hexN1024, 2, 128, 16)

	// RFC5054Group2048 is the 2048-bit group (g = 2).
	RFC5054Group2048 = mustParams(hexN2048, 2, 256, 32)

	// RFC5054Group4096 is the 4096-bit group (g = 5).
	RFC5054Group4096 = mustParams(hexN4096, 5, 512, 64)
)

const (
	hexN1024 = "EEAF0AB9ADB38DD69C33F80AFA8FC5E86072618775FF3C0B9EA2314C9C256576" +
		"D674DF7496EA81D3383B4813D692C6E0E0D5D8E250B98BE48E495C1D6089DAD1" +
		"5DC7D7B46154D6B6CE8EF4AD69B15D4982559B297BCF1885C529F566660E57EC" +
		"68EDBC3C05726CC02FD4CBF4976EAA9AFD5138FE8376435B9FC61D2FC0EB06E3"

	hexN2048 = "AC6BDB41324A9A9BF166DE5E1389582FAF72B6651987EE07FC3192943DB56050" +
		"A37329CBB4A099ED8193E0757767A13DD52312AB4B03310DCD7F48A9DA04FD50" +
		"E8083969EDB767B0CF6095179A163AB3661A05FBD5FAAAE82918A9962F0B93B8" +
		"55F97993EC975EEAA80D740ADBF4FF747359D041D5C33EA71D281E446B14773B" +
		"CA97B43A23FB801676BD207A436C6481F1D2B9078717461A5B9D32E688F87748" +
		"544523B524B0D57D5EA77A2775D2ECFA032CFBDBF52FB3786160279004E57AE6" +
		"AF874E7303CE53299CCC041C7BC308D82A5698F3A8D0C38271AE35F8E9DBFBB6" +
		"94B5C803D89F7AE435DE236D525F54759B65E372FCD68EF20FA7111F9E4AFF73"

	hexN4096 = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74" +
		"020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F1437" +
		"4FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
		"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF05" +
		"98DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB" +
		"9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
		"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF695581718" +
		"3995497CEA956AE515D2261898FA051015728E5A8AAAC42DAD33170D04507A33" +
		"A85521ABDF1CBA64ECFB850458DBEF0A8AEA71575D060C7DB3970F85A6E1E4C7" +
		"ABF5AE8CDB0933D71E8C94E04A25619DCEE3D2261AD2EE6BF12FFA06D98A0864" +
		"D87602733EC86A64521F2B18177B200CBBE117577A615D6C770988C0BAD946E2" +
		"08E24FA074E5AB3143DB5BFCE0FD108E4B82D120A92108011A723C12A787E6D7" +
		"88719A10BDBA5B2699C327186AF4E23C1A946834B6150BDA2583E9CA2AD44CE8" +
		"DBBBC2DB04DE8EF92E8EFC141FBECAA6287C59474E6BC05D99B2964FA090C3A2" +
		"233BA186515BE7ED1F612970CEE2D7AFB81BDD762170481CD0069127D5B05AA9" +
		"93B4EA988D8FDDC186FFB7DC90A6C08F4DF435C934063199FFFFFFFFFFFFFFFF"
)
