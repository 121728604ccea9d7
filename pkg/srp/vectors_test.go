package srp_test

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fzdarsky/srp6go/pkg/srp"
)

// RFC 5054 Appendix B test vectors (1024-bit group, g = 2).
const (
	vectorUsername = "alice"
	vectorPassword = "password123"

	vectorSalt = "BEB25379D1A8581EB5A727673A2441EE"

	vectorMultiplier = "7556AA045AEF2CDD07ABAF0F665C3E818913186F"

	vectorVerifier = "7E273DE8696FFC4F4E337D05B4B375BEB0DDE1569E8FA00A9886D812" +
		"9BADA1F1822223CA1A605B530E379BA4729FDC59F105B4787E5186F5" +
		"C671085A1447B52A48CF1970B4FB6F8400BBF4CEBFBB168152E08AB5" +
		"EA53D15C1AFF87B2B9DA6E04E058AD51CC72BFC9033B564E26480D78" +
		"E955A5E29E7AB245DB2BE315E2099AFB"

	vectorPrivateA = "60975527035CF2AD1989806F0407210BC81EDC04E2762A56AFD529DDDA2D4393"
	vectorPrivateB = "E487CB59D31AC550471E81F00F6928E01DDA08E974A004F49E61F5D105284D20"

	vectorPublicA = "61D5E490F6F1B79547B0704C436F523DD0E560F0C64115BB72557EC4" +
		"4352E8903211C04692272D8B2D1A5358A2CF1B6E0BFCF99F921530EC" +
		"8E39356179EAE45E42BA92AEACED825171E1E8B9AF6D9C03E1327F44" +
		"BE087EF06530E69F66615261EEF54073CA11CF5858F0EDFDFE15EFEA" +
		"B349EF5D76988A3672FAC47B0769447B"

	vectorPublicB = "BD0C61512C692C0CB6D041FA01BB152D4916A1E77AF46AE105393011" +
		"BAF38964DC46A0670DD125B95A981652236F99D9B681CBF87837EC99" +
		"6C6DA04453728610D0C6DDB58B318885D7D82C7F8DEB75CE7BD4FBAA" +
		"37089E6F9C6059F388838E7A00030B331EB76840910440B1B27AAEAE" +
		"EB4012B7D7665238A8E3FB004B117B58"

	vectorSecret = "B0DC82BABCF30674AE450C0287745E7990A3381F63B387AAF271A10D" +
		"233861E359B48220F7C4693C9AE12B0A6F67809F0876E2D013800D6C" +
		"41BB59B6D5979B5C00A172B4A2A5903A0BDCAF8A709585EB2AFAFA8F" +
		"3499B200210DCC1F10EB33943CD67FC88A2F39A4BE5BEC4EC0A3212D" +
		"C346D7E474B29EDE8A469FFECA686E5A"
)

// Derived values under this library's conventions (interleaved K over
// the KEY_LENGTH-padded secret, M over the padded transcript),
// recomputed independently from the Appendix B inputs.
const (
	vectorSessionKey = "2B8CABCEDE81B9765A37FC68FBDE512326A156512BC0DAC5" +
		"FD64D2C7C3BF857A56B0C0A8CEED18C0"
	vectorProof       = "8B5FDB7DB0346E353689D2EDFACEC647A813E6D0"
	vectorStrongProof = "E8149A44A9D5BF552A4CC9120C545301A537F227"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := hex.DecodeString(strings.ToLower(s))
	require.NoError(t, err)
	return raw
}

func TestRFC5054Multiplier(t *testing.T) {
	k := srp.RFC5054Group1024.Multiplier()
	assert.Equal(t, vectorMultiplier, k.Hex())
}

func TestRFC5054Verifier(t *testing.T) {
	params := srp.RFC5054Group1024

	details, err := srp.GenerateUserSecrets(params, vectorUsername, vectorPassword,
		srp.WithRandom(bytes.NewReader(mustHex(t, vectorSalt))))
	require.NoError(t, err)

	assert.Equal(t, vectorUsername, details.Username)
	assert.Equal(t, mustHex(t, vectorSalt), details.Salt)
	assert.Equal(t, mustHex(t, vectorVerifier), details.Verifier)
}

// TestRFC5054Handshake replays the full Appendix B handshake with the
// published ephemeral secrets injected as the random source and checks
// every published intermediate value plus the derived key and proofs.
func TestRFC5054Handshake(t *testing.T) {
	params := srp.RFC5054Group1024

	details, err := srp.GenerateUserSecrets(params, vectorUsername, vectorPassword,
		srp.WithRandom(bytes.NewReader(mustHex(t, vectorSalt))))
	require.NoError(t, err)

	client := srp.NewClient(params, srp.WithRandom(bytes.NewReader(mustHex(t, vectorPrivateA))))
	server := srp.NewServer(params, srp.WithRandom(bytes.NewReader(mustHex(t, vectorPrivateB))))

	userHandshake, err := client.StartHandshake(vectorUsername)
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, vectorPublicA), userHandshake.ClientPublicKey)

	serverHandshake, err := server.ContinueHandshake(details, userHandshake.ClientPublicKey)
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, vectorPublicB), serverHandshake.ServerPublicKey)
	assert.Equal(t, mustHex(t, vectorSalt), serverHandshake.Salt)

	proof, err := client.UpdateHandshake(serverHandshake, vectorUsername, vectorPassword)
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, vectorProof), proof.Proof)

	strongProof, serverSecret, err := server.VerifyProof(proof.Proof)
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, vectorStrongProof), strongProof.StrongProof)
	assert.Equal(t, mustHex(t, vectorSecret), serverSecret)

	clientSecret, err := client.VerifyProof(strongProof)
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, vectorSecret), clientSecret)

	serverKey, err := server.StrongKey()
	require.NoError(t, err)
	clientKey, err := client.StrongKey()
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, vectorSessionKey), serverKey)
	assert.Equal(t, serverKey, clientKey)
}
