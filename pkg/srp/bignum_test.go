package srp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fzdarsky/srp6go/pkg/srp"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantHex string
		wantErr bool
	}{
		{name: "simple", input: "DEADBEEF", wantHex: "DEADBEEF"},
		{name: "lowercase", input: "deadbeef", wantHex: "DEADBEEF"},
		{name: "odd length", input: "ABC", wantHex: "ABC"},
		{name: "leading zeros dropped", input: "0000FF", wantHex: "FF"},
		{name: "whitespace ignored", input: "DE AD\nBE\tEF", wantHex: "DEADBEEF"},
		{name: "zero", input: "00", wantHex: "0"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: " \n\t", wantErr: true},
		{name: "not hex", input: "XYZ123", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := srp.ParseNumber(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, srp.ErrInvalidHexString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, n.Hex())
		})
	}
}

func TestNumberByteConversion(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04}

	be := srp.NewNumberFromBytesBE(raw)
	assert.Equal(t, "1020304", be.Hex())
	assert.Equal(t, raw, be.BytesBE())
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, be.BytesLE())

	le := srp.NewNumberFromBytesLE(raw)
	assert.Equal(t, "4030201", le.Hex())
	assert.Equal(t, raw, le.BytesLE())
}

func TestNumberPadding(t *testing.T) {
	n, err := srp.ParseNumber("ABCD")
	require.NoError(t, err)

	assert.Equal(t, []byte{0x00, 0x00, 0xAB, 0xCD}, n.PadBE(4))
	assert.Equal(t, []byte{0xCD, 0xAB, 0x00, 0x00}, n.PadLE(4))
	assert.Equal(t, []byte{0xAB, 0xCD}, n.PadBE(2))
	// oversized values keep the low-order bytes
	assert.Equal(t, []byte{0xCD}, n.PadBE(1))
}

func TestNumberZero(t *testing.T) {
	zero := srp.NewNumber(0)
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.NumBytes())
	assert.Empty(t, zero.BytesBE())
	assert.Equal(t, []byte{0x00, 0x00}, zero.PadBE(2))
	assert.False(t, srp.NewNumber(1).IsZero())
}

func TestNumberArithmetic(t *testing.T) {
	seven := srp.NewNumber(7)
	three := srp.NewNumber(3)
	ten := srp.NewNumber(10)

	assert.True(t, seven.Add(three).Equal(ten))
	assert.True(t, seven.Sub(three).Equal(srp.NewNumber(4)))
	assert.True(t, seven.Mul(three).Equal(srp.NewNumber(21)))
	assert.True(t, seven.Mod(three).Equal(srp.NewNumber(1)))
	assert.True(t, three.ModPow(srp.NewNumber(4), ten).Equal(srp.NewNumber(1)))

	assert.Equal(t, 1, seven.Cmp(three))
	assert.Equal(t, -1, three.Cmp(seven))
	assert.Equal(t, 0, seven.Cmp(srp.NewNumber(7)))
}

func TestNumberNumBytes(t *testing.T) {
	assert.Equal(t, 1, srp.NewNumber(0xFF).NumBytes())
	assert.Equal(t, 2, srp.NewNumber(0x100).NumBytes())
	assert.Equal(t, 8, srp.NewNumber(0xFFFFFFFFFFFFFFFF).NumBytes())
}

func TestRandomNumber(t *testing.T) {
	n, err := srp.RandomNumber(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF}), 4)
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEF", n.Hex())

	_, err = srp.RandomNumber(bytes.NewReader([]byte{0x01}), 4)
	assert.Error(t, err)
}

func TestNumberString(t *testing.T) {
	n, err := srp.ParseNumber("abcdef")
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", n.String())
	assert.True(t, strings.Contains(n.String(), n.Hex()))
}
