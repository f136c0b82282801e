package domain_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.osec.io/solverify/internal/core/domain"
)

func TestHashProgramData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "empty input",
			data: nil,
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name: "all zeros digests like empty",
			data: make([]byte, 1024),
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name: "elf magic",
			data: []byte{0x7f, 'E', 'L', 'F'},
			want: "3bdbb4fe8397cd2b842430b39ccff01a8663c751945ef5e9a09e267fb8b1d359",
		},
		{
			name: "elf magic with trailing zero padding",
			data: append([]byte{0x7f, 'E', 'L', 'F'}, make([]byte, 4096)...),
			want: "3bdbb4fe8397cd2b842430b39ccff01a8663c751945ef5e9a09e267fb8b1d359",
		},
		{
			name: "interior zeros are preserved",
			data: []byte{0x00, 0x01, 0x00, 0x02, 0x00, 0x00},
			want: "b3b19812dd51ef044f7e0016ff19a634d1812d051595aa55426dc6e91b310e93",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.HashProgramData(tt.data).String())
		})
	}
}

func TestHashProgramData_Mismatch(t *testing.T) {
	a := domain.HashProgramData([]byte{0x01, 0x02})
	b := domain.HashProgramData([]byte{0x01, 0x03})
	assert.Equal(t, "a12871fee210fb8619291eaea194581cbd2531e4b23759d225f6806923f63222", a.String())
	assert.Equal(t, "c79b932e1e1da3c0e098e5ad2c422937eb904a76cf61d83975a74a68fbb04b99", b.String())
	assert.False(t, a.Equal(b))
}

func TestTrimTrailingZeros(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{name: "nil", data: nil, want: nil},
		{name: "all zeros", data: []byte{0, 0, 0}, want: nil},
		{name: "no padding", data: []byte{0xde, 0xad, 0xbe, 0xef}, want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "padding stripped", data: []byte{0xde, 0xad, 0, 0}, want: []byte{0xde, 0xad}},
		{name: "leading zeros kept", data: []byte{0, 0xad, 0, 0}, want: []byte{0, 0xad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.TrimTrailingZeros(tt.data)
			assert.True(t, bytes.Equal(tt.want, got), "got %x, want %x", got, tt.want)
		})
	}
}

func TestParseDigest(t *testing.T) {
	d := domain.HashProgramData([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Equal(t, "5f78c33274e43fa9de5659265c1d917e25c03722dcb0b8d27db8d5feaa813953", d.String())

	parsed, err := domain.ParseDigest(d.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))

	_, err = domain.ParseDigest("not hex")
	assert.Error(t, err)

	_, err = domain.ParseDigest("abcdef")
	assert.Error(t, err)
}
