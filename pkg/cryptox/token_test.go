package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		wantLen  int
		wantFail bool
	}{
		{"256-bit token", TokenSize256, 43, false},
		{"512-bit token", TokenSize512, 86, false},
		{"zero size", 0, 0, true},
		{"negative size", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			if tt.wantFail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)

			// Must decode as padding-free base64url
			raw, err := base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err)
			require.Len(t, raw, tt.size)
		})
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		token, err := GenerateToken(TokenSize256)
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "generated a duplicate token")
		seen[token] = struct{}{}
	}
}

func TestFingerprintToken(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)

	fp1 := FingerprintToken(token)
	fp2 := FingerprintToken(token)
	require.Equal(t, fp1, fp2, "fingerprint must be deterministic")
	require.Len(t, fp1, 43)
	require.NotEqual(t, token, fp1)

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, fp1, FingerprintToken(other))
}
