package auth

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaaldainabdo/scalable-login-system/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "665f1c2e9b1e8a0012345678"

	tok, err := GenerateToken(userID, secret, TokenValidity)
	require.NoError(t, err)

	got, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGenerateToken_PayloadIsIDIatExp(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u1", []byte("k"), TokenValidity)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"exp", "iat", "id"}, keys)

	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, exp.Sub(iat.Time))
	assert.Equal(t, "u1", claims["id"])
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := GenerateToken("u1", nil, TokenValidity)
	assert.ErrorIs(t, err, common.ErrorMisconfigured)

	_, err = ParseToken("whatever", []byte{})
	assert.ErrorIs(t, err, common.ErrorMisconfigured)
}

func TestParseToken_Failures(t *testing.T) {
	t.Parallel()

	secret := []byte("right-secret")

	expired, err := GenerateToken("u1", secret, -1*time.Second)
	require.NoError(t, err)

	valid, err := GenerateToken("u2", secret, time.Hour)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{ID: "u3"}).SignedString(secret)
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(secret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  []byte
		wantErr error
	}{
		{name: "expired", token: expired, secret: secret, wantErr: common.ErrTokenExpired},
		{name: "wrong secret", token: valid, secret: []byte("wrong-secret"), wantErr: common.ErrorInvalidToken},
		{name: "malformed", token: "not.a.jwt", secret: secret, wantErr: common.ErrorInvalidToken},
		{name: "other algorithm", token: hs512, secret: secret, wantErr: common.ErrorInvalidToken},
		{name: "missing id", token: noID, secret: secret, wantErr: common.ErrorInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			require.Error(t, err)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
