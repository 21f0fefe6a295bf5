package main

import (
	"testing"
	"time"

	"shopapi/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_ClaimsMatchMiddleware(t *testing.T) {
	issuer := &jwtIssuer{secret: []byte("s"), accessTTL: time.Hour}
	now := time.Now()

	signed, exp, err := issuer.Issue("65a1b2c3d4e5f60718293a01", model.RoleAdmin, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("s"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "65a1b2c3d4e5f60718293a01", claims["sub"])
	assert.Equal(t, "Admin", claims["role"])
}

func TestIssue_EmptyRoleOmitted(t *testing.T) {
	issuer := &jwtIssuer{secret: []byte("s"), accessTTL: time.Minute}

	signed, _, err := issuer.Issue("u1", "", time.Now())
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("s"), nil
	})
	require.NoError(t, err)
	_, ok := claims["role"]
	assert.False(t, ok)
}
