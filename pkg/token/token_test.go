package token

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	userID := uuid.New()

	tok, err := Generate(userID, "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := Parse(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Generate(uuid.New(), "secret", time.Hour)
	require.NoError(t, err)

	_, err = Parse(tok, "other-secret")
	assert.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	tok, err := Generate(uuid.New(), "secret", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(tok, "secret")
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not-a-token", "secret")
	assert.Error(t, err)
}

func TestExtractBearer(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractBearer(req))

	req.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", ExtractBearer(req))

	req.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", ExtractBearer(req), "scheme match is case insensitive")

	req.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, ExtractBearer(req))

	req.Header.Set("Authorization", "abc123")
	assert.Empty(t, ExtractBearer(req))
}
