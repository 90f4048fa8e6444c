package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-management/internal/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", "testdata/missing.yaml"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	out, err := run(t, "token", "--subject", "ops", "--role", auth.RoleAdmin, "--ttl", "1h")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestTokenCommandNeedsSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "token", "--subject", "ops")
	assert.Error(t, err)
}

func TestTokenCommandNeedsSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	_, err := run(t, "token")
	assert.Error(t, err)
}

func TestDBCommandNeedsURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	for _, sub := range []string{"create", "drop", "seed"} {
		_, err := run(t, "db", sub)
		assert.Error(t, err, sub)
	}
}

func TestServeValidatesConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := run(t, "serve")
	assert.Error(t, err)
}
