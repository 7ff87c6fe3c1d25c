package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelQuoteService/pkg/jwt"
)

const testConfig = `
[database]
host = "localhost"
dbname = "hotel"

[admin]
jwt_secret = "cli-secret"
issuer = "hotel-test"
`

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(append(args, "--config", path))

	err := root.Execute()
	return out.String(), err
}

func TestTokenCmd_IssuesAdminToken(t *testing.T) {
	t.Setenv("ADMIN_JWT_SECRET", "")

	out, err := runCmd(t, "token", "recepcion@hotel.example")
	require.NoError(t, err)

	claims, err := jwt.New("cli-secret", time.Hour, "hotel-test").ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "recepcion@hotel.example", claims.Login)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestTokenCmd_RequiresLogin(t *testing.T) {
	_, err := runCmd(t, "token")
	assert.Error(t, err)
}

func TestListOrDash(t *testing.T) {
	assert.Equal(t, "-", listOrDash(nil))
	assert.Equal(t, "single, double", listOrDash([]string{"single", "double"}))
}
