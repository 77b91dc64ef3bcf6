package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika/finsight/backend/internal/config"
	"github.com/vanshika/finsight/backend/internal/session"
)

func loader(secret string) func() (config.Config, error) {
	return func() (config.Config, error) {
		return config.Config{Auth: config.AuthConfig{JWTSecret: secret, DemoUserID: "demo-user", TokenTTL: time.Hour}}, nil
	}
}

func TestToken_IssuesVerifiableToken(t *testing.T) {
	cmd := newRootCommand(loader("s3cret"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"asha"})
	require.NoError(t, cmd.Execute())

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(out.String()))
	sess, err := session.NewAuthenticator("s3cret", "", time.Hour).Authenticate(req)
	require.NoError(t, err)
	assert.Equal(t, "asha", sess.UserID)
}

func TestToken_DemoModeRefuses(t *testing.T) {
	cmd := newRootCommand(loader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"asha"})
	assert.ErrorContains(t, cmd.Execute(), "demo mode")
}
