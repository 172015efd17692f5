package main

import (
	"bytes"
	"strings"
	"testing"

	"karla-connector/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var configPath string
	cmd := issueCmd(&configPath)
	switch args[0] {
	case "verify":
		cmd = verifyCmd(&configPath)
	case "sign":
		cmd = signCmd(&configPath)
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args[1:])
	err := cmd.Execute()
	return out.String(), err
}

func TestIssueAndVerify(t *testing.T) {
	t.Setenv("KARLA_HOOKS_SECRET", "cli-secret")

	out, err := run(t, "", "issue", "demo-shop")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Token:   "))

	token := strings.TrimSpace(strings.TrimPrefix(strings.SplitN(out, "\n", 2)[0], "Token:"))
	out, err = run(t, "", "verify", token)
	require.NoError(t, err)
	assert.Contains(t, out, "Subject: demo-shop")
}

func TestIssue_MissingSecret(t *testing.T) {
	t.Setenv("KARLA_HOOKS_SECRET", "")

	_, err := run(t, "", "issue", "demo-shop")
	assert.ErrorContains(t, err, "hooks.secret")
}

func TestSign(t *testing.T) {
	t.Setenv("KARLA_WEBHOOK_SECRET", "whsec")
	body := `{"event_group":"order_placed"}`

	out, err := run(t, body, "sign")
	require.NoError(t, err)

	parsed, err := service.ParseSignatureHeader(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, service.NewHMACSignatureService().Sign("whsec", parsed.Timestamp, []byte(body)), parsed.SignatureHex)
}
