package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
)

const testOAuthClient = `{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`

// writeCredentials writes oauth_client.json and, if token is set, token.json.
func writeCredentials(t *testing.T, dir, token string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.OAuthClientFile), []byte(testOAuthClient), 0600); err != nil {
		t.Fatalf("failed to write oauth_client.json: %v", err)
	}
	if token == "" {
		return
	}
	if err := os.WriteFile(filepath.Join(dir, config.TokenFile), []byte(token), 0600); err != nil {
		t.Fatalf("failed to write token.json: %v", err)
	}
}

func TestLoginCommand_NoOAuthClient(t *testing.T) {
	dir := t.TempDir()
	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: dir}

	code := (&commands.LoginCmd{}).Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if outBuf.String() != "" {
		t.Errorf("expected no stdout, got %q", outBuf.String())
	}
	if !strings.HasPrefix(errBuf.String(), "error: oauth_client.json not found in "+dir) {
		t.Errorf("expected setup instructions, got %q", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "todolist login") {
		t.Error("setup instructions should mention todolist login")
	}
}

// A stale token.json must not short-circuit login as "already logged in".
func TestLoginCommand_StaleToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"corrupt", `{not json`},
		{"no refresh token", `{"access_token":"test","token_type":"Bearer","expiry":"2020-01-01T00:00:00Z"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeCredentials(t, dir, tt.token)

			var outBuf, errBuf bytes.Buffer
			cfg := &config.Config{Dir: dir}

			// Cancelled so the callback wait returns at once
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			code := (&commands.LoginCmd{}).Run(ctx, cfg, nil, nil, &outBuf, &errBuf)

			if outBuf.String() == "already logged in\n" {
				t.Error("should not say 'already logged in' with a stale token")
			}
			if code == exitcode.Success {
				t.Errorf("expected login to fail after cancel, got exit code %d", code)
			}
		})
	}
}

func TestLogoutCommand_OnlyRemovesToken(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, `{"access_token":"test","refresh_token":"test"}`)

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: dir}

	code := (&commands.LogoutCmd{}).Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if errBuf.String() != "" {
		t.Errorf("expected no stderr, got %q", errBuf.String())
	}
	if outBuf.String() != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", outBuf.String())
	}
	if cfg.HasToken() {
		t.Error("token.json should have been deleted")
	}
	if !cfg.HasOAuthClient() {
		t.Error("oauth_client.json should NOT have been deleted")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	tests := []struct {
		quiet    bool
		expected string
	}{
		{false, "not logged in\n"},
		{true, ""},
	}
	for _, tt := range tests {
		var outBuf, errBuf bytes.Buffer
		cfg := &config.Config{Dir: t.TempDir(), Quiet: tt.quiet}

		code := (&commands.LogoutCmd{}).Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

		if code != exitcode.Success {
			t.Errorf("quiet=%v: expected exit code %d, got %d", tt.quiet, exitcode.Success, code)
		}
		if errBuf.String() != "" {
			t.Errorf("quiet=%v: expected no stderr, got %q", tt.quiet, errBuf.String())
		}
		if outBuf.String() != tt.expected {
			t.Errorf("quiet=%v: expected %q, got %q", tt.quiet, tt.expected, outBuf.String())
		}
	}
}
