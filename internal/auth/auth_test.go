package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"remind/internal/config"
)

const testClient = `{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`

func TestOAuthConfig(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	if _, err := OAuthConfig(cfg); err == nil || !strings.Contains(err.Error(), "oauth_client.json") {
		t.Errorf("expected missing oauth_client.json error, got %v", err)
	}

	if err := os.WriteFile(cfg.OAuthClientPath(), []byte(testClient), 0600); err != nil {
		t.Fatalf("write client: %v", err)
	}
	oc, err := OAuthConfig(cfg)
	if err != nil {
		t.Fatalf("OAuthConfig: %v", err)
	}
	if oc.ClientID != "test" {
		t.Errorf("expected client id %q, got %q", "test", oc.ClientID)
	}
	if len(oc.Scopes) != 1 || oc.Scopes[0] != TasksScope {
		t.Errorf("unexpected scopes %v", oc.Scopes)
	}
}

func TestSaveAndLoadToken(t *testing.T) {
	cfg := &config.Config{Dir: filepath.Join(t.TempDir(), "nested")}

	if err := SaveToken(cfg, &oauth2.Token{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	info, err := os.Stat(cfg.TokenPath())
	if err != nil {
		t.Fatalf("stat token: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}

	token, err := LoadToken(cfg)
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if token.AccessToken != "a" || token.RefreshToken != "r" {
		t.Errorf("unexpected token %+v", token)
	}
}

func TestTokenValid_WithoutRefreshToken(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	os.WriteFile(cfg.OAuthClientPath(), []byte(testClient), 0600)
	os.WriteFile(cfg.TokenPath(), []byte(`{"access_token":"expired","token_type":"Bearer"}`), 0600)

	if TokenValid(cfg) {
		t.Error("expected token without refresh token to be invalid")
	}
}
