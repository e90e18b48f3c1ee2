package kernel

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thanzeeha/portfolio4/document"
	"github.com/thanzeeha/portfolio4/metal/env"
	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

func validEnvVars(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("ENV_APP_NAME", "portfolio")
	t.Setenv("ENV_APP_URL", "https://portfolio.test")
	t.Setenv("ENV_APP_ENV_TYPE", "local")
	t.Setenv("ENV_APP_MASTER_KEY", "12345678901234567890123456789012")
	t.Setenv("ENV_APP_LOG_LEVEL", "debug")
	t.Setenv("ENV_APP_LOGS_DIR", filepath.Join(dir, "logs_%s.log"))
	t.Setenv("ENV_APP_LOGS_DATE_FORMAT", "2006_01_02")
	t.Setenv("ENV_HTTP_HOST", "localhost")
	t.Setenv("ENV_HTTP_PORT", "8080")
	t.Setenv("ENV_PING_USERNAME", "pinguser12345678")
	t.Setenv("ENV_PING_PASSWORD", "pingpass12345678")
	t.Setenv("ENV_ADMIN_PASSWORD", "open sesame")
	t.Setenv("ENV_CONTENT_FILE", filepath.Join(dir, "content", "profile.json"))
	t.Setenv("ENV_REMOTE_OWNER", "thanzeeha")
	t.Setenv("ENV_REMOTE_REPO", "portfolio4")
	t.Setenv("ENV_REMOTE_PATH", "src/data/constants.ts")
}

func TestMakeEnv(t *testing.T) {
	validEnvVars(t)

	environment := MakeEnv(portal.GetDefaultValidator())

	if environment.App.Name != "portfolio" {
		t.Fatalf("env not loaded")
	}

	if environment.Remote.GetBranch() != "main" {
		t.Fatalf("expected default branch, got %q", environment.Remote.GetBranch())
	}
}

func TestIgnite(t *testing.T) {
	dir := t.TempDir()

	content := "ENV_APP_NAME=portfolio\n" +
		"ENV_APP_URL=https://portfolio.test\n" +
		"ENV_APP_ENV_TYPE=local\n" +
		"ENV_APP_MASTER_KEY=12345678901234567890123456789012\n" +
		"ENV_APP_LOG_LEVEL=debug\n" +
		"ENV_APP_LOGS_DIR=" + filepath.Join(dir, "logs_%s.log") + "\n" +
		"ENV_APP_LOGS_DATE_FORMAT=2006_01_02\n" +
		"ENV_HTTP_HOST=localhost\n" +
		"ENV_HTTP_PORT=8080\n" +
		"ENV_PING_USERNAME=pinguser12345678\n" +
		"ENV_PING_PASSWORD=pingpass12345678\n" +
		"ENV_ADMIN_PASSWORD=open sesame\n" +
		"ENV_CONTENT_FILE=" + filepath.Join(dir, "profile.json") + "\n" +
		"ENV_REMOTE_OWNER=thanzeeha\n" +
		"ENV_REMOTE_REPO=portfolio4\n" +
		"ENV_REMOTE_PATH=src/data/constants.ts\n"

	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	environment, err := Ignite(envFile, portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("ignite: %v", err)
	}

	if environment.Store.ContentFile == "" {
		t.Fatal("content file not loaded")
	}

	if _, err := Ignite(filepath.Join(dir, "missing.env"), portal.GetDefaultValidator()); err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestMakeVerifier(t *testing.T) {
	plain := MakeVerifier(env.AdminEnvironment{Password: "open sesame"})
	if !plain.Verify("open sesame") || plain.Verify("nope") {
		t.Fatal("plain verifier misbehaves")
	}

	hashed := MakeVerifier(env.AdminEnvironment{
		PasswordHash: portal.Sha256Hex([]byte("open sesame")),
	})
	if !hashed.Verify("open sesame") || hashed.Verify("nope") {
		t.Fatal("hashed verifier misbehaves")
	}

	if _, ok := hashed.(auth.HashedVerifier); !ok {
		t.Fatal("hash configuration must pick the hashed strategy")
	}
}

func TestMakeRemoteStore(t *testing.T) {
	validEnvVars(t)

	environment := MakeEnv(portal.GetDefaultValidator())

	if MakeRemoteStore(environment) != nil {
		t.Fatal("no token configured, remote store must be nil")
	}

	environment.Remote.Token = "secret-token"

	if MakeRemoteStore(environment) == nil {
		t.Fatal("token configured, remote store must be built")
	}
}

func TestMakeBackupScheduler(t *testing.T) {
	validEnvVars(t)

	environment := MakeEnv(portal.GetDefaultValidator())
	store := MakeContentStore(environment)

	s, err := MakeBackupScheduler(environment, store, nil)
	if err != nil || s != nil {
		t.Fatalf("no schedule must mean no job: %v %v", s, err)
	}

	environment.Backup.Schedule = "0 * * * *"

	if _, err := MakeBackupScheduler(environment, store, nil); err == nil {
		t.Fatal("schedule without a remote store must fail")
	}

	environment.Remote.Token = "secret-token"

	s, err = MakeBackupScheduler(environment, store, MakeRemoteStore(environment))
	if err != nil || s == nil {
		t.Fatalf("expected a scheduler: %v", err)
	}
}

func bootTestApp(t *testing.T) *App {
	t.Helper()

	validEnvVars(t)

	app, err := MakeApp(MakeEnv(portal.GetDefaultValidator()), portal.GetDefaultValidator())
	if err != nil {
		t.Fatalf("make app: %v", err)
	}

	t.Cleanup(app.CloseLogs)

	app.Boot()

	return app
}

func TestAppServesProfile(t *testing.T) {
	app := bootTestApp(t)

	server := httptest.NewServer(app.GetMux())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/profile")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var doc document.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode profile: %v", err)
	}

	if doc.Name == "" {
		t.Fatal("profile document is empty")
	}
}

func TestAppGuardsAdminRoutes(t *testing.T) {
	app := bootTestApp(t)

	server := httptest.NewServer(app.GetMux())
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/admin/commit", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("post commit: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %d", resp.StatusCode)
	}
}

func TestAppContentIngressRejectsWrongMethod(t *testing.T) {
	app := bootTestApp(t)

	server := httptest.NewServer(app.GetMux())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/update-content")
	if err != nil {
		t.Fatalf("get ingress: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestAppLoginFlow(t *testing.T) {
	app := bootTestApp(t)

	server := httptest.NewServer(app.GetMux())
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL+"/auth/login", "application/json", strings.NewReader(`{"password":"open sesame"}`))
	if err != nil {
		t.Fatalf("post login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	if _, err := app.GetGate().Session(body.Token); err != nil {
		t.Fatalf("issued token must open a session: %v", err)
	}
}
