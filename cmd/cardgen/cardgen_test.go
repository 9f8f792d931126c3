package main

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/utsurius/actionable-messages/internal/samples"
)

// run executes cardgen with an isolated environment and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{
		"ACTIONABLE_MESSAGES_LANGUAGE_CODE",
		"ACTIONABLE_MESSAGES_INDENT",
		"ACTIONABLE_MESSAGES_REDIS_ADDR",
		"ACTIONABLE_MESSAGES_BOLT_PATH",
		"ACTIONABLE_MESSAGES_CACHE_TTL",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(samples.Names())+1 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i, name := range samples.Names() {
		if !strings.HasPrefix(lines[i+1], name+" ") {
			t.Errorf("line %d = %q, want sample %s", i+1, lines[i+1], name)
		}
	}
}

func TestRenderFormats(t *testing.T) {
	tests := []struct {
		args   []string
		prefix string
	}{
		{[]string{"render", "restaurant"}, `{"type":"AdaptiveCard"`},
		{[]string{"render", "restaurant", "--indent"}, "{\n  \"type\": \"AdaptiveCard\""},
		{[]string{"render", "trello", "--format", "html"}, `<script type="application/ld+json">`},
		{[]string{"render", "restaurant", "--format", "signed-html"}, `<script type="application/ld+json">{"@context"`},
		{[]string{"render", "restaurant", "--format", "yaml"}, "type: AdaptiveCard\n$schema: http://adaptivecards.io/schemas/adaptive-card.json\nversion: \"1.0\"\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.HasPrefix(out, tt.prefix) {
				t.Fatalf("got:\n%s", out)
			}
		})
	}
}

func TestRenderYAMLKeepsValues(t *testing.T) {
	js, err := run(t, "render", "flight-itinerary")
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	ys, err := run(t, "render", "flight-itinerary", "--format", "yaml")
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromJSON, fromYAML map[string]any
	if err := json.Unmarshal([]byte(js), &fromJSON); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if err := yaml.Unmarshal([]byte(ys), &fromYAML); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	// Integers decode as float64 from JSON and int from YAML.
	b, _ := json.Marshal(fromYAML)
	fromYAML = nil
	if err := json.Unmarshal(b, &fromYAML); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("yaml differs (-json +yaml):\n%s", diff)
	}
}

func TestRenderLanguage(t *testing.T) {
	out, err := run(t, "render", "calendar-reminder", "--lang", "pl")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Sesja projektowa Adaptive Cards") {
		t.Fatalf("not translated:\n%s", out)
	}
}

func TestRenderLanguageFromSettingsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(file, []byte("language_code: de\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "--config", file, "render", "hero")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Offizielle Website") {
		t.Fatalf("not translated:\n%s", out)
	}
}

func TestRenderErrors(t *testing.T) {
	for _, args := range [][]string{
		{"render", "nope"},
		{"render", "restaurant", "--format", "xml"},
		{"render", "hero", "--format", "html"},
		{"render"},
		{"--log-level", "loud", "list"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestSchema(t *testing.T) {
	out, err := run(t, "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var s struct {
		Type       string         `json:"type"`
		Properties map[string]any `json:"properties"`
	}
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Type != "object" || len(s.Properties) != 7 {
		t.Fatalf("schema = %+v", s)
	}
}

func TestLoadSigner(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "key.pem")
	if err := os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	a, err := loadSigner(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b, err := loadSigner(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if a.ActiveKID() != b.ActiveKID() {
		t.Fatalf("kid changed between loads: %s != %s", a.ActiveKID(), b.ActiveKID())
	}

	if err := os.WriteFile(path, []byte("not pem"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadSigner(path); err == nil {
		t.Fatal("expected an error for a non-PEM file")
	}
}
