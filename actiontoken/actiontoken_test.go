package actiontoken

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jose "github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

const audience = "https://actions.contoso.com"

type mockOIDC struct {
	srv    *httptest.Server
	issuer string
}

func newMockOIDC(t *testing.T, keysJSON []byte) *mockOIDC {
	t.Helper()
	m := &mockOIDC{}
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":   m.issuer,
			"jwks_uri": m.issuer + "/keys",
		})
	})
	mux.HandleFunc("/keys", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(keysJSON)
	})
	m.srv = httptest.NewServer(mux)
	m.issuer = m.srv.URL
	t.Cleanup(m.srv.Close)
	return m
}

func genRSA(t *testing.T) (*rsa.PrivateKey, string, []byte) {
	t.Helper()
	pk, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("gen key: %v", err)
	}
	kid := "test-key"
	set := jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{Key: &pk.PublicKey, KeyID: kid, Algorithm: "RS256", Use: "sig"}}}
	b, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal jwks: %v", err)
	}
	return pk, kid, b
}

func signToken(t *testing.T, pk *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = kid
	s, err := tok.SignedString(pk)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func baseClaims(issuer string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":    issuer,
		"aud":    audience,
		"sub":    "john@contoso.com",
		"sender": "sender@contoso.com",
		"tid":    "72f988bf-86f1-41af-91ab-2d7cd011db47",
		"appid":  OutlookAppID,
		"iat":    now.Unix(),
		"exp":    now.Add(time.Hour).Unix(),
	}
}

func newVerifier(t *testing.T, m *mockOIDC, mutate func(*Config)) *Verifier {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Issuer = m.issuer
	cfg.Audience = audience
	cfg.Leeway = 0
	if mutate != nil {
		mutate(cfg)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	v, err := NewFromDiscovery(ctx, cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return v
}

func TestVerifyHappyPath(t *testing.T) {
	pk, kid, jwks := genRSA(t)
	m := newMockOIDC(t, jwks)
	v := newVerifier(t, m, nil)

	tok, err := v.Verify(context.Background(), signToken(t, pk, kid, baseClaims(m.issuer)))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if tok.Subject() != "john@contoso.com" || tok.ActionPerformer() != "john@contoso.com" {
		t.Fatalf("subject = %q", tok.Subject())
	}
	if tok.Sender() != "sender@contoso.com" || tok.TenantID() != "72f988bf-86f1-41af-91ab-2d7cd011db47" {
		t.Fatalf("sender %q tenant %q", tok.Sender(), tok.TenantID())
	}
	var out struct {
		AppID string `json:"appid"`
	}
	if err := tok.Claims(&out); err != nil {
		t.Fatalf("claims: %v", err)
	}
	if out.AppID != OutlookAppID {
		t.Fatalf("appid roundtrip = %q", out.AppID)
	}
}

func TestVerifyRejects(t *testing.T) {
	pk, kid, jwks := genRSA(t)
	m := newMockOIDC(t, jwks)
	v := newVerifier(t, m, func(c *Config) { c.Senders = []string{"sender@contoso.com"} })

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("gen key: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(jwt.MapClaims)
		key    *rsa.PrivateKey
	}{
		{name: "wrong audience", mutate: func(c jwt.MapClaims) { c["aud"] = "https://elsewhere" }},
		{name: "wrong issuer", mutate: func(c jwt.MapClaims) { c["iss"] = "https://evil.example" }},
		{name: "expired", mutate: func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Hour).Unix() }},
		{name: "missing exp", mutate: func(c jwt.MapClaims) { delete(c, "exp") }},
		{name: "wrong appid", mutate: func(c jwt.MapClaims) { c["appid"] = "00000000-0000-0000-0000-000000000000" }},
		{name: "missing sub", mutate: func(c jwt.MapClaims) { delete(c, "sub") }},
		{name: "sender not allowed", mutate: func(c jwt.MapClaims) { c["sender"] = "mallory@contoso.com" }},
		{name: "wrong key", key: other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := baseClaims(m.issuer)
			if tt.mutate != nil {
				tt.mutate(claims)
			}
			key := pk
			if tt.key != nil {
				key = tt.key
			}
			_, err := v.Verify(context.Background(), signToken(t, key, kid, claims))
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("want ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestVerifyEmptyToken(t *testing.T) {
	v, err := NewWithKeyfunc(&Config{Issuer: DefaultIssuer, Audience: audience}, func(*jwt.Token) (any, error) {
		return nil, errors.New("unused")
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := v.Verify(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestNewRequiresAudience(t *testing.T) {
	if _, err := NewWithKeyfunc(DefaultConfig(), nil); err == nil {
		t.Fatal("expected an error without an audience")
	}
}

func TestMiddleware(t *testing.T) {
	pk, kid, jwks := genRSA(t)
	m := newMockOIDC(t, jwks)
	v := newVerifier(t, m, nil)

	h := Middleware(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, ok := FromContext(r.Context())
		if !ok {
			t.Error("token missing from context")
			return
		}
		SetActionStatus(w, "Thanks "+tok.ActionPerformer())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		auth       string
		wantStatus int
		wantChall  string
	}{
		{name: "missing", wantStatus: http.StatusUnauthorized, wantChall: "Bearer"},
		{name: "malformed", auth: "Basic abc", wantStatus: http.StatusBadRequest, wantChall: `error="invalid_request"`},
		{name: "invalid", auth: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantChall: `error="invalid_token"`},
		{name: "valid", auth: "Bearer " + signToken(t, pk, kid, baseClaims(m.issuer)), wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/actions/approve", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("WWW-Authenticate"); !strings.Contains(got, tt.wantChall) {
				t.Fatalf("challenge = %q, want it to contain %q", got, tt.wantChall)
			}
			if tt.wantStatus == http.StatusOK && rec.Header().Get(ActionStatusHeader) != "Thanks john@contoso.com" {
				t.Fatalf("status header = %q", rec.Header().Get(ActionStatusHeader))
			}
		})
	}
}
