// Package actiontoken verifies the bearer tokens Outlook attaches to the
// HTTP requests sent by actionable message actions (Action.Http and
// MessageCard HttpPOST).
package actiontoken

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	keyfunc "github.com/MicahParks/keyfunc/v3"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultIssuer is the issuer of Outlook action tokens.
	DefaultIssuer = "https://substrate.office.com/sts/"
	// OutlookAppID is the appid claim of tokens minted for Outlook.
	OutlookAppID = "48af08dc-f6d2-435f-b2a7-069abd99c086"
)

// ErrUnauthorized indicates that the token failed validation and the action
// request should be rejected.
var ErrUnauthorized = errors.New("actiontoken: unauthorized")

// Config controls validation of action tokens.
type Config struct {
	// Issuer is used both for discovery and for the iss check.
	Issuer string
	// Audience is the base URL of the service receiving the actions.
	Audience string
	// AppID is the required appid claim.
	AppID       string
	AllowedAlgs []string
	Leeway      time.Duration
	// Senders, when set, restricts the sender claim to these addresses.
	Senders []string
	// Logger defaults to discarding output.
	Logger *slog.Logger
}

// DefaultConfig returns a Config for Outlook's production issuer. Audience
// must still be set.
func DefaultConfig() *Config {
	return &Config{
		Issuer:      DefaultIssuer,
		AppID:       OutlookAppID,
		AllowedAlgs: []string{"RS256"},
		Leeway:      5 * time.Minute,
	}
}

// Token is a verified action token.
type Token struct {
	sub    string
	claims map[string]any
}

// Subject returns the sub claim.
func (t *Token) Subject() string { return t.sub }

// ActionPerformer is the address of the user who took the action. Outlook
// puts it in sub.
func (t *Token) ActionPerformer() string { return t.sub }

// Sender is the address of the mailbox that sent the card.
func (t *Token) Sender() string { return t.str("sender") }

// TenantID returns the tid claim.
func (t *Token) TenantID() string { return t.str("tid") }

func (t *Token) str(name string) string {
	s, _ := t.claims[name].(string)
	return s
}

// Claims decodes the raw claims into ref.
func (t *Token) Claims(ref any) error {
	b, err := json.Marshal(t.claims)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, ref)
}

// Verifier validates action tokens.
type Verifier struct {
	cfg     Config
	keyfunc jwt.Keyfunc
	log     *slog.Logger
}

// NewFromDiscovery performs OIDC discovery on cfg.Issuer to find the JWKS
// and returns a Verifier using it. Keys are refreshed in the background
// until ctx is done.
func NewFromDiscovery(ctx context.Context, cfg *Config) (*Verifier, error) {
	if cfg == nil {
		return nil, errors.New("actiontoken: config is required")
	}
	if cfg.Issuer == "" {
		return nil, errors.New("actiontoken: issuer is required")
	}
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("actiontoken: oidc discovery failed: %w", err)
	}
	var meta struct {
		JwksURI string `json:"jwks_uri"`
	}
	if err := provider.Claims(&meta); err != nil {
		return nil, fmt.Errorf("actiontoken: invalid discovery metadata: %w", err)
	}
	if meta.JwksURI == "" {
		return nil, errors.New("actiontoken: discovery incomplete: missing jwks_uri")
	}
	return NewStatic(ctx, cfg, meta.JwksURI)
}

// NewStatic returns a Verifier that fetches keys from jwksURI without
// discovery.
func NewStatic(ctx context.Context, cfg *Config, jwksURI string) (*Verifier, error) {
	if jwksURI == "" {
		return nil, errors.New("actiontoken: jwks uri required")
	}
	kf, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURI})
	if err != nil {
		return nil, fmt.Errorf("actiontoken: jwks init failed: %w", err)
	}
	return NewWithKeyfunc(cfg, kf.Keyfunc)
}

// NewWithKeyfunc returns a Verifier resolving keys with kf.
func NewWithKeyfunc(cfg *Config, kf jwt.Keyfunc) (*Verifier, error) {
	if cfg == nil {
		return nil, errors.New("actiontoken: config is required")
	}
	if cfg.Issuer == "" {
		return nil, errors.New("actiontoken: issuer is required")
	}
	if cfg.Audience == "" {
		return nil, errors.New("actiontoken: audience is required")
	}
	c := *cfg
	if len(c.AllowedAlgs) == 0 {
		c.AllowedAlgs = []string{"RS256"}
	}
	if c.AppID == "" {
		c.AppID = OutlookAppID
	}
	log := c.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Verifier{
		cfg: c,
		log: log,
		keyfunc: func(t *jwt.Token) (any, error) {
			if alg := t.Method.Alg(); !slices.Contains(c.AllowedAlgs, alg) {
				return nil, fmt.Errorf("disallowed alg: %s", alg)
			}
			return kf(t)
		},
	}, nil
}

// Verify checks signature, issuer, audience, expiry and the Outlook claims
// of tok. Every validation failure wraps ErrUnauthorized.
func (v *Verifier) Verify(ctx context.Context, tok string) (*Token, error) {
	t, err := v.verify(tok)
	if err != nil {
		v.log.InfoContext(ctx, "actiontoken.verify.fail", slog.String("err", err.Error()))
		return nil, err
	}
	v.log.DebugContext(ctx, "actiontoken.verify.ok", slog.String("sub", t.sub), slog.String("sender", t.Sender()))
	return t, nil
}

func (v *Verifier) verify(tok string) (*Token, error) {
	if tok == "" {
		return nil, fmt.Errorf("%w: empty token", ErrUnauthorized)
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods(v.cfg.AllowedAlgs),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(v.cfg.Issuer),
		jwt.WithAudience(v.cfg.Audience),
		jwt.WithLeeway(v.cfg.Leeway),
	)
	parsed, err := parser.Parse(tok, v.keyfunc)
	if err != nil {
		return nil, fmt.Errorf("%w: token parse/verify failed: %v", ErrUnauthorized, err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: invalid claims type", ErrUnauthorized)
	}
	if appid, _ := claims["appid"].(string); appid != v.cfg.AppID {
		return nil, fmt.Errorf("%w: unexpected appid %q", ErrUnauthorized, appid)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub", ErrUnauthorized)
	}
	t := &Token{sub: sub, claims: claims}
	if len(v.cfg.Senders) > 0 && !slices.Contains(v.cfg.Senders, t.Sender()) {
		return nil, fmt.Errorf("%w: sender %q not allowed", ErrUnauthorized, t.Sender())
	}
	return t, nil
}
