package card

import (
	"context"
	"encoding/json"
	"fmt"
)

// Kind identifies the schema family of a card root.
type Kind int

const (
	KindMessageCard Kind = iota + 1
	KindAdaptiveCard
	KindHeroCard
	KindThumbnailCard
)

func (k Kind) String() string {
	switch k {
	case KindMessageCard:
		return "MessageCard"
	case KindAdaptiveCard:
		return "AdaptiveCard"
	case KindHeroCard:
		return "HeroCard"
	case KindThumbnailCard:
		return "ThumbnailCard"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DefaultLanguageCode is used when no configuration supplies one.
const DefaultLanguageCode = "en-us"

// Signer produces the signed form of a rendered JSON payload, used for
// SignedAdaptiveCard and SignedMessageCard script blocks.
type Signer interface {
	Sign(ctx context.Context, payload []byte) (string, error)
}

// SignerFunc adapts a function to the Signer interface.
type SignerFunc func(ctx context.Context, payload []byte) (string, error)

func (f SignerFunc) Sign(ctx context.Context, payload []byte) (string, error) {
	return f(ctx, payload)
}

// Config holds the rendering defaults of a card. The zero value is usable:
// missing fields fall back to DefaultConfig.
type Config struct {
	// LanguageCode is passed to the Encoder on every JSON render.
	LanguageCode string
	// Encoder converts payload values to JSON-native values.
	Encoder Encoder
	// Signer backs SignedPayload; nil means signing is unsupported.
	Signer Signer
	// Prefix and Indent are applied to JSON output when either is set.
	Prefix string
	Indent string
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		LanguageCode: DefaultLanguageCode,
		Encoder:      DefaultEncoder{},
	}
}

// Option configures a card root.
type Option func(*Config)

// WithConfig replaces the whole configuration. Options after it still apply.
func WithConfig(c Config) Option {
	return func(cfg *Config) { *cfg = c }
}

// WithLanguageCode overrides the language code of one card.
func WithLanguageCode(code string) Option {
	return func(cfg *Config) { cfg.LanguageCode = code }
}

// WithEncoder sets the encoder used by JSON renders.
func WithEncoder(e Encoder) Option {
	return func(cfg *Config) { cfg.Encoder = e }
}

// WithSigner enables signed renders.
func WithSigner(s Signer) Option {
	return func(cfg *Config) { cfg.Signer = s }
}

// WithIndent makes JSON output indented, as json.MarshalIndent does.
func WithIndent(prefix, indent string) Option {
	return func(cfg *Config) {
		cfg.Prefix = prefix
		cfg.Indent = indent
	}
}

// DumpOptions are the serializer settings applied to JSON output.
type DumpOptions struct {
	Prefix string
	Indent string
}

// Root owns the payload of one card and renders it. Family packages embed it
// and keep their own pointer to the payload for their setters.
type Root struct {
	kind Kind
	data *Data
	cfg  Config
}

// NewRoot wraps payload as the root of a card of the given kind.
func NewRoot(kind Kind, payload *Data, opts ...Option) *Root {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = DefaultLanguageCode
	}
	if cfg.Encoder == nil {
		cfg.Encoder = DefaultEncoder{}
	}
	if payload == nil {
		payload = NewData()
	}
	return &Root{kind: kind, data: payload, cfg: cfg}
}

// Kind returns the schema family.
func (r *Root) Kind() Kind { return r.kind }

// LanguageCode returns the locale used for JSON renders.
func (r *Root) LanguageCode() string { return r.cfg.LanguageCode }

// SetLanguageCode changes the locale used for later JSON renders.
func (r *Root) SetLanguageCode(code string) { r.cfg.LanguageCode = code }

// DumpOptions returns the serializer settings for JSON output.
func (r *Root) DumpOptions() DumpOptions {
	return DumpOptions{Prefix: r.cfg.Prefix, Indent: r.cfg.Indent}
}

// Payload returns a deep copy of the payload as plain maps and slices.
// Values are not encoded.
func (r *Root) Payload() map[string]any {
	return r.data.Clone().Map()
}

// JSONPayload encodes a copy of the payload with the card's language code.
func (r *Root) JSONPayload() (string, error) {
	b, err := r.encode()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HTMLPayload wraps the JSON payload in a script block typed for the
// card's family.
func (r *Root) HTMLPayload() (string, error) {
	mt, ok := scriptTypes[r.kind]
	if !ok {
		return "", Errorf(UnsupportedOperation, "%s has no HTML script type", r.kind)
	}
	payload, err := r.JSONPayload()
	if err != nil {
		return "", err
	}
	return renderScript(mt.String(), payload)
}

// SignedPayload signs the JSON payload with the configured Signer.
func (r *Root) SignedPayload(ctx context.Context) (string, error) {
	if _, ok := signedTypes[r.kind]; !ok {
		return "", Errorf(UnsupportedOperation, "%s cannot be signed", r.kind)
	}
	if r.cfg.Signer == nil {
		return "", Errorf(UnsupportedOperation, "%s: no signer configured", r.kind)
	}
	b, err := r.encode()
	if err != nil {
		return "", err
	}
	token, err := r.cfg.Signer.Sign(ctx, b)
	if err != nil {
		return "", fmt.Errorf("card: sign payload: %w", err)
	}
	return token, nil
}

// SignedHTMLPayload wraps the signed payload in a JSON-LD script block.
func (r *Root) SignedHTMLPayload(ctx context.Context) (string, error) {
	token, err := r.SignedPayload(ctx)
	if err != nil {
		return "", err
	}
	typ := signedTypes[r.kind]
	body := NewData()
	body.Set("@context", signedContext)
	body.Set("@type", typ)
	body.Set(signedKey(typ), token)
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("card: marshal signed payload: %w", err)
	}
	return renderScript(signedScriptType.String(), string(b))
}

func (r *Root) encode() ([]byte, error) {
	v, err := r.cfg.Encoder.Encode(r.data.Clone(), r.cfg.LanguageCode)
	if err != nil {
		return nil, fmt.Errorf("card: encode payload: %w", err)
	}
	var b []byte
	if r.cfg.Prefix != "" || r.cfg.Indent != "" {
		b, err = json.MarshalIndent(v, r.cfg.Prefix, r.cfg.Indent)
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("card: marshal payload: %w", err)
	}
	return b, nil
}
