// Package signing produces the signed forms of card payloads used by
// SignedAdaptiveCard and SignedMessageCard script blocks.
package signing

import (
	"context"
	"crypto"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	jose "github.com/go-jose/go-jose/v4"
)

// ErrUnknownKey is returned when a key id is not registered.
var ErrUnknownKey = errors.New("signing: unknown key")

type signingKey struct {
	alg  jose.SignatureAlgorithm
	priv crypto.Signer
	pub  crypto.PublicKey
}

// JWS signs payloads as compact JWS with a rotating set of keys. Every
// registered key stays valid for verification; only the active one signs.
// It is safe for concurrent use.
type JWS struct {
	mu        sync.RWMutex
	activeKid string
	keys      map[string]signingKey
}

func NewJWS() *JWS {
	return &JWS{keys: make(map[string]signingKey)}
}

// AddEd25519Key registers a key pair under kid. The first key added becomes
// active.
func (j *JWS) AddEd25519Key(kid string, priv ed25519.PrivateKey) {
	j.add(kid, signingKey{alg: jose.EdDSA, priv: priv, pub: priv.Public()})
}

// AddRSAKey registers an RS256 key pair under kid. The first key added
// becomes active.
func (j *JWS) AddRSAKey(kid string, priv *rsa.PrivateKey) {
	j.add(kid, signingKey{alg: jose.RS256, priv: priv, pub: &priv.PublicKey})
}

func (j *JWS) add(kid string, k signingKey) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.keys[kid] = k
	if j.activeKid == "" {
		j.activeKid = kid
	}
}

// SetActive selects the key used for signing.
func (j *JWS) SetActive(kid string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if _, ok := j.keys[kid]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, kid)
	}
	j.activeKid = kid
	return nil
}

// ActiveKID returns the kid of the signing key.
func (j *JWS) ActiveKID() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.activeKid
}

// Sign implements card.Signer.
func (j *JWS) Sign(ctx context.Context, payload []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	j.mu.RLock()
	kid := j.activeKid
	k, ok := j.keys[kid]
	j.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: no active key", ErrUnknownKey)
	}

	opts := (&jose.SignerOptions{}).WithType("JWT").WithHeader("kid", kid)
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: k.alg, Key: k.priv}, opts)
	if err != nil {
		return "", fmt.Errorf("signing: new signer: %w", err)
	}
	obj, err := signer.Sign(payload)
	if err != nil {
		return "", fmt.Errorf("signing: sign: %w", err)
	}
	return obj.CompactSerialize()
}

// Verify checks token against the registered keys and returns its payload
// and the kid that signed it.
func (j *JWS) Verify(token string) ([]byte, string, error) {
	obj, err := jose.ParseSigned(token, []jose.SignatureAlgorithm{jose.EdDSA, jose.RS256})
	if err != nil {
		return nil, "", fmt.Errorf("signing: parse: %w", err)
	}
	if len(obj.Signatures) != 1 {
		return nil, "", errors.New("signing: expected exactly one signature")
	}
	kid := obj.Signatures[0].Header.KeyID
	j.mu.RLock()
	k, ok := j.keys[kid]
	j.mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownKey, kid)
	}
	if alg := obj.Signatures[0].Header.Algorithm; alg != string(k.alg) {
		return nil, "", fmt.Errorf("signing: kid %q signs with %s, token uses %s", kid, k.alg, alg)
	}
	payload, err := obj.Verify(k.pub)
	if err != nil {
		return nil, "", fmt.Errorf("signing: verify: %w", err)
	}
	return payload, kid, nil
}

// JWKS returns the public half of every registered key.
func (j *JWS) JWKS() jose.JSONWebKeySet {
	j.mu.RLock()
	defer j.mu.RUnlock()
	set := jose.JSONWebKeySet{Keys: make([]jose.JSONWebKey, 0, len(j.keys))}
	for _, kid := range slices.Sorted(maps.Keys(j.keys)) {
		k := j.keys[kid]
		set.Keys = append(set.Keys, jose.JSONWebKey{Key: k.pub, KeyID: kid, Algorithm: string(k.alg), Use: "sig"})
	}
	return set
}
