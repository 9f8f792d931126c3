package signing

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim names carrying the serialized card in an Outlook signed card.
const (
	AdaptiveCardClaim = "adaptiveCardSerialized"
	MessageCardClaim  = "messageCardSerialized"
)

// OutlookSigner signs card payloads as the RS256 JWT that Outlook expects
// inside a signed card script block. The card JSON travels as a string claim
// next to the sender, originator and recipients.
type OutlookSigner struct {
	Key   *rsa.PrivateKey
	KeyID string

	// Sender is the address of the mailbox sending the card.
	Sender string
	// Originator is the provider id registered for actionable messages.
	Originator string
	Recipients []string

	// CardClaim defaults to AdaptiveCardClaim.
	CardClaim string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Sign implements card.Signer.
func (s *OutlookSigner) Sign(ctx context.Context, payload []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Key == nil {
		return "", errors.New("signing: outlook signer has no key")
	}
	recipients := s.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	rb, err := json.Marshal(recipients)
	if err != nil {
		return "", fmt.Errorf("signing: marshal recipients: %w", err)
	}
	claim := s.CardClaim
	if claim == "" {
		claim = AdaptiveCardClaim
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sender":               s.Sender,
		"originator":           s.Originator,
		"recipientsSerialized": string(rb),
		claim:                  string(payload),
		"iat":                  now().Unix(),
	})
	if s.KeyID != "" {
		tok.Header["kid"] = s.KeyID
	}
	signed, err := tok.SignedString(s.Key)
	if err != nil {
		return "", fmt.Errorf("signing: sign outlook token: %w", err)
	}
	return signed, nil
}
