package card

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/elnormous/contenttype"
)

// Script media types of the email-embeddable card families.
var (
	MessageCardMediaType  = contenttype.NewMediaType("application/ld+json")
	AdaptiveCardMediaType = contenttype.NewMediaType("application/adaptivecard+json")
)

var scriptTypes = map[Kind]contenttype.MediaType{
	KindMessageCard:  MessageCardMediaType,
	KindAdaptiveCard: AdaptiveCardMediaType,
}

var signedTypes = map[Kind]string{
	KindMessageCard:  "SignedMessageCard",
	KindAdaptiveCard: "SignedAdaptiveCard",
}

const signedContext = "http://schema.org/extensions"

var signedScriptType = MessageCardMediaType

// ScriptType returns the media type used to embed cards of kind k in HTML.
func ScriptType(k Kind) (contenttype.MediaType, bool) {
	mt, ok := scriptTypes[k]
	return mt, ok
}

// The payload is JSON produced by encoding/json, which escapes <, > and &,
// so it cannot terminate the script element.
var scriptTemplate = template.Must(template.New("script").Parse(
	`<script type="{{.Type}}">{{.Payload}}</script>`,
))

type scriptContext struct {
	Type    string
	Payload string
}

func renderScript(typ, payload string) (string, error) {
	var sb strings.Builder
	if err := scriptTemplate.Execute(&sb, scriptContext{Type: typ, Payload: payload}); err != nil {
		return "", fmt.Errorf("card: render script: %w", err)
	}
	return sb.String(), nil
}

// signedKey turns "SignedAdaptiveCard" into "signedAdaptiveCard".
func signedKey(typ string) string {
	if typ == "" {
		return typ
	}
	r := []rune(typ)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
