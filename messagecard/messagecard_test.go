package messagecard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/utsurius/actionable-messages/card"
)

const url = "https://www.example.com/"

func TestCorrelationID(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		p := NewMessageCard(nil).Payload()
		id, err := uuid.Parse(p["correlationId"].(string))
		if err != nil {
			t.Fatalf("correlationId is not a UUID: %v", err)
		}
		if id.Version() != 4 {
			t.Fatalf("want a v4 UUID, got version %d", id.Version())
		}
		if len(p) != 3 {
			t.Fatalf("unexpected fields: %v", p)
		}
	})
	t.Run("disabled", func(t *testing.T) {
		p := NewMessageCard(&Options{DisableCorrelationID: true}).Payload()
		if _, ok := p["correlationId"]; ok {
			t.Fatalf("correlationId present: %v", p)
		}
	})
	t.Run("explicit wins", func(t *testing.T) {
		p := NewMessageCard(&Options{CorrelationID: "abc", DisableCorrelationID: true}).Payload()
		if p["correlationId"] != "abc" {
			t.Fatalf("correlationId = %v", p["correlationId"])
		}
	})
}

func TestOpenURITargets(t *testing.T) {
	a, err := NewOpenURI("Open", NewActionTarget(OSWindows, url))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	err = a.AddTargets(NewActionTarget(OSWindows, "https://www.sample.com/"))
	if !errors.Is(err, card.ErrDuplicateTarget) {
		t.Fatalf("want DuplicateTarget, got %v", err)
	}
	if !strings.Contains(err.Error(), "target already set for 'windows'") {
		t.Fatalf("error should name the platform: %v", err)
	}
	if err := a.AddTargets(NewActionTarget(OSAndroid, url), NewActionTarget(OSiOS, url), NewActionTarget(OSAndroid, url)); !errors.Is(err, card.ErrDuplicateTarget) {
		t.Fatalf("duplicate within one call, got %v", err)
	}
	if err := a.AddTargets(NewActionTarget(OSAndroid, url)); err != nil {
		t.Fatalf("a rejected call must not record its targets: %v", err)
	}
	want := map[string]any{
		"@type": "OpenUri",
		"name":  "Open",
		"targets": []any{
			map[string]any{"os": "windows", "uri": url},
			map[string]any{"os": "android", "uri": url},
		},
	}
	if diff := cmp.Diff(want, a.AsData().Map()); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestMultichoiceRejectsDuplicateValues(t *testing.T) {
	in, err := NewMultichoiceInput(&MultichoiceInputOptions{Style: ChoiceStyleExpanded}, NewInputChoice("One", "1"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := in.AddChoices(NewInputChoice("Uno", "1")); !errors.Is(err, card.ErrDuplicateChoiceValue) {
		t.Fatalf("want DuplicateChoiceValue, got %v", err)
	}
	if _, err := NewMultichoiceInput(nil, NewInputChoice("a", "x"), NewInputChoice("b", "x")); !errors.Is(err, card.ErrDuplicateChoiceValue) {
		t.Fatalf("want DuplicateChoiceValue, got %v", err)
	}
}

func TestFullCard(t *testing.T) {
	section, err := NewSection(&SectionOptions{
		Title:         "Section first",
		ActivityImage: url,
		HeroImage:     NewHeroImage(url, "hero"),
		Facts:         []*Fact{NewFact("Status", "Open")},
	})
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	post, err := NewHTTPPost("Send", url, &HTTPPostOptions{
		Headers: []*card.Header{card.NewHeader("Content-Length", "42")},
		Body:    "qwerty",
	})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	comment := NewTextInput(&TextInputOptions{InputOptions: InputOptions{ID: "comment", Title: "Comment"}})
	actionCard, err := NewActionCard("Comment", []Input{comment}, []Action{post})
	if err != nil {
		t.Fatalf("action card: %v", err)
	}

	c := NewMessageCard(&Options{
		Title:            "Message card",
		Summary:          "sample summary",
		CorrelationID:    "c0ffee",
		ExpectedActors:   []string{"a@a.com"},
		HideOriginalBody: card.Bool(true),
	})
	if err := c.AddSections(section); err != nil {
		t.Fatalf("sections: %v", err)
	}
	if err := c.AddActions(actionCard); err != nil {
		t.Fatalf("actions: %v", err)
	}

	js, err := c.JSONPayload()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	want := `{"@type":"MessageCard","@context":"https://schema.org/extensions","title":"Message card","summary":"sample summary",` +
		`"correlationId":"c0ffee","expectedActors":["a@a.com"],"hideOriginalBody":true,` +
		`"sections":[{"title":"Section first","activityImage":"https://www.example.com/","heroImage":{"image":"https://www.example.com/","title":"hero"},"facts":[{"name":"Status","value":"Open"}]}],` +
		`"potentialAction":[{"@type":"ActionCard","name":"Comment",` +
		`"inputs":[{"@type":"TextInput","id":"comment","title":"Comment","isMultiline":false}],` +
		`"actions":[{"@type":"HttpPOST","target":"https://www.example.com/","name":"Send","headers":[{"name":"Content-Length","value":"42"}],"body":"qwerty"}]}]}`
	if js != want {
		t.Fatalf("got  %s\nwant %s", js, want)
	}

	html, err := c.HTMLPayload()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.HasPrefix(html, `<script type="application/ld+json">{"@type":"MessageCard"`) {
		t.Fatalf("unexpected html %s", html)
	}
}

func TestSignedMessageCard(t *testing.T) {
	signer := card.SignerFunc(func(context.Context, []byte) (string, error) { return "tok", nil })
	c := NewMessageCard(&Options{DisableCorrelationID: true}, card.WithSigner(signer))
	html, err := c.SignedHTMLPayload(context.Background())
	if err != nil {
		t.Fatalf("signed: %v", err)
	}
	want := `<script type="application/ld+json">{"@context":"http://schema.org/extensions","@type":"SignedMessageCard","signedMessageCard":"tok"}</script>`
	if html != want {
		t.Fatalf("got  %s\nwant %s", html, want)
	}
}
