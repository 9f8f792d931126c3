package samples

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/utsurius/actionable-messages/card"
)

func decode(t *testing.T, c Card) map[string]any {
	t.Helper()
	js, err := c.JSONPayload()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(js), &m); err != nil {
		t.Fatalf("unmarshal %s: %v", js, err)
	}
	return m
}

func TestEverySampleBuilds(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			c, err := Build(s.Name, Params{})
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if c.Kind() != s.Kind {
				t.Fatalf("kind = %s, want %s", c.Kind(), s.Kind)
			}
			m := decode(t, c)
			switch s.Kind {
			case card.KindAdaptiveCard:
				if m["type"] != "AdaptiveCard" {
					t.Fatalf("type = %v", m["type"])
				}
			case card.KindMessageCard:
				if m["@type"] != "MessageCard" {
					t.Fatalf("@type = %v", m["@type"])
				}
			default:
				if _, ok := m["content"]; !ok {
					t.Fatalf("attachment without content: %v", m)
				}
			}
		})
	}
}

func TestNamesMatchRegistry(t *testing.T) {
	names := Names()
	if len(names) != len(All()) {
		t.Fatalf("got %d names for %d samples", len(names), len(All()))
	}
	for _, n := range names {
		if _, ok := Lookup(n); !ok {
			t.Errorf("lookup %q failed", n)
		}
	}
}

func TestBuildUnknown(t *testing.T) {
	if _, err := Build("nope", Params{}); !errors.Is(err, ErrUnknownSample) {
		t.Fatalf("want ErrUnknownSample, got %v", err)
	}
}

func TestCalendarReminderTranslates(t *testing.T) {
	tests := []struct {
		lang string
		want []string
	}{
		{"en-us", []string{"Adaptive Card design session", "Snooze for", "5 minutes", "I'll be late"}},
		{"de", []string{"Designsitzung Adaptive Cards", "Erinnern in", "5 Minuten", "Ich komme später"}},
		{"pl-PL", []string{"Sesja projektowa Adaptive Cards", "Przypomnij za", "15 minut", "Spóźnię się"}},
	}
	for _, tt := range tests {
		c, err := Build("calendar-reminder", Params{CardOptions: []card.Option{card.WithLanguageCode(tt.lang)}})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		js, err := c.JSONPayload()
		if err != nil {
			t.Fatalf("json: %v", err)
		}
		for _, w := range tt.want {
			if !strings.Contains(js, w) {
				t.Errorf("%s: %q missing from %s", tt.lang, w, js)
			}
		}
	}
}

func TestHeroTranslates(t *testing.T) {
	c, err := Build("hero", Params{CardOptions: []card.Option{card.WithLanguageCode("de")}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	content := decode(t, c)["content"].(map[string]any)
	var titles []string
	for _, b := range content["buttons"].([]any) {
		titles = append(titles, b.(map[string]any)["title"].(string))
	}
	if diff := cmp.Diff([]string{"Offizielle Website", "Wikipedia-Seite"}, titles); diff != "" {
		t.Fatalf("buttons (-want +got):\n%s", diff)
	}
}

func TestHTMLPayloadPerFamily(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"restaurant", `<script type="application/adaptivecard+json">`},
		{"trello", `<script type="application/ld+json">`},
	}
	for _, tt := range tests {
		c, err := Build(tt.name, Params{})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		html, err := c.HTMLPayload()
		if err != nil {
			t.Fatalf("%s: html: %v", tt.name, err)
		}
		if !strings.HasPrefix(html, tt.prefix) {
			t.Errorf("%s: got %s", tt.name, html)
		}
	}

	c, err := Build("thumbnail", Params{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := c.HTMLPayload(); !errors.Is(err, card.ErrUnsupportedOperation) {
		t.Fatalf("teams cards have no HTML form, got %v", err)
	}
}

func TestActionBaseURL(t *testing.T) {
	c, err := Build("expense-approval", Params{ActionBaseURL: "https://example.test"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var urls []string
	for _, a := range decode(t, c)["actions"].([]any) {
		urls = append(urls, a.(map[string]any)["url"].(string))
	}
	want := []string{"https://example.test/actions/expense-approval", "https://example.test/actions/expense-approval"}
	if diff := cmp.Diff(want, urls); diff != "" {
		t.Fatalf("urls (-want +got):\n%s", diff)
	}
}

func TestTinyPulsePostsAnonymousAnswer(t *testing.T) {
	c, err := Build("tiny-pulse", Params{ActionBaseURL: "https://example.test"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	sections := decode(t, c)["sections"].([]any)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	poll := sections[1].(map[string]any)["potentialAction"].([]any)[0].(map[string]any)
	if poll["@type"] != "ActionCard" || poll["name"] != "Yes" {
		t.Fatalf("poll action = %v", poll)
	}
	answer := poll["actions"].([]any)[0].(map[string]any)
	want := map[string]any{
		"@type":           "HttpPOST",
		"name":            "Answer anonymously",
		"target":          "https://example.test/actions/tiny-pulse",
		"body":            `{"poll":"love-your-job","comment":"{{comment.value}}"}`,
		"bodyContentType": "application/json",
	}
	if diff := cmp.Diff(want, answer); diff != "" {
		t.Fatalf("answer action (-want +got):\n%s", diff)
	}
}

func TestFeedbackFormInputs(t *testing.T) {
	c, err := Build("feedback", Params{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var got []string
	for _, e := range decode(t, c)["body"].([]any) {
		m := e.(map[string]any)
		if id, ok := m["id"].(string); ok {
			got = append(got, m["type"].(string)+":"+id)
		}
	}
	want := []string{
		"Input.Text:name",
		"Input.Text:email",
		"Input.Date:visited",
		"Input.Number:rating",
		"Input.ChoiceSet:topic",
		"Input.Text:comment",
		"Input.Toggle:contact",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("inputs (-want +got):\n%s", diff)
	}
}

func TestSignedSampleNeedsSigner(t *testing.T) {
	c, err := Build("restaurant", Params{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := c.SignedPayload(context.Background()); !errors.Is(err, card.ErrUnsupportedOperation) {
		t.Fatalf("want ErrUnsupportedOperation without a signer, got %v", err)
	}
	signer := card.SignerFunc(func(_ context.Context, payload []byte) (string, error) { return "tok", nil })
	c, err = Build("restaurant", Params{CardOptions: []card.Option{card.WithSigner(signer)}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	html, err := c.SignedHTMLPayload(context.Background())
	if err != nil {
		t.Fatalf("signed html: %v", err)
	}
	if !strings.Contains(html, `"signedAdaptiveCard":"tok"`) {
		t.Fatalf("got %s", html)
	}
}
