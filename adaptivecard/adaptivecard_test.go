package adaptivecard

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/utsurius/actionable-messages/card"
)

type greeting map[string]string

func (g greeting) Translate(locale string) string { return g[locale] }

func payload(t *testing.T, e card.Element) map[string]any {
	t.Helper()
	b, err := json.Marshal(e.AsData())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestEndToEndPayload(t *testing.T) {
	c, err := NewAdaptiveCard(nil)
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	if err := c.AddElements(NewTextBlock("Hello", nil)); err != nil {
		t.Fatalf("add elements: %v", err)
	}
	if err := c.AddActions(NewSubmit(&SubmitOptions{ActionOptions: ActionOptions{Title: "OK"}})); err != nil {
		t.Fatalf("add actions: %v", err)
	}
	got, err := c.JSONPayload()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	want := `{"type":"AdaptiveCard","body":[{"type":"TextBlock","text":"Hello"}],"actions":[{"type":"Action.Submit","title":"OK"}]}`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
	html, err := c.HTMLPayload()
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if html != `<script type="application/adaptivecard+json">`+want+`</script>` {
		t.Fatalf("unexpected html %s", html)
	}
}

func TestFallbackResolution(t *testing.T) {
	t.Run("drop", func(t *testing.T) {
		tb := NewTextBlock("x", nil)
		if err := tb.SetFallback(FallbackDrop); err != nil {
			t.Fatalf("set fallback: %v", err)
		}
		if got := payload(t, tb)["fallback"]; got != "drop" {
			t.Fatalf("fallback = %v", got)
		}
	})
	t.Run("action", func(t *testing.T) {
		a := NewSubmit(nil)
		if err := a.SetFallback(NewOpenURL("https://x/", nil)); err != nil {
			t.Fatalf("set fallback: %v", err)
		}
		want := map[string]any{"type": "Action.OpenUrl", "url": "https://x/"}
		if diff := cmp.Diff(want, payload(t, a)["fallback"]); diff != "" {
			t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("element", func(t *testing.T) {
		img := NewImage("https://x/a.png", nil)
		if err := img.SetFallback(NewTextBlock("no image", nil)); err != nil {
			t.Fatalf("set fallback: %v", err)
		}
		want := map[string]any{"type": "TextBlock", "text": "no image"}
		if diff := cmp.Diff(want, payload(t, img)["fallback"]); diff != "" {
			t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		tb := NewTextBlock("x", nil)
		err := tb.SetFallback(42)
		if !errors.Is(err, card.ErrInvalidFallbackType) {
			t.Fatalf("want InvalidFallbackType, got %v", err)
		}
		if _, ok := payload(t, tb)["fallback"]; ok {
			t.Fatal("failed setter mutated the element")
		}
		if err := tb.SetFallback(NewOpenURL("https://x/", nil)); !errors.Is(err, card.ErrInvalidFallbackType) {
			t.Fatalf("an action is not an element fallback, got %v", err)
		}
		if err := tb.SetFallback(FallbackOption("keep")); !errors.Is(err, card.ErrInvalidFallbackType) {
			t.Fatalf("unknown fallback option accepted: %v", err)
		}
	})
	t.Run("column", func(t *testing.T) {
		col := card.Must(NewColumn(nil))
		if err := col.SetFallback(card.Must(NewColumn(nil, NewTextBlock("narrow", nil)))); err != nil {
			t.Fatalf("set fallback: %v", err)
		}
		if err := col.SetFallback(NewTextBlock("x", nil)); !errors.Is(err, card.ErrInvalidFallbackType) {
			t.Fatalf("want InvalidFallbackType, got %v", err)
		}
	})
}

func TestVersion(t *testing.T) {
	c, err := NewAdaptiveCard(&Options{Version: "1.2"})
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	err = c.SetVersion("9.9")
	if !errors.Is(err, card.ErrInvalidVersion) {
		t.Fatalf("want InvalidVersion, got %v", err)
	}
	if !strings.Contains(err.Error(), "1.0, 1.1, 1.2, 1.3") {
		t.Fatalf("error should list the versions: %v", err)
	}
	if v := c.Payload()["version"]; v != "1.2" {
		t.Fatalf("version = %v after a rejected update", v)
	}
	if _, err := NewAdaptiveCard(&Options{Version: "2.0"}); !errors.Is(err, card.ErrInvalidVersion) {
		t.Fatalf("constructor accepted an unknown version: %v", err)
	}
}

func TestSchemaOption(t *testing.T) {
	c := card.Must(NewAdaptiveCard(&Options{Schema: SchemaURL, Version: "1.3"}))
	js, err := c.JSONPayload()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	want := `{"type":"AdaptiveCard","$schema":"http://adaptivecards.io/schemas/adaptive-card.json","version":"1.3"}`
	if js != want {
		t.Fatalf("got %s", js)
	}
}

func TestCollectionsAppendInOrder(t *testing.T) {
	c := card.Must(NewContainer(nil))
	if err := c.AddItems(NewTextBlock("a", nil), NewTextBlock("b", nil)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.AddItems(NewTextBlock("c", nil)); err != nil {
		t.Fatalf("add: %v", err)
	}
	items := payload(t, c)["items"].([]any)
	var texts []string
	for _, it := range items {
		texts = append(texts, it.(map[string]any)["text"].(string))
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, texts); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	if err := c.SetItems(NewTextBlock("only", nil)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if n := len(payload(t, c)["items"].([]any)); n != 1 {
		t.Fatalf("SetItems should replace, got %d items", n)
	}

	var missing *TextBlock
	if err := c.AddItems(NewTextBlock("x", nil), missing); !errors.Is(err, card.ErrInvalidElementType) {
		t.Fatalf("want InvalidElementType, got %v", err)
	}
	if n := len(payload(t, c)["items"].([]any)); n != 1 {
		t.Fatalf("failed add mutated the container: %d items", n)
	}
}

func TestChildrenAreSnapshotted(t *testing.T) {
	tb := NewTextBlock("before", nil)
	c := card.Must(NewAdaptiveCard(nil))
	if err := c.AddElements(tb); err != nil {
		t.Fatalf("add: %v", err)
	}
	tb.SetText("after")
	body := c.Payload()["body"].([]any)
	if got := body[0].(map[string]any)["text"]; got != "before" {
		t.Fatalf("card observed a later change to its child: %v", got)
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{WidthStretch, "stretch"},
		{"50px", "50px"},
		{2, float64(2)},
	}
	for _, tt := range tests {
		col := card.Must(NewColumn(nil))
		if err := col.SetWidth(tt.in); err != nil {
			t.Fatalf("SetWidth(%v): %v", tt.in, err)
		}
		if got := payload(t, col)["width"]; got != tt.want {
			t.Fatalf("SetWidth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	col := card.Must(NewColumn(nil))
	if err := col.SetWidth(1.5); !errors.Is(err, card.ErrInvalidWidthType) {
		t.Fatalf("want InvalidWidthType, got %v", err)
	}
}

func TestImageHeightAndBackground(t *testing.T) {
	img := NewImage("https://x/a.png", &ImageOptions{AltText: "a"})
	if err := img.SetHeight(HeightStretch); err != nil {
		t.Fatalf("height: %v", err)
	}
	if err := img.SetHeight(12); !errors.Is(err, card.ErrInvalidHeightType) {
		t.Fatalf("want InvalidHeightType, got %v", err)
	}
	if got := payload(t, img)["height"]; got != "stretch" {
		t.Fatalf("height = %v", got)
	}

	c := card.Must(NewContainer(nil))
	bg := NewBackgroundImage("https://x/bg.png", &BackgroundImageOptions{FillMode: FillModeRepeat})
	if err := c.SetBackgroundImage(bg); err != nil {
		t.Fatalf("background: %v", err)
	}
	want := map[string]any{"url": "https://x/bg.png", "fillMode": "repeat"}
	if diff := cmp.Diff(want, payload(t, c)["backgroundImage"]); diff != "" {
		t.Fatalf("background mismatch (-want +got):\n%s", diff)
	}
	if err := c.SetBackgroundImage(img); !errors.Is(err, card.ErrInvalidImageType) {
		t.Fatalf("containers take no *Image background, got %v", err)
	}

	ac := card.Must(NewAdaptiveCard(nil))
	if err := ac.SetBackgroundImage(img); err != nil {
		t.Fatalf("card background: %v", err)
	}
	if err := ac.SetBackgroundImage(3); !errors.Is(err, card.ErrInvalidImageType) {
		t.Fatalf("want InvalidImageType, got %v", err)
	}
}

func TestInputLabel(t *testing.T) {
	in := NewTextInput("name", &TextInputOptions{Placeholder: "Jane"})
	if err := in.SetLabel(greeting{"en-us": "Name", "de": "Name (de)"}); err != nil {
		t.Fatalf("label: %v", err)
	}
	if err := in.SetLabel(7); !errors.Is(err, card.ErrInvalidLabelType) {
		t.Fatalf("want InvalidLabelType, got %v", err)
	}

	c := card.Must(NewAdaptiveCard(nil, card.WithLanguageCode("de")))
	if err := c.AddElements(in); err != nil {
		t.Fatalf("add: %v", err)
	}
	js, err := c.JSONPayload()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	want := `{"type":"AdaptiveCard","body":[{"type":"Input.Text","id":"name","placeholder":"Jane","label":"Name (de)"}]}`
	if js != want {
		t.Fatalf("got  %s\nwant %s", js, want)
	}
}

func TestToggleVisibilityTargets(t *testing.T) {
	a, err := NewToggleVisibility(&ActionOptions{Title: "More"}, "details", NewTargetElement("extra", card.Bool(false)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := map[string]any{
		"type":  "Action.ToggleVisibility",
		"title": "More",
		"targetElements": []any{
			"details",
			map[string]any{"elementId": "extra", "isVisible": false},
		},
	}
	if diff := cmp.Diff(want, payload(t, a)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if err := a.AddTargetElements(3); !errors.Is(err, card.ErrInvalidTargetElementType) {
		t.Fatalf("want InvalidTargetElementType, got %v", err)
	}
}

func TestRichTextInlines(t *testing.T) {
	rt, err := NewRichTextBlock(nil, "plain ", NewTextRun("bold", &TextRunOptions{Weight: FontWeightBolder, Underline: card.Bool(true)}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := map[string]any{
		"type": "RichTextBlock",
		"inlines": []any{
			"plain ",
			map[string]any{"type": "TextRun", "text": "bold", "underline": true, "weight": "bolder"},
		},
	}
	if diff := cmp.Diff(want, payload(t, rt)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if _, err := NewRichTextBlock(nil, NewTextBlock("no", nil)); !errors.Is(err, card.ErrInvalidInlineType) {
		t.Fatalf("want InvalidInlineType, got %v", err)
	}
}

func TestShowCardAndSelectAction(t *testing.T) {
	inner := card.Must(NewAdaptiveCard(nil))
	if err := inner.AddElements(NewTextInput("comment", &TextInputOptions{IsMultiline: card.Bool(true)})); err != nil {
		t.Fatalf("add: %v", err)
	}
	show := NewShowCard(inner, &ActionOptions{Title: "Comment"})
	got := payload(t, show)["card"].(map[string]any)
	if got["type"] != "AdaptiveCard" || len(got["body"].([]any)) != 1 {
		t.Fatalf("nested card = %v", got)
	}
	if err := show.SetCard(nil); !errors.Is(err, card.ErrInvalidElementType) {
		t.Fatalf("want InvalidElementType, got %v", err)
	}

	c := card.Must(NewContainer(&ContainerOptions{SelectAction: (*OpenURL)(nil)}))
	if _, ok := payload(t, c)["selectAction"]; ok {
		t.Fatal("nil select action option should be ignored")
	}
	if err := c.SetSelectAction(nil); !errors.Is(err, card.ErrInvalidElementType) {
		t.Fatalf("want InvalidElementType, got %v", err)
	}
}

func TestTablePayload(t *testing.T) {
	cell := card.Must(NewTableCell(nil, NewTextBlock("1", nil)))
	row := card.Must(NewTableRow(StyleAccent, cell))
	tbl, err := NewTable(&TableOptions{
		Columns:          []map[string]any{{"width": 1}},
		FirstRowAsHeader: card.Bool(true),
		GridStyle:        StyleGood,
	}, row)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := map[string]any{
		"type":    "Table",
		"columns": []any{map[string]any{"width": float64(1)}},
		"rows": []any{map[string]any{
			"type":  "TableRow",
			"cells": []any{map[string]any{"type": "TableCell", "items": []any{map[string]any{"type": "TextBlock", "text": "1"}}}},
			"style": "accent",
		}},
		"firstRowAsHeader": true,
		"gridStyle":        "good",
	}
	if diff := cmp.Diff(want, payload(t, tbl)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

type feedbackForm struct {
	Name      string `json:"name" jsonschema:"title=Your name,maxLength=40"`
	Rating    int    `json:"rating" jsonschema:"minimum=1,maximum=5"`
	Mood      string `json:"mood,omitempty" jsonschema:"enum=happy,enum=sad"`
	Subscribe bool   `json:"subscribe,omitempty" jsonschema:"description=Send me updates"`
}

func TestFormFromStruct(t *testing.T) {
	elems, err := FormFromStruct[feedbackForm]()
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if len(elems) != 4 {
		t.Fatalf("want 4 inputs, got %d", len(elems))
	}
	var types []string
	for _, e := range elems {
		types = append(types, payload(t, e)["type"].(string))
	}
	if diff := cmp.Diff([]string{"Input.Text", "Input.Number", "Input.ChoiceSet", "Input.Toggle"}, types); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	name := payload(t, elems[0])
	if name["label"] != "Your name" || name["isRequired"] != true || name["maxLength"] != float64(40) {
		t.Fatalf("name input = %v", name)
	}
	rating := payload(t, elems[1])
	if rating["min"] != float64(1) || rating["max"] != float64(5) {
		t.Fatalf("rating input = %v", rating)
	}
	mood := payload(t, elems[2])
	if mood["isRequired"] != false || len(mood["choices"].([]any)) != 2 {
		t.Fatalf("mood input = %v", mood)
	}
	if title := payload(t, elems[3])["title"]; title != "Send me updates" {
		t.Fatalf("toggle title = %v", title)
	}
}

func TestFormRejectsNestedFields(t *testing.T) {
	type nested struct {
		Tags []string `json:"tags"`
	}
	if _, err := FormFromStruct[nested](); !errors.Is(err, card.ErrUnsupportedOperation) {
		t.Fatalf("want UnsupportedOperation, got %v", err)
	}
}

func TestInputKeepsPositionalID(t *testing.T) {
	in := NewTextInput("comment", &TextInputOptions{
		InputOptions: InputOptions{ElementOptions: ElementOptions{ID: "other", Spacing: SpacingSmall}},
	})
	want := map[string]any{"type": "Input.Text", "id": "comment", "spacing": "small"}
	if diff := cmp.Diff(want, payload(t, in)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestContainerItems(t *testing.T) {
	tests := []struct {
		name string
		el   card.Element
		want map[string]any
	}{
		{
			name: "empty column",
			el:   card.Must(NewColumn(nil)),
			want: map[string]any{"type": "Column"},
		},
		{
			name: "column with items",
			el:   card.Must(NewColumn(nil, NewTextBlock("a", nil))),
			want: map[string]any{"type": "Column", "items": []any{map[string]any{"type": "TextBlock", "text": "a"}}},
		},
		{
			name: "empty container",
			el:   card.Must(NewContainer(nil)),
			want: map[string]any{"type": "Container", "items": []any{}},
		},
		{
			name: "empty table cell",
			el:   card.Must(NewTableCell(nil)),
			want: map[string]any{"type": "TableCell", "items": []any{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, payload(t, tt.el)); diff != "" {
				t.Fatalf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
