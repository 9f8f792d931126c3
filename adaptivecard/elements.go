package adaptivecard

import (
	"github.com/utsurius/actionable-messages/card"
)

// TextBlockOptions configures a TextBlock.
type TextBlockOptions struct {
	ElementOptions
	Color               Color
	FontType            FontType
	HorizontalAlignment HorizontalAlignment
	IsSubtle            *bool
	MaxLines            *int
	Size                FontSize
	Weight              FontWeight
	Wrap                *bool
}

// TextBlock displays a block of text.
type TextBlock struct {
	elementNode
}

// NewTextBlock returns a TextBlock displaying text.
func NewTextBlock(text string, opts *TextBlockOptions) *TextBlock {
	if opts == nil {
		opts = &TextBlockOptions{}
	}
	e := &TextBlock{elementNode: newElementNode("TextBlock")}
	e.SetText(text)
	opts.ElementOptions.apply(e.data)
	setEnum(e.data, "color", opts.Color)
	setEnum(e.data, "fontType", opts.FontType)
	setEnum(e.data, "horizontalAlignment", opts.HorizontalAlignment)
	setBool(e.data, "isSubtle", opts.IsSubtle)
	setInt(e.data, "maxLines", opts.MaxLines)
	setEnum(e.data, "size", opts.Size)
	setEnum(e.data, "weight", opts.Weight)
	setBool(e.data, "wrap", opts.Wrap)
	return e
}

func (e *TextBlock) SetText(text string)    { e.data.Set("text", text) }
func (e *TextBlock) SetColor(c Color)       { e.data.Set("color", string(c)) }
func (e *TextBlock) SetFontType(f FontType) { e.data.Set("fontType", string(f)) }
func (e *TextBlock) SetIsSubtle(v bool)     { e.data.Set("isSubtle", v) }
func (e *TextBlock) SetMaxLines(n int)      { e.data.Set("maxLines", n) }
func (e *TextBlock) SetSize(s FontSize)     { e.data.Set("size", string(s)) }
func (e *TextBlock) SetWeight(w FontWeight) { e.data.Set("weight", string(w)) }
func (e *TextBlock) SetWrap(v bool)         { e.data.Set("wrap", v) }

func (e *TextBlock) SetHorizontalAlignment(a HorizontalAlignment) {
	e.data.Set("horizontalAlignment", string(a))
}

// ImageOptions configures an Image.
type ImageOptions struct {
	ElementOptions
	AltText             string
	BackgroundColor     string
	HorizontalAlignment HorizontalAlignment
	// SelectAction is invoked when the image is tapped. Nil means none.
	SelectAction Action
	Size         ImageSize
	Style        ImageStyle
	// Width is a pixel value such as "50px".
	Width string
}

// Image displays an image. Height accepts BlockElementHeight or a pixel
// string, see SetHeight.
type Image struct {
	elementNode
}

// NewImage returns an Image loaded from url.
func NewImage(url string, opts *ImageOptions) *Image {
	if opts == nil {
		opts = &ImageOptions{}
	}
	e := &Image{elementNode: newElementNode("Image")}
	e.SetURL(url)
	opts.ElementOptions.apply(e.data)
	setString(e.data, "altText", opts.AltText)
	setString(e.data, "backgroundColor", opts.BackgroundColor)
	setEnum(e.data, "horizontalAlignment", opts.HorizontalAlignment)
	setAction(e.data, "selectAction", opts.SelectAction)
	setEnum(e.data, "size", opts.Size)
	setEnum(e.data, "style", opts.Style)
	setString(e.data, "width", opts.Width)
	return e
}

func (e *Image) SetURL(url string)           { e.data.Set("url", url) }
func (e *Image) SetAltText(text string)      { e.data.Set("altText", text) }
func (e *Image) SetBackgroundColor(c string) { e.data.Set("backgroundColor", c) }
func (e *Image) SetSize(s ImageSize)         { e.data.Set("size", string(s)) }
func (e *Image) SetStyle(s ImageStyle)       { e.data.Set("style", string(s)) }
func (e *Image) SetWidth(w string)           { e.data.Set("width", w) }

func (e *Image) SetHorizontalAlignment(a HorizontalAlignment) {
	e.data.Set("horizontalAlignment", string(a))
}

// SetHeight accepts BlockElementHeight or a pixel string such as "50px".
func (e *Image) SetHeight(height any) error {
	v, err := resolveHeight(height)
	if err != nil {
		return err
	}
	e.data.Set("height", v)
	return nil
}

func (e *Image) SetSelectAction(a Action) error {
	return snapshotAction(e.data, "selectAction", a)
}

// MediaSource is one playable source of a Media element.
type MediaSource struct {
	node
}

// NewMediaSource returns a media source of the given MIME type.
func NewMediaSource(mimeType, url string) *MediaSource {
	s := &MediaSource{node: newNode("")}
	s.data.Set("mimeType", mimeType)
	s.data.Set("url", url)
	return s
}

// MediaOptions configures a Media element.
type MediaOptions struct {
	ElementOptions
	Poster  string
	AltText string
}

// Media displays a video or audio player.
type Media struct {
	elementNode
}

// NewMedia returns a Media element playing sources.
func NewMedia(opts *MediaOptions, sources ...*MediaSource) (*Media, error) {
	if opts == nil {
		opts = &MediaOptions{}
	}
	e := &Media{elementNode: newElementNode("Media")}
	if err := e.SetSources(sources...); err != nil {
		return nil, err
	}
	opts.ElementOptions.apply(e.data)
	setString(e.data, "poster", opts.Poster)
	setString(e.data, "altText", opts.AltText)
	return e, nil
}

func (e *Media) SetSources(sources ...*MediaSource) error {
	list, err := card.Collect("sources", sources)
	if err != nil {
		return err
	}
	e.data.Set("sources", list)
	return nil
}

func (e *Media) AddSources(sources ...*MediaSource) error {
	list, err := card.Collect("sources", sources)
	if err != nil {
		return err
	}
	e.data.Append("sources", list...)
	return nil
}

func (e *Media) SetPoster(url string)   { e.data.Set("poster", url) }
func (e *Media) SetAltText(text string) { e.data.Set("altText", text) }

// TextRunOptions configures a TextRun.
type TextRunOptions struct {
	Color         Color
	FontType      FontType
	Highlight     *bool
	IsSubtle      *bool
	Italic        *bool
	SelectAction  Action
	Size          FontSize
	Strikethrough *bool
	Underline     *bool
	Weight        FontWeight
}

// TextRun is an inline run of a RichTextBlock.
type TextRun struct {
	node
}

// NewTextRun returns an inline TextRun for a RichTextBlock.
func NewTextRun(text string, opts *TextRunOptions) *TextRun {
	if opts == nil {
		opts = &TextRunOptions{}
	}
	r := &TextRun{node: newNode("TextRun")}
	r.SetText(text)
	setEnum(r.data, "color", opts.Color)
	setEnum(r.data, "fontType", opts.FontType)
	setBool(r.data, "highlight", opts.Highlight)
	setBool(r.data, "isSubtle", opts.IsSubtle)
	setBool(r.data, "italic", opts.Italic)
	setAction(r.data, "selectAction", opts.SelectAction)
	setEnum(r.data, "size", opts.Size)
	setBool(r.data, "strikethrough", opts.Strikethrough)
	setBool(r.data, "underline", opts.Underline)
	setEnum(r.data, "weight", opts.Weight)
	return r
}

func (r *TextRun) SetText(text string)     { r.data.Set("text", text) }
func (r *TextRun) SetColor(c Color)        { r.data.Set("color", string(c)) }
func (r *TextRun) SetFontType(f FontType)  { r.data.Set("fontType", string(f)) }
func (r *TextRun) SetHighlight(v bool)     { r.data.Set("highlight", v) }
func (r *TextRun) SetIsSubtle(v bool)      { r.data.Set("isSubtle", v) }
func (r *TextRun) SetItalic(v bool)        { r.data.Set("italic", v) }
func (r *TextRun) SetSize(s FontSize)      { r.data.Set("size", string(s)) }
func (r *TextRun) SetStrikethrough(v bool) { r.data.Set("strikethrough", v) }
func (r *TextRun) SetUnderline(v bool)     { r.data.Set("underline", v) }
func (r *TextRun) SetWeight(w FontWeight)  { r.data.Set("weight", string(w)) }

func (r *TextRun) SetSelectAction(a Action) error {
	return snapshotAction(r.data, "selectAction", a)
}

// RichTextBlockOptions configures a RichTextBlock.
type RichTextBlockOptions struct {
	ElementOptions
	HorizontalAlignment HorizontalAlignment
}

// RichTextBlock displays a list of inlines.
type RichTextBlock struct {
	elementNode
}

// NewRichTextBlock returns a RichTextBlock. Each inline is a *TextRun or a
// plain string.
func NewRichTextBlock(opts *RichTextBlockOptions, inlines ...any) (*RichTextBlock, error) {
	if opts == nil {
		opts = &RichTextBlockOptions{}
	}
	e := &RichTextBlock{elementNode: newElementNode("RichTextBlock")}
	if err := e.SetInlines(inlines...); err != nil {
		return nil, err
	}
	opts.ElementOptions.apply(e.data)
	setEnum(e.data, "horizontalAlignment", opts.HorizontalAlignment)
	return e, nil
}

func (e *RichTextBlock) SetInlines(inlines ...any) error {
	list, err := resolveInlines(inlines)
	if err != nil {
		return err
	}
	e.data.Set("inlines", list)
	return nil
}

func (e *RichTextBlock) AddInlines(inlines ...any) error {
	list, err := resolveInlines(inlines)
	if err != nil {
		return err
	}
	e.data.Append("inlines", list...)
	return nil
}

func (e *RichTextBlock) SetHorizontalAlignment(a HorizontalAlignment) {
	e.data.Set("horizontalAlignment", string(a))
}

func resolveInlines(inlines []any) ([]any, error) {
	out := make([]any, 0, len(inlines))
	for i, in := range inlines {
		switch v := in.(type) {
		case string:
			out = append(out, v)
			continue
		case *TextRun:
			if v != nil {
				out = append(out, v.AsData())
				continue
			}
		}
		return nil, card.Errorf(card.InvalidInlineType, "inlines[%d]: invalid type %T: want *TextRun or string", i, in)
	}
	return out, nil
}
