package adaptivecard

import "slices"

// Versions lists the schema versions accepted by SetVersion.
var Versions = []string{"1.0", "1.1", "1.2", "1.3"}

// SchemaURL is the JSON schema of Adaptive Cards.
const SchemaURL = "http://adaptivecards.io/schemas/adaptive-card.json"

// FallbackOption is the sentinel accepted by SetFallback.
type FallbackOption string

const FallbackDrop FallbackOption = "drop"

// Style is the container style.
type Style string

const (
	StyleDefault   Style = "default"
	StyleEmphasis  Style = "emphasis"
	StyleGood      Style = "good"
	StyleAttention Style = "attention"
	StyleWarning   Style = "warning"
	StyleAccent    Style = "accent"
)

// HorizontalAlignment positions content horizontally.
type HorizontalAlignment string

const (
	HorizontalAlignmentLeft   HorizontalAlignment = "left"
	HorizontalAlignmentCenter HorizontalAlignment = "center"
	HorizontalAlignmentRight  HorizontalAlignment = "right"
)

// VerticalAlignment positions content vertically.
type VerticalAlignment string

const (
	VerticalAlignmentTop    VerticalAlignment = "top"
	VerticalAlignmentCenter VerticalAlignment = "center"
	VerticalAlignmentBottom VerticalAlignment = "bottom"
)

// Color is a text color.
type Color string

const (
	ColorDefault   Color = "default"
	ColorDark      Color = "dark"
	ColorLight     Color = "light"
	ColorAccent    Color = "accent"
	ColorGood      Color = "good"
	ColorWarning   Color = "warning"
	ColorAttention Color = "attention"
)

// FontType selects the font family.
type FontType string

const (
	FontTypeDefault   FontType = "default"
	FontTypeMonospace FontType = "monospace"
)

// FontSize is a text size.
type FontSize string

const (
	FontSizeDefault    FontSize = "default"
	FontSizeSmall      FontSize = "small"
	FontSizeMedium     FontSize = "medium"
	FontSizeLarge      FontSize = "large"
	FontSizeExtraLarge FontSize = "extraLarge"
)

// FontWeight is a text weight.
type FontWeight string

const (
	FontWeightDefault FontWeight = "default"
	FontWeightLighter FontWeight = "lighter"
	FontWeightBolder  FontWeight = "bolder"
)

// BlockElementHeight is the height of an element.
type BlockElementHeight string

const (
	HeightAuto    BlockElementHeight = "auto"
	HeightStretch BlockElementHeight = "stretch"
)

// Spacing is the gap above an element.
type Spacing string

const (
	SpacingDefault    Spacing = "default"
	SpacingNone       Spacing = "none"
	SpacingSmall      Spacing = "small"
	SpacingMedium     Spacing = "medium"
	SpacingLarge      Spacing = "large"
	SpacingExtraLarge Spacing = "extraLarge"
	SpacingPadding    Spacing = "padding"
)

// ImageSize is the display size of an image.
type ImageSize string

const (
	ImageSizeAuto    ImageSize = "auto"
	ImageSizeStretch ImageSize = "stretch"
	ImageSizeSmall   ImageSize = "small"
	ImageSizeMedium  ImageSize = "medium"
	ImageSizeLarge   ImageSize = "large"
)

// ImageStyle is the display style of an image.
type ImageStyle string

const (
	ImageStyleDefault ImageStyle = "default"
	ImageStylePerson  ImageStyle = "person"
)

// ActionStyle controls how an action is rendered.
type ActionStyle string

const (
	ActionStyleDefault     ActionStyle = "default"
	ActionStylePositive    ActionStyle = "positive"
	ActionStyleDestructive ActionStyle = "destructive"
)

// ChoiceInputStyle controls how a ChoiceSet is displayed.
type ChoiceInputStyle string

const (
	ChoiceInputStyleCompact  ChoiceInputStyle = "compact"
	ChoiceInputStyleExpanded ChoiceInputStyle = "expanded"
)

// TextInputStyle is the keyboard hint of a text input.
type TextInputStyle string

const (
	TextInputStyleText  TextInputStyle = "text"
	TextInputStyleTel   TextInputStyle = "tel"
	TextInputStyleURL   TextInputStyle = "url"
	TextInputStyleEmail TextInputStyle = "email"
)

// Width is the sentinel width of a Column.
type Width string

const (
	WidthAuto    Width = "auto"
	WidthStretch Width = "stretch"
)

// FillMode controls how a background image fills its element.
type FillMode string

const (
	FillModeCover              FillMode = "cover"
	FillModeRepeatHorizontally FillMode = "repeatHorizontally"
	FillModeRepeatVertically   FillMode = "repeatVertically"
	FillModeRepeat             FillMode = "repeat"
)

// ActionMode controls whether an action is shown or sits in the overflow menu.
type ActionMode string

const (
	ActionModePrimary   ActionMode = "primary"
	ActionModeSecondary ActionMode = "secondary"
)

// AssociatedInputs selects which inputs an Action.Execute submits.
type AssociatedInputs string

const (
	AssociatedInputsAuto AssociatedInputs = "Auto"
	AssociatedInputsNone AssociatedInputs = "None"
)

// IsValidVersion reports whether v is one of Versions.
func IsValidVersion(v string) bool { return slices.Contains(Versions, v) }
