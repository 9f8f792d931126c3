package card

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a builder failure.
type ErrorKind int

const (
	// InvalidFallbackType: fallback is neither the drop sentinel nor a compatible node.
	InvalidFallbackType ErrorKind = iota + 1
	// InvalidImageType: background or display image is neither a URL nor an image node.
	InvalidImageType
	// InvalidWidthType: width is none of the width enum, a string or an integer.
	InvalidWidthType
	// InvalidHeightType: height is neither the height enum nor a string.
	InvalidHeightType
	// InvalidElementType: a collection item does not match the field.
	InvalidElementType
	// InvalidTargetElementType: a toggle target is neither a target node nor an element id.
	InvalidTargetElementType
	// InvalidInlineType: a rich text inline is neither a text run nor a string.
	InvalidInlineType
	// InvalidLabelType: an input label is not text.
	InvalidLabelType
	// InvalidVersion: the schema version is not supported.
	InvalidVersion
	// InvalidMethod: an HTTP action method is not GET or POST.
	InvalidMethod
	// MissingRequiredBody: a POST HTTP action has no body.
	MissingRequiredBody
	// DuplicateTarget: an open URI action already has a target for the OS.
	DuplicateTarget
	// DuplicateChoiceValue: a multichoice input already has a choice with the value.
	DuplicateChoiceValue
	// UnsupportedOperation: the card cannot perform the requested render.
	UnsupportedOperation
)

var kindNames = map[ErrorKind]string{
	InvalidFallbackType:      "invalid_fallback_type",
	InvalidImageType:         "invalid_image_type",
	InvalidWidthType:         "invalid_width_type",
	InvalidHeightType:        "invalid_height_type",
	InvalidElementType:       "invalid_element_type",
	InvalidTargetElementType: "invalid_target_element_type",
	InvalidInlineType:        "invalid_inline_type",
	InvalidLabelType:         "invalid_label_type",
	InvalidVersion:           "invalid_version",
	InvalidMethod:            "invalid_method",
	MissingRequiredBody:      "missing_required_body",
	DuplicateTarget:          "duplicate_target",
	DuplicateChoiceValue:     "duplicate_choice_value",
	UnsupportedOperation:     "unsupported_operation",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// Error is returned by constructors and setters that reject their input.
// Compare with errors.Is against the Err* sentinels, or read Kind.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "card: " + e.Kind.String()
	}
	return "card: " + e.Msg
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of a card error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// Sentinels for errors.Is.
var (
	ErrInvalidFallbackType      = &Error{Kind: InvalidFallbackType}
	ErrInvalidImageType         = &Error{Kind: InvalidImageType}
	ErrInvalidWidthType         = &Error{Kind: InvalidWidthType}
	ErrInvalidHeightType        = &Error{Kind: InvalidHeightType}
	ErrInvalidElementType       = &Error{Kind: InvalidElementType}
	ErrInvalidTargetElementType = &Error{Kind: InvalidTargetElementType}
	ErrInvalidInlineType        = &Error{Kind: InvalidInlineType}
	ErrInvalidLabelType         = &Error{Kind: InvalidLabelType}
	ErrInvalidVersion           = &Error{Kind: InvalidVersion}
	ErrInvalidMethod            = &Error{Kind: InvalidMethod}
	ErrMissingRequiredBody      = &Error{Kind: MissingRequiredBody}
	ErrDuplicateTarget          = &Error{Kind: DuplicateTarget}
	ErrDuplicateChoiceValue     = &Error{Kind: DuplicateChoiceValue}
	ErrUnsupportedOperation     = &Error{Kind: UnsupportedOperation}
)
