package palette

import "fmt"

// ErrorKind identifies what went wrong while parsing or resolving a
// palette document.
type ErrorKind int

const (
	// ErrDocumentNotObject means the top-level JSON value is not an object.
	ErrDocumentNotObject ErrorKind = iota
	// ErrBadHexPrefix means a colour string does not start with '#'.
	ErrBadHexPrefix
	// ErrBadHexLength means a hex colour has a digit count other than 3 or 6.
	ErrBadHexLength
	// ErrBadHexDigit means a hex colour contains non-hexadecimal characters.
	ErrBadHexDigit
	// ErrBadArrayLength means a colour array does not have exactly 3 elements.
	ErrBadArrayLength
	// ErrBadArrayElement means a colour array element is not an 8-bit integer.
	ErrBadArrayElement
	// ErrMissingChannel means a colour object lacks one of the r, g, b keys.
	ErrMissingChannel
	// ErrBadChannelValue means an r, g or b value is not an 8-bit integer.
	ErrBadChannelValue
	// ErrStyleNotObject means a style entry's value is not a JSON object.
	ErrStyleNotObject
	// ErrStyleMissing means a requested style key is absent from the document.
	ErrStyleMissing
	// ErrEmptySelection means the style selection string is empty.
	ErrEmptySelection
	// ErrEmptyStyleName means a style list contains an empty entry,
	// usually from a doubled comma.
	ErrEmptyStyleName
)

// Error is a structured palette error: a kind plus the contextual payload
// needed to point at the offending entry. The payload is kept as data so
// callers and tests can inspect it; prose is produced only here.
type Error struct {
	Kind    ErrorKind
	Style   string // style key, when the error is scoped to one style
	Name    string // colour entry name, when known
	Value   string // literal offending value
	Channel string // r, g or b for colour-object errors
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Style != "" {
		return fmt.Sprintf("style %q: %s", e.Style, msg)
	}
	return msg
}

func (e *Error) message() string {
	switch e.Kind {
	case ErrDocumentNotObject:
		return "palette document is not a JSON object"
	case ErrBadHexPrefix:
		return fmt.Sprintf("colour %q: hex string %q does not start with '#'", e.Name, e.Value)
	case ErrBadHexLength:
		return fmt.Sprintf("colour %q: hex string %q must have 3 or 6 digits", e.Name, e.Value)
	case ErrBadHexDigit:
		return fmt.Sprintf("colour %q: hex string %q contains non-hexadecimal digits", e.Name, e.Value)
	case ErrBadArrayLength:
		return fmt.Sprintf("colour %q: array %s must have exactly 3 elements", e.Name, e.Value)
	case ErrBadArrayElement:
		return fmt.Sprintf("colour %q: array %s must contain integers in the range 0-255", e.Name, e.Value)
	case ErrMissingChannel:
		return fmt.Sprintf("colour %q: object %s is missing key %q", e.Name, e.Value, e.Channel)
	case ErrBadChannelValue:
		return fmt.Sprintf("colour %q: key %q in object %s must be an integer in the range 0-255", e.Name, e.Channel, e.Value)
	case ErrStyleNotObject:
		return "value is not a JSON object"
	case ErrStyleMissing:
		return "style not found in the palette document"
	case ErrEmptySelection:
		return "no styles selected"
	case ErrEmptyStyleName:
		return "style list contains an empty entry (doubled comma?)"
	}
	return fmt.Sprintf("palette error (kind %d)", int(e.Kind))
}
