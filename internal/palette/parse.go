package palette

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// parsePalette reads every entry of a document as a colour value, in
// document order.
func parsePalette(doc *Document) (Palette, error) {
	colours := make([]NamedColor, 0, doc.Len())
	for _, e := range doc.Entries() {
		c, err := parseColour(e.Key, e.Value)
		if err != nil {
			return Palette{}, err
		}
		colours = append(colours, NamedColor{Name: e.Key, Color: c})
	}
	return Palette{Colors: colours}, nil
}

// parseColour parses one colour value. Three shapes are accepted:
// a "#RRGGBB" or "#RGB" hex string, a 3-element numeric array, and an
// object with r, g and b keys. Any other JSON shape (boolean, null,
// bare number) silently yields black.
func parseColour(name string, raw json.RawMessage) (Color, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return Color{}, nil
	}
	switch trimmed[0] {
	case '"':
		return parseHexColour(name, raw)
	case '[':
		return parseArrayColour(name, raw)
	case '{':
		return parseObjectColour(name, raw)
	}
	return Color{}, nil
}

func parseHexColour(name string, raw json.RawMessage) (Color, error) {
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		return Color{}, &Error{Kind: ErrBadHexDigit, Name: name, Value: string(raw)}
	}
	if len(hex) == 0 || hex[0] != '#' {
		return Color{}, &Error{Kind: ErrBadHexPrefix, Name: name, Value: hex}
	}

	// Length is counted in runes so that a multi-byte character is
	// reported as a bad digit, not a bad length.
	digits := []rune(hex[1:])
	var channels [3]uint8
	switch len(digits) {
	case 3:
		// Short form: each digit doubles, so "#abc" means "#aabbcc".
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string(digits[i:i+1]), 16, 8)
			if err != nil {
				return Color{}, &Error{Kind: ErrBadHexDigit, Name: name, Value: hex}
			}
			channels[i] = uint8(v * 17)
		}
	case 6:
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string(digits[2*i:2*i+2]), 16, 8)
			if err != nil {
				return Color{}, &Error{Kind: ErrBadHexDigit, Name: name, Value: hex}
			}
			channels[i] = uint8(v)
		}
	default:
		return Color{}, &Error{Kind: ErrBadHexLength, Name: name, Value: hex}
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseArrayColour(name string, raw json.RawMessage) (Color, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return Color{}, &Error{Kind: ErrBadArrayElement, Name: name, Value: string(raw)}
	}
	if len(arr) != 3 {
		return Color{}, &Error{Kind: ErrBadArrayLength, Name: name, Value: string(raw)}
	}

	var channels [3]uint8
	for i, el := range arr {
		v, ok := channelValue(el)
		if !ok {
			return Color{}, &Error{Kind: ErrBadArrayElement, Name: name, Value: string(raw)}
		}
		channels[i] = v
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseObjectColour(name string, raw json.RawMessage) (Color, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Color{}, &Error{Kind: ErrBadChannelValue, Name: name, Value: string(raw)}
	}

	var channels [3]uint8
	for i, key := range [3]string{"r", "g", "b"} {
		rawChannel, ok := obj[key]
		if !ok {
			return Color{}, &Error{Kind: ErrMissingChannel, Name: name, Value: string(raw), Channel: key}
		}
		v, ok := channelValue(rawChannel)
		if !ok {
			return Color{}, &Error{Kind: ErrBadChannelValue, Name: name, Value: string(raw), Channel: key}
		}
		channels[i] = v
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// channelValue converts a raw JSON value to an 8-bit channel, rejecting
// fractions, negatives and anything above 255. Only a JSON number token
// is accepted; json.Number would also swallow quoted digits, so the raw
// token's first byte is checked before decoding.
func channelValue(raw json.RawMessage) (uint8, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return 0, false
	}
	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return 0, false
	}
	v, err := num.Int64()
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}
