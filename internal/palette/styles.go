package palette

import (
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*StyleSelection)(nil)

type selectionKind int

const (
	selectAll selectionKind = iota
	selectNone
	selectSome
)

// StyleSelection chooses which styles of a palette document to resolve:
// every top-level style (All), the whole document as one flat palette
// (None), or a caller-ordered subset (Some).
type StyleSelection struct {
	kind  selectionKind
	names []string
}

// AllStyles selects every style in the document.
func AllStyles() StyleSelection {
	return StyleSelection{kind: selectAll}
}

// NoStyles treats the document itself as a single flat palette.
func NoStyles() StyleSelection {
	return StyleSelection{kind: selectNone}
}

// SomeStyles selects the named styles, in the given order.
func SomeStyles(names ...string) StyleSelection {
	return StyleSelection{kind: selectSome, names: names}
}

// Names returns the requested style names for a Some selection.
func (s StyleSelection) Names() []string {
	return s.names
}

// String implements pflag.Value.
func (s StyleSelection) String() string {
	switch s.kind {
	case selectNone:
		return "none"
	case selectSome:
		return strings.Join(s.names, ",")
	}
	return "all"
}

// Set implements pflag.Value. The grammar is "all", "none" (or "no"),
// or a comma-separated list of style names. Empty input and empty list
// entries are hard errors.
func (s *StyleSelection) Set(value string) error {
	switch value {
	case "all", "ALL":
		*s = AllStyles()
		return nil
	case "none", "NONE", "no", "NO":
		*s = NoStyles()
		return nil
	case "":
		return &Error{Kind: ErrEmptySelection}
	}

	names := strings.Split(value, ",")
	for _, name := range names {
		if name == "" {
			return &Error{Kind: ErrEmptyStyleName}
		}
	}
	*s = SomeStyles(names...)
	return nil
}

// Type implements pflag.Value.
func (s StyleSelection) Type() string {
	return "styles"
}
