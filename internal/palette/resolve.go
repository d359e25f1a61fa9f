package palette

// Resolve turns a palette document plus a style selection into an ordered
// list of palettes. The resolution order is visible twice: it is the
// order palettes are shown to the user, and the order their colours are
// concatenated into the flat search array, which fixes tie-breaking.
func Resolve(doc *Document, sel StyleSelection) ([]Palette, error) {
	switch sel.kind {
	case selectNone:
		// Flat theme: every top-level entry is read as a colour value.
		p, err := parsePalette(doc)
		if err != nil {
			return nil, err
		}
		return []Palette{p}, nil

	case selectSome:
		// Entries are consumed as they are resolved, so a duplicated
		// request fails its second lookup instead of resolving twice.
		working := doc.Clone()
		out := make([]Palette, 0, len(sel.names))
		for _, name := range sel.names {
			raw, ok := working.Remove(name)
			if !ok || !isObject(raw) {
				return nil, &Error{Kind: ErrStyleMissing, Style: name}
			}
			sub, err := ParseDocument(raw)
			if err != nil {
				return nil, err
			}
			p, err := parsePalette(sub)
			if err != nil {
				return nil, styled(err, name)
			}
			p.Name = name
			out = append(out, p)
		}
		return out, nil

	default: // selectAll
		out := make([]Palette, 0, doc.Len())
		for _, e := range doc.Entries() {
			if !isObject(e.Value) {
				return nil, &Error{Kind: ErrStyleNotObject, Style: e.Key}
			}
			sub, err := ParseDocument(e.Value)
			if err != nil {
				return nil, err
			}
			p, err := parsePalette(sub)
			if err != nil {
				return nil, styled(err, e.Key)
			}
			p.Name = e.Key
			out = append(out, p)
		}
		return out, nil
	}
}

// styled annotates a colour-level error with the style it occurred in.
func styled(err error, style string) error {
	if pe, ok := err.(*Error); ok && pe.Style == "" {
		annotated := *pe
		annotated.Style = style
		return &annotated
	}
	return err
}
