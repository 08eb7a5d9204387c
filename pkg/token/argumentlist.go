package token

import "strings"

// Item is a single named entry in an ArgumentList: a canonical name plus
// zero or more bound values. A nil entry in Values represents a bare flag
// token (prefix + name, no delimiter/value); a non-nil entry represents
// `name<delim>value`. The same name accumulates repeated occurrences in
// order of appearance.
type Item struct {
	Name   string
	Values []*string
}

// String returns the first bound value, or nil if the item was never
// given a value (a bare flag) or has no values at all.
func (it *Item) String() *string {
	if it == nil {
		return nil
	}
	for _, v := range it.Values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Array returns every bound value in order of appearance. A bare-flag
// occurrence contributes an empty string so the count still reflects how
// many times the name appeared.
func (it *Item) Array() []string {
	if it == nil {
		return nil
	}
	out := make([]string, len(it.Values))
	for i, v := range it.Values {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

// ArgumentList is the structured view over a token vector produced by
// BuildArgumentList: named items keyed by canonical name (looked up via
// the tokenizer's configured comparer) plus the ordered list of unnamed
// positional values.
type ArgumentList struct {
	Unnamed []string

	cfg   TokenizerConfig
	items []*Item
}

// BuildArgumentList splits tokens into named Items and unnamed positional
// values per §4.1: a token beginning with a configured prefix character
// has that character stripped, then is split on the first configured
// delimiter character into name/value; a token whose stripped form has no
// name at all (empty after stripping) falls through to unnamed, and a
// token with no prefix character is unnamed from the start.
func BuildArgumentList(tokens []string, cfg TokenizerConfig) *ArgumentList {
	al := &ArgumentList{cfg: cfg}

	for _, tok := range tokens {
		if tok == "" || !cfg.hasPrefix(tok[0]) {
			al.Unnamed = append(al.Unnamed, tok)
			continue
		}

		stripped := tok[1:]
		name, value := splitNameValue(stripped, cfg.DelimiterChars)

		if name == "" {
			al.Unnamed = append(al.Unnamed, tok)
			continue
		}

		item := al.findOrCreate(name)
		item.Values = append(item.Values, value)
	}

	return al
}

func splitNameValue(stripped, delimiters string) (name string, value *string) {
	idx := strings.IndexAny(stripped, delimiters)
	if idx < 0 {
		return stripped, nil
	}
	v := stripped[idx+1:]
	return stripped[:idx], &v
}

// Get returns the Item bound to name under the list's comparer, or nil if
// no such name was ever bound.
func (al *ArgumentList) Get(name string) *Item {
	cmp := al.cfg.comparer()
	for _, it := range al.items {
		if cmp(it.Name, name) {
			return it
		}
	}
	return nil
}

// Items returns every named Item in order of first appearance.
func (al *ArgumentList) Items() []*Item {
	return al.items
}

func (al *ArgumentList) findOrCreate(name string) *Item {
	cmp := al.cfg.comparer()
	for _, it := range al.items {
		if cmp(it.Name, name) {
			return it
		}
	}
	it := &Item{Name: name}
	al.items = append(al.items, it)
	return it
}
