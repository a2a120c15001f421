package command

import "strings"

// Args is a read-only view over the raw argument string of a set-form
// command (the text after the first '='). Fields are separated by single
// ',' bytes with no quoting, escaping, or whitespace trimming. Args
// borrows the input line; it owns and copies nothing.
type Args struct {
	// Raw is the unmodified argument tail. It may be empty and may
	// contain further '=' and '?' bytes.
	Raw string
}

// Get returns the index-th comma-delimited field (0-based). The second
// return value reports whether the field exists. An empty Raw string has
// exactly one field, the empty string, at index 0.
func (a Args) Get(index int) (string, bool) {
	if index < 0 {
		return "", false
	}
	rest := a.Raw
	for {
		i := strings.IndexByte(rest, ',')
		if index == 0 {
			if i < 0 {
				return rest, true
			}
			return rest[:i], true
		}
		if i < 0 {
			return "", false
		}
		rest = rest[i+1:]
		index--
	}
}

// Count returns the number of fields in the view. It is always at least
// one: the empty raw string counts as a single empty field.
func (a Args) Count() int {
	return strings.Count(a.Raw, ",") + 1
}
