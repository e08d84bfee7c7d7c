// Package labels builds canonical series identifiers out of label sets.
package labels

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const (
	Separator = "|"
	NameKey   = "__name__"
)

// Set is an unordered collection of label pairs.
type Set map[string]string

func formatKV(w io.Writer, key string, value string) (int, error) {
	return fmt.Fprintf(w, "%s=%s", key, value)
}

// Keys returns the label names in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// With returns a copy of s with key set to value.
func (s Set) With(key, value string) Set {
	out := make(Set, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[key] = value
	return out
}

// Canonical renders the set as sorted key=value pairs joined by Separator.
// Two sets with the same pairs always produce the same string.
func (s Set) Canonical() string {
	var b strings.Builder
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteString(Separator)
		}
		formatKV(&b, k, s[k])
	}
	return b.String()
}

// SeriesID is the canonical identity of a named series.
func SeriesID(name string, set Set) string {
	return set.With(NameKey, name).Canonical()
}

// Parse reverses Canonical. Malformed pairs are skipped.
func Parse(str string) Set {
	s := make(Set)
	if str == "" {
		return s
	}

	for pair := range strings.SplitSeq(str, Separator) {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		s[k] = v
	}
	return s
}
