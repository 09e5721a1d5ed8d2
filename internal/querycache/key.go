package querycache

import (
	"sort"
	"strings"
)

// Key identifies one cached read: the operation name plus its effective
// parameters, so the same operation with different filters is cached
// independently.
type Key string

// NewKey canonicalizes params (sorted by name) so parameter order never
// produces distinct keys.
func NewKey(op string, params map[string]string) Key {
	if len(params) == 0 {
		return Key(op)
	}
	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return Key(op)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(op)
	for _, name := range names {
		b.WriteByte('?')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return Key(b.String())
}

// Op returns the operation-name prefix of the key.
func (k Key) Op() string {
	if i := strings.IndexByte(string(k), '?'); i >= 0 {
		return string(k)[:i]
	}
	return string(k)
}
