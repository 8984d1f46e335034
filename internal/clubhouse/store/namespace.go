package store

import "strings"

// Namespace is a key prefix that partitions one store between callers.
type Namespace string

const (
	// NamespaceLanding keys records by the bare email. Used by the landing
	// page form.
	NamespaceLanding Namespace = ""

	// NamespaceMembers prefixes keys with "user:". Used by the join API.
	NamespaceMembers Namespace = "user:"
)

// prefixed lists every non-empty namespace so NamespaceLanding can tell its
// keys apart from theirs.
var prefixed = []Namespace{NamespaceMembers}

// Key returns the store key for email in this namespace.
func (n Namespace) Key(email string) string {
	return string(n) + email
}

// Email reports whether key belongs to n and, if so, the email it encodes.
func (n Namespace) Email(key string) (string, bool) {
	if n != NamespaceLanding {
		return strings.CutPrefix(key, string(n))
	}
	for _, p := range prefixed {
		if strings.HasPrefix(key, string(p)) {
			return "", false
		}
	}
	return key, true
}

// Accepts reports whether email can be stored in n without its key landing
// in another namespace.
func (n Namespace) Accepts(email string) bool {
	got, ok := n.Email(n.Key(email))
	return ok && got == email
}

// Filter returns the entries belonging to n, keeping their order.
func (n Namespace) Filter(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := n.Email(e.Key); ok {
			out = append(out, e)
		}
	}
	return out
}
