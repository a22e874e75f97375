package store

import (
	"strings"
)

// Prefixer returns a key builder that joins its parts onto prefix with "/".
// Calling it with a trailing "" yields the prefix plus separator, which is
// the form to pass to util.BytesPrefix.
func Prefixer(prefix string) func(k ...string) []byte {
	return func(parts ...string) []byte {
		k := strings.Join(append([]string{prefix}, parts...), "/")
		return []byte(k)
	}
}
