// Package sanitize rewrites arbitrary untrusted strings into strings that are
// guaranteed to pass the single-component validation, instead of rejecting
// them. Prefer plain rejection: rewriting silently maps different inputs to
// the same output, and the exact rewriting is not part of any compatibility
// promise — it may change between versions. Use this only where a best-effort
// filename is genuinely wanted, such as deriving cache file names from
// user-controlled labels.
package sanitize

import (
	"fmt"
	"strings"

	"gitlab.com/safepath/safepath"
	"gitlab.com/safepath/safepath/platform"
)

const replacement = '_'

// Component rewrites s into a safe single path component for p and wraps it.
// Separators, prefix markers and control bytes become underscores; a result
// that would still parse as empty, `.` or `..` is padded with underscores.
//
// Component is documented to always produce valid output, so a result that
// fails validation is a bug in the rewriting itself and panics, deliberately
// distinct from the ordinary ErrUnsafePath rejection.
func Component(p platform.Platform, s string) safepath.SingleComponentPathBuf {
	scrubbed := scrub(s)

	buf, err := safepath.NewSingleComponentPathBuf(p, scrubbed)
	if err != nil {
		panic(fmt.Sprintf("sanitize: %q rewritten to %q still fails validation: %v", s, scrubbed, err))
	}

	return buf
}

func scrub(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '/' || r == '\\' || r == ':':
			b.WriteRune(replacement)
		case r < 0x20 || r == 0x7f:
			b.WriteRune(replacement)
		default:
			b.WriteRune(r)
		}
	}

	out := b.String()

	// A bare ".", ".." or empty result would be a marker, not a name.
	if strings.Trim(out, ".") == "" {
		return strings.Repeat(string(replacement), max(len(out), 1))
	}

	return out
}
