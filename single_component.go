package safepath

import (
	"fmt"
	"strings"

	"gitlab.com/safepath/safepath/platform"
)

// SingleComponentPath is a validated view over a path with exactly one
// ordinary named segment, optionally surrounded by `.` markers. It holds the
// caller's string as given, so a view sliced out of a larger input keeps that
// input's backing storage alive; use ToBuf for a detached copy.
//
// The zero value is not valid; always construct through
// NewSingleComponentPath or SingleComponentPathBuf.Path.
type SingleComponentPath struct {
	platform platform.Platform
	raw      string
}

// NewSingleComponentPath validates path under p's rules and wraps it without
// copying. It returns ErrUnsafePath when path has anything other than one
// ordinary segment: separators between segments, `..`, a root, a drive or
// share prefix, or no segment at all.
//
// Validation is platform-dependent: validate with the rules of the platform
// the path will ultimately be used on.
func NewSingleComponentPath(p platform.Platform, path string) (SingleComponentPath, error) {
	if !IsSingleComponent(p, path) {
		return SingleComponentPath{}, fmt.Errorf("%q is not a single path component: %w", path, ErrUnsafePath)
	}

	return SingleComponentPath{platform: p, raw: path}, nil
}

// String returns the wrapped path exactly as it was given.
func (c SingleComponentPath) String() string {
	return c.raw
}

// Platform returns the platform the path was validated under.
func (c SingleComponentPath) Platform() platform.Platform {
	return c.platform
}

// Component returns the one ordinary segment, with any `.` markers discarded:
// for `./bar.txt` it returns `bar.txt`.
func (c SingleComponentPath) Component() string {
	names := segments(c.platform, c.raw)
	if len(names) != 1 {
		return ""
	}
	return names[0]
}

// ToBuf copies the underlying path into an owned buffer. No revalidation is
// performed.
func (c SingleComponentPath) ToBuf() SingleComponentPathBuf {
	return SingleComponentPathBuf{platform: c.platform, raw: strings.Clone(c.raw)}
}

// Equal reports whether both values were validated under the same platform
// and wrap the same path bytes.
func (c SingleComponentPath) Equal(other SingleComponentPath) bool {
	return c == other
}

// Compare orders by underlying path bytes, then by platform name.
func (c SingleComponentPath) Compare(other SingleComponentPath) int {
	if v := strings.Compare(c.raw, other.raw); v != 0 {
		return v
	}
	return strings.Compare(c.platform.Name(), other.platform.Name())
}

// SingleComponentPathBuf is the owned counterpart of SingleComponentPath: it
// holds its own detached copy of the path data, safe to retain indefinitely.
type SingleComponentPathBuf struct {
	platform platform.Platform
	raw      string
}

// NewSingleComponentPathBuf validates path under p's rules and stores an
// owned copy. Accept/reject semantics match NewSingleComponentPath.
func NewSingleComponentPathBuf(p platform.Platform, path string) (SingleComponentPathBuf, error) {
	c, err := NewSingleComponentPath(p, path)
	if err != nil {
		return SingleComponentPathBuf{}, err
	}

	return c.ToBuf(), nil
}

// Path returns the validated view of the buffer. This is a constant-time
// projection: the invariant was established at construction and the buffer
// never mutates, so no revalidation happens.
func (b SingleComponentPathBuf) Path() SingleComponentPath {
	return SingleComponentPath{platform: b.platform, raw: b.raw}
}

// String returns the wrapped path exactly as it was given.
func (b SingleComponentPathBuf) String() string {
	return b.raw
}

// Platform returns the platform the path was validated under.
func (b SingleComponentPathBuf) Platform() platform.Platform {
	return b.platform
}

// Component returns the one ordinary segment, with any `.` markers discarded.
func (b SingleComponentPathBuf) Component() string {
	return b.Path().Component()
}

// Clone returns a deep copy of the buffer.
func (b SingleComponentPathBuf) Clone() SingleComponentPathBuf {
	return SingleComponentPathBuf{platform: b.platform, raw: strings.Clone(b.raw)}
}

// Equal reports whether both buffers wrap the same path bytes validated under
// the same platform. A buffer and a view wrapping equal content compare equal
// through b.Path().Equal(view).
func (b SingleComponentPathBuf) Equal(other SingleComponentPathBuf) bool {
	return b == other
}

// Compare orders by underlying path bytes, then by platform name.
func (b SingleComponentPathBuf) Compare(other SingleComponentPathBuf) int {
	return b.Path().Compare(other.Path())
}
