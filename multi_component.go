package safepath

import (
	"fmt"
	"strings"

	"gitlab.com/safepath/safepath/platform"
)

// MultiComponentPath is a validated view over a relative path whose every
// component is an ordinary named segment or a `.` marker: no `..`, no root,
// no prefix. Zero segments are allowed; the empty path is trivially valid.
//
// Every path accepted by NewSingleComponentPath is also accepted here; the
// converse does not hold.
type MultiComponentPath struct {
	platform platform.Platform
	raw      string
}

// NewMultiComponentPath validates path under p's rules and wraps it without
// copying. It returns ErrUnsafePath when any component is a `..` marker, a
// root, or a drive or share prefix.
//
// Validation is platform-dependent: validate with the rules of the platform
// the path will ultimately be used on.
func NewMultiComponentPath(p platform.Platform, path string) (MultiComponentPath, error) {
	if !IsRelative(p, path) {
		return MultiComponentPath{}, fmt.Errorf("%q is not a traversal-free relative path: %w", path, ErrUnsafePath)
	}

	return MultiComponentPath{platform: p, raw: path}, nil
}

// String returns the wrapped path exactly as it was given.
func (m MultiComponentPath) String() string {
	return m.raw
}

// Platform returns the platform the path was validated under.
func (m MultiComponentPath) Platform() platform.Platform {
	return m.platform
}

// Segments returns the ordinary named segments in order, with `.` markers
// discarded. The result is empty for an empty path.
func (m MultiComponentPath) Segments() []string {
	return segments(m.platform, m.raw)
}

// ToBuf copies the underlying path into an owned buffer. No revalidation is
// performed.
func (m MultiComponentPath) ToBuf() MultiComponentPathBuf {
	return MultiComponentPathBuf{platform: m.platform, raw: strings.Clone(m.raw)}
}

// Equal reports whether both values were validated under the same platform
// and wrap the same path bytes.
func (m MultiComponentPath) Equal(other MultiComponentPath) bool {
	return m == other
}

// Compare orders by underlying path bytes, then by platform name.
func (m MultiComponentPath) Compare(other MultiComponentPath) int {
	if v := strings.Compare(m.raw, other.raw); v != 0 {
		return v
	}
	return strings.Compare(m.platform.Name(), other.platform.Name())
}

// MultiComponentPathBuf is the owned counterpart of MultiComponentPath.
type MultiComponentPathBuf struct {
	platform platform.Platform
	raw      string
}

// NewMultiComponentPathBuf validates path under p's rules and stores an owned
// copy. Accept/reject semantics match NewMultiComponentPath.
func NewMultiComponentPathBuf(p platform.Platform, path string) (MultiComponentPathBuf, error) {
	m, err := NewMultiComponentPath(p, path)
	if err != nil {
		return MultiComponentPathBuf{}, err
	}

	return m.ToBuf(), nil
}

// Path returns the validated view of the buffer without copying or
// revalidating.
func (b MultiComponentPathBuf) Path() MultiComponentPath {
	return MultiComponentPath{platform: b.platform, raw: b.raw}
}

// String returns the wrapped path exactly as it was given.
func (b MultiComponentPathBuf) String() string {
	return b.raw
}

// Platform returns the platform the path was validated under.
func (b MultiComponentPathBuf) Platform() platform.Platform {
	return b.platform
}

// Segments returns the ordinary named segments in order.
func (b MultiComponentPathBuf) Segments() []string {
	return b.Path().Segments()
}

// Clone returns a deep copy of the buffer.
func (b MultiComponentPathBuf) Clone() MultiComponentPathBuf {
	return MultiComponentPathBuf{platform: b.platform, raw: strings.Clone(b.raw)}
}

// Equal reports whether both buffers wrap the same path bytes validated under
// the same platform.
func (b MultiComponentPathBuf) Equal(other MultiComponentPathBuf) bool {
	return b == other
}

// Compare orders by underlying path bytes, then by platform name.
func (b MultiComponentPathBuf) Compare(other MultiComponentPathBuf) int {
	return b.Path().Compare(other.Path())
}
