package safepath

import (
	"fmt"

	"gitlab.com/safepath/safepath/platform"
)

// DestPath is a growable destination path. It is the only sanctioned way to
// extend a trusted path with untrusted input: its push operations accept
// wrapper values and nothing else, so anything appended has already been
// proven traversal-free and the destination cannot be redirected outside the
// tree it started in.
//
// The base itself is trusted and not validated.
type DestPath struct {
	platform platform.Platform
	path     string
}

// NewDestPath returns a destination rooted at base, joined under p's rules.
func NewDestPath(p platform.Platform, base string) *DestPath {
	return &DestPath{platform: p, path: base}
}

// String returns the current destination path.
func (d *DestPath) String() string {
	return d.path
}

// Platform returns the platform the destination joins under.
func (d *DestPath) Platform() platform.Platform {
	return d.platform
}

// PushComponent appends exactly one validated component in place, the way the
// platform's native trusted-relative join does (`.` markers elide). Owned
// buffers append through their Path view. No revalidation happens when the
// component was validated under the destination's platform.
//
// A component validated under a different platform is revalidated under the
// destination's rules first: one Windows "segment" like `a\b` is two segments
// to a Windows destination, so trust does not transfer across platforms.
func (d *DestPath) PushComponent(c SingleComponentPath) error {
	if c.platform != d.platform && !IsSingleComponent(d.platform, c.raw) {
		return fmt.Errorf("%q validated for %s is not a single component on %s: %w",
			c.raw, c.platform.Name(), d.platform.Name(), ErrUnsafePath)
	}

	d.path = d.platform.Join(d.path, c.raw)
	return nil
}

// PushRelative appends a validated run of components in place. Pushing an
// empty path leaves the destination unchanged. Cross-platform values are
// revalidated as in PushComponent.
func (d *DestPath) PushRelative(rel MultiComponentPath) error {
	if rel.platform != d.platform && !IsRelative(d.platform, rel.raw) {
		return fmt.Errorf("%q validated for %s is not traversal-free on %s: %w",
			rel.raw, rel.platform.Name(), d.platform.Name(), ErrUnsafePath)
	}

	if rel.raw == "" {
		return nil
	}

	d.path = d.platform.Join(d.path, rel.raw)
	return nil
}

// JoinComponent joins one validated component onto base under the component's
// own platform, without mutating anything.
func JoinComponent(base string, c SingleComponentPath) string {
	return c.platform.Join(base, c.raw)
}

// JoinRelative joins a validated run of components onto base under the run's
// own platform, without mutating anything. Joining an empty run returns base
// as given.
func JoinRelative(base string, rel MultiComponentPath) string {
	if rel.raw == "" {
		return base
	}
	return rel.platform.Join(base, rel.raw)
}
