// Package safepath provides path wrappers that are guaranteed, once
// constructed, to be free of directory traversal: no `..` markers, no root,
// no drive or share prefix. It lets an application accept untrusted strings
// (user-supplied filenames, archive entry names, request payloads) and compose
// them into a trusted destination path without risking `../../etc/shadow`
// style escapes or absolute-path override.
//
// Validation happens once, at construction, under the rules of a target
// platform.Platform. A constructed wrapper is immutable and safe for
// concurrent use. Growing a destination path from untrusted input is done only
// through DestPath, which accepts wrapper values and nothing else.
//
// The package does not resolve symlinks, check filesystem existence or defend
// against races between validation and use.
package safepath

import (
	"errors"

	"gitlab.com/safepath/safepath/platform"
)

// ErrUnsafePath is returned by all constructors when the input does not
// satisfy the component-validity rules. This is the only rejection kind:
// validation is a pure yes/no decision.
var ErrUnsafePath = errors.New("path is not traversal-safe")

// IsSingleComponent reports whether path decomposes, after discarding `.`
// markers, to exactly one ordinary named segment under p's rules.
//
// `foo`, `bar.txt` and `./bar.txt` qualify; ``, `.`, `..`, `foo/bar`, `/foo`
// and (on Windows) `C:\x` do not.
func IsSingleComponent(p platform.Platform, path string) bool {
	normal := 0

	for _, component := range p.Components(path) {
		switch component.Kind {
		case platform.ComponentCurrentDir:
		case platform.ComponentNormal:
			normal++
		default:
			return false
		}
	}

	return normal == 1
}

// IsRelative reports whether every component of path is an ordinary named
// segment or a `.` marker under p's rules. An empty path has no components
// and is trivially relative.
func IsRelative(p platform.Platform, path string) bool {
	for _, component := range p.Components(path) {
		switch component.Kind {
		case platform.ComponentCurrentDir, platform.ComponentNormal:
		default:
			return false
		}
	}

	return true
}

func segments(p platform.Platform, path string) []string {
	var names []string
	for _, component := range p.Components(path) {
		if component.Kind == platform.ComponentNormal {
			names = append(names, component.Name)
		}
	}
	return names
}
