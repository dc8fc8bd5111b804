package platform

import (
	"fmt"
	"runtime"
)

// ComponentKind classifies one element of a path's decomposition.
type ComponentKind int

const (
	// ComponentPrefix is a platform-specific anchor that precedes the root,
	// such as a Windows drive letter (`C:`) or a UNC share (`\\server\share`).
	ComponentPrefix ComponentKind = iota
	// ComponentRoot is the root directory separator.
	ComponentRoot
	// ComponentParentDir is the `..` marker.
	ComponentParentDir
	// ComponentCurrentDir is the `.` marker.
	ComponentCurrentDir
	// ComponentNormal is an ordinary file or directory name.
	ComponentNormal
)

func (k ComponentKind) String() string {
	switch k {
	case ComponentPrefix:
		return "prefix"
	case ComponentRoot:
		return "root"
	case ComponentParentDir:
		return "parent-dir"
	case ComponentCurrentDir:
		return "current-dir"
	case ComponentNormal:
		return "normal"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Component is one element of a path's decomposition.
type Component struct {
	Kind ComponentKind
	Name string
}

// Platform is used for decomposition/manipulation of a path depending on the OS.
// Each supported OS needs to have its own implementation.
//
// Implementations are usable from any host: a path destined for a Windows
// filesystem must be parsed with Windows rules even when the program doing the
// parsing runs on Linux. The same string can decompose differently on
// different platforms (`C:\x` is a prefixed path on Windows and a single
// ordinary name on Unix), so callers must pick the platform the path will
// ultimately be used on.
type Platform interface {
	Name() string
	Components(path string) []Component
	Join(elem ...string) string
	IsAbs(path string) bool
}

// Native returns the Platform matching the OS this program runs on.
func Native() Platform {
	if runtime.GOOS == "windows" {
		return Windows()
	}
	return Unix()
}

// Lookup resolves a platform by name. The empty string and "native" resolve
// to the current OS.
func Lookup(name string) (Platform, error) {
	switch name {
	case "", "native":
		return Native(), nil
	case "unix", "linux", "darwin":
		return Unix(), nil
	case "windows":
		return Windows(), nil
	}

	return nil, fmt.Errorf("unknown platform %q, expected one of: native, unix, windows", name)
}
