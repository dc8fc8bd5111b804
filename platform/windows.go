package platform

import (
	golang_path "path"
	"regexp"
	"strings"
)

// This is an approximation of Windows path rules that works when compiled for
// any OS. Dealing with Windows path operations typically requires the code to
// be run from a Windows host, but paths validated for a Windows target are
// routinely handled on other hosts, so rules that match how the path is
// ultimately used are good enough.
type windowsPlatform struct{}

var windows = &windowsPlatform{}

// Windows returns the Platform for Windows paths. Both `/` and `\` act as
// separators, drive letters and UNC shares are prefixes.
func Windows() Platform {
	return windows
}

// windowsNamedPipeRe matches a named pipe path (starts with `\\.\pipe\`, possibly with / instead of \)
var windowsNamedPipeRe = regexp.MustCompile(`(?i)^[/\\]{2}\.[/\\]pipe[/\\][^:*?"<>|\r\n]+$`)

func (p *windowsPlatform) Name() string {
	return "windows"
}

func isWindowsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// splitPrefix splits off a drive letter (`C:`) or UNC share (`\\server\share`)
// prefix. Named pipes are handled by the callers before path splitting.
func splitPrefix(path string) (prefix, rest string) {
	switch {
	case len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]):
		return path[:2], path[2:]

	case len(path) >= 2 && isWindowsSeparator(path[0]) && isWindowsSeparator(path[1]):
		separators := 0
		i := 2
		for ; i < len(path); i++ {
			if isWindowsSeparator(path[i]) {
				separators++
				if separators == 2 {
					break
				}
			}
		}
		return path[:i], path[i:]
	}

	return "", path
}

func (p *windowsPlatform) Components(path string) []Component {
	if path == "" {
		return nil
	}

	if windowsNamedPipeRe.MatchString(path) {
		return []Component{{Kind: ComponentPrefix, Name: path}}
	}

	var components []Component

	prefix, rest := splitPrefix(path)
	if prefix != "" {
		components = append(components, Component{Kind: ComponentPrefix, Name: prefix})
	}

	if rest != "" && isWindowsSeparator(rest[0]) {
		components = append(components, Component{Kind: ComponentRoot, Name: string(rest[0])})
	}

	for _, segment := range strings.FieldsFunc(rest, func(r rune) bool { return r == '\\' || r == '/' }) {
		switch segment {
		case ".":
			components = append(components, Component{Kind: ComponentCurrentDir, Name: "."})
		case "..":
			components = append(components, Component{Kind: ComponentParentDir, Name: ".."})
		default:
			components = append(components, Component{Kind: ComponentNormal, Name: segment})
		}
	}

	return components
}

// Join joins path elements with `\` and cleans the result the way
// `path/filepath` would when compiled for Windows.
func (p *windowsPlatform) Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	return p.clean(strings.Join(parts, `\`))
}

func (p *windowsPlatform) IsAbs(path string) bool {
	if windowsNamedPipeRe.MatchString(path) {
		return true
	}

	// https://docs.microsoft.com/en-gb/windows/win32/fileio/naming-a-file#fully-qualified-vs-relative-paths
	switch {
	// \absolute.txt, /absolute.txt, \\server\absolute.txt, //server/absolute.txt
	case len(path) > 0 && isWindowsSeparator(path[0]):
		return true

	case len(path) > 1 && path[1] == ':': // c:\, d:/ etc.
		return true
	}

	return false
}

// clean resolves `.` and `..` markers and collapses repeated separators,
// leaving the drive or share prefix untouched.
func (p *windowsPlatform) clean(path string) string {
	prefix, rest := splitPrefix(path)
	if rest == "" {
		return prefix
	}

	cleaned := golang_path.Clean(strings.ReplaceAll(rest, `\`, "/"))

	return prefix + strings.ReplaceAll(cleaned, "/", `\`)
}
