package platform

import (
	golang_path "path"
	"strings"
)

type unixPlatform struct{}

var unix = &unixPlatform{}

// Unix returns the Platform for slash-separated POSIX paths.
func Unix() Platform {
	return unix
}

func (p *unixPlatform) Name() string {
	return "unix"
}

func (p *unixPlatform) Components(path string) []Component {
	var components []Component

	if strings.HasPrefix(path, "/") {
		components = append(components, Component{Kind: ComponentRoot, Name: "/"})
	}

	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "":
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

func (p *unixPlatform) Join(elem ...string) string {
	return golang_path.Join(elem...)
}

func (p *unixPlatform) IsAbs(path string) bool {
	path = golang_path.Clean(path)
	return golang_path.IsAbs(path)
}
