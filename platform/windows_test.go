//go:build !integration

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsComponents(t *testing.T) {
	p := Windows()

	tests := map[string]struct {
		arg      string
		expected []Component
	}{
		"empty path": {
			arg:      "",
			expected: nil,
		},
		"single name": {
			arg:      "foo",
			expected: []Component{{Kind: ComponentNormal, Name: "foo"}},
		},
		"both separators split": {
			arg: `a\b/c`,
			expected: []Component{
				{Kind: ComponentNormal, Name: "a"},
				{Kind: ComponentNormal, Name: "b"},
				{Kind: ComponentNormal, Name: "c"},
			},
		},
		"drive prefix": {
			arg: `C:\x`,
			expected: []Component{
				{Kind: ComponentPrefix, Name: "C:"},
				{Kind: ComponentRoot, Name: `\`},
				{Kind: ComponentNormal, Name: "x"},
			},
		},
		"drive relative": {
			arg: "C:x",
			expected: []Component{
				{Kind: ComponentPrefix, Name: "C:"},
				{Kind: ComponentNormal, Name: "x"},
			},
		},
		"unc share": {
			arg: `\\server\share\dir`,
			expected: []Component{
				{Kind: ComponentPrefix, Name: `\\server\share`},
				{Kind: ComponentRoot, Name: `\`},
				{Kind: ComponentNormal, Name: "dir"},
			},
		},
		"named pipe": {
			arg:      `\\.\pipe\docker_engine`,
			expected: []Component{{Kind: ComponentPrefix, Name: `\\.\pipe\docker_engine`}},
		},
		"rooted without drive": {
			arg: `\windows`,
			expected: []Component{
				{Kind: ComponentRoot, Name: `\`},
				{Kind: ComponentNormal, Name: "windows"},
			},
		},
		"markers": {
			arg: `.\a\..`,
			expected: []Component{
				{Kind: ComponentCurrentDir, Name: "."},
				{Kind: ComponentNormal, Name: "a"},
				{Kind: ComponentParentDir, Name: ".."},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, p.Components(test.arg))
		})
	}
}

func TestWindowsJoin(t *testing.T) {
	p := Windows()

	tests := map[string]struct {
		args     []string
		expected string
	}{
		"single element": {
			args:     []string{"dir"},
			expected: "dir",
		},
		"joins with backslash": {
			args:     []string{`C:\base`, "dir"},
			expected: `C:\base\dir`,
		},
		"cleans current dir markers": {
			args:     []string{`C:\dst`, `.\file\.`},
			expected: `C:\dst\file`,
		},
		"normalizes forward slashes": {
			args:     []string{`C:/base/dir`, "file"},
			expected: `C:\base\dir\file`,
		},
		"empty elements are skipped": {
			args:     []string{"", "dir", ""},
			expected: "dir",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, p.Join(test.args...))
		})
	}
}

func TestWindowsIsAbs(t *testing.T) {
	p := Windows()

	tests := map[string]struct {
		arg      string
		expected bool
	}{
		"relative path": {
			arg:      "dir",
			expected: false,
		},
		"drive rooted": {
			arg:      `c:\dir`,
			expected: true,
		},
		"drive with forward slash": {
			arg:      "d:/dir",
			expected: true,
		},
		"rooted without drive": {
			arg:      `\dir`,
			expected: true,
		},
		"named pipe": {
			arg:      `\\.\pipe\docker_engine`,
			expected: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, p.IsAbs(test.arg))
		})
	}
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		arg      string
		expected string
		invalid  bool
	}{
		"unix":       {arg: "unix", expected: "unix"},
		"linux":      {arg: "linux", expected: "unix"},
		"windows":    {arg: "windows", expected: "windows"},
		"native":     {arg: "native", expected: Native().Name()},
		"empty":      {arg: "", expected: Native().Name()},
		"unknown os": {arg: "plan9", invalid: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := Lookup(test.arg)
			if test.invalid {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, p.Name())
		})
	}
}
