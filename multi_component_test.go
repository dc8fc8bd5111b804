//go:build !integration

package safepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/safepath/safepath/platform"
)

func TestNewMultiComponentPath(t *testing.T) {
	tests := map[string]struct {
		platform platform.Platform
		arg      string
		segments []string
		invalid  bool
	}{
		"several segments": {
			platform: platform.Unix(),
			arg:      "a/b/c",
			segments: []string{"a", "b", "c"},
		},
		"current dir markers allowed": {
			platform: platform.Unix(),
			arg:      "./a/./b",
			segments: []string{"a", "b"},
		},
		"empty path is vacuously safe": {
			platform: platform.Unix(),
			arg:      "",
			segments: nil,
		},
		"only current dir markers": {
			platform: platform.Unix(),
			arg:      "./.",
			segments: nil,
		},
		"parent marker": {
			platform: platform.Unix(),
			arg:      "..",
			invalid:  true,
		},
		"parent marker between segments": {
			platform: platform.Unix(),
			arg:      "a/../b",
			invalid:  true,
		},
		"parent marker with name": {
			platform: platform.Unix(),
			arg:      "../folder/file",
			invalid:  true,
		},
		"rooted": {
			platform: platform.Unix(),
			arg:      "/a",
			invalid:  true,
		},
		"drive prefixed on windows": {
			platform: platform.Windows(),
			arg:      `C:\a`,
			invalid:  true,
		},
		"backslash run on windows": {
			platform: platform.Windows(),
			arg:      `a\b\c`,
			segments: []string{"a", "b", "c"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := NewMultiComponentPath(test.platform, test.arg)
			if test.invalid {
				require.ErrorIs(t, err, ErrUnsafePath)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.arg, m.String())
			assert.Equal(t, test.segments, m.Segments())
		})
	}
}

// Anything the single-component validation accepts, the multi-component
// validation accepts as well. The converse does not hold.
func TestSingleComponentImpliesMultiComponent(t *testing.T) {
	inputs := []string{
		"", ".", "./.", "..", "../file", "foo", "bar.txt", "./bar.txt",
		"./bar/.", "foo/bar", "a/b/c", "/", "/etc/shadow", `C:\x`, `a\b`,
	}

	for _, p := range []platform.Platform{platform.Unix(), platform.Windows()} {
		for _, input := range inputs {
			if IsSingleComponent(p, input) {
				assert.True(t, IsRelative(p, input),
					"%q accepted as a single component on %s but rejected as a relative path", input, p.Name())
			}
		}
	}
}

func TestMultiComponentOwnedBorrowedRoundTrip(t *testing.T) {
	m, err := NewMultiComponentPath(platform.Unix(), "./a/./b")
	require.NoError(t, err)

	buf := m.ToBuf()
	assert.Equal(t, m.String(), buf.String())
	assert.Equal(t, m.Segments(), buf.Segments())

	assert.True(t, buf.Path().ToBuf().Equal(buf))
	assert.True(t, buf.Path().Equal(m))
	assert.True(t, buf.Clone().Equal(buf))
}
