//go:build !integration

package safepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/safepath/safepath/platform"
)

func TestNewSingleComponentPath(t *testing.T) {
	tests := map[string]struct {
		platform  platform.Platform
		arg       string
		component string
		invalid   bool
	}{
		"plain name": {
			platform:  platform.Unix(),
			arg:       "foo",
			component: "foo",
		},
		"file name": {
			platform:  platform.Unix(),
			arg:       "bar.txt",
			component: "bar.txt",
		},
		"leading current dir marker": {
			platform:  platform.Unix(),
			arg:       "./bar.txt",
			component: "bar.txt",
		},
		"surrounding current dir markers": {
			platform:  platform.Unix(),
			arg:       "./bar/.",
			component: "bar",
		},
		"empty": {
			platform: platform.Unix(),
			arg:      "",
			invalid:  true,
		},
		"only current dir markers": {
			platform: platform.Unix(),
			arg:      "./.",
			invalid:  true,
		},
		"parent marker": {
			platform: platform.Unix(),
			arg:      "..",
			invalid:  true,
		},
		"parent marker with name": {
			platform: platform.Unix(),
			arg:      "../file",
			invalid:  true,
		},
		"root": {
			platform: platform.Unix(),
			arg:      "/",
			invalid:  true,
		},
		"absolute path": {
			platform: platform.Unix(),
			arg:      "/etc/shadow",
			invalid:  true,
		},
		"two segments": {
			platform: platform.Unix(),
			arg:      "foo/bar.txt",
			invalid:  true,
		},
		"trailing separator keeps validity": {
			platform:  platform.Unix(),
			arg:       "dir/",
			component: "dir",
		},
		// The same bytes validate differently per platform: on Unix a drive
		// letter or backslash is just part of an ordinary name.
		"drive letter on unix": {
			platform:  platform.Unix(),
			arg:       `C:\x`,
			component: `C:\x`,
		},
		"drive letter on windows": {
			platform: platform.Windows(),
			arg:      `C:\x`,
			invalid:  true,
		},
		"backslash separated on unix": {
			platform:  platform.Unix(),
			arg:       `a\b`,
			component: `a\b`,
		},
		"backslash separated on windows": {
			platform: platform.Windows(),
			arg:      `a\b`,
			invalid:  true,
		},
		"named pipe on windows": {
			platform: platform.Windows(),
			arg:      `\\.\pipe\docker_engine`,
			invalid:  true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := NewSingleComponentPath(test.platform, test.arg)
			if test.invalid {
				require.ErrorIs(t, err, ErrUnsafePath)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.arg, c.String())
			assert.Equal(t, test.component, c.Component())
			assert.Equal(t, test.platform, c.Platform())
		})
	}
}

func TestSingleComponentOwnedBorrowedRoundTrip(t *testing.T) {
	c, err := NewSingleComponentPath(platform.Unix(), "./bar.txt")
	require.NoError(t, err)

	buf := c.ToBuf()
	assert.Equal(t, c.String(), buf.String())
	assert.Equal(t, c.Component(), buf.Component())

	// borrow then copy back to owned yields an equal value
	assert.True(t, buf.Path().ToBuf().Equal(buf))
	assert.True(t, buf.Path().Equal(c))

	clone := buf.Clone()
	assert.True(t, clone.Equal(buf))
}

func TestSingleComponentEquality(t *testing.T) {
	foo1, err := NewSingleComponentPath(platform.Unix(), "foo")
	require.NoError(t, err)
	foo2, err := NewSingleComponentPath(platform.Unix(), "foo")
	require.NoError(t, err)
	bar, err := NewSingleComponentPath(platform.Unix(), "bar")
	require.NoError(t, err)
	fooWindows, err := NewSingleComponentPath(platform.Windows(), "foo")
	require.NoError(t, err)

	assert.True(t, foo1.Equal(foo2))
	assert.False(t, foo1.Equal(bar))
	assert.False(t, foo1.Equal(fooWindows), "equality is platform-aware")

	assert.Zero(t, foo1.Compare(foo2))
	assert.Negative(t, bar.Compare(foo1))
	assert.Positive(t, foo1.Compare(bar))

	// wrappers are comparable and usable as map keys
	seen := map[SingleComponentPath]int{}
	seen[foo1]++
	seen[foo2]++
	seen[bar]++
	assert.Equal(t, 2, seen[foo1])
	assert.Equal(t, 1, seen[bar])
}
