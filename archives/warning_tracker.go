package archives

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// warningTracker logs one warning per rejection kind per archive. Malicious
// archives routinely carry thousands of crafted entries and a warning per
// entry drowns the log.
type warningTracker struct {
	gitWarned   bool
	unsafeCount int
}

func newWarningTracker() *warningTracker {
	return &warningTracker{}
}

func (t *warningTracker) warn(name string, err error) {
	if errors.Is(err, ErrGitEntry) {
		if t.gitWarned {
			return
		}
		t.gitWarned = true

		logrus.Warning("Part of a .git directory is in the archive")
		logrus.Warning("This may introduce unexpected problems")
		return
	}

	t.unsafeCount++
	if t.unsafeCount == 1 {
		logrus.Warningf("%s: %s (suppressing repeats)", name, err)
	}
}
