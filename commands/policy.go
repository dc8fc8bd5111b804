package commands

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"gitlab.com/safepath/safepath/archives"
	"gitlab.com/safepath/safepath/platform"
)

// ScanPolicy is the TOML-configurable part of an archive scan.
type ScanPolicy struct {
	Platform    string `toml:"platform,omitempty" description:"Path rules entries are validated under"`
	AllowGitDir bool   `toml:"allow_git_dir,omitempty" description:"Accept entries inside a .git directory"`
	MaxDepth    int    `toml:"max_depth,omitempty" description:"Reject entries nested deeper than this many segments (0 = unlimited)"`
}

// LoadScanPolicy reads a policy file. An empty path returns the default
// policy: Unix rules (what archive formats store), no .git entries, no depth
// limit.
func LoadScanPolicy(path string) (*ScanPolicy, error) {
	policy := &ScanPolicy{Platform: "unix"}
	if path == "" {
		return policy, nil
	}

	if _, err := toml.DecodeFile(path, policy); err != nil {
		return nil, fmt.Errorf("loading scan policy %q: %w", path, err)
	}

	return policy, nil
}

// CheckOptions translates the policy into archive check options.
func (p *ScanPolicy) CheckOptions() (archives.CheckOptions, error) {
	pl, err := platform.Lookup(p.Platform)
	if err != nil {
		return archives.CheckOptions{}, err
	}

	return archives.CheckOptions{
		Platform:    pl,
		AllowGitDir: p.AllowGitDir,
		MaxDepth:    p.MaxDepth,
	}, nil
}
