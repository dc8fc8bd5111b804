// Package archives validates the entry names of zip and tar archives before
// anything is extracted. Archive entry names are a classic source of
// traversal: a crafted `../../` or absolute entry redirects extraction
// outside the destination tree. Every entry name is checked with the
// multi-component validation; extraction targets are computed only through
// the safepath join operations.
package archives

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"

	"gitlab.com/safepath/safepath"
	"gitlab.com/safepath/safepath/platform"
)

// ErrGitEntry marks an archive entry that is part of a `.git` directory.
// Writing into `.git` of a checkout can turn a data file into executable
// hooks or rewrite refs.
var ErrGitEntry = errors.New("entry is inside a .git directory")

// CheckOptions controls entry validation.
type CheckOptions struct {
	// Platform selects the path rules entries are validated under.
	// Defaults to Unix rules, which is what archive formats store.
	Platform platform.Platform

	// AllowGitDir accepts entries under a top-level `.git` directory
	// instead of reporting them.
	AllowGitDir bool

	// MaxDepth rejects entries with more than this many named segments.
	// Zero means unlimited.
	MaxDepth int
}

func (o CheckOptions) platform() platform.Platform {
	if o.Platform == nil {
		return platform.Unix()
	}
	return o.Platform
}

// EntryIssue is one rejected archive entry.
type EntryIssue struct {
	Name string
	Err  error
}

func (i EntryIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Name, i.Err)
}

func checkEntryName(name string, opts CheckOptions) error {
	rel, err := safepath.NewMultiComponentPath(opts.platform(), name)
	if err != nil {
		return err
	}

	segments := rel.Segments()

	if opts.MaxDepth > 0 && len(segments) > opts.MaxDepth {
		return fmt.Errorf("entry is %d segments deep, limit is %d: %w",
			len(segments), opts.MaxDepth, safepath.ErrUnsafePath)
	}

	if !opts.AllowGitDir && len(segments) > 0 && segments[0] == ".git" {
		return ErrGitEntry
	}

	return nil
}

// CheckZipArchive validates every entry name in the archive and returns the
// rejected ones. A nil result means every entry is safe to extract under a
// trusted destination.
func CheckZipArchive(archive *zip.Reader, opts CheckOptions) []EntryIssue {
	warnings := newWarningTracker()

	var issues []EntryIssue
	for _, file := range archive.File {
		if err := checkEntryName(file.Name, opts); err != nil {
			warnings.warn(file.Name, err)
			issues = append(issues, EntryIssue{Name: file.Name, Err: err})
		}
	}

	return issues
}

// CheckTarArchive validates every entry name in a tar stream, decompressing
// gzip input transparently. Symlink and hardlink targets are checked too: a
// link pointing at `../` or an absolute path escapes the destination tree
// just as a crafted entry name does.
func CheckTarArchive(r io.Reader, opts CheckOptions) ([]EntryIssue, error) {
	stream, err := decompressed(r)
	if err != nil {
		return nil, err
	}

	warnings := newWarningTracker()

	var issues []EntryIssue
	reader := tar.NewReader(stream)
	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return issues, fmt.Errorf("reading tar stream: %w", err)
		}

		if err := checkEntryName(header.Name, opts); err != nil {
			warnings.warn(header.Name, err)
			issues = append(issues, EntryIssue{Name: header.Name, Err: err})
			continue
		}

		if header.Typeflag != tar.TypeSymlink && header.Typeflag != tar.TypeLink {
			continue
		}

		if !safepath.IsRelative(opts.platform(), header.Linkname) {
			err := fmt.Errorf("link target %q: %w", header.Linkname, safepath.ErrUnsafePath)
			warnings.warn(header.Name, err)
			issues = append(issues, EntryIssue{Name: header.Name, Err: err})
		}
	}

	return issues, nil
}

// SafeTarget validates an entry name and joins it under base. It never
// returns a path outside base.
func SafeTarget(p platform.Platform, base, name string) (string, error) {
	rel, err := safepath.NewMultiComponentPath(p, name)
	if err != nil {
		return "", err
	}

	dest := safepath.NewDestPath(p, base)
	if err := dest.PushRelative(rel); err != nil {
		return "", err
	}

	return dest.String(), nil
}
