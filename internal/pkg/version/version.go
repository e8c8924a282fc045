// Package version carries the git metadata embedded at build time.
package version

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && echo clean > dirty.txt || echo dirty > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo describes the commit the binary was built from.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// String formats the info as tag (commit), with a -dirty suffix for modified trees.
func (g GitInfo) String() string {
	short := g.Commit
	if len(short) > 12 {
		short = short[:12]
	}
	s := fmt.Sprintf("%s (%s)", g.Tag, short)
	if g.Dirty {
		s += "-dirty"
	}
	return s
}

var info = parse(commit, branch, tag, dirty)

func parse(commit, branch, tag, dirty string) GitInfo {
	return GitInfo{
		Commit: strings.TrimSpace(commit),
		Branch: strings.TrimSpace(branch),
		Tag:    strings.TrimSpace(tag),
		Dirty:  strings.TrimSpace(dirty) == "dirty",
	}
}

// GetGitInfo returns the embedded git metadata.
func GetGitInfo() GitInfo {
	return info
}
