// Package buildinfo exposes the binary's version. Values can be overridden
// at link time and otherwise fall back to VCS info embedded by the
// toolchain.
package buildinfo

import (
	"github.com/earthboundkid/versioninfo/v2"
)

func init() {
	if Version == "" {
		Version = versioninfo.Version
	}
	if Revision == "" {
		Revision = versioninfo.Revision
	}
	if CommitTime == "" {
		CommitTime = versioninfo.LastCommit.Local().Format("2006-01-02 15:04:05")
	}
}

var (
	Version    = ""
	BuildTime  = ""
	CommitTime = ""
	Revision   = ""
)

// String renders a single-line version description.
func String() string {
	s := Version + " (" + Revision + " " + CommitTime + ")"
	if BuildTime != "" {
		s += " built " + BuildTime
	}
	return s
}
