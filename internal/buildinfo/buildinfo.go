// Package buildinfo carries the release identifiers stamped in with
//
//	-ldflags "-X planespotter/internal/buildinfo.Version=v1.2.0 -X ...Commit=abc123 -X ...Date=2026-10-19"
package buildinfo

import "strings"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func known(s string) bool { return s != "" && s != "unknown" }

// Short is the compact identifier for the window title and splash: the
// version for releases, an abbreviated commit otherwise.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if known(Commit) {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long lists every stamped field, for -version output and the boot log.
func Long() string {
	var b strings.Builder
	b.WriteString(Version)
	if known(Commit) {
		b.WriteString(" commit " + Commit)
	}
	if known(Date) {
		b.WriteString(" built " + Date)
	}
	return b.String()
}
