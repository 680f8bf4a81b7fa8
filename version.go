/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attrindex

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// Release metadata. Version is bumped by hand; GitCommit and BuildDate may be
// injected with -ldflags "-X github.com/suparena/attrindex.GitCommit=...", and
// otherwise fall back to the VCS stamp the go tool embeds in the binary.
var (
	Version   = "0.1.0"
	GitCommit = unknown
	BuildDate = unknown
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Modified  bool   `json:"modified,omitempty"`
}

// GetVersionInfo returns the version of the running binary
func GetVersionInfo() VersionInfo {
	bi, _ := debug.ReadBuildInfo()
	return versionInfo(bi)
}

func versionInfo(bi *debug.BuildInfo) VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if bi == nil {
		return info
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == unknown {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == unknown {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ShortCommit returns the first twelve characters of the commit hash
func (v VersionInfo) ShortCommit() string {
	if len(v.GitCommit) > 12 {
		return v.GitCommit[:12]
	}
	return v.GitCommit
}

func (v VersionInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "attrindex %s (%s", v.Version, v.ShortCommit())
	if v.Modified {
		b.WriteString("-dirty")
	}
	fmt.Fprintf(&b, ", %s, %s)", v.BuildDate, v.GoVersion)
	return b.String()
}
