package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version is the guildctl release reported by the version command and sent
// in the User-Agent header. Tagged module builds report their tag.
func Version() string {
	release := strings.TrimSpace(embeddedVersion)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return release
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return "devel-" + release + revision(info.Settings)
}

// revision returns "+<short commit>" when the binary carries VCS stamps.
func revision(settings []debug.BuildSetting) string {
	for _, s := range settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "+" + s.Value[:7]
		}
	}
	return ""
}
