package main

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the editor version without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is what the welcome banner and -version show.
func VersionTag() string {
	return "v" + Version()
}
