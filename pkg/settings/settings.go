// Package settings provides build metadata, runtime configuration, and
// context helpers used across the textgrid CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "textgrid"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the renderer:
// logging, output styling, and terminal behavior.
type Run struct {
	MinLogLevel int8
	NoColor     bool
	Interactive bool
	StyleName   string
	FitWidth    bool
}

// NewCliParams initializes and returns a pointer to a Run struct with default
// CLI parameters: info-level logging, colored non-interactive output, and the
// light box-drawing style.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
		Interactive: false,
		StyleName:   "light",
		FitWidth:    false,
	}
}
