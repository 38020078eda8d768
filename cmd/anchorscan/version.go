package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version  string
	Commit   string
	Date     string
	Modified bool
	Go       string
	Platform string
}

// readBuildInfo collects version details. Values injected with ldflags
// take precedence over the module and VCS data embedded by the Go
// toolchain; whatever is still missing falls back to "(devel)" or "unknown".
func readBuildInfo() buildInfo {
	info := buildInfo{
		Version:  version,
		Commit:   commit,
		Date:     date,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

// shortRevision abbreviates a commit hash to seven characters.
func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// getVersion returns the version shown by --version.
func getVersion() string {
	return readBuildInfo().Version
}

// write prints the version block.
func (b buildInfo) write(w io.Writer) {
	rev := b.Commit
	if b.Modified {
		rev += " (modified)"
	}
	fmt.Fprintf(w, "anchorscan version %s\n", b.Version)
	fmt.Fprintf(w, "  commit: %s\n", rev)
	fmt.Fprintf(w, "  built:  %s\n", b.Date)
	fmt.Fprintf(w, "  go:     %s %s\n", b.Go, b.Platform)
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, build date, and Go toolchain of anchorscan.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			readBuildInfo().write(cmd.OutOrStdout())
		},
	}
}
