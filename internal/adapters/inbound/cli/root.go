package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := newScanCmd()
	cmd.Use = "jisconv [path]"
	cmd.Short = "Find Shift_JIS source files and convert them to UTF-8"
	cmd.Long = "jisconv scans a directory tree for legacy Shift_JIS-encoded source files, " +
		"reports the detected encoding per file, and can rewrite matches as UTF-8 " +
		"while keeping byte-exact backups."
	cmd.SilenceUsage = true

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
