package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/pkg/picview"
)

var rootCmd = &cobra.Command{
	Use:   "picview",
	Short: "Browse folders of images from the terminal or a webview",
	Long: `picview lists the folders and images in a directory, loads images as
base64 data URIs, and remembers the last path you opened.

Use it directly (ls, load, parent, history), interactively (browse), or as
the native side of a webview shell (serve).

Images are recognised by their content, never by their name. Supported
kinds: JPEG, PNG, GIF, WebP.

Environment:
  PICVIEW_DATA_DIR         Where history.txt and picview.yaml live
  PICVIEW_ADDR             Default listen address for serve
  PICVIEW_NON_INTERACTIVE  Set to 1 to disable the terminal browser

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Unknown file format
  21 - Unsupported file format
  22 - Image could not be read
  23 - History could not be read or written`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("data-dir", "", "Application data directory (default $"+picview.EnvDataDir+" or the user config dir)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// getDataDirFlag returns the --data-dir value, or "" when unset.
func getDataDirFlag(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return ""
	}
	return dir
}

// commandContext returns the command's context, or Background when the
// command is invoked outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
