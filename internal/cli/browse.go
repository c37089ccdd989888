package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse folders and images interactively",
	Long: `Open a full-screen browser at path, or at the last opened path when
path is omitted. Enter opens a folder or loads an image, backspace goes up,
g jumps to a typed path (Tab completes), q quits.

On exit the folder you were in is saved as the last opened path.

Without a terminal (pipes, CI, NO_COLOR, PICVIEW_NON_INTERACTIVE=1) the
listing is printed as 'picview ls' would.`,
	Args:              OptionalPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	app, err := loadAppContext(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	start := pathArg(args, "")
	if start == "" {
		last, err := app.History.Read(ctx)
		if err != nil {
			app.Logger.Verbose("No usable history: %v", err)
		}
		start = pathArg([]string{last}, ".")
	}
	if abs, err := filepath.Abs(start); err == nil {
		start = abs
	}

	if reason := tui.HeadlessReason(); reason != "" {
		app.Logger.Verbose("Printing the listing of %s (%s)", start, reason)
		return writeItems(cmd.OutOrStdout(), app.Lister.List(ctx, start), false)
	}

	final, err := tui.RunBrowser(tui.NewBrowserModel(app.Lister, app.Loader, app.FS, start))
	if err != nil {
		return err
	}
	return app.History.Write(ctx, final.Dir())
}
