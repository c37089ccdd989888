package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/pkg/picview"
)

var lsFlags struct {
	json bool
}

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the folders and images in a directory",
	Long: `List the immediate subdirectories and image files of path (default: the
current directory). When path is a file, its directory is listed instead.

Directories come first, then images, each in natural order (img2 before
img10). Files are included by extension: jpg, jpeg, png, gif, webp.
An unreadable or missing directory lists as empty.`,
	Example: `  picview ls ~/Pictures
  picview ls ~/Pictures/holiday.png
  picview ls --json . | jq '.[].path'`,
	Args:              OptionalPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolVar(&lsFlags.json, "json", false, "Print items as a JSON array")
}

func resetLsFlags() {
	lsFlags.json = false
}

func runLs(cmd *cobra.Command, args []string) error {
	app, err := loadAppContext(cmd)
	if err != nil {
		return err
	}

	items := app.Lister.List(commandContext(cmd), pathArg(args, "."))
	return writeItems(cmd.OutOrStdout(), items, lsFlags.json)
}

// writeItems prints one item per line, directories with a trailing
// separator, or the whole listing as JSON.
func writeItems(w io.Writer, items []picview.PathItem, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for _, item := range items {
		line := item.Path
		if item.IsDirectory {
			line += string(filepath.Separator)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
