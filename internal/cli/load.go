package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadFlags struct {
	bare bool
}

var loadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Print an image as a base64 data URI",
	Long: `Read the image at path and print it as a data URI
(data:<mime>;base64,<data>) ready for an <img src>.

The file is accepted by content: a PNG saved as photo.txt loads, a text
file saved as photo.png does not. Supported kinds: JPEG, PNG, GIF, WebP.`,
	Example: `  picview load ~/Pictures/cat.webp
  picview load --bare cat.png | base64 -d > copy.png`,
	Args:              RequirePath,
	ValidArgsFunction: completeImagePaths,
	RunE:              runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().BoolVar(&loadFlags.bare, "bare", false, "Print only the base64 data, without the data URI prefix")
}

func resetLoadFlags() {
	loadFlags.bare = false
}

func runLoad(cmd *cobra.Command, args []string) error {
	app, err := loadAppContext(cmd)
	if err != nil {
		return err
	}

	payload, err := app.Loader.Load(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	out := payload.DataURI()
	if loadFlags.bare {
		out = payload.Data
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
