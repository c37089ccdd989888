package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/internal/files/lister"
)

var parentCmd = &cobra.Command{
	Use:   "parent <path>",
	Short: "Print the parent directory of a path",
	Long: `Print the parent directory of path. A filesystem root is its own parent.
The path is not required to exist.`,
	Example: `  picview parent /home/me/Pictures    # /home/me
  picview parent /                     # /`,
	Args: RequirePath,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), lister.Parent(args[0]))
		return err
	},
}

func init() {
	rootCmd.AddCommand(parentCmd)
}
