package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Read or replace the last opened path",
	Long: `picview remembers one path, the last one opened, in history.txt under
the data directory. A missing or unreadable history file is recreated empty.`,
}

var historyGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the last opened path (empty if none)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadAppContext(cmd)
		if err != nil {
			return err
		}
		path, err := app.History.Read(commandContext(cmd))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

var historySetCmd = &cobra.Command{
	Use:   "set <path>",
	Short: "Replace the last opened path",
	Args:  RequirePath,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadAppContext(cmd)
		if err != nil {
			return err
		}
		path := args[0]
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if err := app.History.Write(commandContext(cmd), path); err != nil {
			return err
		}
		app.Logger.Verbose("History set to %s in %s", path, app.History.Path())
		return nil
	},
	ValidArgsFunction: completeDirectories,
}

func init() {
	historyCmd.AddCommand(historyGetCmd)
	historyCmd.AddCommand(historySetCmd)
	rootCmd.AddCommand(historyCmd)
}
