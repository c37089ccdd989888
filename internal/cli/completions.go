package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/internal/files/lister"
	"github.com/vvka-141/picview/internal/logging"
)

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeImagePaths completes to the folders and images picview would list,
// in the same order.
func completeImagePaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Keep whatever directory part the user typed, verbatim
	typedDir := ""
	if i := strings.LastIndex(toComplete, string(filepath.Separator)); i >= 0 {
		typedDir = toComplete[:i+1]
	}
	dir := typedDir
	if dir == "" {
		dir = "."
	}

	l := lister.NewLister(logging.NewNullLogger())
	var matches []string
	for _, item := range l.List(commandContext(cmd), dir) {
		candidate := typedDir + filepath.Base(item.Path)
		if item.IsDirectory {
			candidate += string(filepath.Separator)
		}
		if strings.HasPrefix(candidate, toComplete) {
			matches = append(matches, candidate)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
