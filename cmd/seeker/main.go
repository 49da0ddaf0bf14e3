// seeker lists files under the current directory matching an extension.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wingtools/internal/seeker"
)

var withIndex bool

var rootCmd = &cobra.Command{
	Use:   "seeker EXTENSION",
	Short: "Recursively find files by extension",
	Long: `seeker walks the current directory tree and prints the path of
every file with the given extension, as soon as it is found.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		extension := seeker.SanitizeExtension(args[0])

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		count, err := seeker.Search(cwd, extension, func(index int, path string) {
			if withIndex {
				fmt.Fprintf(out, "%d: %s\n", index, path)
			} else {
				fmt.Fprintf(out, "%s\n", path)
			}
		})
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("no files found with extension .%s", extension)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&withIndex, "index", "i", false,
		"prefix each file with its match index")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
