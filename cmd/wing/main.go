// wing checks the status of every URL in an input file, four at a time.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"wingtools/internal/checker"
	"wingtools/internal/source"
)

var (
	inputFile string
	baseURL   string
)

var rootCmd = &cobra.Command{
	Use:   "wing",
	Short: "Check website status for a list of URLs",
	Long: `wing reads URLs from a file and checks each one concurrently,
reporting reachable URLs on stdout and failures on stderr.

Plain files are read one URL per line; .md and .html inputs are scanned
for links.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, err := source.Load(inputFile, baseURL)
		if err != nil {
			return err
		}

		queue := checker.NewQueue(urls)
		pool := checker.NewPool(cmd.OutOrStdout(), cmd.ErrOrStderr())
		pool.Run(queue)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "urls.txt",
		"file containing URLs to check")
	rootCmd.Flags().StringVar(&baseURL, "base", "",
		"base URL for resolving relative links in .html inputs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
