package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search titles and genres",
		Long:  "Case-insensitive substring search over item titles and genres. Groups with no match are omitted.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().StringP("kind", "k", "", "Restrict to one kind: movie, music, book or game")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	kindStr, _ := cmd.Flags().GetString("kind")
	kind, err := parseKind(kindStr)
	if err != nil {
		exitErr("search", err)
	}

	sess, err := openAgent(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	printResults(cmd, sess.Search(strings.Join(args, " "), kind))
}
