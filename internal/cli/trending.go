package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending items",
		Long:  "Ranks items by rating plus a bonus for recent release years. Needs no user.",
		Run:   runTrending,
	}

	cmd.Flags().StringP("kind", "k", "", "Restrict to one kind: movie, music, book or game")
	cmd.Flags().IntP("count", "c", 3, "Items per kind (default from config)")

	RootCmd.AddCommand(cmd)
}

func runTrending(cmd *cobra.Command, args []string) {
	kindStr, _ := cmd.Flags().GetString("kind")
	kind, err := parseKind(kindStr)
	if err != nil {
		exitErr("trending", err)
	}
	count := countFlag(cmd)

	sess, err := openAgent(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	printGroups(cmd, sess.Trending(kind, count))
}
