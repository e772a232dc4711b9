package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend items for the current user",
		Long: "Scores every item of the selected kinds against the user's preferences and history " +
			"and prints the highest-scoring ones. Seen items are penalized, not removed.",
		Run: runRecommend,
	}

	cmd.Flags().StringP("kind", "k", "", "Restrict to one kind: movie, music, book or game")
	cmd.Flags().IntP("count", "c", 3, "Items per kind (default from config)")

	RootCmd.AddCommand(cmd)
}

func runRecommend(cmd *cobra.Command, args []string) {
	kindStr, _ := cmd.Flags().GetString("kind")
	kind, err := parseKind(kindStr)
	if err != nil {
		exitErr("recommend", err)
	}
	count := countFlag(cmd)

	sess, err := openAgent(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	if err := sess.selectUser(); err != nil {
		exitErr("recommend", err)
	}
	groups, err := sess.Recommendations(kind, count)
	if err != nil {
		exitErr("recommend", err)
	}
	printGroups(cmd, groups)
}
