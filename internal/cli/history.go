package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/model"
)

func init() {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the current user's consumption history",
	}

	addCmd := &cobra.Command{
		Use:   "add KIND ITEM_ID",
		Short: "Mark an item as seen",
		Long:  "Records an item id in the user's history. Seen items are penalized in recommendations.",
		Args:  cobra.ExactArgs(2),
		Run:   runHistoryAdd,
	}

	historyCmd.AddCommand(addCmd)
	RootCmd.AddCommand(historyCmd)
}

func runHistoryAdd(cmd *cobra.Command, args []string) {
	kind, ok := model.ParseKind(args[0])
	if !ok {
		exitErr("history", fmt.Errorf("unknown kind %q (valid: movie, music, book, game)", args[0]))
	}
	id := args[1]

	ctx := cmd.Context()
	sess, err := openAgent(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	if err := sess.selectUser(); err != nil {
		exitErr("history", err)
	}
	if _, ok := sess.Catalog().Get(kind, id); !ok {
		logger.Warn().Str("kind", string(kind)).Str("id", id).Msg("item not in catalog")
	}
	added, err := sess.AddToHistory(kind, id)
	if err != nil {
		exitErr("history", err)
	}
	if added {
		if err := sess.saveProfiles(ctx); err != nil {
			exitErr("save", err)
		}
	}

	if formatFlag == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %s %s as seen\n", kind, id)
		return
	}
	printJSON(cmd, map[string]any{"ok": true, "added": added})
}
