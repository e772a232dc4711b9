package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/store"
)

type statsView struct {
	Backend string            `json:"backend"`
	Items   map[string]int    `json:"items"`
	Total   int               `json:"total"`
	Users   int               `json:"users"`
	DB      *store.Stats      `json:"db,omitempty"`
	Saves   []store.SaveEntry `json:"recent_saves,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog and store statistics",
		Run:   runStats,
	}

	cmd.Flags().Int("saves", 0, "With the sqlite backend, list this many recent saves")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	nSaves, _ := cmd.Flags().GetInt("saves")

	ctx := cmd.Context()
	sess, err := openAgent(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	c := sess.Catalog()
	view := statsView{
		Backend: cfg.Backend,
		Items:   map[string]int{},
		Total:   c.Total(),
		Users:   len(sess.Users()),
	}
	for _, k := range model.Kinds {
		view.Items[k.Plural()] = c.Len(k)
	}

	if db, ok := sess.store.(*store.SQLiteStore); ok {
		view.DB, err = db.Stats(ctx, cfg.DBPath)
		if err != nil {
			exitErr("stats", err)
		}
		if nSaves > 0 {
			view.Saves, err = db.Saves(ctx, nSaves)
			if err != nil {
				exitErr("stats", err)
			}
		}
	}

	if formatFlag == "text" {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "backend: %s\n", view.Backend)
		for _, k := range model.Kinds {
			fmt.Fprintf(out, "%s: %d\n", k.Plural(), view.Items[k.Plural()])
		}
		fmt.Fprintf(out, "total: %d\nusers: %d\n", view.Total, view.Users)
		if view.DB != nil {
			fmt.Fprintf(out, "db: %s (%d bytes, %d saves)\n", view.DB.DBPath, view.DB.DBSizeBytes, view.DB.Saves)
		}
		return
	}
	printJSON(cmd, view)
}
