package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/model"
)

func init() {
	prefCmd := &cobra.Command{
		Use:   "pref",
		Short: "Manage preferences of the current user",
	}

	addCmd := &cobra.Command{
		Use:   "add KIND CATEGORY VALUE...",
		Short: "Add a preference",
		Long: "Adds a value to one of the user's preference sets. Categories per kind:\n" +
			"  movie: genres, actors, directors, years, ratings\n" +
			"  music: genres, artists, years, ratings\n" +
			"  book:  genres, authors, years, ratings\n" +
			"  game:  genres, developers, platforms, years, ratings",
		Args: cobra.MinimumNArgs(3),
		Run:  runPrefAdd,
	}

	prefCmd.AddCommand(addCmd)
	RootCmd.AddCommand(prefCmd)
}

func runPrefAdd(cmd *cobra.Command, args []string) {
	kind, ok := model.ParseKind(args[0])
	if !ok {
		exitErr("pref", fmt.Errorf("unknown kind %q (valid: movie, music, book, game)", args[0]))
	}
	category := args[1]
	if !model.ValidCategory(kind, category) {
		exitErr("pref", fmt.Errorf("unknown category %q for %s (valid: %s)",
			category, kind, strings.Join(model.Categories(kind), ", ")))
	}
	value, err := prefValue(category, strings.Join(args[2:], " "))
	if err != nil {
		exitErr("pref", err)
	}

	ctx := cmd.Context()
	sess, err := openAgent(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	if err := sess.selectUser(); err != nil {
		exitErr("pref", err)
	}
	added, err := sess.AddPreference(kind, category, value)
	if err != nil {
		exitErr("pref", err)
	}
	if added {
		if err := sess.saveProfiles(ctx); err != nil {
			exitErr("save", err)
		}
	}

	if formatFlag == "text" {
		if added {
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s: %v\n", kind, category, value)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Unchanged: %v already present\n", value)
		}
		return
	}
	printJSON(cmd, map[string]any{"ok": true, "added": added})
}

// prefValue converts the raw argument to the type its category stores.
func prefValue(category, raw string) (any, error) {
	switch category {
	case "years":
		y, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", raw)
		}
		return y, nil
	case "ratings":
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q", raw)
		}
		return r, nil
	}
	return raw, nil
}
