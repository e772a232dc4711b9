package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/store"
)

func init() {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user profiles",
	}

	createCmd := &cobra.Command{
		Use:   "create NAME...",
		Short: "Create a user profile",
		Args:  cobra.MinimumNArgs(1),
		Run:   runUserCreate,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List user profiles",
		Run:   runUserList,
	}

	showCmd := &cobra.Command{
		Use:   "show [USER_ID]",
		Short: "Show a profile (default: --user)",
		Args:  cobra.MaximumNArgs(1),
		Run:   runUserShow,
	}

	userCmd.AddCommand(createCmd, listCmd, showCmd)
	RootCmd.AddCommand(userCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	sess, err := openAgent(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	name := strings.Join(args, " ")
	id := sess.CreateUser(name)
	if err := sess.saveProfiles(ctx); err != nil {
		exitErr("save", err)
	}
	logger.Info().Str("user_id", id).Msg("user created")

	if formatFlag == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", name, id)
		return
	}
	printJSON(cmd, map[string]any{"ok": true, "user_id": id, "name": name})
}

func runUserList(cmd *cobra.Command, args []string) {
	sess, err := openAgent(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	users := sess.Users()
	if formatFlag == "text" {
		for _, p := range users {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.UserID, p.Name)
		}
		return
	}

	type row struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
	}
	out := make([]row, 0, len(users))
	for _, p := range users {
		out = append(out, row{UserID: p.UserID, Name: p.Name})
	}
	printJSON(cmd, out)
}

func runUserShow(cmd *cobra.Command, args []string) {
	id := cfg.User
	if len(args) == 1 {
		id = args[0]
	}
	if id == "" {
		exitErr("show", fmt.Errorf("no user given (pass USER_ID or --user)"))
	}

	sess, err := openAgent(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	p, err := sess.User(id)
	if err != nil {
		exitErr("show", err)
	}

	if formatFlag == "text" {
		writeProfile(cmd, p)
		return
	}
	printJSON(cmd, store.ProfileRecord(p))
}

func writeProfile(cmd *cobra.Command, p *model.Profile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", p.Name, p.UserID)
	for _, k := range model.Kinds {
		fmt.Fprintf(out, "\n%s:\n", k.Plural())
		if g := p.Preferences.Genres(k); len(g) > 0 {
			fmt.Fprintf(out, "  genres: %s\n", strings.Join(g, ", "))
		}
		if y := p.Preferences.Years(k); len(y) > 0 {
			fmt.Fprintf(out, "  years: %v\n", y)
		}
		if seen := p.History[k]; len(seen) > 0 {
			fmt.Fprintf(out, "  seen: %s\n", strings.Join(seen, ", "))
		}
	}
}
