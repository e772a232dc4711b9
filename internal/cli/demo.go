package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/agent"
	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/scoring"
)

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through a sample session",
		Long:  "Creates a sample user in memory, adds preferences and prints recommendations, trending movies and a search. Nothing is saved.",
		Run:   runDemo,
	}

	RootCmd.AddCommand(cmd)
}

func runDemo(cmd *cobra.Command, args []string) {
	a := agent.New(agent.WithLogger(logger), agent.WithScorer(scoring.New(cfg.Weights)))
	if err := writeDemo(cmd.OutOrStdout(), a, cfg.DefaultCount); err != nil {
		exitErr("demo", err)
	}
}

type demoPref struct {
	kind     model.Kind
	category string
	value    string
}

var demoPrefs = []demoPref{
	{model.KindMovie, "genres", "Sci-Fi"},
	{model.KindMovie, "genres", "Action"},
	{model.KindMovie, "actors", "Leonardo DiCaprio"},
	{model.KindMusic, "genres", "Rock"},
	{model.KindMusic, "artists", "Queen"},
	{model.KindBook, "genres", "Fantasy"},
	{model.KindBook, "authors", "J.R.R. Tolkien"},
	{model.KindGame, "genres", "Action"},
	{model.KindGame, "platforms", "PC"},
}

func writeDemo(w io.Writer, a *agent.Agent, count int) error {
	id := a.CreateUser("John")
	for _, p := range demoPrefs {
		if _, err := a.AddPreference(p.kind, p.category, p.value); err != nil {
			return err
		}
	}

	groups, err := a.Recommendations("", count)
	if err != nil {
		return err
	}
	p, err := a.User(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Personalized Recommendations for", p.Name)
	for _, k := range model.Kinds {
		writeText(w, k, rankedItems(groups[k]))
	}

	fmt.Fprintln(w, "\nTrending Entertainment:")
	trending := a.Trending(model.KindMovie, count)
	writeText(w, model.KindMovie, rankedItems(trending[model.KindMovie]))

	fmt.Fprintln(w, "\nSearch results for 'action':")
	res := a.Search("action", "")
	for _, k := range model.Kinds {
		if items, ok := res[k]; ok {
			writeText(w, k, items)
		}
	}
	return nil
}
