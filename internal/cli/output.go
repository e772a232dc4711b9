package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/agent"
	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/recommend"
	"github.com/melisa48/entertainment-agent/internal/store"
)

// rankedView is a ranked item as printed in JSON output.
type rankedView struct {
	Score float64 `json:"score"`
	Item  any     `json:"item"`
}

func printJSON(cmd *cobra.Command, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode output", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func itemRecord(it model.Item) any {
	rec, err := store.Record(it)
	if err != nil {
		exitErr("encode item", err)
	}
	return rec
}

// printGroups prints ranked groups in kind order.
func printGroups(cmd *cobra.Command, groups agent.Groups) {
	out := cmd.OutOrStdout()
	if formatFlag == "text" {
		for _, k := range model.Kinds {
			rs, ok := groups[k]
			if !ok {
				continue
			}
			writeText(out, k, rankedItems(rs))
		}
		return
	}

	view := map[string][]rankedView{}
	for k, rs := range groups {
		list := make([]rankedView, 0, len(rs))
		for _, r := range rs {
			list = append(list, rankedView{Score: round(r.Score), Item: itemRecord(r.Item)})
		}
		view[k.Plural()] = list
	}
	printJSON(cmd, view)
}

func rankedItems(rs []recommend.Ranked) []model.Item {
	items := make([]model.Item, len(rs))
	for i, r := range rs {
		items[i] = r.Item
	}
	return items
}

// printResults prints search results in kind order.
func printResults(cmd *cobra.Command, res recommend.Results) {
	out := cmd.OutOrStdout()
	if formatFlag == "text" {
		if len(res) == 0 {
			fmt.Fprintln(out, "No matches.")
		}
		for _, k := range model.Kinds {
			if items, ok := res[k]; ok {
				writeText(out, k, items)
			}
		}
		return
	}

	view := map[string][]any{}
	for k, items := range res {
		list := make([]any, 0, len(items))
		for _, it := range items {
			list = append(list, itemRecord(it))
		}
		view[k.Plural()] = list
	}
	printJSON(cmd, view)
}

func writeText(w io.Writer, kind model.Kind, items []model.Item) {
	title := kind.Plural()
	fmt.Fprintf(w, "\n%s:\n", strings.ToUpper(title[:1])+title[1:])
	for _, it := range items {
		fmt.Fprintln(w, describe(it))
	}
}

// describe renders one item as a bullet line.
func describe(it model.Item) string {
	var by string
	switch d := it.Details.(type) {
	case *model.Music:
		by = d.Artist
	case *model.Book:
		by = d.Author
	case *model.Game:
		by = d.Developer
	}
	if by != "" {
		return fmt.Sprintf("- %s by %s (%d) - %s", it.Title, by, it.Year, strings.Join(it.Genres, ", "))
	}
	return fmt.Sprintf("- %s (%d) - %s", it.Title, it.Year, strings.Join(it.Genres, ", "))
}

func round(f float64) float64 {
	return math.Round(f*1000) / 1000
}
