package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Import catalog items from JSON",
		Long: "Reads a catalog in the format produced by export (stdin or file) and merges it into the " +
			"stored catalog. Items with an existing id replace the stored ones.",
		Args: cobra.MaximumNArgs(1),
		Run:  runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		exitErr("read input", err)
	}

	incoming, err := store.DecodeCatalog(data)
	if err != nil {
		exitErr("parse catalog", err)
	}

	ctx := cmd.Context()
	sess, err := openAgent(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	imported := 0
	for _, k := range model.Kinds {
		for _, it := range incoming.List(k) {
			if err := sess.AddItem(it); err != nil {
				exitErr("import", err)
			}
			imported++
		}
	}
	if err := sess.saveCatalog(ctx); err != nil {
		exitErr("save", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
