package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the catalog to the sample items",
		Long:  "Replaces the stored catalog with the built-in sample catalog, including one that can no longer be read. User profiles are kept.",
		Run:   runSeed,
	}

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	sess, err := openAgent(ctx)
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	if err := sess.reseed(ctx); err != nil {
		exitErr("save", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"items":%d}`+"\n", sess.Catalog().Total())
}
