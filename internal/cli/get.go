package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get KIND ID",
		Short: "Show one catalog item",
		Args:  cobra.ExactArgs(2),
		Run:   runGet,
	}

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	kind, err := parseKind(args[0])
	if err != nil || kind == "" {
		exitErr("get", fmt.Errorf("unknown kind %q", args[0]))
	}

	sess, err := openAgent(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	it, err := sess.Item(kind, args[1])
	if err != nil {
		exitErr("get", err)
	}

	if formatFlag == "text" {
		fmt.Fprintln(cmd.OutOrStdout(), describe(it))
		return
	}
	printJSON(cmd, itemRecord(it))
}
