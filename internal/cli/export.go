package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON",
		Long:  "Writes the catalog in catalog-file format to stdout. With --profiles, writes the user profiles instead.",
		Run:   runExport,
	}

	cmd.Flags().Bool("profiles", false, "Export user profiles instead of the catalog")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	profiles, _ := cmd.Flags().GetBool("profiles")

	sess, err := openAgent(cmd.Context())
	if err != nil {
		exitErr("open store", err)
	}
	defer sess.Close()

	var b []byte
	if profiles {
		b, err = store.EncodeProfiles(sess.Users())
	} else {
		b, err = store.EncodeCatalog(sess.Catalog())
	}
	if err != nil {
		exitErr("export", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
