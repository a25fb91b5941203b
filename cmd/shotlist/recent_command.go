package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentCommand(cc *commandContext) *cobra.Command {
	var clearFlag bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := cc.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := context.Background()
			if clearFlag {
				if err := db.ClearRecent(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "recent projects cleared")
				return nil
			}

			recents, err := db.ListRecent(ctx)
			if err != nil {
				return err
			}
			if len(recents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recent projects")
				return nil
			}

			headers := []string{"Name", "Path", "Last Opened"}
			rows := make([][]string, len(recents))
			for i, r := range recents {
				rows[i] = []string{r.Name, r.Path, r.LastOpened.Format("2006-01-02 15:04")}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearFlag, "clear", false, "Forget all recent projects")

	return cmd
}
