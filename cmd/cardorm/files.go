package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/syssam/cardorm/card"
)

func newFilesCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Print the number of files attached to a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			recID, err := uuid.Parse(id)
			if err != nil {
				return generalError("parsing --id", err)
			}
			drv, scope, err := openScope()
			if err != nil {
				return err
			}
			defer closeDriver(drv, scope)

			n, err := card.FilesCount(cmd.Context(), recID, scope)
			if err != nil {
				return generalError("counting files", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "card identifier")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
