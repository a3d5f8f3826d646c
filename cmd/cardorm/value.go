package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/syssam/cardorm/card"
)

func newValueCmd() *cobra.Command {
	var table, field, id string
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Print the stored value of one field",
		Example: `  # Read the contract number of a card
  cardorm value --table MntContracts --field Number --id 6ba7b810-9dad-11d1-80b4-00c04fd430c8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recID, err := uuid.Parse(id)
			if err != nil {
				return generalError("parsing --id", err)
			}
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			if _, err := reg.LookupKey(table, field); err != nil {
				return schemaError("unknown field", err)
			}

			drv, scope, err := openScope()
			if err != nil {
				return err
			}
			defer closeDriver(drv, scope)

			v, err := card.ValueFromRecordOrStore(cmd.Context(), card.New(recID), table, field, scope)
			if err != nil {
				return generalError("reading value", err)
			}
			if v.IsNull() {
				fmt.Fprintln(cmd.OutOrStdout(), "NULL")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&table, "table", "", "section (table) name")
	f.StringVar(&field, "field", "", "field name")
	f.StringVar(&id, "id", "", "card identifier")
	for _, name := range []string{"table", "field", "id"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
