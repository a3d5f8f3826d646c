package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/syssam/cardorm/dialect/sql/part"
	"github.com/syssam/cardorm/value"
)

type renderOptions struct {
	table  string
	fields []string
	top    int
	eq     []string
	in     []string
	set    []string
	asc    []string
	desc   []string
	escape bool
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a statement built from query fragments",
		Long: `Print a SELECT, or an UPDATE when --set is given, assembled from the query
fragment builders. Nothing is executed.

Values are typed by their text: null, integers, reals, true/false and UUIDs;
anything else is text.`,
		Example: `  cardorm render --table MntContracts --field ID --field Number --top 10 --eq State=2 --desc Created
  cardorm render --table MntContracts --set State=3 --eq ID=6ba7b810-9dad-11d1-80b4-00c04fd430c8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := render(o)
			if err != nil {
				return generalError("rendering", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.table, "table", "", "table name")
	f.StringArrayVar(&o.fields, "field", nil, "selected field (repeatable)")
	f.IntVar(&o.top, "top", 0, "row limit")
	f.StringArrayVar(&o.eq, "eq", nil, "equality condition field=value (repeatable)")
	f.StringArrayVar(&o.in, "in", nil, "membership condition field=v1,v2 (repeatable)")
	f.StringArrayVar(&o.set, "set", nil, "assignment field=value (repeatable); renders an UPDATE")
	f.StringArrayVar(&o.asc, "asc", nil, "ascending order field (repeatable)")
	f.StringArrayVar(&o.desc, "desc", nil, "descending order field (repeatable)")
	f.BoolVar(&o.escape, "escape", false, "double quotes inside text literals")
	_ = cmd.MarkFlagRequired("table")
	return cmd
}

func render(o renderOptions) (string, error) {
	var opts []part.Option
	if o.escape {
		opts = append(opts, part.WithEscaping())
	}
	var tables part.Tables
	if o.table != "" {
		tables.Add(o.table)
	}

	where := part.NewWhere(opts...)
	for _, kv := range o.eq {
		k, v, err := splitPair(kv)
		if err != nil {
			return "", err
		}
		where.Eq(k, parseValue(v))
	}
	for _, kv := range o.in {
		k, v, err := splitPair(kv)
		if err != nil {
			return "", err
		}
		var vs []value.Value
		for _, s := range strings.Split(v, ",") {
			vs = append(vs, parseValue(s))
		}
		where.In(k, vs)
	}

	if len(o.set) > 0 {
		set := part.NewValues(opts...)
		for _, kv := range o.set {
			k, v, err := splitPair(kv)
			if err != nil {
				return "", err
			}
			if err := set.Add(k, parseValue(v)); err != nil {
				return "", err
			}
		}
		upd, err := tables.Update()
		if err != nil {
			return "", err
		}
		return strings.TrimRight(upd+set.String()+where.String(), " ") + ";", nil
	}

	var sel part.Select
	sel.Add(o.fields...).Top(o.top)
	from, err := tables.From()
	if err != nil {
		return "", err
	}
	var order part.OrderBy
	for _, f := range o.asc {
		order.Asc(f)
	}
	for _, f := range o.desc {
		order.Desc(f)
	}
	stmt := strings.TrimRight(sel.String()+from+where.String(), " ")
	if ob := order.String(); ob != ";" {
		return stmt + " " + ob, nil
	}
	return stmt + ";", nil
}

func splitPair(kv string) (string, string, error) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("expected field=value, got %q", kv)
	}
	return k, v, nil
}

// parseValue types s by its text.
func parseValue(s string) value.Value {
	if strings.EqualFold(s, "null") {
		return value.Null()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return value.Real(f)
	}
	if s == "true" || s == "false" {
		return value.Bool(s == "true")
	}
	if len(s) == 36 {
		if id, err := uuid.Parse(s); err == nil {
			return value.Identifier(id)
		}
	}
	return value.Text(s)
}
