// Package part assembles SQL fragments as plain text.
//
// Each builder accumulates one clause and renders it on demand. Builders do
// not quote identifiers, do not parameterize values and never execute what
// they render; callers concatenate the fragments into a statement:
//
//	var (
//	    sel   part.Select
//	    from  part.Tables
//	    where part.Where
//	    order part.OrderBy
//	)
//	sel.Add("ID", "Number")
//	sel.Top(10)
//	from.AddType(ContractsClass{})          // "Contracts"
//	where.Eq("State", value.Int(2))
//	where.In("Kind", []value.Value{value.Int(1), value.Int(3)})
//	order.Desc("Created")
//
//	f, _ := from.From()
//	query := sel.String() + f + where.String() + " " + order.String()
//	// SELECT TOP 10 ID,Number FROM Contracts WHERE State=2 AND Kind IN (1,3) ORDER BY Created DESC;
//
// # Literals
//
// Values are embedded with [Literal]. Text and identifiers are wrapped in
// single quotes verbatim: embedded quotes are not escaped, so text that may
// contain them must be rejected before it reaches a builder, or the builder
// must be created with [WithEscaping], which doubles embedded quotes.
package part
