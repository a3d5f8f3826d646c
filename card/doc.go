// Package card reads, writes and synchronizes the sections of a card record.
//
// A Record owns named sections. A Section is a flat field set with a raw view
// (fields explicitly assigned) and an effective view (raw fields plus
// defaults). A Table is an ordered sequence of rows, each carrying a Row
// Identity and a RowState that tells the store what to do with it on save.
//
// The accessors are generic over a key set type (see schema.Key), which
// selects the section by name:
//
//	card.FillSilently(c, ContractsNumber, value.Text("N-1")) // seeded, not dirty
//	card.Fill(c, ContractsAmount, value.Real(99.5))          // pending edit
//	v := card.GetValueOrNull(c, ContractsAmount)
//
// CopyTable reconciles a target table with a source table by position;
// SyncTable does the same by Row Identity. Both leave every target row in
// the state to persist: Modified, Inserted or Deleted. The key set is
// inferred from the excluded keys; with nothing excluded it must be given:
//
//	card.CopyTable[ContractRows](src, dst)
//
// New returns an in-memory Record. Other record implementations only need to
// satisfy the interfaces in this package.
package card
