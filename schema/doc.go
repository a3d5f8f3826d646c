// Package schema maps typed field keys to the section or table they belong to.
//
// Each key set is a string-based type whose constants name the fields of one
// section. The type itself carries the section name and the full key domain:
//
//	type Contracts string
//
//	const (
//	    ContractsID     Contracts = "ID"
//	    ContractsNumber Contracts = "Number"
//	    ContractsAmount Contracts = "Amount"
//	)
//
//	func (Contracts) DomainName() string { return "MntContracts" }
//
//	func (Contracts) AllKeys() []Contracts {
//	    return []Contracts{ContractsID, ContractsNumber, ContractsAmount}
//	}
//
// Generic helpers constrained by [Key] resolve the section name from the zero
// value of the key type, so no reflection is involved:
//
//	d := schema.Describe[Contracts]()
//	d.Name             // "MntContracts"
//	d.Contains("ID")   // true
//
// Key sets that are only known at run time (for example by command line
// tools) are described with a [Descriptor] and collected in a [Registry],
// which can be loaded from YAML:
//
//	sections:
//	  - name: MntContracts
//	    keys: [ID, Number, Amount]
package schema
