// Command cardorm inspects card data stored in a relational database.
//
// Usage:
//
//	cardorm [flags] <command>
//
// The value and files commands run one scalar query against the configured
// database. The render command prints a statement assembled from query
// fragments without connecting anywhere.
package main

func main() {
	Execute()
}
