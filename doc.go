// Package cardorm is a thin helper layer between an in-memory card model and a
// relational store.
//
// A card is made of named sections. A section is either a flat field set or an
// ordered table of rows. Sub-packages provide:
//
//   - value: the tagged-union field value stored in sections and rows
//   - schema: key-set descriptors that map typed keys to section and table names
//   - card: the record model, field accessors and row synchronization
//   - dialect/sql: scoped scalar execution over database/sql
//   - dialect/sql/part: SQL fragment builders and value literalization
//
// This package holds the errors shared by all of them.
package cardorm
