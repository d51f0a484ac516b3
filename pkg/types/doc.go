// Package types defines the Catalog and Ledger interfaces, entity types,
// and standard error types for the tally point-of-sale engine.
package types
