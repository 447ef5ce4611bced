// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - CorpusProvider: Produces raw records from an opaque corpus export
//   - TableSink: Canonical table persistence
//   - DictionarySink: Data dictionary persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentStore: Queryable SQLite copy of the corpus. Only the
//     export command needs it.
//   - ConfigStore: Default path configuration. Without it, every path
//     must be given on the command line.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
