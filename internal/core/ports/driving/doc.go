// Package driving defines the interfaces external actors use to drive
// the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; CLI and TUI adapters call them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package, services
package driving
