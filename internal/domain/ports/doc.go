// Package ports defines the interfaces (ports) that external adapters must implement.
// Services depend on these interfaces so repositories and the mailer can be
// replaced by mocks in unit tests.
package ports
