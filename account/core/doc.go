// Package core contains the pure domain model for bank accounts: the domain
// events, the event-sourced BankAccount aggregate, and the domain error types.
//
// The package has no infrastructure dependencies. Serialization, persistence,
// and observability live in account/shell and the feature packages.
package core
