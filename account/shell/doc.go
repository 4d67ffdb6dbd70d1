// Package shell is the imperative shell around the pure account/core domain.
//
// It converts between domain events and storable events (JSON payloads plus
// message/causation/correlation metadata), provides the AccountRepository that
// loads aggregates by replay and saves their uncommitted events with the event
// store's optimistic concurrency check, and supplies the retry and
// observability helpers shared by the feature packages.
package shell
