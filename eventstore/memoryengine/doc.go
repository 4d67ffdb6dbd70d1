// Package memoryengine provides the in-memory event store engine.
//
// It keeps one ordered, append-only event sequence per account stream and a
// global log in append order. Append enforces optimistic concurrency: the
// caller supplies the stream version it observed, and the engine accepts the
// events only if the stream is still at that version. The check-then-append
// step is a single mutual-exclusion region, so of two concurrent appends with
// the same expected version exactly one wins and the other fails with a
// concurrency conflict.
//
// The engine is single-process and volatile. Any durable substitute must
// preserve the same contract: per-stream version contiguity starting at 1,
// atomic check-then-append, and a total global read order assigned at append
// time.
package memoryengine
