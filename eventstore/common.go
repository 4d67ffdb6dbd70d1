package eventstore

// StreamIDString identifies one event stream, i.e. the full history of one account.
type StreamIDString = string

// StreamVersionUint is the version of a single event stream.
// The highest StreamVersion stored for a stream is that stream's current version,
// which is the value compared against expectedStreamVersion on Append.
type StreamVersionUint = uint

// GlobalSequenceUint is the monotonic global sequence number assigned at append time.
// It totally orders events across all streams and is the ordering contract of ReadAll.
type GlobalSequenceUint = uint
