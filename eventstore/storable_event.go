package eventstore

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")
var ErrEmptyStreamIDSupplied = errors.New("empty streamID supplied")
var ErrZeroStreamVersionSupplied = errors.New("streamVersion must be positive")

// StorableEvents is an alias type for a slice of StorableEvent
type StorableEvents = []StorableEvent

// StorableEvent is a DTO (data transfer object) used by the EventStore to append events and read them back.
//
// It is built on scalars to be completely agnostic of the implementation of Domain Events in the client code.
// StreamID identifies the account stream the event belongs to. StreamVersion is the version of that stream
// *after* this event is applied; it is assigned by the aggregate during command execution and is immutable
// once stored. OccurredAt is informational only and is never used for intra-stream ordering.
//
// While its properties are exported, it should only be constructed with the supplied factory methods:
//   - BuildStorableEvent
//   - BuildStorableEventWithEmptyMetadata
type StorableEvent struct {
	StreamID      StreamIDString
	StreamVersion StreamVersionUint
	EventType     string
	OccurredAt    time.Time
	PayloadJSON   []byte
	MetadataJSON  []byte
}

// BuildStorableEvent is a factory method for StorableEvent.
//
// It populates the StorableEvent with the given scalar input.
// Returns an error if streamID is empty, streamVersion is zero,
// or payloadJSON / metadataJSON are not valid JSON.
func BuildStorableEvent(
	streamID StreamIDString,
	streamVersion StreamVersionUint,
	eventType string,
	occurredAt time.Time,
	payloadJSON []byte,
	metadataJSON []byte,
) (StorableEvent, error) {

	if streamID == "" {
		return StorableEvent{}, ErrEmptyStreamIDSupplied
	}

	if streamVersion == 0 {
		return StorableEvent{}, ErrZeroStreamVersionSupplied
	}

	if !json.Valid(payloadJSON) {
		return StorableEvent{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return StorableEvent{}, ErrInvalidMetadataJSON
	}

	return StorableEvent{
		StreamID:      streamID,
		StreamVersion: streamVersion,
		EventType:     eventType,
		OccurredAt:    occurredAt,
		PayloadJSON:   payloadJSON,
		MetadataJSON:  metadataJSON,
	}, nil
}

// BuildStorableEventWithEmptyMetadata is a factory method for StorableEvent.
//
// It populates the StorableEvent with the given scalar input and creates valid empty JSON for MetadataJSON.
// Returns an error for the same invalid input as BuildStorableEvent.
func BuildStorableEventWithEmptyMetadata(
	streamID StreamIDString,
	streamVersion StreamVersionUint,
	eventType string,
	occurredAt time.Time,
	payloadJSON []byte,
) (StorableEvent, error) {

	return BuildStorableEvent(streamID, streamVersion, eventType, occurredAt, payloadJSON, []byte("{}"))
}
