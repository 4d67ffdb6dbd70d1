package eventstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Test_BuildStorableEvent_ErrorCases is a comprehensive test covering multiple error scenarios and edge cases.
//
//nolint:funlen
func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validStreamID := "account-123"
	validStreamVersion := StreamVersionUint(1)
	validPayloadJSON := []byte(`{"key": "value"}`)
	validMetadataJSON := []byte(`{"meta": "data"}`)

	tests := []struct {
		name          string
		streamID      StreamIDString
		streamVersion StreamVersionUint
		eventType     string
		occurredAt    time.Time
		payloadJSON   []byte
		metadataJSON  []byte
		expectedErr   error
	}{
		{
			name:          "empty stream id",
			streamID:      "",
			streamVersion: validStreamVersion,
			eventType:     "TestEvent",
			occurredAt:    validTime,
			payloadJSON:   validPayloadJSON,
			metadataJSON:  validMetadataJSON,
			expectedErr:   ErrEmptyStreamIDSupplied,
		},
		{
			name:          "zero stream version",
			streamID:      validStreamID,
			streamVersion: 0,
			eventType:     "TestEvent",
			occurredAt:    validTime,
			payloadJSON:   validPayloadJSON,
			metadataJSON:  validMetadataJSON,
			expectedErr:   ErrZeroStreamVersionSupplied,
		},
		{
			name:          "invalid payload JSON",
			streamID:      validStreamID,
			streamVersion: validStreamVersion,
			eventType:     "TestEvent",
			occurredAt:    validTime,
			payloadJSON:   []byte(`{"invalid": json}`),
			metadataJSON:  validMetadataJSON,
			expectedErr:   ErrInvalidPayloadJSON,
		},
		{
			name:          "invalid metadata JSON",
			streamID:      validStreamID,
			streamVersion: validStreamVersion,
			eventType:     "TestEvent",
			occurredAt:    validTime,
			payloadJSON:   validPayloadJSON,
			metadataJSON:  []byte(`{"invalid": json}`),
			expectedErr:   ErrInvalidMetadataJSON,
		},
		{
			name:          "empty payload JSON",
			streamID:      validStreamID,
			streamVersion: validStreamVersion,
			eventType:     "TestEvent",
			occurredAt:    validTime,
			payloadJSON:   []byte(``),
			metadataJSON:  validMetadataJSON,
			expectedErr:   ErrInvalidPayloadJSON,
		},
		{
			name:          "nil payload JSON",
			streamID:      validStreamID,
			streamVersion: validStreamVersion,
			eventType:     "TestEvent",
			occurredAt:    validTime,
			payloadJSON:   nil,
			metadataJSON:  validMetadataJSON,
			expectedErr:   ErrInvalidPayloadJSON,
		},
		{
			name:          "nil metadata JSON",
			streamID:      validStreamID,
			streamVersion: validStreamVersion,
			eventType:     "TestEvent",
			occurredAt:    validTime,
			payloadJSON:   validPayloadJSON,
			metadataJSON:  nil,
			expectedErr:   ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStorableEvent(tt.streamID, tt.streamVersion, tt.eventType, tt.occurredAt, tt.payloadJSON, tt.metadataJSON)
			assert.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func Test_BuildStorableEventWithEmptyMetadata_ErrorCases(t *testing.T) {
	validTime := time.Now()

	tests := []struct {
		name        string
		eventType   string
		occurredAt  time.Time
		payloadJSON []byte
		expectedErr error
	}{
		{
			name:        "invalid payload JSON",
			eventType:   "TestEvent",
			occurredAt:  validTime,
			payloadJSON: []byte(`{"invalid": json}`),
			expectedErr: ErrInvalidPayloadJSON,
		},
		{
			name:        "empty payload JSON",
			eventType:   "TestEvent",
			occurredAt:  validTime,
			payloadJSON: []byte(``),
			expectedErr: ErrInvalidPayloadJSON,
		},
		{
			name:        "nil payload JSON",
			eventType:   "TestEvent",
			occurredAt:  validTime,
			payloadJSON: nil,
			expectedErr: ErrInvalidPayloadJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStorableEventWithEmptyMetadata("account-123", 1, tt.eventType, tt.occurredAt, tt.payloadJSON)
			assert.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func Test_BuildStorableEvent_Success(t *testing.T) {
	streamID := "account-123"
	streamVersion := StreamVersionUint(2)
	eventType := "MoneyDeposited"
	occurredAt := time.Now()
	payloadJSON := []byte(`{"AccountID": "account-123", "Amount": 500}`)
	metadataJSON := []byte(`{"correlationId": "corr-789"}`)

	storableEvent, err := BuildStorableEvent(streamID, streamVersion, eventType, occurredAt, payloadJSON, metadataJSON)
	assert.NoError(t, err)
	assert.Equal(t, streamID, storableEvent.StreamID)
	assert.Equal(t, streamVersion, storableEvent.StreamVersion)
	assert.Equal(t, eventType, storableEvent.EventType)
	assert.Equal(t, occurredAt, storableEvent.OccurredAt)
	assert.Equal(t, payloadJSON, storableEvent.PayloadJSON)
	assert.Equal(t, metadataJSON, storableEvent.MetadataJSON)
}

func Test_BuildStorableEventWithEmptyMetadata_Success(t *testing.T) {
	eventType := "MoneyWithdrawn"
	occurredAt := time.Now()
	payloadJSON := []byte(`{"AccountID": "account-123", "Amount": 300}`)

	storableEvent, err := BuildStorableEventWithEmptyMetadata("account-123", 3, eventType, occurredAt, payloadJSON)
	assert.NoError(t, err)
	assert.Equal(t, eventType, storableEvent.EventType)
	assert.Equal(t, occurredAt, storableEvent.OccurredAt)
	assert.Equal(t, payloadJSON, storableEvent.PayloadJSON)
	assert.Equal(t, []byte(`{}`), storableEvent.MetadataJSON)
}
