package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophdraw/internal/models"
)

func TestEncodeSnapshot_EmptyLog(t *testing.T) {
	data, err := EncodeSnapshot(&models.RoomSnapshot{NextSeq: 5})
	require.NoError(t, err)

	assert.JSONEq(t, `{"operations":[],"nextSeq":5}`, string(data))
}

func TestDecodeSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantIDs     []string
		wantNextSeq uint64
		wantErr     bool
	}{
		{
			name:        "full record",
			input:       `{"operations":[{"id":"a","seq":1,"tool":"brush","points":[{"x":1,"y":1}]}],"nextSeq":3}`,
			wantIDs:     []string{"a"},
			wantNextSeq: 3,
		},
		{
			name:        "record without counter",
			input:       `{"operations":[{"id":"b","seq":4},{"id":"a","seq":2}]}`,
			wantIDs:     []string{"a", "b"},
			wantNextSeq: 5,
		},
		{
			name:        "empty object",
			input:       `{}`,
			wantIDs:     []string{},
			wantNextSeq: 1,
		},
		{
			name:    "garbage",
			input:   `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSnapshot([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCorruptSnapshot)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got.Operations))
			for _, op := range got.Operations {
				ids = append(ids, op.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantNextSeq, got.NextSeq)
		})
	}
}

func TestValidateRoomName(t *testing.T) {
	assert.NoError(t, ValidateRoomName("main"))
	assert.ErrorIs(t, ValidateRoomName(""), ErrInvalidRoomName)
}
