package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		op      *Operation
		name    string
	}{
		{
			name: "valid brush",
			op:   &Operation{Tool: ToolBrush, Points: []Point{{X: 1, Y: 2}}},
		},
		{
			name: "valid eraser",
			op:   &Operation{Tool: ToolEraser, Points: []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}},
		},
		{
			name:    "empty points",
			op:      &Operation{Tool: ToolBrush},
			wantErr: ErrEmptyPoints,
		},
		{
			name:    "unknown tool",
			op:      &Operation{Tool: "spray", Points: []Point{{X: 1, Y: 2}}},
			wantErr: ErrInvalidTool,
		},
		{
			name:    "NaN coordinate",
			op:      &Operation{Tool: ToolBrush, Points: []Point{{X: math.NaN(), Y: 2}}},
			wantErr: ErrInvalidPoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOperation_Clone(t *testing.T) {
	original := &Operation{
		ID:     "op-1",
		Seq:    7,
		Tool:   ToolBrush,
		Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Изменение копии не должно затрагивать оригинал
	clone.Points[0].X = 100
	assert.Equal(t, 1.0, original.Points[0].X)
}

func TestSortBySeq(t *testing.T) {
	ops := []*Operation{{ID: "c", Seq: 3}, {ID: "a", Seq: 1}, {ID: "b", Seq: 2}}

	SortBySeq(ops)

	assert.Equal(t, "a", ops[0].ID)
	assert.Equal(t, "b", ops[1].ID)
	assert.Equal(t, "c", ops[2].ID)
}

func TestStrokeMeta_WithDefaults(t *testing.T) {
	var nilMeta *StrokeMeta
	got := nilMeta.WithDefaults("#0b66ff")
	assert.Equal(t, StrokeMeta{Tool: ToolBrush, Color: "#0b66ff", StrokeWidth: DefaultStrokeWidth}, got)

	meta := &StrokeMeta{Tool: ToolEraser, StrokeWidth: 12}
	got = meta.WithDefaults("#0b66ff")
	assert.Equal(t, StrokeMeta{Tool: ToolEraser, Color: "#0b66ff", StrokeWidth: 12}, got)
}

func TestRoomSnapshot_ResolveNextSeq(t *testing.T) {
	tests := []struct {
		name     string
		snapshot RoomSnapshot
		want     uint64
	}{
		{name: "empty snapshot starts at 1", snapshot: RoomSnapshot{}, want: 1},
		{name: "explicit counter", snapshot: RoomSnapshot{NextSeq: 10, Operations: []*Operation{{Seq: 4}}}, want: 10},
		{name: "missing counter derived from log", snapshot: RoomSnapshot{Operations: []*Operation{{Seq: 1}, {Seq: 5}}}, want: 6},
		{name: "stale counter never reuses seq", snapshot: RoomSnapshot{NextSeq: 3, Operations: []*Operation{{Seq: 8}}}, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snapshot.ResolveNextSeq())
		})
	}
}
