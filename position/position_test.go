package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Pos(28),
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos(63),
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos(0),
		},
		{
			name:     "ok 4",
			notation: "e3",
			want:     E3,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "E4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 8",
			notation: "e44",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NoPos, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPosFileRankBijection(t *testing.T) {
	t.Parallel()
	for x := Pos(0); x < MaxComponentScalar; x++ {
		for y := Pos(0); y < MaxComponentScalar; y++ {
			p := NewPos(x, y)
			assert.True(t, p.Valid())
			assert.Equal(t, x, p.X(), "file of %s", p)
			assert.Equal(t, y, p.Y(), "rank of %s", p)

			back, err := NewPosFromNotation(p.Notation())
			require.NoError(t, err)
			assert.Equal(t, p, back)
		}
	}
}

func TestInBounds(t *testing.T) {
	t.Parallel()
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(7, 7))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, 8))
	assert.False(t, NoPos.Valid())
	assert.False(t, Pos(64).Valid())
	assert.Equal(t, "", NoPos.Notation())
	assert.Equal(t, "-", NoPos.String())
}
