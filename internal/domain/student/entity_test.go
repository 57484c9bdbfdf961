package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent(t *testing.T) {
	s, err := NewStudent(NewStudentParams{
		ID:         "S1",
		Name:       "Alice Johnson",
		Email:      "alice@campus.edu",
		MaxCredits: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, "S1", s.ID)
	assert.Equal(t, "Alice Johnson", s.Name)
	assert.Equal(t, Credits(0), s.CurrentCredits)
	assert.Equal(t, Credits(15), s.MaxCredits)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestNewStudent_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  NewStudentParams
		wantErr error
	}{
		{
			name:    "empty name",
			params:  NewStudentParams{ID: "S1", Name: "  ", Email: "a@b.c", MaxCredits: 15},
			wantErr: ErrInvalidName,
		},
		{
			name:    "bad email",
			params:  NewStudentParams{ID: "S1", Name: "Alice", Email: "not-an-email", MaxCredits: 15},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "zero max credits",
			params:  NewStudentParams{ID: "S1", Name: "Alice", Email: "a@b.c", MaxCredits: 0},
			wantErr: ErrInvalidMaxCredits,
		},
		{
			name:    "negative max credits",
			params:  NewStudentParams{ID: "S1", Name: "Alice", Email: "a@b.c", MaxCredits: -3},
			wantErr: ErrInvalidMaxCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudent(tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStudent_CanTake(t *testing.T) {
	s, err := NewStudent(NewStudentParams{
		ID: "S1", Name: "Alice", Email: "a@b.c", MaxCredits: 10,
	})
	require.NoError(t, err)
	require.NoError(t, s.AddCredits(7))

	assert.True(t, s.CanTake(2))
	// Landing exactly on the limit is allowed
	assert.True(t, s.CanTake(3))
	assert.False(t, s.CanTake(4))
}

func TestStudent_AddCredits(t *testing.T) {
	s, err := NewStudent(NewStudentParams{
		ID: "S1", Name: "Alice", Email: "a@b.c", MaxCredits: 18,
	})
	require.NoError(t, err)

	require.NoError(t, s.AddCredits(3))
	require.NoError(t, s.AddCredits(4))
	assert.Equal(t, Credits(7), s.CurrentCredits)
	assert.Equal(t, Credits(11), s.RemainingCredits())

	assert.ErrorIs(t, s.AddCredits(-1), ErrInvalidCredits)
	assert.Equal(t, Credits(7), s.CurrentCredits)
}

func TestStudent_Clone(t *testing.T) {
	s, err := NewStudent(NewStudentParams{
		ID: "S1", Name: "Alice", Email: "a@b.c", MaxCredits: 15,
	})
	require.NoError(t, err)

	clone := s.Clone()
	require.NoError(t, clone.AddCredits(5))

	assert.Equal(t, Credits(0), s.CurrentCredits)
	assert.Equal(t, Credits(5), clone.CurrentCredits)
}
