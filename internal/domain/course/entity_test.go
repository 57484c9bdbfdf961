package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	c, err := NewCourse(NewCourseParams{ID: "C1", Name: "Databases", Credits: 4})
	require.NoError(t, err)

	assert.Equal(t, "C1", c.ID)
	assert.Equal(t, "Databases", c.Name)
	assert.Equal(t, 4, c.Credits)
}

func TestNewCourse_Validation(t *testing.T) {
	_, err := NewCourse(NewCourseParams{ID: "", Name: "Databases", Credits: 4})
	assert.Error(t, err)

	_, err = NewCourse(NewCourseParams{ID: "C1", Name: "", Credits: 4})
	assert.ErrorIs(t, err, ErrInvalidName)

	// Zero-credit courses are not allowed in the catalog
	_, err = NewCourse(NewCourseParams{ID: "C1", Name: "Databases", Credits: 0})
	assert.ErrorIs(t, err, ErrInvalidCredits)

	_, err = NewCourse(NewCourseParams{ID: "C1", Name: "Databases", Credits: -2})
	assert.ErrorIs(t, err, ErrInvalidCredits)
}
