package code

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructionError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewConstructionError("OnCreateView", "group is being built")
		assert.Contains(t, err.Error(), "veloxui: construction error")
		assert.Contains(t, err.Error(), "on OnCreateView")
		assert.Contains(t, err.Error(), "group is being built")
	})

	t.Run("Is matches ErrConstruction", func(t *testing.T) {
		err := NewConstructionError("x", "")
		assert.True(t, errors.Is(err, ErrConstruction))
		assert.False(t, errors.Is(err, ErrDuplicateName))
	})

	t.Run("IsConstructionError helper", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", NewConstructionError("x", "y"))
		assert.True(t, IsConstructionError(err))
		assert.False(t, IsConstructionError(errors.New("other")))
	})
}

func TestDuplicateNameError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewDuplicateNameError("method", "OnStart", "type Home_")
		assert.Equal(t, `veloxui: duplicate method name "OnStart" in type Home_`, err.Error())
	})

	t.Run("Error message without scope", func(t *testing.T) {
		err := &DuplicateNameError{Name: "x"}
		assert.Equal(t, `veloxui: duplicate name "x"`, err.Error())
	})

	t.Run("Is matches ErrDuplicateName", func(t *testing.T) {
		err := NewDuplicateNameError("field", "x", "")
		assert.True(t, errors.Is(err, ErrDuplicateName))
		assert.True(t, IsDuplicateName(err))
		assert.False(t, IsDuplicateName(errors.New("other")))
	})
}
