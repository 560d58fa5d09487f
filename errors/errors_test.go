package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "wrapped: %d", 42)

	assert.Contains(t, wrapped.Error(), "wrapped: 42")
	assert.Contains(t, wrapped.Error(), "original")
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}

func TestAs(t *testing.T) {
	original := &customError{msg: "custom"}
	wrapped := Wrap(original, "wrapped")

	var target *customError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "custom", target.msg)
}

func TestSentinelClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		generation bool
		relocation bool
		validation bool
	}{
		{
			name:       "duplicate icon is a generation error",
			err:        Wrap(ErrDuplicateIcon, "Delete collides with delete"),
			generation: true,
		},
		{
			name:       "catalog fetch failure is a generation error",
			err:        NewCatalogError("no such directory: %s", "/tmp/missing"),
			generation: true,
		},
		{
			name:       "version constraint is a generation error",
			err:        Wrapf(ErrVersionConstraint, "manifest requires >= 2.0.0"),
			generation: true,
		},
		{
			name:       "missing artifact is a relocation error",
			err:        Wrap(ErrArtifactMissing, "icons_gen.go not found in workspace"),
			relocation: true,
		},
		{
			name:       "unwritable destination is a relocation error",
			err:        Wrap(ErrDestinationUnwritable, "permission denied"),
			relocation: true,
		},
		{
			name:       "type-check diagnostic is a validation error",
			err:        Wrap(ErrValidationFailed, "icons/icons_gen.go:12:6: Delete redeclared"),
			validation: true,
		},
		{
			name: "plain error is unclassified",
			err:  New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.generation, IsGenerationError(tt.err))
			assert.Equal(t, tt.relocation, IsRelocationError(tt.err))
			assert.Equal(t, tt.validation, IsValidationError(tt.err))
		})
	}
}

func TestSentinelClassificationNil(t *testing.T) {
	assert.False(t, IsGenerationError(nil))
	assert.False(t, IsRelocationError(nil))
	assert.False(t, IsValidationError(nil))
}

func TestWrapDuplicate(t *testing.T) {
	inner := fmt.Errorf("ThreeDRotation emitted twice")
	err := WrapDuplicate(inner, "scanning category action")

	assert.True(t, Is(err, ErrDuplicateIcon))
	assert.Contains(t, err.Error(), "scanning category action")
	assert.Contains(t, err.Error(), "ThreeDRotation")
}

func TestWithHint(t *testing.T) {
	err := WithHint(Wrap(ErrCatalogUnavailable, "fetch failed"), "check the catalog source URL")
	hints := GetAllHints(err)

	require.Len(t, hints, 1)
	assert.Equal(t, "check the catalog source URL", hints[0])
}
