package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(Validationf("bad")))
	assert.Equal(t, NotFound, KindOf(NotFoundf("missing")))
	assert.Equal(t, Conflict, KindOf(Conflictf("locked")))
	assert.Equal(t, Internal, KindOf(Internalf(errors.New("x"), "boom")))

	// Plain errors default to internal
	assert.Equal(t, Internal, KindOf(errors.New("anything")))
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("context: %w", NotFoundf("missing"))
	assert.True(t, IsKind(err, NotFound))
	assert.False(t, IsKind(err, Validation))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internalf(cause, "could not fetch invoice")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "could not fetch invoice")
}
