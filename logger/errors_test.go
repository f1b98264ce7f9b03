package logger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	root := errors.New("real cause")
	err := fmt.Errorf("error: %w", fmt.Errorf("cause: %w", root))

	assert.Equal(t, "error\nCaused by: cause\nCaused by: real cause", ErrorChain(err))
}

func TestErrorChain_BareWrap(t *testing.T) {
	root := errors.New("real cause")

	assert.Equal(t, "real cause", ErrorChain(fmt.Errorf("%w", root)))
}

type opError struct{ cause error }

func (e *opError) Error() string { return "operation failed" }
func (e *opError) Unwrap() error { return e.cause }

func TestErrorChain_CauseNotInMessage(t *testing.T) {
	err := &opError{cause: errors.New("timeout")}

	assert.Equal(t, "operation failed\nCaused by: timeout", ErrorChain(err))
}

func TestErrorChain_Joined(t *testing.T) {
	err := errors.Join(errors.New("a"), fmt.Errorf("b: %w", errors.New("c")))

	assert.Equal(t, "a\nb\nCaused by: c", ErrorChain(err))
}

func TestErrorChain_WrappedJoin(t *testing.T) {
	err := fmt.Errorf("load: %w", errors.Join(errors.New("a"), errors.New("b")))

	assert.Equal(t, "load\nCaused by: a\nb", ErrorChain(err))
}

func TestErrorChain_Nil(t *testing.T) {
	assert.Empty(t, ErrorChain(nil))
}
