package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EMISSING, "no style %q", "foo")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, `no style "foo"`, UserMessage(err))
	wrapped := fmt.Errorf("context: %w", err)
	assert.Equal(t, EMISSING, Code(wrapped), "code should survive wrapping")
}

func TestWrapErrorKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(cause, EIO, "cannot write %s", "history.txt")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, EIO, Code(err))
	assert.Equal(t, "cannot write history.txt", UserMessage(err))
	assert.Equal(t, "[124] disk full", err.Error())
}

func TestUserMessageFallback(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	err := WrapError(nil, EINVALID, "bad line %d", 3)
	assert.Equal(t, "[123] invalid", err.Error())
}
