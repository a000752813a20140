package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = stderrors.New("sentinel")

func TestWrap_KeepsCodeAndChain(t *testing.T) {
	base := WithCode(CodeConfigInvalid, errSentinel)
	wrapped := Wrap(base, "step 2")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, errSentinel))
	assert.Equal(t, "step 2: sentinel", wrapped.Error())
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrapf(errSentinel, "reading %s", "data.csv")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCode_Unknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(errSentinel))
	assert.Equal(t, CodeNotFound, GetCode(NotFound("column")))
}
