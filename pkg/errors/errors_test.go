package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindTransport, "boom")
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(stderrors.New("plain")))
	assert.True(t, IsKind(err, KindTransport))
	assert.False(t, IsKind(err, KindAuthExpired))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, KindTransport, "data API loans")

	assert.Equal(t, "data API loans: connection refused", err.Error())
	assert.True(t, Is(err, cause))
	assert.Equal(t, KindTransport, KindOf(err))
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, KindTransport, "no-op"))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(KindAuthExpired, "session dead")
	outer := Wrap(inner, KindTransport, "fetch positions")

	// The outermost kind wins for classification.
	assert.Equal(t, KindTransport, KindOf(outer))
	// The inner kind is still reachable through the chain.
	var e *Error
	assert.True(t, As(Unwrap(outer), &e))
	assert.Equal(t, KindAuthExpired, e.Kind)
}
