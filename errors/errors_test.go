package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "resource not found")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "resource not found", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[NOT_FOUND] resource not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeUnknownProtocol, "no handler registered for protocol %q", "ftp")

	require.Equal(t, CodeUnknownProtocol, err.Code())
	require.Equal(t, `no handler registered for protocol "ftp"`, err.Message())
}

func TestNewWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"location": "file:///a"}
	err := NewWithContext(CodeInvalidFormat, "bad location", ctx)

	ctx["location"] = "mutated"
	assert.Equal(t, "file:///a", err.Context()["location"])

	got := err.Context()
	got["location"] = "mutated again"
	assert.Equal(t, "file:///a", err.Context()["location"])
}

func TestDefaultClassification(t *testing.T) {
	tests := []struct {
		code          ErrorCode
		wantRetryable bool
	}{
		{CodeIOFailure, true},
		{CodeUnknownProtocol, false},
		{CodeInvalidFormat, false},
		{CodeMalformedPath, false},
		{CodeNotSupported, false},
		{CodeNotFound, false},
		{CodeAlreadyConsumed, false},
		{CodeInvalidInput, false},
		{CodeInvalidConfig, false},
		{CodeConfigLoadFailed, false},
		{CodeConfigBuildFailed, false},
		{CodeConfigValidationFailed, false},
		{CodeConfigDecodeFailed, false},
		{CodeConfigEncodeFailed, false},
		{CodeInternal, false},
		{CodeUnknown, false},
		{ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "test")
			assert.Equal(t, tt.wantRetryable, err.Classification().IsRetryable())
			assert.Equal(t, tt.wantRetryable, IsRetryable(err))
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeIOFailure, "ignored"))
		assert.Nil(t, Wrapf(nil, CodeIOFailure, "ignored %d", 1))
		assert.Nil(t, WrapWithContext(nil, CodeIOFailure, "ignored", nil))
	})

	t.Run("standard error keeps chain", func(t *testing.T) {
		err := Wrap(fs.ErrNotExist, CodeNotFound, "file missing")

		require.Equal(t, CodeNotFound, err.Code())
		assert.True(t, stderrors.Is(err, fs.ErrNotExist))
		assert.Equal(t, "[NOT_FOUND] file missing: file does not exist", err.Error())
	})

	t.Run("classification is preserved from inner platform error", func(t *testing.T) {
		inner := New(CodeIOFailure, "connection reset")
		err := Wrap(inner, CodeNotFound, "open failed")

		assert.Equal(t, CodeNotFound, err.Code())
		assert.True(t, err.Classification().IsRetryable())
	})

	t.Run("formatted", func(t *testing.T) {
		err := Wrapf(fmt.Errorf("boom"), CodeIOFailure, "GET %s", "http://example.com")
		assert.Equal(t, "GET http://example.com", err.Message())
	})
}

func TestWithContext(t *testing.T) {
	err := New(CodeNotFound, "missing")
	err = WithContext(err, "location", "config://db")
	err = WithContextMap(err, map[string]interface{}{"protocol": "config", "location": "config://cache"})

	ctx := err.Context()
	assert.Equal(t, "config", ctx["protocol"])
	assert.Equal(t, "config://cache", ctx["location"])
	assert.Equal(t, CodeNotFound, err.Code())
}

func TestWithContext_StandardError(t *testing.T) {
	err := WithContext(fmt.Errorf("plain"), "key", "value")

	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, "plain", err.Message())
	assert.Equal(t, "value", err.Context()["key"])
	assert.Nil(t, WithContext(nil, "key", "value"))
}

func TestWithClassification(t *testing.T) {
	err := WithClassification(New(CodeIOFailure, "forbidden"), ClassificationPermanent)

	assert.Equal(t, CodeIOFailure, err.Code())
	assert.False(t, IsRetryable(err))
	assert.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, CodeMalformedPath, GetCode(New(CodeMalformedPath, "too many back levels")))

	wrapped := fmt.Errorf("outer: %w", New(CodeNotSupported, "inner"))
	assert.Equal(t, CodeNotSupported, GetCode(wrapped))
}

func TestHasCode(t *testing.T) {
	inner := New(CodeNotFound, "no such key")
	outer := Wrap(inner, CodeIOFailure, "open failed")

	assert.Equal(t, CodeIOFailure, GetCode(outer))
	assert.True(t, HasCode(outer, CodeNotFound))
	assert.True(t, HasCode(outer, CodeIOFailure))
	assert.False(t, HasCode(outer, CodeMalformedPath))
	assert.False(t, HasCode(nil, CodeNotFound))
}

func TestGetClassification(t *testing.T) {
	assert.Equal(t, ClassificationPermanent, GetClassification(nil))
	assert.Equal(t, ClassificationPermanent, GetClassification(fmt.Errorf("plain")))
	assert.Equal(t, ClassificationRetryable, GetClassification(New(CodeIOFailure, "reset")))
}

func TestToJSON(t *testing.T) {
	assert.Nil(t, ToJSON(nil))

	err := WithContext(Wrap(fmt.Errorf("secret path /root/x"), CodeNotFound, "file missing"), "protocol", "file")
	resp := ToJSON(err)

	require.NotNil(t, resp)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.Equal(t, "file missing", resp.Message)
	assert.Equal(t, "PERMANENT", resp.Classification)
	assert.Equal(t, "file", resp.Context["protocol"])

	plain := ToJSON(fmt.Errorf("plain"))
	assert.Equal(t, "UNKNOWN", plain.Code)
	assert.Equal(t, "plain", plain.Message)
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeAlreadyConsumed, "stream has already been read")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t,
		`{"code":"ALREADY_CONSUMED","message":"stream has already been read","classification":"PERMANENT"}`,
		string(data),
	)
	assert.NotContains(t, string(data), "cause")
}
