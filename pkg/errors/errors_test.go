package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "sink_nil_error",
			code:    errors.ErrSinkNil,
			message: "sink has no stream",
			wantStr: "[SINK_NIL] sink has no stream",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid policy",
			wantStr: "[INVALID_INPUT] invalid policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidColor, "invalid color %q", "#12")

	assert.Equal(t, `invalid color "#12"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSinkWrite, "failed to write log line")

		assert.Equal(t, errors.ErrSinkWrite, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[SINK_WRITE] failed to write log line: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileCreate, "failed to open %s", "app.log")

		assert.Equal(t, "failed to open app.log", err.Message)
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSinkFlush, "failed to flush sink").
		WithDetail("sink", 2).
		WithDetail("path", "/var/log/app.log")

	assert.Equal(t, 2, err.Details["sink"])
	assert.Equal(t, "/var/log/app.log", err.Details["path"])

	bare := &errors.OaklogError{Code: errors.ErrUnknown}
	bare.WithDetail("k", "v")
	assert.Equal(t, "v", bare.Details["k"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrSinkWrite, "error 1")
	err2 := errors.New(errors.ErrSinkWrite, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code")
	assert.False(t, err1.Is(err3), "different code")
	assert.False(t, err1.Is(stderrors.New("plain")))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrInvalidItem, "bad item"),
			code:     errors.ErrInvalidItem,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrInvalidItem, "bad item"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_oaklog_error",
			err:      errors.Wrap(errors.New(errors.ErrInvalidItem, "bad item"), errors.ErrConfigValid, "invalid items"),
			code:     errors.ErrInvalidItem,
			expected: true,
		},
		{
			name:     "fmt_wrapped",
			err:      fmt.Errorf("loading: %w", errors.New(errors.ErrConfigLoad, "missing")),
			code:     errors.ErrConfigLoad,
			expected: true,
		},
		{
			name: "joined",
			err: errors.Join(
				errors.New(errors.ErrSinkWrite, "write"),
				errors.New(errors.ErrSinkFlush, "flush"),
			),
			code:     errors.ErrSinkFlush,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("plain"),
			code:     errors.ErrUnknown,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknown,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(errors.New(errors.ErrConfigParse, "x")))
	assert.Equal(t, errors.ErrConfigValid,
		errors.GetErrorCode(errors.Wrap(errors.New(errors.ErrInvalidColor, "x"), errors.ErrConfigValid, "y")),
		"outermost code wins")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestGetErrorDetails(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrSinkNil, "no stream").WithDetail("sink", 1))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, 1, details["sink"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestJoin(t *testing.T) {
	assert.NoError(t, errors.Join())
	assert.NoError(t, errors.Join(nil, nil))

	err := errors.Join(stderrors.New("a"), nil, stderrors.New("b"))
	assert.EqualError(t, err, "a\nb")
}
