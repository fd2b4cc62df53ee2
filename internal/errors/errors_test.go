package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	err := New(ErrTypeIO, "failed to write report", fs.ErrPermission)
	assert.Equal(t, "[IO] failed to write report: permission denied", err.Error())

	bare := New(ErrTypeConfig, "missing plots dir", nil)
	assert.Equal(t, "[CONFIG] missing plots dir", bare.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := UnsupportedWorkbook("input.xlsx", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeWorkbook, appErr.Type)
}

func TestIsType(t *testing.T) {
	err := EmptyWorkbook("input.xlsx")

	assert.True(t, IsType(err, ErrTypeWorkbook))
	assert.False(t, IsType(err, ErrTypeIO))
	assert.False(t, IsType(errors.New("plain"), ErrTypeWorkbook))

	wrapped := fmt.Errorf("loading table: %w", err)
	assert.True(t, IsType(wrapped, ErrTypeWorkbook), "IsType sees through wrapping")
}

func TestUserMessage(t *testing.T) {
	wb := UnsupportedWorkbook("input.xlsx", errors.New("zip: not a valid zip file"))
	msg := UserMessage(wb)
	assert.Contains(t, msg, "input.xlsx")
	assert.Contains(t, msg, "valid Excel spreadsheet")
	assert.NotContains(t, msg, "zip:", "workbook errors hide the low-level cause")

	plain := fmt.Errorf("failed to render chart: %w", errors.New("disk full"))
	assert.Equal(t, plain.Error(), UserMessage(plain))
}
