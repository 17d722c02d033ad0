// Package errors routes user-facing messages to the CLI or the TUI.
package errors

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/cristianoliveira/bookshelf/internal/colors"
)

// ErrorHandler is the interface for error handling.
// Different implementations can handle errors differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink used by CLIHandler.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages to the terminal through a ColorOutput.
// It is safe for concurrent use.
type CLIHandler struct {
	mu  sync.Mutex
	out ColorOutput
}

var _ ErrorHandler = (*CLIHandler)(nil)

// NewCLIHandler creates a CLI handler writing to the given output.
func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{out: out}
}

// NewDefaultCLIHandler creates a CLI handler using the colors package.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(colorsOutput{})
}

func (h *CLIHandler) Error(msg string)   { h.emit(h.out.Error, msg) }
func (h *CLIHandler) Warning(msg string) { h.emit(h.out.Warning, msg) }
func (h *CLIHandler) Info(msg string)    { h.emit(h.out.Info, msg) }
func (h *CLIHandler) Success(msg string) { h.emit(h.out.Success, msg) }

// Report prints a command failure. A cancelled command is reported as an
// interruption rather than an error.
func (h *CLIHandler) Report(err error) {
	switch {
	case err == nil:
	case stderrors.Is(err, context.Canceled):
		h.Warning("interrupted")
	default:
		h.Error(err.Error())
	}
}

// emit serializes writes so lines from concurrent callers never interleave.
func (h *CLIHandler) emit(write func(msgs ...string), msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	write(msg)
}

// colorsOutput adapts the colors package to ColorOutput.
type colorsOutput struct{}

func (colorsOutput) Error(msgs ...string)   { colors.Error(msgs...) }
func (colorsOutput) Warning(msgs ...string) { colors.Warning(msgs...) }
func (colorsOutput) Info(msgs ...string)    { colors.Info(msgs...) }
func (colorsOutput) Success(msgs ...string) { colors.Success(msgs...) }
