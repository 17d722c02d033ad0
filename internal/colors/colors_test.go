package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := writers()
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(prevOut, prevErr) })
	return &out, &errOut
}

func TestError(t *testing.T) {
	_, errOut := captureOutput(t)

	Error("something went wrong")

	assert.Contains(t, errOut.String(), "Error:")
	assert.Contains(t, errOut.String(), "something went wrong")
	assert.Contains(t, errOut.String(), Red)
}

func TestSuccess(t *testing.T) {
	out, _ := captureOutput(t)

	Success("operation completed")

	assert.Contains(t, out.String(), "✓")
	assert.Contains(t, out.String(), "operation completed")
	assert.Contains(t, out.String(), Green)
}

func TestWarning(t *testing.T) {
	_, errOut := captureOutput(t)

	Warning("careful", "now")

	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, errOut.String(), "careful now")
}

func TestDebugRespectsFlag(t *testing.T) {
	_, errOut := captureOutput(t)

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible")
	assert.Contains(t, errOut.String(), "visible")
}

func TestQuietSuppressesInfo(t *testing.T) {
	out, errOut := captureOutput(t)

	SetQuiet(true)
	defer SetQuiet(false)

	Info("not shown")
	Success("not shown either")
	Warning("still shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "still shown")
}

func TestMessagesMirrorToLogger(t *testing.T) {
	captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Info("loaded")
	Warning("slow")
	Error("broken")

	assert.Equal(t, []string{"info:loaded", "warn:slow", "error:broken"}, rec.entries)
}
