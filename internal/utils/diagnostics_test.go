package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticLevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	d := NewQuietDiagnostics()
	d.SetOutput(&out, &errOut)

	d.Info("not shown")
	d.Debug("not shown either")
	d.Error("failed after %d file(s)", 3)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "failed after 3 file(s)")
}

func TestDiagnosticVerboseOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	d := NewVerboseDiagnostics()
	d.SetOutput(&out, &errOut)

	d.Section("discovery")
	d.Info("collected %d files", 2)
	d.Success("done")
	d.Debug("root=%s", "api")
	d.List("specs/users")

	assert.Contains(t, out.String(), "discovery")
	assert.Contains(t, out.String(), "collected 2 files")
	assert.Contains(t, out.String(), "done")
	assert.Contains(t, out.String(), "root=api")
	assert.Contains(t, out.String(), "- specs/users")
	assert.Empty(t, errOut.String())
}
