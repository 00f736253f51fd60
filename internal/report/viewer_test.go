package report

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemViewer_Show(t *testing.T) {
	var got string
	v := &SystemViewer{command: func(path string) *exec.Cmd {
		got = path
		return exec.Command("true")
	}}

	require.NoError(t, v.Show(context.Background(), "chart.png"))
	assert.Equal(t, "chart.png", got)
}

func TestSystemViewer_MissingCommand(t *testing.T) {
	v := &SystemViewer{command: func(path string) *exec.Cmd {
		return exec.Command("salesflow-no-such-viewer", path)
	}}

	err := v.Show(context.Background(), "chart.png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chart.png")
}
