package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/salesflow/internal/common"
	"github.com/Veraticus/salesflow/internal/testutil"
)

type testEnv struct {
	dir        string
	configPath string
	workbook   string
	outDir     string
}

func newTestEnv(t *testing.T, extra string) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.yaml"),
		workbook:   testutil.ScenarioWorkbook(t, dir),
		outDir:     filepath.Join(dir, "out"),
	}

	yaml := fmt.Sprintf(`data_dir: %[1]s
crash_log: %[1]s/error_log.txt
output:
  csv: %[2]s/relatorio.csv
  pdf: %[2]s/relatorio.pdf
  chart: %[2]s/grafico_vendas.png
history:
  enabled: true
  db: %[1]s/history.db
chart:
  open: false
logging:
  level: error
%[3]s`, dir, env.outDir, extra)
	require.NoError(t, os.WriteFile(env.configPath, []byte(yaml), 0o600))
	return env
}

func (e testEnv) execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--config", e.configPath}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestReportCommand(t *testing.T) {
	env := newTestEnv(t, "")

	stdout, stderr, code := env.execute(t, "report", "--file", env.workbook, "--category", "Tools")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "Widget")
	assert.Contains(t, stdout, "Gadget")
	assert.NotContains(t, stdout, "Gizmo")
	assert.Contains(t, stdout, "Totals")
	assert.Contains(t, stdout, "15.00")
	assert.Contains(t, stdout, "Report Complete")

	csvData, err := os.ReadFile(filepath.Join(env.outDir, "relatorio.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Categoria,Quantidade Vendida,Preço (R$)\nTools,5,15.00\n", string(csvData))
	assert.FileExists(t, filepath.Join(env.outDir, "relatorio.pdf"))
	assert.FileExists(t, filepath.Join(env.outDir, "grafico_vendas.png"))
	assert.NoFileExists(t, filepath.Join(env.dir, "error_log.txt"))
}

func TestReportThenHistory(t *testing.T) {
	env := newTestEnv(t, "")

	_, stderr, code := env.execute(t, "report", "-f", env.workbook, "-c", "Toys", "--quiet")
	require.Equal(t, 0, code, stderr)

	stdout, stderr, code := env.execute(t, "history")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Toys")
	assert.Contains(t, stdout, "20.00")
}

func TestHistoryDisabled(t *testing.T) {
	env := newTestEnv(t, "")
	config := fmt.Sprintf("history:\n  enabled: false\ncrash_log: %s/error_log.txt\n", env.dir)
	require.NoError(t, os.WriteFile(env.configPath, []byte(config), 0o600))

	stdout, _, code := env.execute(t, "history")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Run history is disabled")
}

func TestReportCommand_UserErrors(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{
			name: "missing file",
			args: []string{"report", "--file", "does-not-exist.xlsx", "--category", "Tools"},
			want: "File not found.",
		},
		{
			name: "no category",
			args: []string{"report", "--file", "WORKBOOK"},
			want: "Select a category to filter.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, "")
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				if a == "WORKBOOK" {
					a = env.workbook
				}
				args[i] = a
			}

			_, stderr, code := env.execute(t, args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
			assert.NoFileExists(t, filepath.Join(env.dir, "error_log.txt"))
			assert.NoFileExists(t, filepath.Join(env.outDir, "relatorio.csv"))
		})
	}
}

func TestReportCommand_ProcessingFailureWritesCrashLog(t *testing.T) {
	env := newTestEnv(t, "")
	blocker := filepath.Join(env.dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	t.Setenv("SALESFLOW_OUTPUT_PDF", filepath.Join(blocker, "relatorio.pdf"))

	_, stderr, code := env.execute(t, "report", "-f", env.workbook, "-c", "Tools", "--quiet")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "An error occurred while processing sales")

	crash, err := os.ReadFile(filepath.Join(env.dir, "error_log.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(crash), "processing failed")
	assert.Contains(t, string(crash), "goroutine")

	assert.FileExists(t, filepath.Join(env.outDir, "relatorio.csv"))
}

func TestInvalidConfig(t *testing.T) {
	env := newTestEnv(t, "pdf:\n  title: \"\"\n")

	_, stderr, code := env.execute(t, "report", "-f", env.workbook, "-c", "Tools")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid configuration")
	assert.NoFileExists(t, filepath.Join(env.dir, "error_log.txt"))
}

func TestCategoriesCommand(t *testing.T) {
	env := newTestEnv(t, "")

	stdout, stderr, code := env.execute(t, "categories", "--file", env.workbook)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "2 categories")
	assert.Contains(t, stdout, "Tools")
	assert.Contains(t, stdout, "(2 sales)")
	assert.Contains(t, stdout, "Toys")
	assert.Contains(t, stdout, "(1 sales)")
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t, "")

	stdout, _, code := env.execute(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "salesflow dev\n", stdout)
}

func TestIsUnexpected(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "no dataset", err: common.ErrNoDatasetLoaded, want: false},
		{name: "no category", err: common.ErrNoCategorySelected, want: false},
		{name: "file not found", err: fmt.Errorf("%w: x.xlsx", common.ErrFileNotFound), want: false},
		{name: "invalid config", err: common.ErrInvalidConfig, want: false},
		{name: "user error", err: common.NewUserError("bad flag", nil), want: false},
		{name: "processing", err: common.Processing("csv export", assert.AnError), want: true},
		{name: "other", err: assert.AnError, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnexpected(tt.err))
		})
	}
}
