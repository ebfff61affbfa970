package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critiplot/internal/digest"
	domaintypes "critiplot/internal/domain/types"
)

const caseReportCSV = `"Author,Year",Demographics,History,ClinicalCondition,Diagnostics,Intervention,PostCondition,AdverseEvents,Lessons,Total,Overall RoB
Doe 2020,1,1,0,1,1,0,1,1,6,Low
Roe 2021,1,1,1,1,1,1,1,1,7,Low
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CRITIPLOT_CONFIG", "")
	t.Setenv("CRITIPLOT_LOG_LEVEL", "error")
	t.Chdir(t.TempDir())
	wire = nil

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRenderCommand(t *testing.T) {
	in := writeInput(t, "rob.csv", caseReportCSV)
	dir := t.TempDir()

	out, err := run(t, "render", "--tool", "jbi-case-report", "-o", dir, "-f", "svg,pdf", in)
	require.NoError(t, err)
	assert.Contains(t, out, "warning: row 2 (Roe 2021): declared total 7, domain scores sum to 8")
	assert.Contains(t, out, "JBI_Case_Report_TrafficLight.svg")
	assert.FileExists(t, filepath.Join(dir, "JBI_Case_Report_TrafficLight.svg"))
	assert.FileExists(t, filepath.Join(dir, "JBI_Case_Report_TrafficLight.pdf"))
	assert.FileExists(t, filepath.Join(dir, "JBI_Case_Report_TrafficLight.manifest.json"))
	assert.NoFileExists(t, filepath.Join(dir, "JBI_Case_Report_TrafficLight.png"))
}

func TestRenderExplicitTargetsWithoutManifest(t *testing.T) {
	in := writeInput(t, "rob.csv", caseReportCSV)
	target := filepath.Join(t.TempDir(), "figure.SVG")

	_, err := run(t, "render", "-t", "jbi-case-report", "--target", target, "--no-manifest", in)
	require.NoError(t, err)
	assert.FileExists(t, target)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(target), "figure.manifest.json"))
}

func TestRenderUnknownThemeWritesNothing(t *testing.T) {
	in := writeInput(t, "rob.csv", caseReportCSV)
	dir := t.TempDir()

	_, err := run(t, "render", "--tool", "jbi-case-report", "--theme", "neon", "-o", dir, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domaintypes.ErrUnknownTheme))
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestRenderRequiresTool(t *testing.T) {
	in := writeInput(t, "rob.csv", caseReportCSV)
	_, err := run(t, "render", in)
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	in := writeInput(t, "rob.csv", caseReportCSV)

	out, err := run(t, "validate", "--tool", "jbi-case-report", in)
	require.NoError(t, err)
	assert.Contains(t, out, "JBI Case Report: 2 studies")
	assert.Contains(t, out, "STUDY")
	assert.Regexp(t, `│\s*1\s*│\s*Doe 2020\s*│\s*6\s*│\s*Low\s*│`, out)
	assert.Regexp(t, `│\s*2\s*│\s*Roe 2021\s*│\s*7\s*│\s*Low\s*│`, out)
	assert.Contains(t, out, "declared total 7")
}

func TestValidateReportsSchemaError(t *testing.T) {
	in := writeInput(t, "rob.csv", strings.Replace(caseReportCSV, "Doe 2020,1,1,0,1", "Doe 2020,1,1,0,2", 1))

	_, err := run(t, "validate", "--tool", "jbi-case-report", in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domaintypes.ErrInvalidDomainValue))
	assert.Contains(t, err.Error(), `"Diagnostics"`)
	assert.Contains(t, err.Error(), "row 1")
}

func TestBatchCommand(t *testing.T) {
	a := writeInput(t, "first.csv", caseReportCSV)
	b := writeInput(t, "second.csv", caseReportCSV)
	dir := t.TempDir()

	_, err := run(t, "batch", "--tool", "jbi-case-report", "-f", "svg", "-o", dir, a, b)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "first", "JBI_Case_Report_TrafficLight.svg"))
	assert.FileExists(t, filepath.Join(dir, "second", "JBI_Case_Report_TrafficLight.svg"))
}

func TestBatchReportsFailures(t *testing.T) {
	good := writeInput(t, "good.csv", caseReportCSV)
	bad := writeInput(t, "bad.xls", "legacy")

	out, err := run(t, "batch", "--tool", "jbi-case-report", "-f", "svg", "-o", t.TempDir(), good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 tables failed")
	assert.Contains(t, out, "failed")
}

func TestToolsAndThemesCommands(t *testing.T) {
	out, err := run(t, "tools")
	require.NoError(t, err)
	for _, want := range []string{"NOS (nos)", "GRADE (grade)", "ROBIS (robis)", "JBI Case Report (jbi-case-report)", "JBI Case Series (jbi-case-series)"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "Demographics, History, ClinicalCondition, Diagnostics, Intervention, PostCondition, AdverseEvents, Lessons, Total, Overall RoB")

	out, err = run(t, "themes", "--tool", "grade")
	require.NoError(t, err)
	assert.Contains(t, out, "default, green, blue")
	assert.NotContains(t, out, "smiley")

	_, err = run(t, "themes", "--tool", "cochrane")
	assert.True(t, errors.Is(err, domaintypes.ErrUnknownTool))
}

func TestDigestCommand(t *testing.T) {
	path := writeInput(t, "a.svg", "<svg/>")

	out, err := run(t, "digest", "--full", path)
	require.NoError(t, err)
	assert.Contains(t, out, digest.Sum([]byte("<svg/>")))

	out, err = run(t, "digest", path)
	require.NoError(t, err)
	assert.Contains(t, out, digest.Fingerprint([]byte("<svg/>"))+"  "+path)
}
