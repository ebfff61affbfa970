package export_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
	"critiplot/internal/render"
	"critiplot/internal/schema"
	"critiplot/internal/services/distribution"
	"critiplot/internal/services/export"
	"critiplot/internal/services/judgement"
	"critiplot/internal/services/validation"
	"critiplot/internal/theme"
)

func robisFigure(t *testing.T, themeName string) *render.Figure {
	t.Helper()
	reg, err := schema.Builtin()
	require.NoError(t, err)
	s, err := reg.Lookup("robis")
	require.NoError(t, err)
	themes, err := theme.Builtin()
	require.NoError(t, err)
	enc, err := themes.Resolve(s, themeName)
	require.NoError(t, err)

	raw := domain.RawTable{
		Header: []string{"Review", "Study Eligibility", "Identification & Selection",
			"Data Collection", "Synthesis & Findings", "Overall Risk"},
		Rows: [][]string{
			{"Smith 2019", "Unclear", "Low", "High", "Low", "High"},
			{"Jones 2021", "Low", "Low", "Low", "Unclear", "Low"},
		},
	}
	vt, err := validation.New(false).Validate(raw, s)
	require.NoError(t, err)
	m, err := judgement.New().Project(vt.Table)
	require.NoError(t, err)
	dist, err := distribution.Aggregate(m, s)
	require.NoError(t, err)
	fig, err := render.Compose(vt.Table, m, dist, enc)
	require.NoError(t, err)
	return fig
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]domain.Format{
		"out/ROBIS_TrafficLight.png": domaintypes.FormatPNG,
		"x.PDF":                      domaintypes.FormatPDF,
		"x.Svg":                      domaintypes.FormatSVG,
		"/tmp/a.b/x.eps":             domaintypes.FormatEPS,
	} {
		got, err := export.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	for _, path := range []string{"x.bmp", "x.jpeg", "noext"} {
		_, err := export.FormatFromPath(path)
		require.Error(t, err, path)
		assert.True(t, errors.Is(err, domaintypes.ErrUnsupportedFormat), path)
	}
}

func TestExportMagicBytes(t *testing.T) {
	fig := robisFigure(t, "default")
	exp := export.New(36)

	magic := map[domain.Format][]byte{
		domaintypes.FormatPNG: []byte("\x89PNG\r\n\x1a\n"),
		domaintypes.FormatPDF: []byte("%PDF-"),
		domaintypes.FormatEPS: []byte("%%!PS-Adobe-"),
	}
	for f, prefix := range magic {
		b, err := exp.Export(fig, f)
		require.NoError(t, err, f)
		assert.True(t, bytes.HasPrefix(b, prefix), "%s starts with %q", f, b[:min(len(b), 16)])
	}

	svg, err := exp.Export(fig, domaintypes.FormatSVG)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "ROBIS Traffic-Light Plot")
}

func TestVectorOutputIsDeterministic(t *testing.T) {
	for _, f := range []domain.Format{domaintypes.FormatSVG, domaintypes.FormatPDF, domaintypes.FormatEPS} {
		first, err := export.New(0).Export(robisFigure(t, "smiley"), f)
		require.NoError(t, err, f)
		time.Sleep(1100 * time.Millisecond)
		second, err := export.New(0).Export(robisFigure(t, "smiley"), f)
		require.NoError(t, err, f)
		assert.True(t, bytes.Equal(first, second), "%s output differs between runs", f)
	}
}

func TestPDFKeepsBoldText(t *testing.T) {
	b, err := export.New(0).Export(robisFigure(t, "default"), domaintypes.FormatPDF)
	require.NoError(t, err)
	assert.Contains(t, string(b), "LiberationSans-Bold")
}

func TestEPSCreationDateIsFixed(t *testing.T) {
	b, err := export.New(0).Export(robisFigure(t, "gray"), domaintypes.FormatEPS)
	require.NoError(t, err)
	assert.Contains(t, string(b), "%%CreationDate: 2000-01-01T00:00:00Z\n")
	assert.Equal(t, 1, strings.Count(string(b), "%%CreationDate: "))
}

func TestBarLabels(t *testing.T) {
	reg, err := schema.Builtin()
	require.NoError(t, err)
	s, err := reg.Lookup("robis")
	require.NoError(t, err)
	themes, err := theme.Builtin()
	require.NoError(t, err)
	enc, err := themes.Resolve(s, "default")
	require.NoError(t, err)

	raw := domain.RawTable{
		Header: []string{"Review", "Study Eligibility", "Identification & Selection",
			"Data Collection", "Synthesis & Findings", "Overall Risk"},
		Rows: [][]string{
			{"A 2019", "Low", "Low", "Low", "Low", "Low"},
			{"B 2020", "Low", "Low", "Low", "Low", "Low"},
			{"C 2021", "High", "Low", "Low", "Low", "High"},
		},
	}
	vt, err := validation.New(false).Validate(raw, s)
	require.NoError(t, err)
	m, err := judgement.New().Project(vt.Table)
	require.NoError(t, err)
	dist, err := distribution.Aggregate(m, s)
	require.NoError(t, err)
	fig, err := render.Compose(vt.Table, m, dist, enc)
	require.NoError(t, err)

	b, err := export.New(0).Export(fig, domaintypes.FormatSVG)
	require.NoError(t, err)
	svg := string(b)

	assert.Equal(t, 1, strings.Count(svg, ">33%<"), "1 of 3 rounds to 33%")
	assert.Equal(t, 1, strings.Count(svg, ">67%<"), "2 of 3 rounds to 67%")
	assert.Equal(t, 3, strings.Count(svg, ">100%<"))
	assert.NotContains(t, svg, ">0%<", "empty segments carry no label")
}

func TestPNGIsDeterministic(t *testing.T) {
	fig := robisFigure(t, "blue")
	first, err := export.New(36).Export(fig, domaintypes.FormatPNG)
	require.NoError(t, err)
	second, err := export.New(36).Export(fig, domaintypes.FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(first, second))
}

func TestExportRejects(t *testing.T) {
	fig := robisFigure(t, "default")

	_, err := export.New(0).Export(fig, domain.Format("bmp"))
	assert.True(t, errors.Is(err, domaintypes.ErrUnsupportedFormat))

	fig.Release()
	_, err = export.New(0).Export(fig, domaintypes.FormatSVG)
	assert.True(t, errors.Is(err, domaintypes.ErrExportFailed))
}
