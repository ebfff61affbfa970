package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critiplot/internal/app"
	domaintypes "critiplot/internal/domain/types"
)

func TestNewWire(t *testing.T) {
	w, err := app.NewWire(app.DefaultConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, w.Logger)

	e, err := w.Engine("JBI Case Series")
	require.NoError(t, err)
	assert.Equal(t, domaintypes.ToolID("jbi-case-series"), e.Schema().ID)
	assert.Contains(t, e.Themes(), "smiley")

	_, err = w.Engine("cochrane")
	assert.True(t, errors.Is(err, domaintypes.ErrUnknownTool))
}

func TestNewWireRejectsInvalidConfig(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.DPI = 0
	_, err := app.NewWire(cfg, nil)
	assert.Error(t, err)
}
