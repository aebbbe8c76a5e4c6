package handlers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhekacitra/InsideOR-Project/internal/models"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderWindow(t *testing.T) {
	es := newTestExplorer()
	frame, err := es.Frame("1", 300)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewChartRenderer().RenderWindow(&buf, frame))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestRenderWindowNothingToPlot(t *testing.T) {
	var buf bytes.Buffer
	err := NewChartRenderer().RenderWindow(&buf, models.Frame{CaseID: "1"})
	assert.ErrorIs(t, err, ErrNothingToPlot)
	assert.Zero(t, buf.Len())
}

func TestRenderScatter(t *testing.T) {
	es := newTestExplorer()
	resp, err := es.Scatter("1", "HR", "SBP")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewChartRenderer().RenderScatter(&buf, resp))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestRenderScatterSinglePoint(t *testing.T) {
	resp := models.ScatterResponse{
		CaseID: "1", ParamX: "HR", ParamY: "PPF",
		Points: []models.PairedPoint{{Time: 0, ValueA: 60, ValueB: 20}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewChartRenderer().RenderScatter(&buf, resp))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))

	buf.Reset()
	err := NewChartRenderer().RenderScatter(&buf, models.ScatterResponse{})
	assert.ErrorIs(t, err, ErrNothingToPlot)
}
