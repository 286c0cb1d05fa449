package plot

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libgrowth/growth"
	"github.com/stretchr/testify/assert"
)

func utDashboard() Dashboard {
	solar := growth.ComputeTimeToVolume(3.69e38, 0.00015, 300)
	dome := growth.ComputeTimeToVolume(1.24e6, 0.0056, 300)

	return Dashboard{
		Title:        "Exponential growth of a doubling dorayaki",
		Primary:      Line{Name: "Dorayaki", Samples: solar.Series},
		PrimaryLevel: Level{Name: "Solar System volume", Volume: 3.69e38},
		Comparison: []Line{
			{Name: "Dorayaki → Solar System", Samples: solar.Series},
			{Name: "Ball → Tokyo Dome", Samples: dome.Series},
		},
		Levels: []Level{
			{Name: "Solar System", Volume: 3.69e38},
			{Name: "Tokyo Dome", Volume: 1.24e6},
		},
		Factors: growth.FactorSeries(100, 10),
		Bars: []Bar{
			{Name: "Ball", Minutes: 30},
			{Name: "Tokyo Dome", Minutes: 165},
			{Name: "Earth", Minutes: 415},
			{Name: "Solar System", Minutes: 705},
		},
	}
}

func TestRender(t *testing.T) {
	r := NewRenderer(Options{PanelWidth: 480, PanelHeight: 320, TitleHeight: 24}, nil)

	var buf bytes.Buffer

	assert.Nil(t, r.Render(utDashboard(), &buf))

	cfg, err := png.DecodeConfig(&buf)
	assert.Nil(t, err)
	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 24+640, cfg.Height)
}

func TestSaveFile(t *testing.T) {
	r := NewRenderer(Options{}, nil)

	path := filepath.Join(t.TempDir(), "growth.png")
	assert.Nil(t, r.SaveFile(utDashboard(), path))

	f, err := os.Open(path)
	assert.Nil(t, err)

	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	assert.Nil(t, err)
	assert.Equal(t, 2*defaultPanelWidth, cfg.Width)
	assert.Equal(t, defaultTitleHeight+2*defaultPanelHeight, cfg.Height)
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer(Options{}, nil)

	err := r.Render(Dashboard{Title: "nothing"}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	err = r.SaveFile(Dashboard{}, filepath.Join(t.TempDir(), "x.png"))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestRenderPartial(t *testing.T) {
	r := NewRenderer(Options{PanelWidth: 320, PanelHeight: 240}, nil)

	d := Dashboard{
		Factors: growth.FactorSeries(100, 10),
		Bars:    []Bar{{Name: "none", Minutes: 0}},
	}

	var buf bytes.Buffer

	assert.Nil(t, r.Render(d, &buf))
	assert.True(t, buf.Len() > 0)
}

func TestLogPoints(t *testing.T) {
	xs, ys := logPoints([]growth.Sample{
		{ElapsedMinutes: 0, Volume: 1},
		{ElapsedMinutes: 5, Volume: 100},
		{ElapsedMinutes: 10, Volume: math.Inf(1)},
		{ElapsedMinutes: 15, Volume: 0},
	})

	assert.Equal(t, []float64{0, 5}, xs)
	assert.Equal(t, []float64{0, 2}, ys)
}

func TestDecadeTicks(t *testing.T) {
	lo, hi, ticks := decadeTicks(-3.8, 38.6, 10)

	assert.EqualValues(t, -4, lo)
	assert.True(t, hi >= 39)
	assert.True(t, len(ticks) <= 12)
	assert.Equal(t, "1e-4", ticks[0].Label)
	assert.EqualValues(t, hi, ticks[len(ticks)-1].Value)

	lo, hi, ticks = decadeTicks(2, 2, 10)
	assert.EqualValues(t, 2, lo)
	assert.EqualValues(t, 3, hi)
	assert.Len(t, ticks, 2)
}

func TestDashboardEmpty(t *testing.T) {
	assert.True(t, Dashboard{}.Empty())
	assert.False(t, utDashboard().Empty())
}
