package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/sgostarter/libgrowth/growth"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var palette = []drawing.Color{
	{R: 214, G: 39, B: 40, A: 255},
	{R: 31, G: 119, B: 180, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

var (
	levelColors = []drawing.Color{
		{R: 255, G: 165, B: 0, A: 255},
		{R: 0, G: 128, B: 0, A: 255},
		{R: 128, G: 128, B: 128, A: 255},
	}
	factorColor = drawing.Color{R: 128, G: 0, B: 128, A: 255}
	gridColor   = drawing.Color{R: 0, G: 0, B: 0, A: 40}
)

func colorAt(cs []drawing.Color, idx int) drawing.Color {
	return cs[idx%len(cs)]
}

// logPoints drops samples that have no finite log10.
func logPoints(samples []growth.Sample) (xs, ys []float64) {
	for _, s := range samples {
		y := math.Log10(s.Volume)
		if s.Volume <= 0 || math.IsInf(y, 0) || math.IsNaN(y) {
			continue
		}

		xs = append(xs, s.ElapsedMinutes)
		ys = append(ys, y)
	}

	return
}

func decadeFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("1e%.0f", f)
	}

	return ""
}

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}

	return ""
}

// decadeTicks covers [min, max] with at most maxTicks+1 integer decades.
func decadeTicks(min, max float64, maxTicks int) (lo, hi float64, ticks []chart.Tick) {
	lo, hi = math.Floor(min), math.Ceil(max)
	if hi <= lo {
		hi = lo + 1
	}

	step := math.Ceil((hi - lo) / float64(maxTicks))
	if step < 1 {
		step = 1
	}

	for v := lo; v <= hi; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: decadeFormatter(v)})
	}

	if last := ticks[len(ticks)-1].Value; last < hi {
		hi = last + step
		ticks = append(ticks, chart.Tick{Value: hi, Label: decadeFormatter(hi)})
	}

	return
}

type logSeries struct {
	name   string
	xs, ys []float64
	style  chart.Style
}

func xSpan(series []logSeries) (min, max float64) {
	min, max = math.MaxFloat64, -math.MaxFloat64

	for _, s := range series {
		for _, x := range s.xs {
			min = math.Min(min, x)
			max = math.Max(max, x)
		}
	}

	if max <= min {
		max = min + 1
	}

	return
}

func ySpan(series []logSeries, levels []float64) (min, max float64) {
	min, max = math.MaxFloat64, -math.MaxFloat64

	for _, s := range series {
		for _, y := range s.ys {
			min = math.Min(min, y)
			max = math.Max(max, y)
		}
	}

	for _, y := range levels {
		min = math.Min(min, y)
		max = math.Max(max, y)
	}

	return
}

func (impl *rendererImpl) logChart(title, xName, yName string, series []logSeries, levels []Level) (image.Image, error) {
	var drawn []logSeries

	for _, s := range series {
		if len(s.xs) >= 2 {
			drawn = append(drawn, s)
		}
	}

	if len(drawn) == 0 {
		return impl.placeholder(title), nil
	}

	xMin, xMax := xSpan(drawn)

	var levelYs []float64

	for idx, lv := range levels {
		y := math.Log10(lv.Volume)
		if lv.Volume <= 0 || math.IsInf(y, 0) || math.IsNaN(y) {
			continue
		}

		levelYs = append(levelYs, y)
		drawn = append(drawn, logSeries{
			name: lv.Name,
			xs:   []float64{xMin, xMax},
			ys:   []float64{y, y},
			style: chart.Style{
				StrokeColor:     colorAt(levelColors, idx),
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{6.0, 4.0},
			},
		})
	}

	yMin, yMax := ySpan(drawn, levelYs)
	yLo, yHi, ticks := decadeTicks(yMin, yMax, 10)

	var cs []chart.Series
	for _, s := range drawn {
		cs = append(cs, chart.ContinuousSeries{
			Name:    s.name,
			XValues: s.xs,
			YValues: s.ys,
			Style:   s.style,
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  impl.opts.PanelWidth,
		Height: impl.opts.PanelHeight,
		TitleStyle: chart.Style{
			FontSize: 11.0,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           xName,
			Style:          chart.Style{FontSize: 9.0},
			ValueFormatter: intFormatter,
			Range:          &chart.ContinuousRange{Min: xMin, Max: xMax},
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1.0},
		},
		YAxis: chart.YAxis{
			Name:           yName,
			Style:          chart.Style{FontSize: 9.0},
			ValueFormatter: decadeFormatter,
			Range:          &chart.ContinuousRange{Min: yLo, Max: yHi},
			Ticks:          ticks,
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 1.0},
		},
		Series: cs,
	}

	if len(drawn) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	return decodeChart(func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

func (impl *rendererImpl) primaryPanel(d Dashboard) (image.Image, error) {
	xs, ys := logPoints(d.Primary.Samples)

	series := []logSeries{{
		name: d.Primary.Name,
		xs:   xs,
		ys:   ys,
		style: chart.Style{
			StrokeColor: colorAt(palette, 0),
			StrokeWidth: 2.0,
			DotColor:    colorAt(palette, 0),
			DotWidth:    2.0,
		},
	}}

	var levels []Level
	if d.PrimaryLevel.Volume > 0 {
		levels = append(levels, d.PrimaryLevel)
	}

	return impl.logChart(d.Primary.Name+" growth", "Time (minutes)", "Volume (m³)", series, levels)
}

func (impl *rendererImpl) comparisonPanel(d Dashboard) (image.Image, error) {
	series := make([]logSeries, 0, len(d.Comparison))

	for idx, line := range d.Comparison {
		xs, ys := logPoints(line.Samples)

		series = append(series, logSeries{
			name: line.Name,
			xs:   xs,
			ys:   ys,
			style: chart.Style{
				StrokeColor: colorAt(palette, idx),
				StrokeWidth: 2.0,
			},
		})
	}

	return impl.logChart("Exponential growth comparison", "Time (minutes)", "Volume (m³, log)", series, d.Levels)
}

func (impl *rendererImpl) factorPanel(d Dashboard) (image.Image, error) {
	var xs, ys []float64

	for _, f := range d.Factors {
		y := math.Log10(f.Factor)
		if math.IsInf(y, 0) || math.IsNaN(y) {
			continue
		}

		xs = append(xs, float64(f.Duplications))
		ys = append(ys, y)
	}

	series := []logSeries{{
		name:  "2^n",
		xs:    xs,
		ys:    ys,
		style: chart.Style{StrokeColor: factorColor, StrokeWidth: 2.0},
	}}

	return impl.logChart("Growth by number of duplications", "Duplications", "Growth factor (2^n)", series, nil)
}

func (impl *rendererImpl) barPanel(d Dashboard) (image.Image, error) {
	const title = "Time to reach each target"

	var (
		bars []chart.Value
		max  float64
	)

	for idx, b := range d.Bars {
		if b.Minutes <= 0 || math.IsInf(b.Minutes, 0) || math.IsNaN(b.Minutes) {
			continue
		}

		c := colorAt(palette, idx)

		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%.0f)", b.Name, b.Minutes),
			Value: b.Minutes,
			Style: chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1.0},
		})

		max = math.Max(max, b.Minutes)
	}

	if len(bars) == 0 {
		return impl.placeholder(title), nil
	}

	barWidth := impl.opts.PanelWidth / (2 * len(bars))
	if barWidth < 8 {
		barWidth = 8
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  impl.opts.PanelWidth,
		Height: impl.opts.PanelHeight,
		TitleStyle: chart.Style{
			FontSize: 11.0,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth: barWidth,
		XAxis:    chart.Style{FontSize: 8.0},
		YAxis: chart.YAxis{
			Name:           "Minutes required",
			Style:          chart.Style{FontSize: 9.0},
			ValueFormatter: intFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: max * 1.1},
		},
		Bars: bars,
	}

	return decodeChart(func(buf *bytes.Buffer) error {
		return graph.Render(chart.PNG, buf)
	})
}

func decodeChart(render func(buf *bytes.Buffer) error) (image.Image, error) {
	buf := bytes.NewBuffer([]byte{})

	if err := render(buf); err != nil {
		return nil, fmt.Errorf("render panel: %w", err)
	}

	img, err := png.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel: %w", err)
	}

	return img, nil
}
