package plot

import (
	"io"

	"github.com/sgostarter/libgrowth/growth"
)

type Line struct {
	Name    string
	Samples []growth.Sample
}

// Level is a horizontal reference line at a volume.
type Level struct {
	Name   string
	Volume growth.Volume
}

type Bar struct {
	Name    string
	Minutes float64
}

// Dashboard is the four panel figure: primary growth, comparison,
// growth factor per duplication count and minutes per target.
type Dashboard struct {
	Title string

	Primary      Line
	PrimaryLevel Level

	Comparison []Line
	Levels     []Level

	Factors []growth.Factor

	Bars []Bar
}

func (d Dashboard) Empty() bool {
	return len(d.Primary.Samples) < 2 && len(d.Comparison) == 0 && len(d.Factors) < 2 && len(d.Bars) == 0
}

type Options struct {
	PanelWidth  int
	PanelHeight int
	TitleHeight int
}

type Renderer interface {
	Render(d Dashboard, w io.Writer) error
	SaveFile(d Dashboard, path string) error
}
