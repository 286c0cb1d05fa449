// Package plot renders growth series into a single PNG dashboard. Nothing in
// growth depends on it.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultPanelWidth  = 720
	defaultPanelHeight = 480
	defaultTitleHeight = 32
)

func NewRenderer(opts Options, logger l.Wrapper) Renderer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if opts.PanelWidth <= 0 {
		opts.PanelWidth = defaultPanelWidth
	}

	if opts.PanelHeight <= 0 {
		opts.PanelHeight = defaultPanelHeight
	}

	if opts.TitleHeight <= 0 {
		opts.TitleHeight = defaultTitleHeight
	}

	return &rendererImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "rendererImpl")),
		opts:   opts,
	}
}

type rendererImpl struct {
	logger l.Wrapper
	opts   Options
}

func (impl *rendererImpl) Render(d Dashboard, w io.Writer) error {
	img, err := impl.compose(d)
	if err != nil {
		return err
	}

	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}

	return nil
}

func (impl *rendererImpl) SaveFile(d Dashboard, path string) (err error) {
	img, err := impl.compose(d)
	if err != nil {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("create %s: %w", path, err)

		return
	}

	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, e)
		}
	}()

	if err = png.Encode(f, img); err != nil {
		err = fmt.Errorf("encode %s: %w", path, err)

		return
	}

	impl.logger.WithFields(l.StringField("path", path)).Info("dashboard saved")

	return
}

func (impl *rendererImpl) compose(d Dashboard) (*image.RGBA, error) {
	if d.Empty() {
		return nil, fmt.Errorf("%w: dashboard has no data", commerr.ErrInvalidArgument)
	}

	panels := []func(Dashboard) (image.Image, error){
		impl.primaryPanel,
		impl.comparisonPanel,
		impl.factorPanel,
		impl.barPanel,
	}

	pw, ph, th := impl.opts.PanelWidth, impl.opts.PanelHeight, impl.opts.TitleHeight

	canvas := image.NewRGBA(image.Rect(0, 0, 2*pw, th+2*ph))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	for idx, fn := range panels {
		img, err := fn(d)
		if err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.IntField("panel", idx+1)).Error("render panel failed")

			return nil, err
		}

		x, y := (idx%2)*pw, th+(idx/2)*ph
		b := img.Bounds()
		draw.Draw(canvas, image.Rect(x, y, x+b.Dx(), y+b.Dy()), img, b.Min, draw.Src)
	}

	impl.drawTitle(canvas, d.Title)

	return canvas, nil
}

func (impl *rendererImpl) drawTitle(img *image.RGBA, title string) {
	if title == "" {
		return
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, title).Ceil()

	x := (img.Bounds().Dx() - width) / 2
	if x < 0 {
		x = 0
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, (impl.opts.TitleHeight+face.Ascent)/2),
	}
	d.DrawString(title)
}

func (impl *rendererImpl) placeholder(title string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, impl.opts.PanelWidth, impl.opts.PanelHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	label := title + ": no data"
	face := basicfont.Face7x13

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Gray{Y: 96}),
		Face: face,
		Dot:  fixed.P(20, impl.opts.PanelHeight/2),
	}
	d.DrawString(label)

	return img
}
