package export

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
	"critiplot/internal/render"
)

// DefaultDPI is the raster resolution used when none is configured.
const DefaultDPI = 300

// MaxRasterSide bounds the pixel width and height of PNG output. Figures that
// would exceed it at the configured DPI are rasterised at a lower DPI.
const MaxRasterSide = 10000

// Service encodes figures.
type Service struct {
	DPI int
}

// New returns an exporter; dpi <= 0 selects DefaultDPI.
func New(dpi int) *Service {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Service{DPI: dpi}
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (domain.Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", domaintypes.ErrUnsupportedFormat, filepath.Base(path))
	}
	return domaintypes.ParseFormat(ext)
}

// Export encodes fig in format f.
func (s *Service) Export(fig *render.Figure, f domain.Format) ([]byte, error) {
	if fig == nil || fig.Released() {
		return nil, fmt.Errorf("%w: figure already released", domaintypes.ErrExportFailed)
	}
	w, h := fig.Size()

	var c interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch f {
	case domaintypes.FormatPNG:
		img := vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseDPI(rasterDPI(s.DPI, w, h)),
			vgimg.UseBackgroundColor(color.White),
		)
		fig.Draw(draw.New(img))
		c = pngCanvas{img}
	case domaintypes.FormatPDF:
		pinPDFMetadata()
		c = pdfCanvas{vgpdf.New(w, h)}
		fig.Draw(draw.New(c))
	case domaintypes.FormatSVG:
		c = vgsvg.New(w, h)
		fig.Draw(draw.New(c))
	case domaintypes.FormatEPS:
		c = vgeps.NewTitle(w, h, fig.Title())
		fig.Draw(draw.New(c))
	default:
		return nil, fmt.Errorf("%w: %q", domaintypes.ErrUnsupportedFormat, f)
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: encode %s: %v", domaintypes.ErrExportFailed, f, err)
	}
	if f == domaintypes.FormatEPS {
		return pinEPSDate(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// pngCanvas pairs a raster canvas with the PNG encoder.
type pngCanvas struct {
	*vgimg.Canvas
}

func (p pngCanvas) WriteTo(w io.Writer) (int64, error) {
	return vgimg.PngCanvas{Canvas: p.Canvas}.WriteTo(w)
}

// rasterDPI returns dpi, lowered so neither side of a w x h figure exceeds
// MaxRasterSide pixels.
func rasterDPI(dpi int, w, h vg.Length) int {
	side := float64(max(w, h) / vg.Inch)
	if side <= 0 || side*float64(dpi) <= MaxRasterSide {
		return dpi
	}
	return max(1, int(MaxRasterSide/side))
}
