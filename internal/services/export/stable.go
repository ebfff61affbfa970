package export

import (
	"bytes"
	"sync"
	"time"

	pdf "github.com/go-pdf/fpdf"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// stamp is the creation and modification time of every PDF and EPS document.
var stamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var pinPDFMetadata = sync.OnceFunc(func() {
	pdf.SetDefaultCreationDate(stamp)
	pdf.SetDefaultModificationDate(stamp)
	pdf.SetDefaultCatalogSort(true)
})

var epsDate = []byte("%%CreationDate: ")

// pinEPSDate replaces the value of the %%CreationDate comment with stamp.
func pinEPSDate(b []byte) []byte {
	i := bytes.Index(b, epsDate)
	if i < 0 {
		return b
	}
	start := i + len(epsDate)
	end := bytes.IndexByte(b[start:], '\n')
	if end < 0 {
		return b
	}
	out := make([]byte, 0, len(b))
	out = append(out, b[:start]...)
	out = append(out, stamp.Format(time.RFC3339)...)
	return append(out, b[start+end:]...)
}

// pdfCanvas hands bold faces to fpdf as regular-weight fonts of their own.
// vgpdf embeds every face under an empty style but selects bold text with
// style "B", which fpdf cannot resolve.
type pdfCanvas struct {
	*vgpdf.Canvas
}

func (c pdfCanvas) FillString(f font.Face, pt vg.Point, s string) {
	if f.Font.Weight == xfont.WeightBold {
		f.Font.Variant += "Bold"
		f.Font.Weight = xfont.WeightNormal
	}
	c.Canvas.FillString(f, pt, s)
}
