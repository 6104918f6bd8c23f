// Package pdf renders the downloadable house design report.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/pricing"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	ContentType = "application/pdf"

	pageMargin = 40.0
	imageBox   = 500.0
	fontFamily = "Helvetica"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// Renderer lays out an A4 report: page 1 the design data, page 2 the
// blueprint and page 3 the render when one is given.
type Renderer struct{}

var _ interfaces.IPdfRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderHouseDesign(d entities.HouseDesign, blueprint, render []byte) (entities.Document, error) {
	blueprintType, err := imageType(blueprint)
	if err != nil {
		return entities.Document{}, fmt.Errorf("blueprint: %w", err)
	}
	renderType := ""
	if len(render) > 0 {
		if renderType, err = imageType(render); err == nil {
			err = fpdfAccepts(renderType, render)
		}
		if err != nil {
			log.Printf("[ai][pdf] render image skipped design_id=%s err=%v", d.ID, err)
			render = nil
		}
	}

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	writeSummaryPage(doc, tr, d)
	writeImagePage(doc, tr, "Plano arquitectónico generado por IA:", "blueprint", blueprintType, blueprint)
	if render != nil {
		writeImagePage(doc, tr, "Render ilustrado de la vivienda:", "render", renderType, render)
	}

	if err := doc.Error(); err != nil {
		return entities.Document{}, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return entities.Document{}, err
	}

	return entities.Document{
		Filename:    "diseno-casa-" + d.ID + ".pdf",
		ContentType: ContentType,
		Data:        buf.Bytes(),
		Pages:       doc.PageCount(),
	}, nil
}

func writeSummaryPage(doc *fpdf.Fpdf, tr func(string) string, d entities.HouseDesign) {
	doc.AddPage()

	doc.SetFont(fontFamily, "B", 18)
	doc.CellFormat(0, 24, tr("Construct-IA – Diseño de Casa"), "", 1, "C", false, 0, "")
	doc.Ln(12)

	doc.SetFont(fontFamily, "", 12)
	line := func(s string) { doc.MultiCell(0, 16, tr(s), "", "L", false) }
	line("ID de diseño: " + d.ID)
	line("Fecha: " + d.CreatedAt.UTC().Format("2006-01-02"))
	doc.Ln(10)

	line("Tipo de casa: " + d.HouseType)
	line(fmt.Sprintf("Área: %d varas²", d.AreaVaras))
	line(fmt.Sprintf("Habitaciones: %d", d.Bedrooms))
	line(fmt.Sprintf("Baños: %d", d.Bathrooms))
	line(fmt.Sprintf("Ubicación: %s, %s, %s", d.Neighborhood, d.Municipality, d.Department))
	if d.HasPool {
		line("Piscina: Sí")
	} else {
		line("Piscina: No")
	}
	doc.Ln(10)

	if d.AdditionalNotes != "" {
		line("Notas adicionales: " + d.AdditionalNotes)
		doc.Ln(10)
	}

	doc.SetFont(fontFamily, "U", 14)
	doc.MultiCell(0, 18, tr("Inversión estimada: L. "+pricing.FormatLempiras(d.EstimatedCost)), "", "L", false)
	doc.Ln(10)

	doc.SetFont(fontFamily, "", 10)
	doc.SetTextColor(128, 128, 128)
	doc.MultiCell(0, 14, tr("Este valor es aproximado y puede variar según materiales, mano de obra y acabados."), "", "L", false)
	doc.SetTextColor(0, 0, 0)
}

// writeImagePage centers the image inside a imageBox square below the title.
func writeImagePage(doc *fpdf.Fpdf, tr func(string) string, title, name, imgType string, data []byte) {
	doc.AddPage()
	doc.SetFont(fontFamily, "", 14)
	doc.CellFormat(0, 20, tr(title), "", 1, "C", false, 0, "")
	doc.Ln(10)

	opts := fpdf.ImageOptions{ImageType: imgType}
	info := doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if info == nil || doc.Error() != nil {
		return
	}

	w, h := fit(info.Width(), info.Height(), imageBox)
	pageW, _ := doc.GetPageSize()
	x := (pageW - w) / 2
	y := doc.GetY()
	doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// fpdfAccepts registers data in a scratch document. fpdf errors are sticky, so
// an image it cannot embed (16-bit or interlaced PNG) must be caught before it
// reaches the report.
func fpdfAccepts(imgType string, data []byte) error {
	scratch := fpdf.New("P", "pt", "A4", "")
	scratch.RegisterImageOptionsReader("check", fpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(data))
	if err := scratch.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	return nil
}

// fit scales w x h to fit inside a box x box square, keeping the aspect ratio.
func fit(w, h, box float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return box, box
	}
	scale := box / w
	if h*scale > box {
		scale = box / h
	}
	return w * scale, h * scale
}

// imageType maps the sniffed content type to an fpdf image type and checks
// that the header decodes.
func imageType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnsupportedImage
	}
	var t string
	switch http.DetectContentType(data) {
	case "image/png":
		t = "PNG"
	case "image/jpeg":
		t = "JPG"
	case "image/gif":
		t = "GIF"
	default:
		return "", ErrUnsupportedImage
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	return t, nil
}
