package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 80, B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testDesign() entities.HouseDesign {
	return entities.HouseDesign{
		ID:              "hd-42",
		HouseType:       "moderna",
		AreaVaras:       200,
		Bedrooms:        3,
		Bathrooms:       2,
		Department:      "Cortés",
		Municipality:    "San Pedro Sula",
		Neighborhood:    "Jardines del Valle",
		HasPool:         true,
		AdditionalNotes: "Cochera doble",
		EstimatedCost:   1_600_000,
		CreatedAt:       time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC),
	}
}

func TestRenderHouseDesign_ThreePages(t *testing.T) {
	doc, err := NewRenderer().RenderHouseDesign(testDesign(), testPNG(t, 64, 32), testPNG(t, 32, 64))
	require.NoError(t, err)
	require.Equal(t, 3, doc.Pages)
	require.Equal(t, "diseno-casa-hd-42.pdf", doc.Filename)
	require.Equal(t, "application/pdf", doc.ContentType)
	require.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF-")))
}

func TestRenderHouseDesign_WithoutRender(t *testing.T) {
	doc, err := NewRenderer().RenderHouseDesign(testDesign(), testPNG(t, 16, 16), nil)
	require.NoError(t, err)
	require.Equal(t, 2, doc.Pages)
}

func TestRenderHouseDesign_UndecodableRenderIsSkipped(t *testing.T) {
	doc, err := NewRenderer().RenderHouseDesign(testDesign(), testPNG(t, 16, 16), []byte("<html>not an image</html>"))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Pages)
}

func TestRenderHouseDesign_SixteenBitRenderIsSkipped(t *testing.T) {
	img := image.NewRGBA64(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA64{R: 0x1234, G: 0x5678, B: 0x9abc, A: 0xffff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	doc, err := NewRenderer().RenderHouseDesign(testDesign(), testPNG(t, 16, 16), buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 2, doc.Pages)
}

func TestRenderHouseDesign_BadBlueprintFails(t *testing.T) {
	_, err := NewRenderer().RenderHouseDesign(testDesign(), []byte("nope"), testPNG(t, 16, 16))
	require.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestFit(t *testing.T) {
	w, h := fit(1024, 512, 500)
	require.InDelta(t, 500, w, 0.001)
	require.InDelta(t, 250, h, 0.001)

	w, h = fit(300, 600, 500)
	require.InDelta(t, 250, w, 0.001)
	require.InDelta(t, 500, h, 0.001)
}
