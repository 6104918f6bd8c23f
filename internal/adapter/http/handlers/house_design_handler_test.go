package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Iris-Sagastume/construct-ia/internal/adapter/http/handlers/mocks"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newHouseDesignRouter(uc usecase.IHouseDesignUseCase) *gin.Engine {
	h := NewHouseDesignHandler(uc, "/v1/ai/house-design")
	r := gin.New()
	r.POST("/v1/ai/house-image", h.GenerateHouseImage)
	r.GET("/v1/ai/house-design/:id", h.GetHouseDesign)
	r.GET("/v1/ai/house-design/:id/pdf", h.DownloadPdf)
	return r
}

func TestHouseDesignHandler_GenerateHouseImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHouseDesignUseCase(ctrl)

		w := perform(newHouseDesignRouter(uc), http.MethodPost, "/v1/ai/house-image", "{")
		expectErrorCode(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHouseDesignUseCase(ctrl)
		uc.EXPECT().GenerateDesign(gomock.Any(), entities.HouseAttributes{HouseType: "moderna", AreaVaras: "300", Pool: "SI"}).
			Return(entities.HouseDesign{ID: "hd-1", HouseType: "moderna", AreaVaras: 300, HasPool: true, EstimatedCost: 6800000}, nil)

		w := perform(newHouseDesignRouter(uc), http.MethodPost, "/v1/ai/house-image", `{"house_type":"moderna","area_varas":300,"pool":"SI"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID     string `json:"id"`
			PdfURL string `json:"pdf_url"`
		}
		decodeBody(t, w, &body)
		if body.ID != "hd-1" || body.PdfURL != "/v1/ai/house-design/hd-1/pdf" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHouseDesignUseCase(ctrl)
		uc.EXPECT().GenerateDesign(gomock.Any(), gomock.Any()).Return(entities.HouseDesign{}, errors.New("db down"))

		w := perform(newHouseDesignRouter(uc), http.MethodPost, "/v1/ai/house-image", `{}`)
		expectErrorCode(t, w, http.StatusInternalServerError, "INTERNAL_ERROR")
	})
}

func TestHouseDesignHandler_GetHouseDesign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIHouseDesignUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.HouseDesign{}, usecase.ErrHouseDesignNotFound)

	w := perform(newHouseDesignRouter(uc), http.MethodGet, "/v1/ai/house-design/missing", "")
	expectErrorCode(t, w, http.StatusNotFound, "HOUSE_DESIGN_NOT_FOUND")
}

func TestHouseDesignHandler_DownloadPdf(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHouseDesignUseCase(ctrl)
		uc.EXPECT().RenderPdf(gomock.Any(), "hd-1").Return(entities.Document{
			Filename:    "diseno-casa-hd-1.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.3 test"),
			Pages:       3,
		}, nil)

		w := perform(newHouseDesignRouter(uc), http.MethodGet, "/v1/ai/house-design/hd-1/pdf", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="diseno-casa-hd-1.pdf"` {
			t.Fatalf("unexpected content disposition %q", got)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type %q", got)
		}
		if w.Body.String() != "%PDF-1.3 test" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("generation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIHouseDesignUseCase(ctrl)
		uc.EXPECT().RenderPdf(gomock.Any(), "hd-1").Return(entities.Document{}, errors.Join(usecase.ErrPdfGeneration, errors.New("blueprint unreachable")))

		w := perform(newHouseDesignRouter(uc), http.MethodGet, "/v1/ai/house-design/hd-1/pdf", "")
		expectErrorCode(t, w, http.StatusInternalServerError, "PDF_GENERATION_FAILED")
	})
}
