package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/pricing"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrHouseDesignNotFound  = errors.New("house design not found")
	ErrInvalidHouseDesignID = errors.New("invalid house design id")
	ErrPdfGeneration        = errors.New("pdf generation failed")
)

// IHouseDesignUseCase exposes the design operations behind the assistant:
//   - GenerateDesign: sanitize answers, estimate, generate blueprint + render, persist
//   - GetByID: read a stored design
//   - RenderPdf: the downloadable three-page report
type IHouseDesignUseCase interface {
	GenerateDesign(ctx context.Context, answers entities.HouseAttributes) (entities.HouseDesign, error)
	GetByID(ctx context.Context, id string) (entities.HouseDesign, error)
	RenderPdf(ctx context.Context, id string) (entities.Document, error)
}

type HouseDesignUseCase struct {
	repo     interfaces.IHouseDesignRepository
	images   interfaces.IImageGenerator
	fetcher  interfaces.IImageFetcher
	renderer interfaces.IPdfRenderer
	metrics  interfaces.IMetricsRecorder
}

var (
	_ IHouseDesignUseCase    = (*HouseDesignUseCase)(nil)
	_ intake.DesignGenerator = (*HouseDesignUseCase)(nil)
)

func NewHouseDesignUseCase(
	repo interfaces.IHouseDesignRepository,
	images interfaces.IImageGenerator,
	fetcher interfaces.IImageFetcher,
	renderer interfaces.IPdfRenderer,
	metrics interfaces.IMetricsRecorder,
) *HouseDesignUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &HouseDesignUseCase{repo: repo, images: images, fetcher: fetcher, renderer: renderer, metrics: metrics}
}

func (u *HouseDesignUseCase) GenerateDesign(ctx context.Context, answers entities.HouseAttributes) (entities.HouseDesign, error) {
	started := time.Now()
	d := sanitizeAttributes(answers)
	d.EstimatedCost = pricing.Estimate(d.HouseType, float64(d.AreaVaras), d.HasPool)
	log.Printf("[ai][usecase] estimated cost house_type=%q area_varas=%d pool=%t cost=L.%s",
		d.HouseType, d.AreaVaras, d.HasPool, pricing.FormatLempiras(d.EstimatedCost))

	// Both calls degrade to a placeholder instead of failing, so the group
	// only joins them.
	bpPrompt, rdPrompt := blueprintPrompt(d), renderPrompt(d)
	var blueprintRef, renderRef string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		blueprintRef = u.images.GenerateImage(gctx, entities.ImageKindBlueprint, bpPrompt)
		return nil
	})
	g.Go(func() error {
		renderRef = u.images.GenerateImage(gctx, entities.ImageKindRender, rdPrompt)
		return nil
	})
	_ = g.Wait()
	d.BlueprintRef, d.RenderRef = blueprintRef, renderRef

	d.ID = uuid.NewString()
	d.CreatedAt = time.Now().UTC()

	saved, err := u.repo.Create(ctx, d)
	if err != nil {
		u.metrics.ObserveDesignGeneration(false, time.Since(started))
		return entities.HouseDesign{}, err
	}
	u.metrics.ObserveDesignGeneration(true, time.Since(started))
	log.Printf("[ai][usecase] design stored design_id=%s", saved.ID)
	return saved, nil
}

func (u *HouseDesignUseCase) GetByID(ctx context.Context, id string) (entities.HouseDesign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HouseDesign{}, ErrInvalidHouseDesignID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.HouseDesign{}, err
	}
	if d.ID == "" {
		return entities.HouseDesign{}, ErrHouseDesignNotFound
	}
	return d, nil
}

// RenderPdf fails when the blueprint cannot be obtained. A render that cannot
// be fetched only drops the third page.
func (u *HouseDesignUseCase) RenderPdf(ctx context.Context, id string) (entities.Document, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}

	blueprint, err := u.fetcher.Fetch(ctx, d.BlueprintRef)
	if err != nil {
		return entities.Document{}, fmt.Errorf("%w: blueprint: %w", ErrPdfGeneration, err)
	}

	var render []byte
	if d.RenderRef != "" {
		render, err = u.fetcher.Fetch(ctx, d.RenderRef)
		if err != nil {
			log.Printf("[ai][usecase] render image unavailable design_id=%s err=%v", d.ID, err)
			render = nil
		}
	}

	doc, err := u.renderer.RenderHouseDesign(d, blueprint, render)
	if err != nil {
		return entities.Document{}, fmt.Errorf("%w: %w", ErrPdfGeneration, err)
	}
	if doc.Filename == "" {
		doc.Filename = PdfFilename(d.ID)
	}
	return doc, nil
}

// PdfFilename is the attachment name of a design report.
func PdfFilename(id string) string {
	return "diseno-casa-" + id + ".pdf"
}
