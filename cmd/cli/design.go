package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/adapter/persistence/repository"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/pricing"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/database"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/imagefetch"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/imagegen"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/pdf"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"

	"github.com/spf13/cobra"
)

var designGroup = &cobra.Group{
	ID:    "design",
	Title: "House design operations",
}

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "estimate",
		GroupID: designGroup.ID,
		Short:   "Print the reference cost of a house",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			houseType, _ := cmd.Flags().GetString("type")
			area, _ := cmd.Flags().GetFloat64("area")
			pool, _ := cmd.Flags().GetBool("pool")

			if strings.TrimSpace(houseType) == "" {
				houseType = pricing.DefaultHouseType
			}
			cost := pricing.Estimate(houseType, area, pool)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Tipo: %s\nÁrea: %g varas²\nPiscina: %s\nInversión estimada: L. %s\n",
				houseType, area, yesNo(pool), pricing.FormatLempiras(cost))
			return err
		},
	}
	cmd.Flags().String("type", pricing.DefaultHouseType, "house type (moderna, rústica, ...)")
	cmd.Flags().Float64("area", pricing.DefaultAreaVaras, "area in square varas")
	cmd.Flags().Bool("pool", false, "include a pool")
	return cmd
}

func newRenderPdfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render-pdf [design-id]",
		GroupID: designGroup.ID,
		Short:   "Render the PDF report of a stored house design",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			ddb, tables := database.ConnectDynamoDB()
			designs := usecase.NewHouseDesignUseCase(
				repository.NewHouseDesignDynamoRepository(ddb, tables.HouseDesigns),
				imagegen.NewOpenAIImageGeneratorFromEnv(nil),
				imagefetch.NewFetcher(nil),
				pdf.NewRenderer(),
				nil,
			)

			doc, err := designs.RenderPdf(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = doc.Filename
			}
			if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d páginas)\n", out, doc.Pages)
			return err
		},
	}
	cmd.Flags().String("out", "", "output file (default diseno-casa-<id>.pdf)")
	return cmd
}

func newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "image [prompt]",
		GroupID: designGroup.ID,
		Short:   "Generate one image with the configured provider",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			out, _ := cmd.Flags().GetString("out")
			return generateImage(cmd.Context(), cmd, entities.ImageKind(kind), strings.Join(args, " "), out)
		},
	}
	cmd.Flags().String("kind", string(entities.ImageKindRender), "blueprint or render")
	cmd.Flags().String("out", "./out.png", "path to generated image file")
	return cmd
}

func generateImage(ctx context.Context, cmd *cobra.Command, kind entities.ImageKind, prompt, out string) error {
	ref := imagegen.NewOpenAIImageGeneratorFromEnv(nil).GenerateImage(ctx, kind, prompt)
	data, err := imagefetch.NewFetcher(nil).Fetch(ctx, ref)
	if err != nil {
		return fmt.Errorf("fetch generated image: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", out, len(data))
	return err
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
