package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Iris-Sagastume/construct-ia/internal/adapter/persistence/repository"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/catalog"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/database"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"

	"github.com/spf13/cobra"
)

var catalogGroup = &cobra.Group{
	ID:    "catalog",
	Title: "Assistant catalog",
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		GroupID: catalogGroup.ID,
		Short:   "Print the builders, suppliers and banks the assistant offers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fallbackOnly, _ := cmd.Flags().GetBool("fallback-only")

			fallback, err := catalog.Fallback()
			if err != nil {
				return err
			}
			c := fallback
			if !fallbackOnly {
				ddb, tables := database.ConnectDynamoDB()
				partners := usecase.NewPartnerUseCase(repository.NewPartnerDynamoRepository(ddb, tables.Partners), fallback)
				c = partners.Catalog(cmd.Context())
			}
			return printCatalog(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().Bool("fallback-only", false, "print the embedded fallback catalog without reading partners")
	return cmd
}

func printCatalog(w io.Writer, c entities.Catalog) error {
	var b strings.Builder
	b.WriteString("Constructoras:\n")
	for i, name := range c.Builders {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
	}
	b.WriteString("Ferreterías:\n")
	for i, name := range c.Suppliers {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
	}
	b.WriteString("Bancos:\n")
	for i, bank := range c.Banks {
		if bank.Rate > 0 {
			fmt.Fprintf(&b, "  %d. %s (%.2f%%)\n", i+1, bank.Name, bank.Rate)
			continue
		}
		fmt.Fprintf(&b, "  %d. %s\n", i+1, bank.Name)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
