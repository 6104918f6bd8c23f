package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/infrastructure/database"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestPreQuoteDynamoRepository(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	builder := "Constructora Valle"
	rate := 9.5
	q := entities.PreQuote{
		Ticket: "TCK-123456", HouseDesignID: "hd-1", Builder: &builder, BankRate: &rate,
		ContactEmail: "ana@example.com", ContactPhone: "9999", ContactMode: entities.ContactModeVirtual,
		EstimatedCost: 900_000, Status: entities.PreQuoteStatusPendiente, CreatedAt: now, UpdatedAt: now,
	}

	t.Run("create and get", func(t *testing.T) {
		repo := NewPreQuoteDynamoRepository(newFakeDynamo("ticket"), "pre_quotes")
		if _, err := repo.Create(context.Background(), q); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		got, err := repo.GetByTicket(context.Background(), "TCK-123456")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Builder == nil || *got.Builder != builder || got.Supplier != nil || *got.BankRate != 9.5 {
			t.Fatalf("unexpected pre-quote %+v", got)
		}
	})

	t.Run("ticket taken", func(t *testing.T) {
		repo := NewPreQuoteDynamoRepository(newFakeDynamo("ticket"), "pre_quotes")
		_, _ = repo.Create(context.Background(), q)
		if _, err := repo.Create(context.Background(), q); !errors.Is(err, interfaces.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("update status", func(t *testing.T) {
		repo := NewPreQuoteDynamoRepository(newFakeDynamo("ticket"), "pre_quotes")
		_, _ = repo.Create(context.Background(), q)

		got, err := repo.UpdateStatus(context.Background(), "TCK-123456", entities.PreQuoteStatusEnviada)
		if err != nil || got.Status != entities.PreQuoteStatusEnviada || !got.UpdatedAt.After(now) {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}

		missing, err := repo.UpdateStatus(context.Background(), "TCK-000000", entities.PreQuoteStatusEnviada)
		if err != nil || missing.Ticket != "" {
			t.Fatalf("expected zero value, got %+v err=%v", missing, err)
		}
	})

	t.Run("list by email queries the email index", func(t *testing.T) {
		ddb := newFakeDynamo("ticket")
		repo := NewPreQuoteDynamoRepository(ddb, "pre_quotes")
		_, _ = repo.Create(context.Background(), q)

		items, err := repo.ListByEmail(context.Background(), "ana@example.com")
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result %+v err=%v", items, err)
		}
		if aws.ToString(ddb.lastQuery.IndexName) != database.PreQuoteEmailIndex {
			t.Fatalf("unexpected index %q", aws.ToString(ddb.lastQuery.IndexName))
		}
	})

	t.Run("list by partner filters on the partner attribute", func(t *testing.T) {
		ddb := newFakeDynamo("ticket")
		repo := NewPreQuoteDynamoRepository(ddb, "pre_quotes")

		if _, err := repo.ListByPartner(context.Background(), entities.PartnerKindBanco, "Banco Atlántida"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if ddb.lastScan.ExpressionAttributeNames["#partner"] != "bank_name" {
			t.Fatalf("unexpected filter attribute %v", ddb.lastScan.ExpressionAttributeNames)
		}

		items, err := repo.ListByPartner(context.Background(), "OTRO", "x")
		if err != nil || items != nil {
			t.Fatalf("expected no results for unknown kind, got %+v err=%v", items, err)
		}
	})
}
