package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/intake"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"
)

func TestFromHouseDesign(t *testing.T) {
	now := time.Now().UTC()
	res := FromHouseDesign(entities.HouseDesign{
		ID:            "hd-1",
		HouseType:     "moderna",
		AreaVaras:     200,
		EstimatedCost: 4200000,
		BlueprintRef:  "https://img/1.png",
		CreatedAt:     now,
	}, "/v1/ai/house-design")

	if res.PdfURL != "/v1/ai/house-design/hd-1/pdf" {
		t.Fatalf("unexpected pdf url %q", res.PdfURL)
	}
	if res.EstimatedCostFormatted != "L. 4,200,000" {
		t.Fatalf("unexpected formatted cost %q", res.EstimatedCostFormatted)
	}
	if !res.CreatedAt.Equal(now) || res.BlueprintImageRef != "https://img/1.png" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromAllyPreQuotes(t *testing.T) {
	name := "Inversiones Acrópolis"
	items := []usecase.AllyPreQuote{{
		PreQuote: entities.PreQuote{Ticket: "TCK-100000", Builder: &name, Status: entities.PreQuoteStatusPendiente},
		Partner:  entities.Partner{Kind: entities.PartnerKindConstructora, Name: name},
	}}

	res := FromAllyPreQuotes(items)
	if len(res) != 1 || res[0].Ticket != "TCK-100000" || res[0].PartnerKind != "CONSTRUCTORA" {
		t.Fatalf("unexpected response %+v", res)
	}
	if res[0].Status != "PENDIENTE" {
		t.Fatalf("unexpected status %q", res[0].Status)
	}

	if got := FromAllyPreQuotes(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromSession_NilMessagesEncodeAsEmptyList(t *testing.T) {
	res := FromSession(intake.Snapshot{SessionID: "s-1", Phase: intake.PhaseSelectBuilder}, nil)
	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msgs, ok := decoded["messages"].([]any)
	if !ok || len(msgs) != 0 {
		t.Fatalf("expected empty messages array, got %v", decoded["messages"])
	}
}

func TestFromPartners(t *testing.T) {
	rate := 11.0
	res := FromPartners([]entities.Partner{{ID: "p-1", Kind: entities.PartnerKindBanco, InterestRate: &rate, Status: entities.PartnerStatusAprobada}})
	if len(res) != 1 || res[0].Kind != "BANCO" || *res[0].InterestRate != 11 || res[0].Status != "APROBADA" {
		t.Fatalf("unexpected response %+v", res)
	}
}
