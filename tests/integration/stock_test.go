package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStockEntryCreation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category := env.DB.CreateTestCategory(ctx, "M10", decimal.NewFromInt(8), decimal.NewFromInt(9))
	distributor := env.DB.CreateTestDistributor(ctx, "Kerala Agencies")

	resp, body := env.post(t, "/api/v1/stock-entries/", map[string]any{
		"category_id":    category.ID,
		"distributor_id": distributor.ID,
		"entry_date":     "2026-08-14",
		"ticket_code":    "AB12",
		"start_number":   "000100",
		"end_number":     "49",
		"rate":           "5",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	var created struct {
		ID          string `json:"id"`
		StartNumber string `json:"start_number"`
		EndNumber   string `json:"end_number"`
		Quantity    int64  `json:"quantity"`
		Amount      string `json:"amount"`
	}
	decodeJSON(t, body, &created)

	if created.EndNumber != "000149" {
		t.Errorf("expected stored end number 000149, got %q", created.EndNumber)
	}
	if created.Quantity != 500 {
		t.Errorf("expected quantity 500, got %d", created.Quantity)
	}
	if created.Amount != "2500.00" {
		t.Errorf("expected amount 2500.00, got %q", created.Amount)
	}

	// The stored entry round-trips with the fully qualified end number.
	resp, body = env.get(t, "/api/v1/stock-entries/"+created.ID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var fetched struct {
		StartNumber string `json:"start_number"`
		EndNumber   string `json:"end_number"`
	}
	decodeJSON(t, body, &fetched)
	if fetched.StartNumber != "000100" || fetched.EndNumber != "000149" {
		t.Errorf("expected range 000100..000149, got %s..%s", fetched.StartNumber, fetched.EndNumber)
	}
}

func TestStockEntryListFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	m10 := env.DB.CreateTestCategory(ctx, "M10", decimal.NewFromInt(8), decimal.NewFromInt(9))
	d5 := env.DB.CreateTestCategory(ctx, "D5", decimal.NewFromInt(4), decimal.NewFromInt(5))

	env.DB.CreateTestStockEntry(ctx, m10, "AB12", "000100", "000199", decimal.NewFromInt(5))
	env.DB.CreateTestStockEntry(ctx, d5, "CD34", "000500", "000599", decimal.NewFromInt(3))

	resp, body := env.get(t, "/api/v1/stock-entries/?category_id="+m10.ID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var listed struct {
		Entries []struct {
			CategoryID string `json:"category_id"`
		} `json:"entries"`
	}
	decodeJSON(t, body, &listed)

	if len(listed.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(listed.Entries))
	}
	if listed.Entries[0].CategoryID != m10.ID {
		t.Errorf("expected category %s, got %s", m10.ID, listed.Entries[0].CategoryID)
	}
}

func TestStockSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category := env.DB.CreateTestCategory(ctx, "M10", decimal.NewFromInt(8), decimal.NewFromInt(9))
	party := env.DB.CreateTestParty(ctx, "Varghese Stores")
	env.DB.CreateTestStockEntry(ctx, category, "AB12", "000100", "000199", decimal.NewFromInt(5))

	resp, body := env.post(t, "/api/v1/sale-entries/", map[string]any{
		"category_id":  category.ID,
		"party_id":     party.ID,
		"entry_date":   "2026-08-14",
		"start_number": "000100",
		"end_number":   "49",
		"rate":         "9",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}

	resp, body = env.get(t, "/api/v1/stock/summary")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	var summary struct {
		Categories []struct {
			CategoryName string `json:"category_name"`
			Quantity     int64  `json:"quantity"`
		} `json:"categories"`
	}
	decodeJSON(t, body, &summary)

	if len(summary.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(summary.Categories))
	}
	// 1000 purchased, 500 sold.
	if summary.Categories[0].Quantity != 500 {
		t.Errorf("expected on-hand quantity 500, got %d", summary.Categories[0].Quantity)
	}
}
