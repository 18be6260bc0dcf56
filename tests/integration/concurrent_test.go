package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// Two operators submitting the same range concurrently must not both
// succeed: the sale transaction locks the category row, so one of them
// observes the other's sale in the history.
func TestConcurrentSalesOfSameRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category := env.DB.CreateTestCategory(ctx, "M10", decimal.NewFromInt(8), decimal.NewFromInt(9))
	party := env.DB.CreateTestParty(ctx, "Varghese Stores")
	env.DB.CreateTestStockEntry(ctx, category, "AB12", "000100", "000199", decimal.NewFromInt(5))

	const workers = 4

	var wg sync.WaitGroup
	statuses := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			resp, _ := env.post(t, "/api/v1/sale-entries/", map[string]any{
				"category_id":  category.ID,
				"party_id":     party.ID,
				"entry_date":   "2026-08-14",
				"start_number": "000100",
				"end_number":   "49",
				"rate":         "9",
			})
			statuses[i] = resp.StatusCode
		}(i)
	}

	wg.Wait()

	created, conflicted := 0, 0
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		default:
			t.Errorf("unexpected status %d", status)
		}
	}

	if created != 1 {
		t.Errorf("expected exactly 1 sale to land, got %d", created)
	}
	if conflicted != workers-1 {
		t.Errorf("expected %d conflicts, got %d", workers-1, conflicted)
	}
}
