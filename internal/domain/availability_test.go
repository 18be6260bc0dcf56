package domain

import "testing"

func mustRange(t *testing.T, start, end string) TicketRange {
	t.Helper()

	r, err := ResolveRange(start, end)
	if err != nil {
		t.Fatalf("building range %s-%s: %v", start, end, err)
	}

	return r
}

func stockBatch(t *testing.T, id, code, start, end string) *StockEntry {
	t.Helper()

	return &StockEntry{ID: id, CategoryID: "cat-m25", TicketCode: code, Range: mustRange(t, start, end)}
}

func saleOf(t *testing.T, code, start, end string) *SaleEntry {
	t.Helper()

	return &SaleEntry{CategoryID: "cat-m25", TicketCode: code, Range: mustRange(t, start, end)}
}

func TestMatchAvailability_SingleBatch(t *testing.T) {
	batches := []*StockEntry{stockBatch(t, "b1", "BK-7", "1000", "1099")}

	m := MatchAvailability(batches, nil, mustRange(t, "1010", "1020"), "")

	if m.Kind != MatchSingle {
		t.Fatalf("kind = %s, want single_match", m.Kind)
	}
	if m.Batch == nil || m.Batch.TicketCode != "BK-7" {
		t.Errorf("expected auto-detected code BK-7, got %+v", m.Batch)
	}
}

func TestMatchAvailability_TwoOverlappingBatches(t *testing.T) {
	batches := []*StockEntry{
		stockBatch(t, "b1", "BK-7", "1000", "1099"),
		stockBatch(t, "b2", "BK-8", "1005", "1050"),
	}

	m := MatchAvailability(batches, nil, mustRange(t, "1010", "1020"), "")

	if m.Kind != MatchAmbiguous {
		t.Fatalf("kind = %s, want ambiguous", m.Kind)
	}
	if len(m.Candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(m.Candidates))
	}
}

func TestMatchAvailability_ConsumedRangeUnavailable(t *testing.T) {
	batches := []*StockEntry{stockBatch(t, "b1", "BK-7", "1000", "1099")}
	sales := []*SaleEntry{saleOf(t, "BK-7", "1010", "1020")}

	m := MatchAvailability(batches, sales, mustRange(t, "1010", "1020"), "")

	if m.Kind != MatchUnavailable {
		t.Fatalf("kind = %s, want unavailable", m.Kind)
	}
}

func TestMatchAvailability_PartialCoverageIsAmbiguous(t *testing.T) {
	// The batch intersects the request but has already sold its tail.
	batches := []*StockEntry{stockBatch(t, "b1", "BK-7", "1000", "1049")}
	sales := []*SaleEntry{saleOf(t, "BK-7", "1030", "1049")}

	m := MatchAvailability(batches, sales, mustRange(t, "1020", "1040"), "")

	if m.Kind != MatchAmbiguous {
		t.Fatalf("kind = %s, want ambiguous", m.Kind)
	}
	if len(m.Candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(m.Candidates))
	}
}

func TestMatchAvailability_ExplicitCodeResolvesAmbiguity(t *testing.T) {
	batches := []*StockEntry{
		stockBatch(t, "b1", "BK-7", "1000", "1099"),
		stockBatch(t, "b2", "BK-8", "1005", "1050"),
	}
	requested := mustRange(t, "1010", "1020")

	if m := MatchAvailability(batches, nil, requested, ""); m.Kind != MatchAmbiguous {
		t.Fatalf("unrestricted kind = %s, want ambiguous", m.Kind)
	}

	m := MatchAvailability(batches, nil, requested, "BK-8")
	if m.Kind != MatchSingle {
		t.Fatalf("restricted kind = %s, want single_match", m.Kind)
	}
	if m.Batch.ID != "b2" {
		t.Errorf("matched batch = %s, want b2", m.Batch.ID)
	}
}

func TestMatchAvailability_UnknownCodeUnavailable(t *testing.T) {
	batches := []*StockEntry{stockBatch(t, "b1", "BK-7", "1000", "1099")}

	m := MatchAvailability(batches, nil, mustRange(t, "1010", "1020"), "BK-404")

	if m.Kind != MatchUnavailable {
		t.Fatalf("kind = %s, want unavailable", m.Kind)
	}
}

func TestMatchAvailability_SharedCodeStaysAmbiguous(t *testing.T) {
	batches := []*StockEntry{
		stockBatch(t, "b1", "BK-7", "1000", "1099"),
		stockBatch(t, "b2", "BK-7", "1050", "1150"),
	}

	m := MatchAvailability(batches, nil, mustRange(t, "1060", "1070"), "BK-7")

	if m.Kind != MatchAmbiguous {
		t.Fatalf("kind = %s, want ambiguous", m.Kind)
	}
}

func TestMatchAvailability_FragmentedRemainderStillCovers(t *testing.T) {
	// Two sales carve the middle out of the batch; the request fits the
	// surviving head fragment.
	batches := []*StockEntry{stockBatch(t, "b1", "BK-7", "1000", "1099")}
	sales := []*SaleEntry{
		saleOf(t, "BK-7", "1030", "1040"),
		saleOf(t, "BK-7", "1060", "1070"),
	}

	m := MatchAvailability(batches, sales, mustRange(t, "1000", "1029"), "")
	if m.Kind != MatchSingle {
		t.Fatalf("kind = %s, want single_match", m.Kind)
	}

	// A request straddling a sold gap cannot be covered.
	m = MatchAvailability(batches, sales, mustRange(t, "1020", "1050"), "")
	if m.Kind != MatchAmbiguous {
		t.Fatalf("straddling kind = %s, want ambiguous", m.Kind)
	}
}

func TestMatchAvailability_DeletedSaleRestoresRange(t *testing.T) {
	batches := []*StockEntry{stockBatch(t, "b1", "BK-7", "1000", "1099")}
	sales := []*SaleEntry{saleOf(t, "BK-7", "1010", "1020")}

	if m := MatchAvailability(batches, sales, mustRange(t, "1010", "1020"), ""); m.Kind != MatchUnavailable {
		t.Fatalf("kind before delete = %s, want unavailable", m.Kind)
	}

	// Dropping the sale from history brings the range back.
	m := MatchAvailability(batches, nil, mustRange(t, "1010", "1020"), "")
	if m.Kind != MatchSingle {
		t.Fatalf("kind after delete = %s, want single_match", m.Kind)
	}
}

func TestMatchAvailability_SalesForOtherCodesIgnored(t *testing.T) {
	batches := []*StockEntry{stockBatch(t, "b1", "BK-7", "1000", "1099")}
	sales := []*SaleEntry{saleOf(t, "BK-8", "1010", "1020")}

	m := MatchAvailability(batches, sales, mustRange(t, "1010", "1020"), "")
	if m.Kind != MatchSingle {
		t.Fatalf("kind = %s, want single_match", m.Kind)
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name  string
		spans []span
		cut   span
		want  []span
	}{
		{"no overlap", []span{{10, 20}}, span{30, 40}, []span{{10, 20}}},
		{"cut middle splits", []span{{10, 20}}, span{14, 16}, []span{{10, 13}, {17, 20}}},
		{"cut head", []span{{10, 20}}, span{5, 12}, []span{{13, 20}}},
		{"cut tail", []span{{10, 20}}, span{18, 25}, []span{{10, 17}}},
		{"cut everything", []span{{10, 20}}, span{10, 20}, nil},
		{"cut across fragments", []span{{10, 14}, {18, 22}}, span{12, 20}, []span{{10, 11}, {21, 22}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subtract(tt.spans, tt.cut)

			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
