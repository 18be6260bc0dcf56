package domain

// MatchKind classifies the outcome of matching a proposed sale range
// against stock.
type MatchKind int

const (
	// MatchUnavailable means no batch has unsold tickets in the range.
	MatchUnavailable MatchKind = iota
	// MatchSingle means exactly one batch fully covers the range.
	MatchSingle
	// MatchAmbiguous means several batches intersect the range, or a
	// single batch covers it only partially; the caller must pick a
	// batch by ticket code.
	MatchAmbiguous
)

func (k MatchKind) String() string {
	switch k {
	case MatchSingle:
		return "single_match"
	case MatchAmbiguous:
		return "ambiguous"
	default:
		return "unavailable"
	}
}

// BatchCandidate identifies a stock batch a sale could draw from.
type BatchCandidate struct {
	EntryID    string
	TicketCode string
}

// Match is the tagged result of an availability check.
type Match struct {
	Kind       MatchKind
	Batch      *StockEntry
	Candidates []BatchCandidate
}

// span is a closed interval over ticket number values.
type span struct {
	start, end int64
}

// subtract removes cut from each span in spans, splitting where needed.
func subtract(spans []span, cut span) []span {
	out := spans[:0:0]
	for _, s := range spans {
		if cut.end < s.start || cut.start > s.end {
			out = append(out, s)
			continue
		}

		if cut.start > s.start {
			out = append(out, span{s.start, cut.start - 1})
		}

		if cut.end < s.end {
			out = append(out, span{cut.end + 1, s.end})
		}
	}

	return out
}

// remainingSpans computes the unsold sub-ranges of a batch by removing
// every prior sale attributed to it. Attribution is by ticket code: a
// sale recorded with code X consumes batches labelled X (an empty code
// matches unlabelled batches). Non-overlapping sales fall out naturally
// in the subtraction.
func remainingSpans(batch *StockEntry, sales []*SaleEntry) []span {
	spans := []span{{batch.Range.Start.Value, batch.Range.End.Value}}

	for _, sale := range sales {
		if sale.TicketCode != batch.TicketCode {
			continue
		}

		spans = subtract(spans, span{sale.Range.Start.Value, sale.Range.End.Value})
		if len(spans) == 0 {
			break
		}
	}

	return spans
}

func intersectsAny(spans []span, r TicketRange) bool {
	for _, s := range spans {
		if s.start <= r.End.Value && r.Start.Value <= s.end {
			return true
		}
	}

	return false
}

// covers reports whether the union of spans contains every ticket in r.
func covers(spans []span, r TicketRange) bool {
	rest := []span{{r.Start.Value, r.End.Value}}
	for _, s := range spans {
		rest = subtract(rest, s)
		if len(rest) == 0 {
			return true
		}
	}

	return len(rest) == 0
}

// MatchAvailability decides whether the requested range can be sold from
// the given batches, with sales the full prior sale history for the
// category. A non-empty ticketCode restricts matching to batches carrying
// that code, which is how callers resolve an ambiguous result.
//
// Availability is recomputed from history on every call; batches hold no
// running balance. Batch counts per category are small, so the scan over
// batches x sales is cheap.
func MatchAvailability(batches []*StockEntry, sales []*SaleEntry, requested TicketRange, ticketCode string) Match {
	if ticketCode != "" {
		restricted := make([]*StockEntry, 0, len(batches))
		for _, b := range batches {
			if b.TicketCode == ticketCode {
				restricted = append(restricted, b)
			}
		}

		batches = restricted
	}

	var (
		candidates []BatchCandidate
		matched    *StockEntry
		covered    bool
	)

	for _, batch := range batches {
		remaining := remainingSpans(batch, sales)
		if !intersectsAny(remaining, requested) {
			continue
		}

		candidates = append(candidates, BatchCandidate{EntryID: batch.ID, TicketCode: batch.TicketCode})
		matched = batch
		covered = covers(remaining, requested)
	}

	switch {
	case len(candidates) == 0:
		return Match{Kind: MatchUnavailable}
	case len(candidates) == 1 && covered:
		return Match{Kind: MatchSingle, Batch: matched, Candidates: candidates}
	default:
		return Match{Kind: MatchAmbiguous, Candidates: candidates}
	}
}
