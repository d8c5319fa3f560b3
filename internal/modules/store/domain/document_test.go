package domain_test

import (
	"encoding/json"
	"sort"
	"strconv"
	"testing"
	"time"

	"mindmate/internal/modules/store/domain"
)

func counter(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

func TestSeededDocumentHasTwelveStableQuotes(t *testing.T) {
	t.Parallel()
	doc := domain.NewSeededDocument(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if len(doc.Quotes) != 12 || domain.SeedQuoteCount() != 12 {
		t.Fatalf("expected 12 seed quotes, got %d", len(doc.Quotes))
	}
	first := doc.Quotes["quote_1"]
	if first.Author != "Стив Джобс" || first.Category != "Мотивация" {
		t.Fatalf("unexpected first quote: %+v", first)
	}
	if doc.Quotes["quote_12"].Author != "Оскар Уайльд" {
		t.Fatalf("unexpected last quote: %+v", doc.Quotes["quote_12"])
	}
	if first.CreatedAt != "2026-01-01T00:00:00.000Z" {
		t.Fatalf("unexpected timestamp layout %q", first.CreatedAt)
	}
}

func TestEncodeUsesExactCollectionNames(t *testing.T) {
	t.Parallel()
	raw, err := domain.Encode(domain.Document{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	top := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatalf("decode top level: %v", err)
	}
	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	want := []string{"audioCalls", "chatMessages", "chatSessions", "meditationSessions", "quoteViews", "quotes", "userStats", "users"}
	if len(keys) != len(want) {
		t.Fatalf("expected 8 collections, got %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("collection names mismatch: %v", keys)
		}
	}
}

func TestDecodeRejectsGarbageAndFillsMissingCollections(t *testing.T) {
	t.Parallel()
	if _, err := domain.Decode([]byte("{not json")); err == nil {
		t.Fatalf("expected decode failure")
	}
	doc, err := domain.Decode([]byte(`{"users":{"u1":{"id":"u1","name":"A","email":"a@x","createdAt":"","updatedAt":""}}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.QuoteViews == nil || doc.UserStats == nil {
		t.Fatalf("missing collections must be initialized")
	}
	if _, ok := doc.UserByEmail("a@x"); !ok {
		t.Fatalf("expected lookup by email")
	}
}

func TestRefreshStatsMatchesTableScan(t *testing.T) {
	t.Parallel()
	doc := domain.NewDocument()
	five, three := 5, 3
	doc.ChatSessions["c1"] = domain.ChatSessionRecord{ID: "c1", UserID: "u"}
	doc.ChatSessions["c2"] = domain.ChatSessionRecord{ID: "c2", UserID: "u"}
	doc.ChatSessions["c3"] = domain.ChatSessionRecord{ID: "c3", UserID: "other"}
	doc.AudioCalls["a1"] = domain.AudioCallRecord{ID: "a1", UserID: "u"}
	doc.MeditationSessions["m1"] = domain.MeditationSessionRecord{ID: "m1", UserID: "u", Duration: 10, Rating: &five}
	doc.MeditationSessions["m2"] = domain.MeditationSessionRecord{ID: "m2", UserID: "u", Duration: 7}
	doc.MeditationSessions["m3"] = domain.MeditationSessionRecord{ID: "m3", UserID: "u", Duration: 3, Rating: &three}
	doc.QuoteViews["v1"] = domain.QuoteViewRecord{ID: "v1", UserID: "u", QuoteID: "quote_1", Liked: true}
	doc.QuoteViews["v2"] = domain.QuoteViewRecord{ID: "v2", UserID: "u", QuoteID: "quote_1", Liked: true}

	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	stats := doc.RefreshStats("u", now, counter("stat_"))
	if stats.TotalChatSessions != 2 || stats.TotalAudioCalls != 1 || stats.TotalMeditationMinutes != 20 || stats.TotalQuotesViewed != 2 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.LastActivity != "2026-02-02T12:00:00.000Z" || stats.ID != "stat_1" {
		t.Fatalf("unexpected stamp/id: %+v", stats)
	}

	meditation := doc.MeditationSummaryFor("u")
	if meditation.TotalSessions != 3 || meditation.AvgRating != 4 {
		t.Fatalf("unexpected meditation summary: %+v", meditation)
	}
	quotes := doc.QuoteSummaryFor("u")
	if quotes.TotalViewed != 2 || quotes.TotalLiked != 2 {
		t.Fatalf("liked must count per view record: %+v", quotes)
	}

	again := doc.RefreshStats("u", now.Add(time.Minute), counter("other_"))
	if again.ID != "stat_1" || again.CreatedAt != stats.CreatedAt {
		t.Fatalf("refresh must keep the existing row identity: %+v", again)
	}
}

func TestParseTimeRoundTripAndPositions(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 5, 6, 7, 8, 9, 123_000_000, time.UTC)
	if got := domain.ParseTime(domain.FormatTime(at)); !got.Equal(at) {
		t.Fatalf("round trip mismatch: %s vs %s", got, at)
	}
	if domain.ParseOptionalTime("") != nil {
		t.Fatalf("empty optional time must be nil")
	}
	if domain.QuotePosition("quote_11") != 11 || domain.QuotePosition("custom") != -1 {
		t.Fatalf("unexpected quote positions")
	}
	if err := domain.Role("system").Validate(); err == nil {
		t.Fatalf("system role must be rejected")
	}
}
