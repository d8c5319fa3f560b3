package service

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"mindmate/internal/modules/quote/domain"
	storedomain "mindmate/internal/modules/store/domain"
	storein "mindmate/internal/modules/store/port/in"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
)

type QuoteService struct {
	clock clock.Clock
	idGen id.Generator
	docs  storein.Documents
}

func NewQuoteService(clock clock.Clock, idGen id.Generator, docs storein.Documents) *QuoteService {
	return &QuoteService{clock: clock, idGen: idGen, docs: docs}
}

func (s *QuoteService) statID() string { return s.idGen.New("user_stat") }

// All lists quotes oldest first. Seed quotes share one createdAt, so their
// seed position breaks the tie.
func (s *QuoteService) All(ctx context.Context) ([]domain.Quote, error) {
	var records []storedomain.QuoteRecord
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		for _, q := range doc.Quotes {
			records = append(records, q)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b storedomain.QuoteRecord) int {
		return cmp.Or(
			cmp.Compare(a.CreatedAt, b.CreatedAt),
			cmp.Compare(seedRank(a.ID), seedRank(b.ID)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	out := make([]domain.Quote, 0, len(records))
	for _, r := range records {
		out = append(out, domain.QuoteFromRecord(r))
	}
	return out, nil
}

func seedRank(quoteID string) int {
	if pos := storedomain.QuotePosition(quoteID); pos >= 0 {
		return pos
	}
	return math.MaxInt
}

// View always inserts a new view record; repeated views are kept.
func (s *QuoteService) View(ctx context.Context, userID, quoteID string, liked bool) (domain.View, error) {
	var out domain.View
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if err := requirePair(doc, userID, quoteID); err != nil {
			return err
		}
		now := s.clock.Now()
		record := storedomain.QuoteViewRecord{
			ID:       s.idGen.New("quote_view"),
			UserID:   userID,
			QuoteID:  quoteID,
			ViewedAt: storedomain.FormatTime(now),
			Liked:    liked,
		}
		doc.QuoteViews[record.ID] = record
		doc.RefreshStats(userID, now, s.statID)
		out = domain.ViewFromRecord(record)
		return nil
	})
	return out, err
}

// ToggleLike flips the most recent view of the pair and moves its viewedAt to
// now. Without a prior view it records a liked one.
func (s *QuoteService) ToggleLike(ctx context.Context, userID, quoteID string) (domain.View, error) {
	var out domain.View
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if err := requirePair(doc, userID, quoteID); err != nil {
			return err
		}
		now := s.clock.Now()
		record, found := latestView(*doc, userID, quoteID)
		if found {
			record.Liked = !record.Liked
		} else {
			record = storedomain.QuoteViewRecord{
				ID:      s.idGen.New("quote_view"),
				UserID:  userID,
				QuoteID: quoteID,
				Liked:   true,
			}
		}
		record.ViewedAt = storedomain.FormatTime(now)
		doc.QuoteViews[record.ID] = record
		doc.RefreshStats(userID, now, s.statID)
		out = domain.ViewFromRecord(record)
		return nil
	})
	return out, err
}

func requirePair(doc *storedomain.Document, userID, quoteID string) error {
	if _, ok := doc.Users[userID]; !ok {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	if _, ok := doc.Quotes[quoteID]; !ok {
		return fmt.Errorf("quote %s: %w", quoteID, apperrors.ErrNotFound)
	}
	return nil
}

func latestView(doc storedomain.Document, userID, quoteID string) (storedomain.QuoteViewRecord, bool) {
	var latest storedomain.QuoteViewRecord
	found := false
	for _, v := range doc.QuoteViews {
		if v.UserID != userID || v.QuoteID != quoteID {
			continue
		}
		if !found || newerView(v, latest) {
			latest, found = v, true
		}
	}
	return latest, found
}

func newerView(a, b storedomain.QuoteViewRecord) bool {
	return cmp.Or(cmp.Compare(a.ViewedAt, b.ViewedAt), cmp.Compare(a.ID, b.ID)) > 0
}

// UserViews returns the user's most recent views paired with their quotes.
// A view whose quote is gone is reported as an integrity fault.
func (s *QuoteService) UserViews(ctx context.Context, userID string, likedOnly bool, limit int) ([]domain.ViewedQuote, error) {
	var out []domain.ViewedQuote
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		var views []storedomain.QuoteViewRecord
		for _, v := range doc.QuoteViews {
			if v.UserID == userID && (!likedOnly || v.Liked) {
				views = append(views, v)
			}
		}
		slices.SortFunc(views, func(a, b storedomain.QuoteViewRecord) int {
			return cmp.Or(cmp.Compare(b.ViewedAt, a.ViewedAt), cmp.Compare(b.ID, a.ID))
		})
		if len(views) > limit {
			views = views[:limit]
		}
		out = make([]domain.ViewedQuote, 0, len(views))
		for _, v := range views {
			quote, ok := doc.Quotes[v.QuoteID]
			if !ok {
				return fmt.Errorf("view %s references missing quote %s: %w", v.ID, v.QuoteID, apperrors.ErrIntegrity)
			}
			out = append(out, domain.ViewedQuote{View: domain.ViewFromRecord(v), Quote: domain.QuoteFromRecord(quote)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *QuoteService) UserStats(ctx context.Context, userID string) (domain.Stats, error) {
	var out domain.Stats
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		summary := doc.QuoteSummaryFor(userID)
		out = domain.Stats{TotalViewed: summary.TotalViewed, TotalLiked: summary.TotalLiked}
		return nil
	})
	return out, err
}
