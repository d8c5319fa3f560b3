package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mindmate/internal/modules/store/domain"
	storein "mindmate/internal/modules/store/port/in"
	storeout "mindmate/internal/modules/store/port/out"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/logger"
	"mindmate/internal/platform/tx"
)

// DocumentService loads the whole document from the backend on every call and
// writes it back before a mutating call returns. Cycles run inside the tx
// manager; with tx.Serial no two cycles of this process interleave. Separate
// processes sharing a slot still overwrite each other (last write wins).
type DocumentService struct {
	backend storeout.Backend
	tx      tx.Manager
	clock   clock.Clock
	log     *logger.Logger
}

var _ storein.Documents = (*DocumentService)(nil)

func NewDocumentService(backend storeout.Backend, txm tx.Manager, clk clock.Clock, log *logger.Logger) *DocumentService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &DocumentService{backend: backend, tx: txm, clock: clk, log: log.With("component", "document_store", "backend", backend.Name())}
}

func (s *DocumentService) Read(ctx context.Context, fn func(domain.Document) error) error {
	return s.tx.Within(ctx, func(ctx context.Context) error {
		doc, err := s.load(ctx)
		if err != nil {
			return err
		}
		return fn(doc)
	})
}

// Update saves only when fn succeeds, so a failed operation leaves the stored
// document byte-for-byte unchanged.
func (s *DocumentService) Update(ctx context.Context, fn func(*domain.Document) error) error {
	return s.tx.Within(ctx, func(ctx context.Context) error {
		doc, err := s.load(ctx)
		if err != nil {
			return err
		}
		if err := fn(&doc); err != nil {
			return err
		}
		return s.save(ctx, doc)
	})
}

func (s *DocumentService) Export(ctx context.Context) ([]byte, error) {
	var out []byte
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		doc, err := s.load(ctx)
		if err != nil {
			return err
		}
		raw, err := domain.Encode(doc)
		if err != nil {
			return err
		}
		buf := bytes.Buffer{}
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("indent document: %w", err)
		}
		out = buf.Bytes()
		return nil
	})
	return out, err
}

func (s *DocumentService) load(ctx context.Context) (domain.Document, error) {
	raw, err := s.backend.Load(ctx)
	if errors.Is(err, apperrors.ErrNotFound) || (err == nil && len(bytes.TrimSpace(raw)) == 0) {
		s.log.Info("initializing empty store with seed data")
		return s.reseed(ctx)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("load document: %w", err)
	}
	doc, err := domain.Decode(raw)
	if err != nil {
		s.log.Error("stored document is corrupt, resetting store", "error", err, "bytes", len(raw))
		return s.reseed(ctx)
	}
	return doc, nil
}

func (s *DocumentService) reseed(ctx context.Context) (domain.Document, error) {
	doc := domain.NewSeededDocument(s.clock.Now())
	if err := s.save(ctx, doc); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

func (s *DocumentService) save(ctx context.Context, doc domain.Document) error {
	raw, err := domain.Encode(doc)
	if err != nil {
		return err
	}
	if err := s.backend.Store(ctx, raw); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
