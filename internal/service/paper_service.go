package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/paperforge/paperforge-backend/internal/config"
	"github.com/paperforge/paperforge-backend/internal/model"
	"github.com/paperforge/paperforge-backend/internal/pdf"
)

// PaperService turns validated papers into finished documents. Each call
// owns an independent sink and cursor, so concurrent requests need no
// coordination; a semaphore bounds how many documents are buffered in
// memory at once.
type PaperService struct {
	cfg         *config.Config
	log         zerolog.Logger
	renderSlots chan struct{}
}

// NewPaperService creates a PaperService with the configured render bound.
func NewPaperService(cfg *config.Config, log zerolog.Logger) *PaperService {
	slots := cfg.MaxConcurrentRenders
	if slots < 1 {
		slots = 1
	}
	return &PaperService{
		cfg:         cfg,
		log:         log.With().Str("component", "paper_service").Logger(),
		renderSlots: make(chan struct{}, slots),
	}
}

// Generate renders the paper into a complete document byte stream.
// It either returns the whole document or an error; never partial output.
func (s *PaperService) Generate(ctx context.Context, paper model.Paper) ([]byte, error) {
	select {
	case s.renderSlots <- struct{}{}:
		defer func() { <-s.renderSlots }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	start := time.Now()
	sink := pdf.NewDocumentSink(s.cfg)
	asm := pdf.NewAssembler(sink, pdf.GeometryFromConfig(s.cfg), pdf.StylesFromConfig(s.cfg), s.cfg.AssetDir, s.log)

	out, err := asm.Generate(paper)
	if err != nil {
		s.log.Error().Err(err).Int("questions", len(paper.Questions)).Msg("Paper generation failed")
		return nil, fmt.Errorf("generate paper: %w", err)
	}

	s.log.Info().
		Int("questions", len(paper.Questions)).
		Int("pages", sink.PageCount()).
		Int("bytes", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("Paper generated")
	return out, nil
}
