// FILE: internal/service/synthesis_service.go
package service

import (
	"context"
	"errors"
	"time"

	"chem-synthesis-be/internal/constant"
	"chem-synthesis-be/internal/dto"
	"chem-synthesis-be/internal/mapper"
	"chem-synthesis-be/internal/pkg/logger"
	"chem-synthesis-be/pkg/events"
	"chem-synthesis-be/pkg/llm"
	"chem-synthesis-be/pkg/synthesis"
)

// ErrNoRecordsFound signals that the completion reply contained no parseable
// article sections. Reported as 404 by the controller.
var ErrNoRecordsFound = errors.New("no synthesis information found")

type ISynthesisService interface {
	Lookup(ctx context.Context, casNumber string) (*dto.SynthesisResponse, error)
}

type synthesisService struct {
	provider  llm.Provider
	extractor *synthesis.Extractor
	publisher events.Publisher
	logger    logger.ILogger
}

func NewSynthesisService(
	provider llm.Provider,
	extractor *synthesis.Extractor,
	publisher events.Publisher,
	logger logger.ILogger,
) ISynthesisService {
	return &synthesisService{
		provider:  provider,
		extractor: extractor,
		publisher: publisher,
		logger:    logger,
	}
}

// Lookup runs the full pipeline for one CAS number: build the prompt, make a
// single completion call, extract records. The caller validates the number
// format; no re-validation happens here. No retries on failure.
func (s *synthesisService) Lookup(ctx context.Context, casNumber string) (*dto.SynthesisResponse, error) {
	start := time.Now()

	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.SynthesisSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: synthesis.BuildPrompt(casNumber)},
	}

	replyText, err := s.provider.Chat(ctx, history, llm.WithSearchFilter("academic"))
	if err != nil {
		s.logger.Error("SYNTHESIS", "Completion call failed", map[string]interface{}{
			"cas_number": casNumber,
			"error":      err.Error(),
		})
		s.publisher.PublishLookupFailed(ctx, casNumber, err.Error())
		return nil, err
	}

	records := s.extractor.Extract(replyText)
	if len(records) == 0 {
		s.publisher.PublishLookupFailed(ctx, casNumber, "no records extracted")
		return nil, ErrNoRecordsFound
	}

	s.logger.Info("SYNTHESIS", "Lookup completed", map[string]interface{}{
		"cas_number":    casNumber,
		"total_methods": len(records),
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	s.publisher.PublishLookupCompleted(ctx, casNumber, len(records), time.Since(start))

	return &dto.SynthesisResponse{
		CasNumber:        casNumber,
		SynthesisMethods: mapper.ToSynthesisRecordDTOs(records),
		TotalMethods:     len(records),
	}, nil
}
