package coach

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/llm"
)

// AnalysisService deconstructs reference videos with a multimodal model.
type AnalysisService struct {
	client llm.LLMClient
}

// NewAnalysisService creates an AnalysisService backed by client.
func NewAnalysisService(client llm.LLMClient) *AnalysisService {
	return &AnalysisService{client: client}
}

func (s *AnalysisService) Analyze(ctx context.Context, media domain.Media, contextText string) (*domain.Analysis, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnalyze,
		SystemPrompt: systemInstruction,
		UserPrompt:   analyzePrompt(contextText),
		Media:        []llm.MediaPart{{MIMEType: media.MIMEType, Data: media.Data}},
		Schema:       analysisSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("llm analysis failed: %w", err)
	}

	wire, err := llm.ExtractJSON(resp.Text, validateAnalysis)
	if err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}
	return wire.toDomain(), nil
}

// ReviewService grades homework attempts with a multimodal model.
type ReviewService struct {
	client llm.LLMClient
}

// NewReviewService creates a ReviewService backed by client.
func NewReviewService(client llm.LLMClient) *ReviewService {
	return &ReviewService{client: client}
}

func (s *ReviewService) ReviewVideo(ctx context.Context, contextSummary string, media domain.Media) (*domain.Review, error) {
	return s.review(ctx, llm.GenerateRequest{
		Task:         llm.TaskReviewVideo,
		SystemPrompt: systemInstruction,
		UserPrompt:   reviewVideoPrompt(contextSummary),
		Media:        []llm.MediaPart{{MIMEType: media.MIMEType, Data: media.Data}},
		Schema:       reviewVideoSchema,
	})
}

func (s *ReviewService) ReviewScript(ctx context.Context, contextSummary string, scriptText string) (*domain.Review, error) {
	return s.review(ctx, llm.GenerateRequest{
		Task:         llm.TaskReviewScript,
		SystemPrompt: systemInstruction,
		UserPrompt:   reviewScriptPrompt(contextSummary, scriptText),
		Schema:       reviewScriptSchema,
	})
}

func (s *ReviewService) review(ctx context.Context, req llm.GenerateRequest) (*domain.Review, error) {
	resp, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm %s failed: %w", req.Task, err)
	}

	wire, err := llm.ExtractJSON(resp.Text, validateReview)
	if err != nil {
		return nil, fmt.Errorf("decoding review: %w", err)
	}
	return wire.toDomain(), nil
}
