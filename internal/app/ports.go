package app

import (
	"context"

	"github.com/alexanderramin/cutcoach/internal/domain"
)

// AnalyzeUseCase deconstructs a reference video.
type AnalyzeUseCase interface {
	Analyze(ctx context.Context, media domain.Media, contextText string) (*domain.Analysis, error)
}

// ReviewUseCase grades a homework attempt against a context summary.
type ReviewUseCase interface {
	ReviewVideo(ctx context.Context, contextSummary string, media domain.Media) (*domain.Review, error)
	ReviewScript(ctx context.Context, contextSummary string, scriptText string) (*domain.Review, error)
}

// MediaLoader turns a chosen file into an inline payload.
type MediaLoader interface {
	Load(ref domain.FileRef) (domain.Media, error)
}
