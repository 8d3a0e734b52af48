package usecase

import (
	"context"
	"errors"
	"testing"

	"StockSight/internal/domain/models"
	"StockSight/pkg/logger"
	"StockSight/pkg/metrics"
)

type fakeExtractor struct {
	texts map[string]string
}

func (f *fakeExtractor) Extract(_ context.Context, url string) (string, error) {
	text, ok := f.texts[url]
	if !ok {
		return "", errors.New("paywalled")
	}
	return text, nil
}

type fakeSummarizer struct {
	enabled bool
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	return "summary of: " + text, nil
}

func (f *fakeSummarizer) Enabled() bool { return f.enabled }

func TestHeadlinesWithSummaries(t *testing.T) {
	source := &fakeNews{items: []models.NewsItem{
		{Title: "one", Link: "https://example.com/1"},
		{Title: "two", Link: "https://example.com/2"},
	}}
	extractor := &fakeExtractor{texts: map[string]string{
		"https://example.com/1": "body one",
		"https://example.com/2": "body two",
	}}

	uc := NewNewsUseCase(source, extractor, &fakeSummarizer{enabled: true}, 2, logger.Nop(), metrics.Nop{})

	items, err := uc.Headlines(context.Background(), NewsParams{Symbol: "AAPL", Limit: 5, Summarize: true})
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].Summary != "summary of: body one" {
		t.Errorf("Summary = %q", items[0].Summary)
	}
	if items[1].Summary != "summary of: body two" {
		t.Errorf("Summary = %q", items[1].Summary)
	}
}

func TestHeadlinesExtractionFailureTolerated(t *testing.T) {
	source := &fakeNews{items: []models.NewsItem{
		{Title: "ok", Link: "https://example.com/ok"},
		{Title: "broken", Link: "https://example.com/broken"},
	}}
	extractor := &fakeExtractor{texts: map[string]string{
		"https://example.com/ok": "readable body",
	}}

	uc := NewNewsUseCase(source, extractor, &fakeSummarizer{enabled: true}, 2, logger.Nop(), metrics.Nop{})

	items, err := uc.Headlines(context.Background(), NewsParams{Symbol: "AAPL", Summarize: true})
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if items[0].Summary == "" {
		t.Error("first item should be summarized")
	}
	if items[1].Summary != "" {
		t.Errorf("broken item Summary = %q, want empty", items[1].Summary)
	}
}

func TestHeadlinesWithoutSummarizer(t *testing.T) {
	source := &fakeNews{items: []models.NewsItem{{Title: "plain", Link: "https://example.com/p"}}}

	uc := NewNewsUseCase(source, nil, nil, 2, logger.Nop(), metrics.Nop{})

	items, err := uc.Headlines(context.Background(), NewsParams{Symbol: "AAPL", Summarize: true})
	if err != nil {
		t.Fatalf("Headlines: %v", err)
	}
	if items[0].Summary != "" {
		t.Errorf("Summary = %q, want none", items[0].Summary)
	}
}

func TestHeadlinesEmptySymbol(t *testing.T) {
	uc := NewNewsUseCase(&fakeNews{}, nil, nil, 2, logger.Nop(), metrics.Nop{})
	if _, err := uc.Headlines(context.Background(), NewsParams{}); err == nil {
		t.Fatal("expected error for empty symbol")
	}
}

func TestHeadlinesSourceError(t *testing.T) {
	uc := NewNewsUseCase(&fakeNews{err: errors.New("feed down")}, nil, nil, 2, logger.Nop(), metrics.Nop{})
	if _, err := uc.Headlines(context.Background(), NewsParams{Symbol: "AAPL"}); err == nil {
		t.Fatal("expected error")
	}
}
