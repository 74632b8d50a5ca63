// Package digest produces summaries and action items for an email body, trying
// the hosted model first when configured and falling back to the offline engine.
package digest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/wgomg/sumario/internal/config"
	"github.com/wgomg/sumario/internal/llm"
	"github.com/wgomg/sumario/internal/mailbody"
	"github.com/wgomg/sumario/internal/processor"
	"github.com/wgomg/sumario/internal/utils"
)

const (
	NoteOffline         = "Offline"
	NoteOfflineFallback = "Offline (AI failed)"

	NoSummaryPlaceholder = "No content to summarize."
	NoModelSummary       = "No summary."
)

var ErrInvalidMode = errors.New("invalid mode")

// Summarizer is the hosted-model path.
type Summarizer interface {
	Summarize(ctx context.Context, text, model, reqID string) (*llm.Digest, error)
	Model(model string) string
}

// Recorder receives outcome counts; implemented by the metrics layer.
type Recorder interface {
	ObserveDigest(mode config.Mode, fallback bool)
	ObserveCache(hit bool)
}

type Request struct {
	Text      string
	HTML      string
	Sentences int
	Mode      config.Mode
	Model     string
}

type Result struct {
	Summary string                 `json:"summary"`
	Items   []processor.ActionItem `json:"items"`
	Mode    config.Mode            `json:"mode"`
	Note    string                 `json:"note"`
}

type Service struct {
	engine   *processor.Engine
	model    Summarizer
	cfg      *config.Config
	logger   *utils.Logger
	cache    *utils.ResultCache[Result]
	recorder Recorder
}

type Option func(*Service)

func WithSummarizer(s Summarizer) Option {
	return func(svc *Service) { svc.model = s }
}

func WithCache(c *utils.ResultCache[Result]) Option {
	return func(svc *Service) { svc.cache = c }
}

func WithRecorder(r Recorder) Option {
	return func(svc *Service) { svc.recorder = r }
}

func NewService(engine *processor.Engine, cfg *config.Config, logger *utils.Logger, opts ...Option) *Service {
	svc := &Service{engine: engine, cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *Service) Engine() *processor.Engine {
	return s.engine
}

// Run produces the digest for req. Model failures never fail the call; they
// switch the result to the offline engine and say so in Note.
func (s *Service) Run(ctx context.Context, req Request, reqID string) (*Result, error) {
	text := req.Text
	if strings.TrimSpace(text) == "" && req.HTML != "" {
		text = mailbody.ExtractText(req.HTML)
	}

	sentences := req.Sentences
	if sentences <= 0 {
		sentences = s.cfg.Summary.Sentences
	}

	requested := req.Mode
	if strings.TrimSpace(string(requested)) == "" {
		requested = s.cfg.Summary.Mode
	}
	mode, err := config.ParseMode(string(requested))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}

	model := ""
	if mode == config.ModeAI && s.model != nil {
		model = s.model.Model(req.Model)
	}

	key := utils.CacheKey(string(mode), model, strconv.Itoa(sentences), text)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.observeCache(true)
			s.logger.Debug(&reqID, "Digest cache hit (hit rate %.2f)", s.cache.HitRate())
			cached.Items = slices.Clone(cached.Items)
			return &cached, nil
		}
		s.observeCache(false)
	}

	result := s.run(ctx, text, sentences, mode, model, reqID)

	if s.cache != nil && result.Note != NoteOfflineFallback {
		entry := *result
		entry.Items = slices.Clone(result.Items)
		s.cache.Add(key, entry)
	}
	return result, nil
}

func (s *Service) run(ctx context.Context, text string, sentences int, mode config.Mode, model, reqID string) *Result {
	if mode == config.ModeAI {
		if s.model == nil {
			s.logger.Info(&reqID, "AI mode requested without a configured model client, using offline engine")
			return s.offline(text, sentences, NoteOffline, false)
		}

		result, err := s.hosted(ctx, text, model, reqID)
		if err == nil {
			s.observeDigest(config.ModeAI, false)
			return result
		}
		s.logger.Error(&reqID, "AI request failed, falling back to offline summary: %v", err)
		return s.offline(text, sentences, NoteOfflineFallback, true)
	}

	return s.offline(text, sentences, NoteOffline, false)
}

func (s *Service) hosted(ctx context.Context, text, model, reqID string) (*Result, error) {
	input := text
	estimatedTokens := processor.EstimateTokens(text)
	shouldReduce := processor.ShouldReduceContent(estimatedTokens, s.cfg.Reduction.ThresholdTokens)

	s.logger.Info(&reqID, "Path decision: estimated_tokens=%d, threshold=%d, should_reduce=%v",
		estimatedTokens, s.cfg.Reduction.ThresholdTokens, shouldReduce)

	if shouldReduce {
		input = s.engine.Reduce(text, &s.cfg.Reduction)
		s.logger.Debug(&reqID, "Reduced content from %d to %d bytes", len(text), len(input))
	}

	digest, err := s.model.Summarize(ctx, input, model, reqID)
	if err != nil {
		return nil, err
	}

	items := digest.Items
	if items == nil {
		items = []processor.ActionItem{}
	}
	return &Result{
		Summary: digest.Summary,
		Items:   items,
		Mode:    config.ModeAI,
		Note:    fmt.Sprintf("AI model (%s)", model),
	}, nil
}

func (s *Service) offline(text string, sentences int, note string, fallback bool) *Result {
	analysis := s.engine.Analyze(text, sentences)
	s.observeDigest(config.ModeOffline, fallback)

	return &Result{
		Summary: analysis.Summary,
		Items:   analysis.Items,
		Mode:    config.ModeOffline,
		Note:    note,
	}
}

func (s *Service) observeDigest(mode config.Mode, fallback bool) {
	if s.recorder != nil {
		s.recorder.ObserveDigest(mode, fallback)
	}
}

func (s *Service) observeCache(hit bool) {
	if s.recorder != nil {
		s.recorder.ObserveCache(hit)
	}
}
