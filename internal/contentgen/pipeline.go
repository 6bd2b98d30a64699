package contentgen

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rahulm/learnpath/internal/llm"
)

// Pipeline is the facade over generation: prompt construction, the
// provider call, staged recovery, and fallback synthesis. Its Generate
// methods are total. Whatever the provider does, the caller gets valid
// content back; provenance records how it was obtained.
type Pipeline struct {
	provider  llm.Provider
	cfg       Config
	log       *zap.SugaredLogger
	curricula *Cache[*Curriculum]
	quizzes   *Cache[*QuestionSet]
	fallback  *FallbackLibrary
}

// New assembles a pipeline. Nil caches and fallback library are
// replaced with fresh defaults so callers only inject what they want to
// share or customize.
func New(provider llm.Provider, cfg Config, log *zap.SugaredLogger, curricula *Cache[*Curriculum], quizzes *Cache[*QuestionSet], fallback *FallbackLibrary) *Pipeline {
	if curricula == nil {
		curricula = NewCache[*Curriculum]()
	}
	if quizzes == nil {
		quizzes = NewCache[*QuestionSet]()
	}
	if fallback == nil {
		fallback = NewFallbackLibrary()
	}
	return &Pipeline{
		provider:  provider,
		cfg:       cfg,
		log:       log,
		curricula: curricula,
		quizzes:   quizzes,
		fallback:  fallback,
	}
}

// GenerateCurriculum returns a curriculum for the input, from cache
// when possible. It never fails.
func (p *Pipeline) GenerateCurriculum(ctx context.Context, in CurriculumInput) *Curriculum {
	key := Key{Subject: in.Subject, SkillLevel: in.SkillLevel, Kind: KindCurriculum}
	return p.curricula.GetOrCompute(key, func() (*Curriculum, bool) {
		c := p.generateCurriculum(ctx, in)
		// A result produced under a dead context is almost certainly
		// the fallback. Return it to this caller without pinning it
		// for everyone else.
		return c, ctx.Err() == nil
	})
}

// GenerateCurricula generates one curriculum per input with bounded
// concurrency, preserving input order in the result.
func (p *Pipeline) GenerateCurricula(ctx context.Context, ins []CurriculumInput) []*Curriculum {
	return dispatch(ctx, p.cfg.MaxInFlight, ins, p.GenerateCurriculum)
}

// GenerateQuiz returns a question set for the input, from cache when
// possible. It never fails. A quiz's identity includes its type, so an
// MCQ quiz and a coding quiz over the same subject are cached apart.
func (p *Pipeline) GenerateQuiz(ctx context.Context, in QuizInput) *QuestionSet {
	key := Key{Subject: in.Subject + "/" + string(in.Type), SkillLevel: in.SkillLevel, Kind: KindQuiz}
	return p.quizzes.GetOrCompute(key, func() (*QuestionSet, bool) {
		qs := p.generateQuiz(ctx, in)
		return qs, ctx.Err() == nil
	})
}

func (p *Pipeline) generateCurriculum(ctx context.Context, in CurriculumInput) *Curriculum {
	ctx = llm.WithPurpose(ctx, "curriculum")

	raw := p.callProvider(ctx, llm.Request{
		System:      curriculumSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildCurriculumPrompt(in)}},
		Schema:      CurriculumSchema,
		MaxTokens:   p.cfg.CurriculumMaxTokens,
		Temperature: p.cfg.CurriculumTemperature,
	}, "subject", in.Subject)

	if raw != "" {
		if c, prov, ok := recoverCurriculum(raw); ok {
			c.Subject = in.Subject
			c.SkillLevel = in.SkillLevel
			if prov != ProvenanceClean {
				p.log.Infow("curriculum recovered from malformed response",
					"subject", in.Subject, "provenance", prov)
			}
			return c
		}
		p.log.Warnw("curriculum response unrecoverable, synthesizing fallback",
			"subject", in.Subject)
	}
	return p.fallback.SynthesizeCurriculum(in)
}

func (p *Pipeline) generateQuiz(ctx context.Context, in QuizInput) *QuestionSet {
	ctx = llm.WithPurpose(ctx, "quiz")

	count := in.Questions
	if count < 1 {
		count = 1
	}

	raw := p.callProvider(ctx, llm.Request{
		System:      quizSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuizPrompt(in, count)}},
		Schema:      QuizSchema,
		MaxTokens:   p.cfg.QuizMaxTokens,
		Temperature: p.cfg.QuizTemperature,
	}, "subject", in.Subject)

	if raw != "" {
		if qs, prov, ok := recoverQuiz(raw); ok {
			qs.Subject = in.Subject
			if prov != ProvenanceClean {
				p.log.Infow("quiz recovered from malformed response",
					"subject", in.Subject, "provenance", prov)
			}
			return qs
		}
		p.log.Warnw("quiz response unrecoverable, synthesizing fallback",
			"subject", in.Subject)
	}
	return p.fallback.SynthesizeQuiz(in)
}

// callProvider issues the request and returns the raw response body, or
// the partial body attached to a malformed-response error. An empty
// string means there is nothing for recovery to work with.
func (p *Pipeline) callProvider(ctx context.Context, req llm.Request, kv ...any) string {
	resp, err := p.provider.Generate(ctx, req)
	if err == nil {
		return string(resp.Content)
	}

	fields := append([]any{"error", err}, kv...)
	p.log.Warnw("generation request failed", fields...)

	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return string(invalid.Content)
	}
	return ""
}
