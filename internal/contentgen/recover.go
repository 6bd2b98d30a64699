package contentgen

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rahulm/learnpath/internal/llm"
)

// The recovery engine treats the model's output as untrusted text and
// runs it through increasingly lenient strategies, stopping at the first
// one that yields a structure passing invariant validation. Each stage
// is a pure function from text to an optional structure, so stages are
// testable in isolation and composition is a simple first-success scan.

type curriculumStage struct {
	fn   func(string) (*Curriculum, bool)
	prov Provenance
}

type quizStage struct {
	fn   func(string) (*QuestionSet, bool)
	prov Provenance
}

var curriculumStages = []curriculumStage{
	{parseCurriculumStrict, ProvenanceClean},
	{parseCurriculumSanitized, ProvenanceRecovered},
	{extractCurriculumFields, ProvenanceRecovered},
	{reconstructCurriculumLines, ProvenanceRecovered},
}

var quizStages = []quizStage{
	{parseQuizStrict, ProvenanceClean},
	{parseQuizSanitized, ProvenanceRecovered},
	{extractQuizFields, ProvenanceRecovered},
	{reconstructQuizLines, ProvenanceRecovered},
}

// recoverCurriculum runs the staged recovery over a raw response body.
// ok is false when every stage failed and the caller must fall back.
func recoverCurriculum(raw string) (*Curriculum, Provenance, bool) {
	for _, s := range curriculumStages {
		if c, ok := s.fn(raw); ok {
			c.Provenance = s.prov
			return c, s.prov, true
		}
	}
	return nil, "", false
}

// recoverQuiz runs the staged recovery over a raw response body.
func recoverQuiz(raw string) (*QuestionSet, Provenance, bool) {
	for _, s := range quizStages {
		if qs, ok := s.fn(raw); ok {
			qs.Provenance = s.prov
			return qs, s.prov, true
		}
	}
	return nil, "", false
}

// --- wire formats -----------------------------------------------------

type curriculumWire struct {
	Milestones []milestoneWire `json:"milestones"`
}

type milestoneWire struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	EstimatedDuration string   `json:"estimated_duration"`
	Topics            []string `json:"topics"`
}

func (w curriculumWire) toCurriculum() *Curriculum {
	c := &Curriculum{Milestones: make([]Milestone, 0, len(w.Milestones))}
	for _, m := range w.Milestones {
		topics := make([]string, 0, len(m.Topics))
		for _, t := range m.Topics {
			if s := strings.TrimSpace(t); s != "" {
				topics = append(topics, s)
			}
		}
		c.Milestones = append(c.Milestones, Milestone{
			Name:              strings.TrimSpace(m.Name),
			Description:       strings.TrimSpace(m.Description),
			EstimatedDuration: strings.TrimSpace(m.EstimatedDuration),
			Topics:            topics,
		})
	}
	return c
}

type quizWire struct {
	Questions []questionWire `json:"questions"`
}

type questionWire struct {
	Kind          string   `json:"kind"`
	Prompt        string   `json:"prompt"`
	Choices       []string `json:"choices"`
	CorrectChoice int      `json:"correct_choice"`
	AnswerKey     string   `json:"answer_key"`
}

func (w quizWire) toQuestionSet() *QuestionSet {
	qs := &QuestionSet{Questions: make([]Question, 0, len(w.Questions))}
	for _, q := range w.Questions {
		qs.Questions = append(qs.Questions, Question{
			Kind:          QuestionKind(q.Kind),
			Prompt:        strings.TrimSpace(q.Prompt),
			Choices:       q.Choices,
			CorrectChoice: q.CorrectChoice,
			AnswerKey:     strings.TrimSpace(q.AnswerKey),
		})
	}
	return qs
}

// --- stage 1: strict parse --------------------------------------------

func parseCurriculumStrict(text string) (*Curriculum, bool) {
	raw := json.RawMessage(stripCodeFence(text))
	if err := llm.ValidateAgainst(CurriculumSchema, raw); err != nil {
		return nil, false
	}
	var wire curriculumWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, false
	}
	c := wire.toCurriculum()
	if validateCurriculum(c) != nil {
		return nil, false
	}
	return c, true
}

func parseQuizStrict(text string) (*QuestionSet, bool) {
	raw := json.RawMessage(stripCodeFence(text))
	if err := llm.ValidateAgainst(QuizSchema, raw); err != nil {
		return nil, false
	}
	var wire quizWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, false
	}
	qs := wire.toQuestionSet()
	if validateQuestionSet(qs) != nil {
		return nil, false
	}
	return qs, true
}

// --- stage 2: sanitize then strict parse --------------------------------

func parseCurriculumSanitized(text string) (*Curriculum, bool) {
	return parseCurriculumStrict(sanitizeText(stripCodeFence(text)))
}

func parseQuizSanitized(text string) (*QuestionSet, bool) {
	return parseQuizStrict(sanitizeText(stripCodeFence(text)))
}

// --- stage 3: field-level extraction ------------------------------------

var (
	nameRe     = regexp.MustCompile(`"name"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	descRe     = regexp.MustCompile(`"description"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	durationRe = regexp.MustCompile(`"estimated_duration"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	topicsRe   = regexp.MustCompile(`(?s)"topics"\s*:\s*\[(.*?)\]`)

	promptRe  = regexp.MustCompile(`"prompt"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	choicesRe = regexp.MustCompile(`(?s)"choices"\s*:\s*\[(.*?)\]`)
	correctRe = regexp.MustCompile(`"correct_choice"\s*:\s*(\d+)`)
	answerRe  = regexp.MustCompile(`"answer_key"\s*:\s*"((?:[^"\\]|\\.)*)"`)
)

// extractCurriculumFields pulls milestone names and topic arrays out of
// a body that is recognizably curriculum-shaped but not parseable JSON.
// Each topics array anchors a milestone; its name, description and
// duration are taken from the window between it and the previous anchor.
func extractCurriculumFields(text string) (*Curriculum, bool) {
	text = stripCodeFence(text)

	topicLocs := topicsRe.FindAllStringSubmatchIndex(text, -1)
	if len(topicLocs) == 0 {
		return nil, false
	}

	c := &Curriculum{}
	windowStart := 0
	for _, loc := range topicLocs {
		window := text[windowStart:loc[0]]
		windowStart = loc[1]

		topics := splitQuotedList(text[loc[2]:loc[3]])
		if len(topics) == 0 {
			continue
		}

		m := Milestone{Topics: topics}
		if nm := nameRe.FindStringSubmatch(window); nm != nil {
			m.Name = unescapeFragment(nm[1])
		}
		if m.Name == "" {
			m.Name = "Learning Plan"
		}
		if dm := descRe.FindStringSubmatch(window); dm != nil {
			m.Description = unescapeFragment(dm[1])
		}
		if em := durationRe.FindStringSubmatch(window); em != nil {
			m.EstimatedDuration = unescapeFragment(em[1])
		}
		c.Milestones = append(c.Milestones, m)
	}

	if validateCurriculum(c) != nil {
		return nil, false
	}
	return c, true
}

// extractQuizFields pulls whatever question fields survive in a
// malformed body. A prompt anchors a question; the window up to the
// next prompt decides its kind: enough choices makes an MCQ, an answer
// key makes a short-answer question, anything else is dropped.
func extractQuizFields(text string) (*QuestionSet, bool) {
	text = stripCodeFence(text)

	promptLocs := promptRe.FindAllStringSubmatchIndex(text, -1)
	if len(promptLocs) == 0 {
		return nil, false
	}

	qs := &QuestionSet{}
	for i, loc := range promptLocs {
		prompt := unescapeFragment(text[loc[2]:loc[3]])
		if strings.TrimSpace(prompt) == "" {
			continue
		}

		windowEnd := len(text)
		if i+1 < len(promptLocs) {
			windowEnd = promptLocs[i+1][0]
		}
		window := text[loc[1]:windowEnd]

		if cm := choicesRe.FindStringSubmatch(window); cm != nil {
			choices := splitQuotedList(cm[1])
			if len(choices) >= 2 {
				correct := 0
				if cc := correctRe.FindStringSubmatch(window); cc != nil {
					if idx := atoiClamped(cc[1], len(choices)); idx >= 0 {
						correct = idx
					}
				}
				qs.Questions = append(qs.Questions, Question{
					Kind:          QuestionMCQ,
					Prompt:        prompt,
					Choices:       choices,
					CorrectChoice: correct,
				})
				continue
			}
		}

		if am := answerRe.FindStringSubmatch(window); am != nil {
			if key := unescapeFragment(am[1]); strings.TrimSpace(key) != "" {
				qs.Questions = append(qs.Questions, Question{
					Kind:      QuestionShortAnswer,
					Prompt:    prompt,
					AnswerKey: key,
				})
			}
		}
	}

	if validateQuestionSet(qs) != nil {
		return nil, false
	}
	return qs, true
}

// atoiClamped parses a non-negative integer and returns -1 when it is
// out of [0, limit).
func atoiClamped(s string, limit int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
		if n >= limit {
			return -1
		}
	}
	return n
}

// --- stage 4: line reconstruction ---------------------------------------

var keyMarkerRe = regexp.MustCompile(`"\w+"\s*:`)

// proseLines strips structural markers from the raw text and returns the
// remaining human-readable lines.
func proseLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.ContainsAny(line, "{}[]") || strings.Contains(line, "```") || keyMarkerRe.MatchString(line) {
			continue
		}
		clean := strings.TrimSpace(line)
		clean = strings.Trim(clean, `"`)
		clean = strings.TrimSuffix(clean, ",")
		clean = strings.TrimSpace(clean)
		if clean == "" || strings.HasPrefix(clean, `\`) {
			continue
		}
		out = append(out, clean)
	}
	return out
}

// reconstructCurriculumLines is the last resort before fallback: the
// first prose line names a single milestone and the rest become its
// topics.
func reconstructCurriculumLines(text string) (*Curriculum, bool) {
	lines := proseLines(text)
	if len(lines) < 2 {
		return nil, false
	}

	topics := lines[1:]
	if len(topics) > 10 {
		topics = topics[:10]
	}
	c := &Curriculum{
		Milestones: []Milestone{{
			Name:   lines[0],
			Topics: topics,
		}},
	}
	if validateCurriculum(c) != nil {
		return nil, false
	}
	return c, true
}

// reconstructQuizLines treats prose lines ending in a question mark as
// short-answer questions.
func reconstructQuizLines(text string) (*QuestionSet, bool) {
	qs := &QuestionSet{}
	for _, line := range proseLines(text) {
		if !strings.HasSuffix(line, "?") {
			continue
		}
		qs.Questions = append(qs.Questions, Question{
			Kind:      QuestionShortAnswer,
			Prompt:    line,
			AnswerKey: "Answer based on the source material for this unit.",
		})
		if len(qs.Questions) == 6 {
			break
		}
	}
	if validateQuestionSet(qs) != nil {
		return nil, false
	}
	return qs, true
}
