package contentgen

// ContentKind selects which of the two supported content schemas a
// generation request targets.
type ContentKind string

const (
	KindCurriculum ContentKind = "curriculum"
	KindQuiz       ContentKind = "quiz"
)

// Provenance records how a piece of content was obtained.
type Provenance string

const (
	// ProvenanceClean means the model response parsed directly.
	ProvenanceClean Provenance = "clean"

	// ProvenanceRecovered means the response needed repair or partial
	// extraction before it conformed to the schema.
	ProvenanceRecovered Provenance = "recovered"

	// ProvenanceFallback means the structure was synthesized offline;
	// it contains no model content.
	ProvenanceFallback Provenance = "fallback"
)

// Curriculum is an ordered learning outline for a single subject.
type Curriculum struct {
	Subject    string
	SkillLevel string
	Milestones []Milestone
	Provenance Provenance
}

// Milestone is one stage of a curriculum with its ordered topics.
type Milestone struct {
	Name              string
	Description       string
	EstimatedDuration string
	Topics            []string
}

// QuestionSet is an ordered set of quiz questions for a single subject.
type QuestionSet struct {
	Subject    string
	Questions  []Question
	Provenance Provenance
}

// QuestionKind describes how a question is answered.
type QuestionKind string

const (
	QuestionMCQ         QuestionKind = "mcq"
	QuestionCoding      QuestionKind = "coding"
	QuestionShortAnswer QuestionKind = "short_answer"
)

// Question is a single quiz question. Choices and CorrectChoice are
// populated for MCQ questions; AnswerKey for coding and short-answer.
type Question struct {
	Kind          QuestionKind
	Prompt        string
	Choices       []string
	CorrectChoice int
	AnswerKey     string
}

// QuizType constrains the mix of question kinds in a generated quiz.
type QuizType string

const (
	QuizMCQOnly    QuizType = "mcq_only"
	QuizCodingOnly QuizType = "coding_only"
	QuizMixed      QuizType = "mixed"
)

// CurriculumInput describes one curriculum to generate.
type CurriculumInput struct {
	// Subject is what the user wants to learn, e.g. "Go" or "SQL".
	Subject string

	// SkillLevel is the declared starting level, e.g. "basic".
	SkillLevel string

	// DurationHint is an optional target timeline, e.g. "4 weeks".
	// Empty lets the model suggest durations.
	DurationHint string

	// Domain is an optional fallback template tag, e.g. "programming".
	Domain string
}

// QuizInput describes one question set to generate.
type QuizInput struct {
	// Subject is the topic or milestone the quiz covers.
	Subject string

	// Context is the source material handed to the model: topic names,
	// descriptions, any stored explanations.
	Context string

	// SkillLevel is the learner's declared level.
	SkillLevel string

	// Type constrains the question mix.
	Type QuizType

	// Questions is how many questions to request. Callers pick the
	// count for their scope; zero or negative is clamped to one.
	Questions int

	// Domain is an optional fallback template tag.
	Domain string
}
