package contentgen

// Config controls pipeline behavior: token budgets, temperatures, and
// the concurrent fan-out bound.
type Config struct {
	// CurriculumMaxTokens is the token budget for one curriculum response.
	CurriculumMaxTokens int

	// CurriculumTemperature controls curriculum output randomness.
	CurriculumTemperature float64

	// QuizMaxTokens is the token budget for one quiz response.
	QuizMaxTokens int

	// QuizTemperature controls quiz output randomness. Quizzes use a
	// lower temperature than curricula: answer keys must be stable.
	QuizTemperature float64

	// MaxInFlight bounds concurrent upstream calls during batch
	// dispatch. Zero or negative means no bound.
	MaxInFlight int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		CurriculumMaxTokens:   2500,
		CurriculumTemperature: 0.7,
		QuizMaxTokens:         2000,
		QuizTemperature:       0.3,
		MaxInFlight:           8,
	}
}

// MilestoneQuestionCount returns how many questions a milestone-scope
// quiz asks for the given quiz type.
func MilestoneQuestionCount(t QuizType) int {
	switch t {
	case QuizCodingOnly:
		return 2
	default:
		return 6
	}
}

// TopicQuestionCount returns how many questions a topic-scope quiz asks
// for the given quiz type. Topic quizzes are shorter and more focused.
func TopicQuestionCount(t QuizType) int {
	switch t {
	case QuizMCQOnly:
		return 4
	case QuizCodingOnly:
		return 2
	default:
		return 3
	}
}
