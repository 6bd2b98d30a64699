// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Choice is the predicate function for choice builders.
type Choice func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Milestone is the predicate function for milestone builders.
type Milestone func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Quiz is the predicate function for quiz builders.
type Quiz func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)

// Roadmap is the predicate function for roadmap builders.
type Roadmap func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// UserProgress is the predicate function for userprogress builders.
type UserProgress func(*sql.Selector)
