package store

import (
	"context"
	"fmt"

	"github.com/rahulm/learnpath/ent"
	"github.com/rahulm/learnpath/ent/choice"
	"github.com/rahulm/learnpath/ent/question"
	"github.com/rahulm/learnpath/ent/quiz"
	"github.com/rahulm/learnpath/ent/quizattempt"
)

// Quiz scope values.
const (
	ScopeMilestone = "milestone"
	ScopeTopic     = "topic"
)

// Attempt status values.
const (
	AttemptStarted   = "started"
	AttemptCompleted = "completed"
)

// quizRepo implements QuizRepo backed by ent.
type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) FindByScope(ctx context.Context, scope string, scopeID int, quizType string) (*QuizDetail, error) {
	row, err := r.client.Quiz.Query().
		Where(quiz.ScopeEQ(scope), quiz.ScopeID(scopeID), quiz.QuizTypeEQ(quizType)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find quiz: %w", err)
	}
	return r.loadDetail(ctx, row)
}

func (r *quizRepo) GetQuiz(ctx context.Context, id int) (*QuizDetail, error) {
	row, err := r.client.Quiz.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load quiz %d: %w", id, err)
	}
	return r.loadDetail(ctx, row)
}

func (r *quizRepo) GetAttempt(ctx context.Context, id int) (*Attempt, error) {
	row, err := r.client.QuizAttempt.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load attempt %d: %w", id, err)
	}
	return attemptFromRow(row), nil
}

func (r *quizRepo) CreateQuiz(ctx context.Context, spec QuizSpec) (*QuizDetail, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	row, err := createQuizTx(ctx, tx, spec)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit quiz: %w", err)
	}
	return r.loadDetail(ctx, row)
}

func createQuizTx(ctx context.Context, tx *ent.Tx, spec QuizSpec) (*ent.Quiz, error) {
	row, err := tx.Quiz.Create().
		SetScope(spec.Scope).
		SetScopeID(spec.ScopeID).
		SetQuizType(spec.QuizType).
		SetProvenance(spec.Provenance).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	for i, qs := range spec.Questions {
		q, err := tx.Question.Create().
			SetQuizID(row.ID).
			SetPosition(i + 1).
			SetKind(qs.Kind).
			SetPrompt(qs.Prompt).
			SetCorrectChoice(qs.CorrectChoice).
			SetAnswerKey(qs.AnswerKey).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create question %d: %w", i+1, err)
		}

		for j, text := range qs.Choices {
			_, err := tx.Choice.Create().
				SetQuestionID(q.ID).
				SetPosition(j).
				SetText(text).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("create choice %d of question %d: %w", j, i+1, err)
			}
		}
	}
	return row, nil
}

func (r *quizRepo) NextAttempt(ctx context.Context, quizID int, userID string) (*Attempt, error) {
	if _, err := r.client.Quiz.Get(ctx, quizID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load quiz %d: %w", quizID, err)
	}

	prior, err := r.client.QuizAttempt.Query().
		Where(quizattempt.QuizID(quizID), quizattempt.UserID(userID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	row, err := r.client.QuizAttempt.Create().
		SetQuizID(quizID).
		SetUserID(userID).
		SetAttemptIndex(prior + 1).
		SetStatus(AttemptStarted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	return attemptFromRow(row), nil
}

func (r *quizRepo) CompleteAttempt(ctx context.Context, attemptID int, score float64) (*Attempt, error) {
	row, err := r.client.QuizAttempt.UpdateOneID(attemptID).
		SetStatus(AttemptCompleted).
		SetScore(score).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("complete attempt %d: %w", attemptID, err)
	}
	return attemptFromRow(row), nil
}

func (r *quizRepo) GetQuestion(ctx context.Context, id int) (*QuizQuestion, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load question %d: %w", id, err)
	}
	q, err := r.questionFromRow(ctx, row)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quizRepo) loadDetail(ctx context.Context, row *ent.Quiz) (*QuizDetail, error) {
	questions, err := r.client.Question.Query().
		Where(question.QuizID(row.ID)).
		Order(ent.Asc(question.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	detail := &QuizDetail{
		ID:         row.ID,
		Scope:      row.Scope,
		ScopeID:    row.ScopeID,
		QuizType:   row.QuizType,
		Provenance: row.Provenance,
	}
	for _, q := range questions {
		qq, err := r.questionFromRow(ctx, q)
		if err != nil {
			return nil, err
		}
		detail.Questions = append(detail.Questions, qq)
	}
	return detail, nil
}

func (r *quizRepo) questionFromRow(ctx context.Context, row *ent.Question) (QuizQuestion, error) {
	choices, err := r.client.Choice.Query().
		Where(choice.QuestionID(row.ID)).
		Order(ent.Asc(choice.FieldPosition)).
		All(ctx)
	if err != nil {
		return QuizQuestion{}, fmt.Errorf("load choices of question %d: %w", row.ID, err)
	}

	texts := make([]string, 0, len(choices))
	for _, c := range choices {
		texts = append(texts, c.Text)
	}

	return QuizQuestion{
		ID:            row.ID,
		Position:      row.Position,
		Kind:          row.Kind,
		Prompt:        row.Prompt,
		Choices:       texts,
		CorrectChoice: row.CorrectChoice,
		AnswerKey:     row.AnswerKey,
	}, nil
}

func attemptFromRow(row *ent.QuizAttempt) *Attempt {
	return &Attempt{
		ID:           row.ID,
		QuizID:       row.QuizID,
		UserID:       row.UserID,
		AttemptIndex: row.AttemptIndex,
		Status:       row.Status,
		Score:        row.Score,
	}
}
