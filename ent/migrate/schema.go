// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChoicesColumns holds the columns for the "choices" table.
	ChoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
	}
	// ChoicesTable holds the schema information for the "choices" table.
	ChoicesTable = &schema.Table{
		Name:       "choices",
		Columns:    ChoicesColumns,
		PrimaryKey: []*schema.Column{ChoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "choice_question_id",
				Unique:  false,
				Columns: []*schema.Column{ChoicesColumns[1]},
			},
			{
				Name:    "choice_question_id_position",
				Unique:  false,
				Columns: []*schema.Column{ChoicesColumns[1], ChoicesColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_kind", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
		},
	}
	// MilestonesColumns holds the columns for the "milestones" table.
	MilestonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "roadmap_id", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "estimated_duration", Type: field.TypeString, Default: ""},
		{Name: "subject", Type: field.TypeString},
		{Name: "provenance", Type: field.TypeString, Default: "clean"},
	}
	// MilestonesTable holds the schema information for the "milestones" table.
	MilestonesTable = &schema.Table{
		Name:       "milestones",
		Columns:    MilestonesColumns,
		PrimaryKey: []*schema.Column{MilestonesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "milestone_roadmap_id",
				Unique:  false,
				Columns: []*schema.Column{MilestonesColumns[3]},
			},
			{
				Name:    "milestone_roadmap_id_position",
				Unique:  false,
				Columns: []*schema.Column{MilestonesColumns[3], MilestonesColumns[4]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_choice", Type: field.TypeInt, Default: 0},
		{Name: "answer_key", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3]},
			},
			{
				Name:    "question_quiz_id_position",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3], QuestionsColumns[4]},
			},
		},
	}
	// QuizsColumns holds the columns for the "quizs" table.
	QuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "scope", Type: field.TypeString},
		{Name: "scope_id", Type: field.TypeInt},
		{Name: "quiz_type", Type: field.TypeString},
		{Name: "provenance", Type: field.TypeString, Default: "clean"},
	}
	// QuizsTable holds the schema information for the "quizs" table.
	QuizsTable = &schema.Table{
		Name:       "quizs",
		Columns:    QuizsColumns,
		PrimaryKey: []*schema.Column{QuizsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quiz_scope_scope_id_quiz_type",
				Unique:  true,
				Columns: []*schema.Column{QuizsColumns[3], QuizsColumns[4], QuizsColumns[5]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeString},
		{Name: "attempt_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "started"},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_quiz_id_user_id_attempt_index",
				Unique:  true,
				Columns: []*schema.Column{QuizAttemptsColumns[3], QuizAttemptsColumns[4], QuizAttemptsColumns[5]},
			},
			{
				Name:    "quizattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[4]},
			},
		},
	}
	// RoadmapsColumns holds the columns for the "roadmaps" table.
	RoadmapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "interests", Type: field.TypeJSON},
		{Name: "skill_level", Type: field.TypeString},
		{Name: "duration", Type: field.TypeString, Default: ""},
		{Name: "domain", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "pending"},
	}
	// RoadmapsTable holds the schema information for the "roadmaps" table.
	RoadmapsTable = &schema.Table{
		Name:       "roadmaps",
		Columns:    RoadmapsColumns,
		PrimaryKey: []*schema.Column{RoadmapsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roadmap_user_id",
				Unique:  false,
				Columns: []*schema.Column{RoadmapsColumns[3]},
			},
			{
				Name:    "roadmap_status",
				Unique:  false,
				Columns: []*schema.Column{RoadmapsColumns[9]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "milestone_id", Type: field.TypeInt},
		{Name: "position", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_milestone_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[3]},
			},
			{
				Name:    "topic_milestone_id_position",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[3], TopicsColumns[4]},
			},
		},
	}
	// UserProgressesColumns holds the columns for the "user_progresses" table.
	UserProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// UserProgressesTable holds the schema information for the "user_progresses" table.
	UserProgressesTable = &schema.Table{
		Name:       "user_progresses",
		Columns:    UserProgressesColumns,
		PrimaryKey: []*schema.Column{UserProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprogress_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{UserProgressesColumns[3], UserProgressesColumns[4]},
			},
			{
				Name:    "userprogress_topic_id",
				Unique:  false,
				Columns: []*schema.Column{UserProgressesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChoicesTable,
		LlmRequestEventsTable,
		MilestonesTable,
		QuestionsTable,
		QuizsTable,
		QuizAttemptsTable,
		RoadmapsTable,
		TopicsTable,
		UserProgressesTable,
	}
)

func init() {
}
