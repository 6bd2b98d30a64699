// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rahulm/learnpath/ent/choice"
	"github.com/rahulm/learnpath/ent/llmrequestevent"
	"github.com/rahulm/learnpath/ent/milestone"
	"github.com/rahulm/learnpath/ent/question"
	"github.com/rahulm/learnpath/ent/quiz"
	"github.com/rahulm/learnpath/ent/quizattempt"
	"github.com/rahulm/learnpath/ent/roadmap"
	"github.com/rahulm/learnpath/ent/schema"
	"github.com/rahulm/learnpath/ent/topic"
	"github.com/rahulm/learnpath/ent/userprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	choiceFields := schema.Choice{}.Fields()
	_ = choiceFields
	// choiceDescText is the schema descriptor for text field.
	choiceDescText := choiceFields[2].Descriptor()
	// choice.TextValidator is a validator for the "text" field. It is called by the builders before save.
	choice.TextValidator = choiceDescText.Validators[0].(func(string) error)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorKind is the schema descriptor for error_kind field.
	llmrequesteventDescErrorKind := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	llmrequestevent.DefaultErrorKind = llmrequesteventDescErrorKind.Default.(string)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[11].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	milestoneMixin := schema.Milestone{}.Mixin()
	milestoneMixinFields0 := milestoneMixin[0].Fields()
	_ = milestoneMixinFields0
	milestoneFields := schema.Milestone{}.Fields()
	_ = milestoneFields
	// milestoneDescCreatedAt is the schema descriptor for created_at field.
	milestoneDescCreatedAt := milestoneMixinFields0[0].Descriptor()
	// milestone.DefaultCreatedAt holds the default value on creation for the created_at field.
	milestone.DefaultCreatedAt = milestoneDescCreatedAt.Default.(func() time.Time)
	// milestoneDescUpdatedAt is the schema descriptor for updated_at field.
	milestoneDescUpdatedAt := milestoneMixinFields0[1].Descriptor()
	// milestone.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	milestone.DefaultUpdatedAt = milestoneDescUpdatedAt.Default.(func() time.Time)
	// milestone.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	milestone.UpdateDefaultUpdatedAt = milestoneDescUpdatedAt.UpdateDefault.(func() time.Time)
	// milestoneDescName is the schema descriptor for name field.
	milestoneDescName := milestoneFields[2].Descriptor()
	// milestone.NameValidator is a validator for the "name" field. It is called by the builders before save.
	milestone.NameValidator = milestoneDescName.Validators[0].(func(string) error)
	// milestoneDescDescription is the schema descriptor for description field.
	milestoneDescDescription := milestoneFields[3].Descriptor()
	// milestone.DefaultDescription holds the default value on creation for the description field.
	milestone.DefaultDescription = milestoneDescDescription.Default.(string)
	// milestoneDescEstimatedDuration is the schema descriptor for estimated_duration field.
	milestoneDescEstimatedDuration := milestoneFields[4].Descriptor()
	// milestone.DefaultEstimatedDuration holds the default value on creation for the estimated_duration field.
	milestone.DefaultEstimatedDuration = milestoneDescEstimatedDuration.Default.(string)
	// milestoneDescSubject is the schema descriptor for subject field.
	milestoneDescSubject := milestoneFields[5].Descriptor()
	// milestone.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	milestone.SubjectValidator = milestoneDescSubject.Validators[0].(func(string) error)
	// milestoneDescProvenance is the schema descriptor for provenance field.
	milestoneDescProvenance := milestoneFields[6].Descriptor()
	// milestone.DefaultProvenance holds the default value on creation for the provenance field.
	milestone.DefaultProvenance = milestoneDescProvenance.Default.(string)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields0[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionMixinFields0[1].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescKind is the schema descriptor for kind field.
	questionDescKind := questionFields[2].Descriptor()
	// question.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	question.KindValidator = questionDescKind.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[3].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescCorrectChoice is the schema descriptor for correct_choice field.
	questionDescCorrectChoice := questionFields[4].Descriptor()
	// question.DefaultCorrectChoice holds the default value on creation for the correct_choice field.
	question.DefaultCorrectChoice = questionDescCorrectChoice.Default.(int)
	// questionDescAnswerKey is the schema descriptor for answer_key field.
	questionDescAnswerKey := questionFields[5].Descriptor()
	// question.DefaultAnswerKey holds the default value on creation for the answer_key field.
	question.DefaultAnswerKey = questionDescAnswerKey.Default.(string)
	quizMixin := schema.Quiz{}.Mixin()
	quizMixinFields0 := quizMixin[0].Fields()
	_ = quizMixinFields0
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizMixinFields0[0].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	// quizDescUpdatedAt is the schema descriptor for updated_at field.
	quizDescUpdatedAt := quizMixinFields0[1].Descriptor()
	// quiz.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quiz.DefaultUpdatedAt = quizDescUpdatedAt.Default.(func() time.Time)
	// quiz.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quiz.UpdateDefaultUpdatedAt = quizDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quizDescScope is the schema descriptor for scope field.
	quizDescScope := quizFields[0].Descriptor()
	// quiz.ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	quiz.ScopeValidator = quizDescScope.Validators[0].(func(string) error)
	// quizDescQuizType is the schema descriptor for quiz_type field.
	quizDescQuizType := quizFields[2].Descriptor()
	// quiz.QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	quiz.QuizTypeValidator = quizDescQuizType.Validators[0].(func(string) error)
	// quizDescProvenance is the schema descriptor for provenance field.
	quizDescProvenance := quizFields[3].Descriptor()
	// quiz.DefaultProvenance holds the default value on creation for the provenance field.
	quiz.DefaultProvenance = quizDescProvenance.Default.(string)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescCreatedAt is the schema descriptor for created_at field.
	quizattemptDescCreatedAt := quizattemptMixinFields0[0].Descriptor()
	// quizattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizattempt.DefaultCreatedAt = quizattemptDescCreatedAt.Default.(func() time.Time)
	// quizattemptDescUpdatedAt is the schema descriptor for updated_at field.
	quizattemptDescUpdatedAt := quizattemptMixinFields0[1].Descriptor()
	// quizattempt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quizattempt.DefaultUpdatedAt = quizattemptDescUpdatedAt.Default.(func() time.Time)
	// quizattempt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quizattempt.UpdateDefaultUpdatedAt = quizattemptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptFields[1].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescStatus is the schema descriptor for status field.
	quizattemptDescStatus := quizattemptFields[3].Descriptor()
	// quizattempt.DefaultStatus holds the default value on creation for the status field.
	quizattempt.DefaultStatus = quizattemptDescStatus.Default.(string)
	// quizattemptDescScore is the schema descriptor for score field.
	quizattemptDescScore := quizattemptFields[4].Descriptor()
	// quizattempt.DefaultScore holds the default value on creation for the score field.
	quizattempt.DefaultScore = quizattemptDescScore.Default.(float64)
	roadmapMixin := schema.Roadmap{}.Mixin()
	roadmapMixinFields0 := roadmapMixin[0].Fields()
	_ = roadmapMixinFields0
	roadmapFields := schema.Roadmap{}.Fields()
	_ = roadmapFields
	// roadmapDescCreatedAt is the schema descriptor for created_at field.
	roadmapDescCreatedAt := roadmapMixinFields0[0].Descriptor()
	// roadmap.DefaultCreatedAt holds the default value on creation for the created_at field.
	roadmap.DefaultCreatedAt = roadmapDescCreatedAt.Default.(func() time.Time)
	// roadmapDescUpdatedAt is the schema descriptor for updated_at field.
	roadmapDescUpdatedAt := roadmapMixinFields0[1].Descriptor()
	// roadmap.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	roadmap.DefaultUpdatedAt = roadmapDescUpdatedAt.Default.(func() time.Time)
	// roadmap.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	roadmap.UpdateDefaultUpdatedAt = roadmapDescUpdatedAt.UpdateDefault.(func() time.Time)
	// roadmapDescUserID is the schema descriptor for user_id field.
	roadmapDescUserID := roadmapFields[0].Descriptor()
	// roadmap.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	roadmap.UserIDValidator = roadmapDescUserID.Validators[0].(func(string) error)
	// roadmapDescTitle is the schema descriptor for title field.
	roadmapDescTitle := roadmapFields[1].Descriptor()
	// roadmap.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	roadmap.TitleValidator = roadmapDescTitle.Validators[0].(func(string) error)
	// roadmapDescSkillLevel is the schema descriptor for skill_level field.
	roadmapDescSkillLevel := roadmapFields[3].Descriptor()
	// roadmap.SkillLevelValidator is a validator for the "skill_level" field. It is called by the builders before save.
	roadmap.SkillLevelValidator = roadmapDescSkillLevel.Validators[0].(func(string) error)
	// roadmapDescDuration is the schema descriptor for duration field.
	roadmapDescDuration := roadmapFields[4].Descriptor()
	// roadmap.DefaultDuration holds the default value on creation for the duration field.
	roadmap.DefaultDuration = roadmapDescDuration.Default.(string)
	// roadmapDescDomain is the schema descriptor for domain field.
	roadmapDescDomain := roadmapFields[5].Descriptor()
	// roadmap.DefaultDomain holds the default value on creation for the domain field.
	roadmap.DefaultDomain = roadmapDescDomain.Default.(string)
	// roadmapDescStatus is the schema descriptor for status field.
	roadmapDescStatus := roadmapFields[6].Descriptor()
	// roadmap.DefaultStatus holds the default value on creation for the status field.
	roadmap.DefaultStatus = roadmapDescStatus.Default.(string)
	topicMixin := schema.Topic{}.Mixin()
	topicMixinFields0 := topicMixin[0].Fields()
	_ = topicMixinFields0
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicMixinFields0[0].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescUpdatedAt is the schema descriptor for updated_at field.
	topicDescUpdatedAt := topicMixinFields0[1].Descriptor()
	// topic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topic.DefaultUpdatedAt = topicDescUpdatedAt.Default.(func() time.Time)
	// topic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topic.UpdateDefaultUpdatedAt = topicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[2].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	userprogressMixin := schema.UserProgress{}.Mixin()
	userprogressMixinFields0 := userprogressMixin[0].Fields()
	_ = userprogressMixinFields0
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescCreatedAt is the schema descriptor for created_at field.
	userprogressDescCreatedAt := userprogressMixinFields0[0].Descriptor()
	// userprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	userprogress.DefaultCreatedAt = userprogressDescCreatedAt.Default.(func() time.Time)
	// userprogressDescUpdatedAt is the schema descriptor for updated_at field.
	userprogressDescUpdatedAt := userprogressMixinFields0[1].Descriptor()
	// userprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprogress.DefaultUpdatedAt = userprogressDescUpdatedAt.Default.(func() time.Time)
	// userprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprogress.UpdateDefaultUpdatedAt = userprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userprogressDescUserID is the schema descriptor for user_id field.
	userprogressDescUserID := userprogressFields[0].Descriptor()
	// userprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprogress.UserIDValidator = userprogressDescUserID.Validators[0].(func(string) error)
	// userprogressDescStatus is the schema descriptor for status field.
	userprogressDescStatus := userprogressFields[2].Descriptor()
	// userprogress.DefaultStatus holds the default value on creation for the status field.
	userprogress.DefaultStatus = userprogressDescStatus.Default.(string)
}
