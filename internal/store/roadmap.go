package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rahulm/learnpath/ent"
	"github.com/rahulm/learnpath/ent/milestone"
	"github.com/rahulm/learnpath/ent/roadmap"
	"github.com/rahulm/learnpath/ent/topic"
	"github.com/rahulm/learnpath/ent/userprogress"
)

// Progress status values.
const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// Roadmap status values.
const (
	RoadmapPending = "pending"
	RoadmapReady   = "ready"
)

// roadmapRepo implements RoadmapRepo backed by ent.
type roadmapRepo struct {
	client *ent.Client
}

func (r *roadmapRepo) Create(ctx context.Context, in Roadmap) (*Roadmap, error) {
	row, err := r.client.Roadmap.Create().
		SetUserID(in.UserID).
		SetTitle(in.Title).
		SetInterests(in.Interests).
		SetSkillLevel(in.SkillLevel).
		SetDuration(in.Duration).
		SetDomain(in.Domain).
		SetStatus(RoadmapPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create roadmap: %w", err)
	}
	return roadmapFromRow(row), nil
}

func (r *roadmapRepo) PersistPlan(ctx context.Context, roadmapID int, userID string, plan []MilestoneSpec) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := persistPlanTx(ctx, tx, roadmapID, userID, plan); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

func persistPlanTx(ctx context.Context, tx *ent.Tx, roadmapID int, userID string, plan []MilestoneSpec) error {
	for i, spec := range plan {
		m, err := tx.Milestone.Create().
			SetRoadmapID(roadmapID).
			SetPosition(i + 1).
			SetName(spec.Name).
			SetDescription(spec.Description).
			SetEstimatedDuration(spec.EstimatedDuration).
			SetSubject(spec.Subject).
			SetProvenance(spec.Provenance).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create milestone %d: %w", i+1, err)
		}

		for j, name := range spec.Topics {
			t, err := tx.Topic.Create().
				SetMilestoneID(m.ID).
				SetPosition(j + 1).
				SetName(name).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create topic %d of milestone %d: %w", j+1, i+1, err)
			}

			_, err = tx.UserProgress.Create().
				SetUserID(userID).
				SetTopicID(t.ID).
				SetStatus(ProgressNotStarted).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed progress for topic %d: %w", t.ID, err)
			}
		}
	}

	_, err := tx.Roadmap.UpdateOneID(roadmapID).
		SetStatus(RoadmapReady).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark roadmap ready: %w", err)
	}
	return nil
}

func (r *roadmapRepo) Get(ctx context.Context, roadmapID int, userID string) (*RoadmapDetail, error) {
	row, err := r.client.Roadmap.Get(ctx, roadmapID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load roadmap %d: %w", roadmapID, err)
	}
	if row.UserID != userID {
		return nil, ErrNotFound
	}

	milestones, err := r.client.Milestone.Query().
		Where(milestone.RoadmapID(roadmapID)).
		Order(ent.Asc(milestone.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load milestones: %w", err)
	}

	detail := &RoadmapDetail{Roadmap: *roadmapFromRow(row)}
	for _, m := range milestones {
		topics, err := r.client.Topic.Query().
			Where(topic.MilestoneID(m.ID)).
			Order(ent.Asc(topic.FieldPosition)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load topics of milestone %d: %w", m.ID, err)
		}

		md := MilestoneDetail{Milestone: milestoneFromRow(m)}
		for _, t := range topics {
			status := ProgressNotStarted
			p, err := r.client.UserProgress.Query().
				Where(userprogress.UserID(userID), userprogress.TopicID(t.ID)).
				Only(ctx)
			if err != nil && !ent.IsNotFound(err) {
				return nil, fmt.Errorf("load progress of topic %d: %w", t.ID, err)
			}
			if p != nil {
				status = p.Status
			}

			md.Topics = append(md.Topics, TopicProgress{
				Topic: Topic{
					ID:          t.ID,
					MilestoneID: t.MilestoneID,
					Position:    t.Position,
					Name:        t.Name,
				},
				Status: status,
			})
			detail.TotalTopics++
			if status == ProgressCompleted {
				detail.CompletedTopics++
			}
		}
		detail.Milestones = append(detail.Milestones, md)
	}
	return detail, nil
}

func (r *roadmapRepo) GetHeader(ctx context.Context, roadmapID int) (*Roadmap, error) {
	row, err := r.client.Roadmap.Get(ctx, roadmapID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load roadmap %d: %w", roadmapID, err)
	}
	return roadmapFromRow(row), nil
}

func (r *roadmapRepo) ListByUser(ctx context.Context, userID string) ([]Roadmap, error) {
	rows, err := r.client.Roadmap.Query().
		Where(roadmap.UserID(userID)).
		Order(ent.Desc(roadmap.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roadmaps: %w", err)
	}

	out := make([]Roadmap, 0, len(rows))
	for _, row := range rows {
		out = append(out, *roadmapFromRow(row))
	}
	return out, nil
}

func (r *roadmapRepo) UpdateProgress(ctx context.Context, userID string, topicID int, status string) (*Progress, error) {
	topicRow, err := r.client.Topic.Get(ctx, topicID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load topic %d: %w", topicID, err)
	}
	m, err := r.client.Milestone.Get(ctx, topicRow.MilestoneID)
	if err != nil {
		return nil, fmt.Errorf("load parent milestone %d: %w", topicRow.MilestoneID, err)
	}
	if err := r.requireOwner(ctx, m.RoadmapID, userID); err != nil {
		return nil, err
	}

	existing, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(userID), userprogress.TopicID(topicID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	now := time.Now().UTC()
	var row *ent.UserProgress
	if existing == nil {
		create := r.client.UserProgress.Create().
			SetUserID(userID).
			SetTopicID(topicID).
			SetStatus(status)
		switch status {
		case ProgressInProgress:
			create.SetStartedAt(now)
		case ProgressCompleted:
			create.SetCompletedAt(now)
		}
		row, err = create.Save(ctx)
	} else {
		update := existing.Update().SetStatus(status)
		switch status {
		case ProgressInProgress:
			// started_at marks the first transition only.
			if existing.StartedAt == nil {
				update.SetStartedAt(now)
			}
		case ProgressCompleted:
			update.SetCompletedAt(now)
		}
		row, err = update.Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}

	return &Progress{
		ID:          row.ID,
		UserID:      row.UserID,
		TopicID:     row.TopicID,
		Status:      row.Status,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// requireOwner returns ErrNotFound unless the roadmap exists and
// belongs to the user. Hiding foreign roadmaps behind ErrNotFound
// keeps their IDs unguessable.
func (r *roadmapRepo) requireOwner(ctx context.Context, roadmapID int, userID string) error {
	ok, err := r.client.Roadmap.Query().
		Where(roadmap.ID(roadmapID), roadmap.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check roadmap owner: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (r *roadmapRepo) GetMilestone(ctx context.Context, id int, userID string) (*Milestone, []Topic, error) {
	row, err := r.client.Milestone.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("load milestone %d: %w", id, err)
	}
	if err := r.requireOwner(ctx, row.RoadmapID, userID); err != nil {
		return nil, nil, err
	}

	rows, err := r.client.Topic.Query().
		Where(topic.MilestoneID(id)).
		Order(ent.Asc(topic.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load topics: %w", err)
	}

	topics := make([]Topic, 0, len(rows))
	for _, t := range rows {
		topics = append(topics, Topic{
			ID:          t.ID,
			MilestoneID: t.MilestoneID,
			Position:    t.Position,
			Name:        t.Name,
		})
	}

	m := milestoneFromRow(row)
	return &m, topics, nil
}

func (r *roadmapRepo) GetTopic(ctx context.Context, id int, userID string) (*Topic, *Milestone, error) {
	row, err := r.client.Topic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("load topic %d: %w", id, err)
	}

	m, err := r.client.Milestone.Get(ctx, row.MilestoneID)
	if err != nil {
		return nil, nil, fmt.Errorf("load parent milestone %d: %w", row.MilestoneID, err)
	}
	if err := r.requireOwner(ctx, m.RoadmapID, userID); err != nil {
		return nil, nil, err
	}

	t := &Topic{ID: row.ID, MilestoneID: row.MilestoneID, Position: row.Position, Name: row.Name}
	md := milestoneFromRow(m)
	return t, &md, nil
}

func roadmapFromRow(row *ent.Roadmap) *Roadmap {
	return &Roadmap{
		ID:         row.ID,
		UserID:     row.UserID,
		Title:      row.Title,
		Interests:  row.Interests,
		SkillLevel: row.SkillLevel,
		Duration:   row.Duration,
		Domain:     row.Domain,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
	}
}

func milestoneFromRow(row *ent.Milestone) Milestone {
	return Milestone{
		ID:                row.ID,
		RoadmapID:         row.RoadmapID,
		Position:          row.Position,
		Name:              row.Name,
		Description:       row.Description,
		EstimatedDuration: row.EstimatedDuration,
		Subject:           row.Subject,
		Provenance:        row.Provenance,
	}
}
