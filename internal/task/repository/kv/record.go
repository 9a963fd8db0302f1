package kv

import (
	"context"
	"strings"
	"time"

	"decidr/internal/model"
)

// taskRecord is the stored shape of a task. Field names match the browser
// app's localStorage blob so existing snapshots load unchanged.
type taskRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RemainingTime int     `json:"remainingTime"`
	UserPriority  *string `json:"userPriority"`
	Priority      *string `json:"priority"`
	Deadline      *string `json:"deadline"`
	CreatedAt     int64   `json:"createdAt"` // epoch milliseconds
	IsEditing     bool    `json:"isEditing"`
}

func toRecord(t model.Task) taskRecord {
	rec := taskRecord{
		ID:            t.ID,
		Name:          t.Name,
		RemainingTime: t.RemainingTime,
		CreatedAt:     t.CreatedAt.UnixMilli(),
		IsEditing:     t.IsEditing,
	}
	if t.UserPriority != model.PriorityAuto {
		p := string(t.UserPriority)
		rec.UserPriority = &p
	}
	if t.Priority != model.PriorityAuto {
		p := string(t.Priority)
		rec.Priority = &p
	}
	if t.Deadline != nil {
		d := t.Deadline.Format(time.RFC3339Nano)
		rec.Deadline = &d
	}
	return rec
}

// fromRecord converts a stored record. ok is false for records that cannot
// satisfy the task invariants; unreadable optional fields are dropped.
func (r *implRepository) fromRecord(ctx context.Context, rec taskRecord) (model.Task, bool) {
	if rec.ID == "" || strings.TrimSpace(rec.Name) == "" || rec.RemainingTime <= 0 {
		r.l.Warnf(ctx, "%s: skipping invalid record id=%q name=%q remainingTime=%d", r.dsn("Load"), rec.ID, rec.Name, rec.RemainingTime)
		return model.Task{}, false
	}

	t := model.Task{
		ID:            rec.ID,
		Name:          rec.Name,
		RemainingTime: rec.RemainingTime,
		CreatedAt:     time.UnixMilli(rec.CreatedAt),
		IsEditing:     rec.IsEditing,
	}

	if rec.UserPriority != nil {
		p, ok := model.ParseUserPriority(*rec.UserPriority)
		if !ok {
			r.l.Warnf(ctx, "%s: task %s has unknown userPriority %q, using auto", r.dsn("Load"), rec.ID, *rec.UserPriority)
		}
		t.UserPriority = p
	}

	if rec.Priority != nil {
		if p := model.Priority(*rec.Priority); p.IsValid() {
			t.Priority = p
		}
	}

	if rec.Deadline != nil && *rec.Deadline != "" {
		d, err := r.dates.ParseDeadline(*rec.Deadline, r.now())
		if err != nil {
			r.l.Warnf(ctx, "%s: task %s has unreadable deadline %q, ignoring: %v", r.dsn("Load"), rec.ID, *rec.Deadline, err)
		} else {
			t.Deadline = &d
		}
	}

	return t, true
}
