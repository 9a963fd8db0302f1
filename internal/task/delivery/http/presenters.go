package http

import (
	"time"

	"decidr/internal/model"
	"decidr/internal/task"
	"decidr/pkg/response"
)

// --- Request DTOs ---

type addReq struct {
	Name          string `json:"name"           binding:"required,max=255"`
	RemainingTime int    `json:"remaining_time" binding:"required"`
	UserPriority  string `json:"user_priority"  binding:"omitempty,oneof=very-high high medium low"`
	// Deadline accepts RFC3339, the datetime-local layout, a bare date or a relative phrase.
	Deadline string `json:"deadline"`
}

func (r addReq) toInput() task.AddInput {
	return task.AddInput{
		Name:          r.Name,
		RemainingTime: r.RemainingTime,
		UserPriority:  r.UserPriority,
		Deadline:      r.Deadline,
	}
}

// ---

type saveEditReq struct {
	ID            string `json:"-"` // populated from URI param
	Name          string `json:"name"           binding:"required,max=255"`
	RemainingTime int    `json:"remaining_time" binding:"required"`
	UserPriority  string `json:"user_priority"  binding:"omitempty,oneof=very-high high medium low"`
	Deadline      string `json:"deadline"`
}

func (r saveEditReq) toInput() task.SaveEditInput {
	return task.SaveEditInput{
		ID:            r.ID,
		Name:          r.Name,
		RemainingTime: r.RemainingTime,
		UserPriority:  r.UserPriority,
		Deadline:      r.Deadline,
	}
}

// ---

type suggestReq struct {
	AvailableMinutes int    `json:"available_minutes" binding:"required"`
	Mode             string `json:"mode"              binding:"required"`
}

func (r suggestReq) toInput() task.SuggestInput {
	return task.SuggestInput{
		AvailableMinutes: r.AvailableMinutes,
		Mode:             r.Mode,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	RemainingTime int                     `json:"remaining_time"`
	UserPriority  string                  `json:"user_priority"`
	Priority      string                  `json:"priority"`
	Deadline      *time.Time              `json:"deadline"`
	DeadlineLocal *response.LocalDateTime `json:"deadline_local"`
	CreatedAt     time.Time               `json:"created_at"`
	IsEditing     bool                    `json:"is_editing"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:            t.ID,
		Name:          t.Name,
		RemainingTime: t.RemainingTime,
		UserPriority:  t.UserPriority.String(),
		Priority:      t.Priority.String(),
		CreatedAt:     t.CreatedAt,
		IsEditing:     t.IsEditing,
	}
	if t.Deadline != nil {
		d := *t.Deadline
		local := response.LocalDateTime(d.In(h.dates.Location()))
		resp.Deadline = &d
		resp.DeadlineLocal = &local
	}
	return resp
}

func (h *handler) newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = h.newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Now   time.Time  `json:"now"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks: h.newTaskResps(out.Tasks),
		Now:   out.Now,
	}
}

type taskEventResp struct {
	Task  taskResp   `json:"task"`
	Tasks []taskResp `json:"tasks"`
	Now   time.Time  `json:"now"`
}

func (h *handler) newTaskEventResp(out task.TaskOutput) taskEventResp {
	return taskEventResp{
		Task:  h.newTaskResp(out.Task),
		Tasks: h.newTaskResps(out.Tasks),
		Now:   out.Now,
	}
}

type suggestResp struct {
	Task   *taskResp `json:"task"`
	Reason string    `json:"reason,omitempty"`
	Mode   string    `json:"mode"`
	Now    time.Time `json:"now"`
}

func (h *handler) newSuggestResp(out task.SuggestOutput) suggestResp {
	resp := suggestResp{
		Reason: string(out.Reason),
		Mode:   string(out.Mode),
		Now:    out.Now,
	}
	if out.Task != nil {
		t := h.newTaskResp(*out.Task)
		resp.Task = &t
	}
	return resp
}
