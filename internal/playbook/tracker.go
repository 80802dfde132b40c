package playbook

import (
	"context"
	"errors"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/storage"
)

var (
	// ErrNotFound reports a task id that no section contains.
	ErrNotFound = errors.New("playbook: task not found")

	// ErrNotReady reports a tracker used before Load.
	ErrNotReady = errors.New("playbook: tracker not loaded")
)

// SectionProgress is the completion state of one section.
type SectionProgress struct {
	SectionID string `json:"sectionId"`
	Title     string `json:"title"`
	Done      int    `json:"done"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// Progress is the overall checklist completion state.
type Progress struct {
	Done     int               `json:"done"`
	Total    int               `json:"total"`
	Percent  int               `json:"percent"`
	Sections []SectionProgress `json:"sections"`
}

// Tracker keeps the completion map in memory and writes every change
// through to storage.
type Tracker struct {
	mu      sync.Mutex
	adapter *storage.Adapter
	log     *zap.Logger

	done    map[string]bool
	taskIDs map[string]bool
	loaded  bool
}

func NewTracker(adapter *storage.Adapter, log *zap.Logger) *Tracker {
	taskIDs := make(map[string]bool)
	for _, sec := range sections {
		for _, sub := range sec.SubSections {
			for _, task := range sub.Tasks {
				taskIDs[task.ID] = true
			}
		}
	}
	return &Tracker{
		adapter: adapter,
		log:     log,
		taskIDs: taskIDs,
	}
}

// Load rehydrates the completion map. Corrupt stored progress is
// discarded with a warning; the checklist restarts empty rather than
// refusing to load.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	done, err := t.adapter.LoadProgress(ctx)
	if err != nil {
		var corrupt *storage.CorruptDataError
		if !errors.As(err, &corrupt) {
			return err
		}
		t.log.Warn("stored checklist progress unreadable, starting empty",
			zap.String("key", corrupt.Key), zap.Error(corrupt.Err))
		done = nil
	}
	if done == nil {
		done = make(map[string]bool)
	}

	// Entries for ids that no longer exist are dropped on load.
	for id := range done {
		if !t.taskIDs[id] {
			delete(done, id)
		}
	}

	t.done = done
	t.loaded = true
	return nil
}

// SetDone marks a task complete or incomplete and persists the change.
func (t *Tracker) SetDone(ctx context.Context, taskID string, done bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.loaded {
		return ErrNotReady
	}
	if !t.taskIDs[taskID] {
		return ErrNotFound
	}

	prev, had := t.done[taskID]
	if done {
		t.done[taskID] = true
	} else {
		delete(t.done, taskID)
	}

	if err := t.adapter.SaveProgress(ctx, t.done); err != nil {
		if had {
			t.done[taskID] = prev
		} else {
			delete(t.done, taskID)
		}
		return err
	}
	return nil
}

// Reset clears all completion state.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.loaded {
		return ErrNotReady
	}

	prev := t.done
	t.done = make(map[string]bool)
	if err := t.adapter.SaveProgress(ctx, t.done); err != nil {
		t.done = prev
		return err
	}
	return nil
}

// Done reports whether a task is marked complete.
func (t *Tracker) Done(taskID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done[taskID]
}

// Progress returns overall and per-section completion, with percentages
// rounded to the nearest integer.
func (t *Tracker) Progress() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := Progress{Sections: make([]SectionProgress, 0, len(sections))}
	for _, sec := range sections {
		sp := SectionProgress{SectionID: sec.ID, Title: sec.Title}
		for _, sub := range sec.SubSections {
			for _, task := range sub.Tasks {
				sp.Total++
				if t.done[task.ID] {
					sp.Done++
				}
			}
		}
		sp.Percent = percent(sp.Done, sp.Total)
		p.Done += sp.Done
		p.Total += sp.Total
		p.Sections = append(p.Sections, sp)
	}
	p.Percent = percent(p.Done, p.Total)
	return p
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
