package survey

import (
	"errors"
	"time"
)

// State of a multi-step submission workflow.
type State string

const (
	StateInProgress State = "in_progress"
	StateSubmitted  State = "submitted"
	StateAbandoned  State = "abandoned"
)

var (
	ErrAlreadySubmitted = errors.New("workflow already submitted")
	ErrWorkflowClosed   = errors.New("workflow is no longer active")
	ErrNotAtFinalStep   = errors.New("submission is only allowed at the final step")
	ErrAtFirstStep      = errors.New("already at the first step")
)

// Workflow sequences one registrant through the 5 survey steps. Each
// session owns exactly one workflow; the struct is JSON-serializable so a
// session store can persist it between requests.
type Workflow struct {
	ID         string       `json:"id"`
	State      State        `json:"state"`
	Step       int          `json:"step"`
	Answers    Answers      `json:"answers"`
	LastErrors []FieldError `json:"last_errors,omitempty"`
}

// Submission is the immutable payload emitted by a successful Submit.
type Submission struct {
	Answers     Answers   `json:"answers"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewWorkflow(id string) *Workflow {
	return &Workflow{
		ID:    id,
		State: StateInProgress,
		Step:  FirstStep,
	}
}

// Advance validates the current step and moves forward on success. On a
// validation refusal the step does not change and the violated fields are
// returned.
func (w *Workflow) Advance() ([]FieldError, error) {
	if err := w.checkActive(); err != nil {
		return nil, err
	}
	if errs := CheckStep(w.Step, &w.Answers); len(errs) > 0 {
		w.LastErrors = errs
		return errs, nil
	}
	w.LastErrors = nil
	if w.Step < FinalStep {
		w.Step++
	}
	return nil, nil
}

// Retreat steps back without touching already-entered answers.
func (w *Workflow) Retreat() error {
	if err := w.checkActive(); err != nil {
		return err
	}
	if w.Step <= FirstStep {
		return ErrAtFirstStep
	}
	w.Step--
	return nil
}

// Submit re-validates every step plus the structural invariants and, on
// success, emits the immutable submission snapshot and closes the
// workflow. A second Submit on a submitted workflow is a conflict, not a
// re-run.
func (w *Workflow) Submit(deptExists func(uint) bool) (*Submission, error) {
	switch w.State {
	case StateSubmitted:
		return nil, ErrAlreadySubmitted
	case StateAbandoned:
		return nil, ErrWorkflowClosed
	}
	if w.Step != FinalStep {
		return nil, ErrNotAtFinalStep
	}

	errs := CheckAll(&w.Answers)
	errs = append(errs, ValidateStructural(&w.Answers, deptExists)...)
	if len(errs) > 0 {
		w.LastErrors = errs
		return nil, &ValidationError{Fields: errs}
	}

	w.LastErrors = nil
	w.State = StateSubmitted
	snapshot := w.Answers.clone()
	snapshot.pruneOthers()
	return &Submission{
		Answers:     snapshot,
		SubmittedAt: time.Now(),
	}, nil
}

// Abandon discards all accumulated answers. Nothing durable survives.
func (w *Workflow) Abandon() error {
	if err := w.checkActive(); err != nil {
		return err
	}
	w.State = StateAbandoned
	w.Answers = Answers{}
	w.LastErrors = nil
	return nil
}

func (w *Workflow) checkActive() error {
	switch w.State {
	case StateSubmitted:
		return ErrAlreadySubmitted
	case StateAbandoned:
		return ErrWorkflowClosed
	}
	return nil
}
