package contact

import (
	"context"
	"errors"

	"github.com/verte-zerg/termfolio/internal/model"
)

// ErrInFlight is returned when a submission is already outstanding.
var ErrInFlight = errors.New("a submission is already in flight")

// Outcome is the result class of a submission attempt.
type Outcome int

// Submission outcomes.
const (
	OutcomeSent Outcome = iota
	OutcomeFailed
	OutcomeInvalid
	OutcomeBusy
)

// Result is the outcome of one attempt. Err is nil only for OutcomeSent.
type Result struct {
	Outcome Outcome
	Err     error
}

// Submit button labels.
const (
	LabelIdle    = "Send Message"
	LabelSending = "Sending..."
)

// Submitter owns one form instance and guards it against overlapping
// submissions. It is not safe for concurrent use; callers drive it from a
// single event loop.
type Submitter struct {
	sender   Sender
	form     model.ContactForm
	inFlight bool
}

// NewSubmitter returns a Submitter with an empty form.
func NewSubmitter(sender Sender) *Submitter {
	return &Submitter{sender: sender}
}

// Form returns the current field values.
func (s *Submitter) Form() model.ContactForm {
	return s.form
}

// SetForm replaces the field values.
func (s *Submitter) SetForm(form model.ContactForm) {
	s.form = form
}

// InFlight reports whether a submission is outstanding.
func (s *Submitter) InFlight() bool {
	return s.inFlight
}

// Label returns the submit affordance label.
func (s *Submitter) Label() string {
	if s.inFlight {
		return LabelSending
	}
	return LabelIdle
}

// Begin validates the form and marks a submission in flight. The returned
// form is what must be sent. Validation failures leave the submitter idle.
func (s *Submitter) Begin() (model.ContactForm, error) {
	if s.inFlight {
		return model.ContactForm{}, ErrInFlight
	}
	form, err := Validate(s.form)
	if err != nil {
		return model.ContactForm{}, err
	}
	s.inFlight = true
	return form, nil
}

// Finish ends the outstanding submission. The form is cleared only when
// sendErr is nil; otherwise the fields are kept for a retry.
func (s *Submitter) Finish(sendErr error) Result {
	s.inFlight = false
	if sendErr != nil {
		return Result{Outcome: OutcomeFailed, Err: sendErr}
	}
	s.form = model.ContactForm{}
	return Result{Outcome: OutcomeSent}
}

// Send delivers form through the configured sender.
func (s *Submitter) Send(ctx context.Context, form model.ContactForm) error {
	if s.sender == nil {
		return ErrMissingAccessKey
	}
	return s.sender.Send(ctx, form)
}

// Submit runs Begin, Send and Finish synchronously.
func (s *Submitter) Submit(ctx context.Context) Result {
	form, err := s.Begin()
	if err != nil {
		if errors.Is(err, ErrInFlight) {
			return Result{Outcome: OutcomeBusy, Err: err}
		}
		return Result{Outcome: OutcomeInvalid, Err: err}
	}
	return s.Finish(s.Send(ctx, form))
}
