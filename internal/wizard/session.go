// Package wizard holds the questionnaire state machine: one answer set, the
// step sequence derived from it, the current position and the generated
// blueprint. A Session is driven by a single event loop and is not safe for
// concurrent use.
package wizard

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manasm11/gamebrief/internal/flow"
	"github.com/manasm11/gamebrief/internal/generator"
	"github.com/manasm11/gamebrief/internal/state"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger routes transition logs to l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithGeneratorOptions sets the options passed to the blueprint assembler.
func WithGeneratorOptions(o generator.Options) Option {
	return func(s *Session) { s.genOpts = o }
}

// WithAnswers seeds the session with a prepared answer set instead of the defaults.
func WithAnswers(a state.Answers) Option {
	return func(s *Session) {
		s.answers = a.Clone()
	}
}

// Session is one run through the wizard.
type Session struct {
	id      string
	answers state.Answers
	steps   []flow.StepID
	index   int
	errors  flow.Errors

	document  string
	generated bool

	genOpts generator.Options
	log     *zap.Logger
}

// New starts a session at the first step.
func New(opts ...Option) *Session {
	s := &Session{
		answers: state.Defaults(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.begin()
	return s
}

func (s *Session) begin() {
	s.id = uuid.NewString()
	s.index = 0
	s.errors = flow.Errors{}
	s.document = ""
	s.generated = false
	s.steps = flow.Resolve(s.answers)
	s.logger().Info("session started", zap.Int("steps", len(s.steps)))
}

func (s *Session) logger() *zap.Logger {
	return s.log.With(
		zap.String("session", s.id),
		zap.String("step", string(s.Current())),
		zap.Int("index", s.index),
	)
}

// ID identifies the session in logs. It changes on Reset.
func (s *Session) ID() string { return s.id }

// Answers returns a copy of the current answers.
func (s *Session) Answers() state.Answers { return s.answers.Clone() }

// Steps returns a copy of the current step sequence.
func (s *Session) Steps() []flow.StepID { return slices.Clone(s.steps) }

// Index is the position of the current step in Steps.
func (s *Session) Index() int { return s.index }

// Current is the step being shown.
func (s *Session) Current() flow.StepID {
	if s.index < 0 || s.index >= len(s.steps) {
		return ""
	}
	return s.steps[s.index]
}

// IsLast reports whether advancing from here generates the blueprint.
func (s *Session) IsLast() bool { return s.index == len(s.steps)-1 }

// Errors returns a copy of the outstanding validation failures.
func (s *Session) Errors() flow.Errors { return s.errors.Clone() }

// Document is the generated blueprint, or "" before generation.
func (s *Session) Document() string { return s.document }

// Generated reports whether the session has reached the result state.
func (s *Session) Generated() bool { return s.generated }

// Progress is the fraction of the sequence reached, counting the current step.
func (s *Session) Progress() float64 {
	if s.generated {
		return 1
	}
	if len(s.steps) == 0 {
		return 0
	}
	return float64(s.index+1) / float64(len(s.steps))
}

// Update applies an edit to the answers. The errors of the edited fields are
// cleared and the step sequence is recomputed. Edits are ignored once the
// blueprint has been generated.
func (s *Session) Update(fields []state.Field, mutate func(*state.Answers)) bool {
	if s.generated || mutate == nil {
		return false
	}
	mutate(&s.answers)
	s.answers.Normalize()
	for _, f := range fields {
		delete(s.errors, f)
	}
	s.recompute()
	return true
}

// recompute derives the sequence again and keeps the index on the same step
// when it survives. Errors owned by steps that left the sequence are dropped.
func (s *Session) recompute() {
	cur := s.Current()
	prev := s.steps
	s.steps = flow.Resolve(s.answers)

	if i := flow.IndexOf(s.steps, cur); i >= 0 {
		s.index = i
	} else if s.index > len(s.steps)-1 {
		s.index = len(s.steps) - 1
	}

	for f := range s.errors {
		step, ok := flow.StepOf(f)
		if ok && flow.IndexOf(s.steps, step) < 0 {
			delete(s.errors, f)
		}
	}

	if !slices.Equal(prev, s.steps) {
		s.logger().Debug("step sequence changed",
			zap.Int("from", len(prev)),
			zap.Int("to", len(s.steps)),
		)
	}
}

// Advance validates the current step and moves forward, generating the
// blueprint from the last step. It reports whether the transition happened.
func (s *Session) Advance() bool {
	if s.generated {
		return false
	}
	step := s.Current()
	failures := flow.Validate(step, s.answers)
	for _, f := range flow.StepFields(step) {
		delete(s.errors, f)
	}
	for f, msg := range failures {
		s.errors[f] = msg
	}
	if len(failures) > 0 {
		s.logger().Info("validation failed", zap.Int("errors", len(failures)))
		return false
	}

	if s.IsLast() {
		s.document = generator.Blueprint(s.answers, s.genOpts)
		s.generated = true
		s.logger().Info("blueprint generated", zap.Int("bytes", len(s.document)))
		return true
	}

	s.index++
	s.logger().Debug("advanced")
	return true
}

// Back moves to the previous step without validating.
func (s *Session) Back() bool {
	if s.generated || s.index == 0 {
		return false
	}
	s.index--
	s.logger().Debug("went back")
	return true
}

// Reset discards everything and starts a fresh session with default answers.
func (s *Session) Reset() {
	s.logger().Info("session reset")
	s.answers = state.Defaults()
	s.begin()
}
