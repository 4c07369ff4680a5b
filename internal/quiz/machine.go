package quiz

// Event is an input to the state machine.
type Event interface{ isEvent() }

// Start begins the quiz from the intro screen.
type Start struct{}

// SelectOption answers a single-select question and auto-advances.
type SelectOption struct{ Option string }

// ToggleOption toggles one option of a multi-select question.
type ToggleOption struct{ Option string }

// RankOption appends the next-most-important option to the ranking.
type RankOption struct{ Option string }

// Next advances past a multi-select or a completed rank question.
type Next struct{}

// Back steps backward: pops the last ranked item if any, otherwise
// moves to the previous question.
type Back struct{}

// Restart abandons the run and returns to the intro screen.
type Restart struct{}

// FinishTransition clears the animation guard.
type FinishTransition struct{}

func (Start) isEvent()            {}
func (SelectOption) isEvent()     {}
func (ToggleOption) isEvent()     {}
func (RankOption) isEvent()       {}
func (Next) isEvent()             {}
func (Back) isEvent()             {}
func (Restart) isEvent()          {}
func (FinishTransition) isEvent() {}

// Machine evaluates transitions over a fixed question sequence.
type Machine struct {
	questions []Question
}

// NewMachine creates a machine for the given question sequence.
func NewMachine(questions []Question) *Machine {
	return &Machine{questions: questions}
}

// Questions returns the machine's question sequence.
func (m *Machine) Questions() []Question {
	return m.questions
}

// Initial returns the not-started state.
func (m *Machine) Initial() State {
	return State{Phase: NotStarted, Answers: map[string]Answer{}}
}

// Current returns the active question, or nil outside InProgress.
func (m *Machine) Current(s State) *Question {
	if s.Phase != InProgress || s.Index < 0 || s.Index >= len(m.questions) {
		return nil
	}
	return &m.questions[s.Index]
}

// Apply evaluates one event against a state and returns the successor
// state. While Transitioning is set, every event other than
// FinishTransition is ignored, so duplicate input during an animated
// step change cannot double-fire a transition.
func (m *Machine) Apply(s State, e Event) State {
	if s.Transitioning {
		if _, ok := e.(FinishTransition); ok {
			s.Transitioning = false
		}
		return s
	}

	switch ev := e.(type) {
	case Start:
		if s.Phase != NotStarted {
			return s
		}
		next := m.Initial()
		next.Phase = InProgress
		next.Transitioning = true
		return next

	case Restart:
		next := m.Initial()
		next.Transitioning = true
		return next

	case SelectOption:
		q := m.Current(s)
		if q == nil || q.Type != Single || !hasOption(q, ev.Option) {
			return s
		}
		s = setAnswer(s, q.ID, Answer{Option: ev.Option})
		return m.advance(s)

	case ToggleOption:
		return m.toggle(s, ev.Option)

	case RankOption:
		return m.rank(s, ev.Option)

	case Next:
		if s.Phase != InProgress || !m.CanProceed(s) {
			return s
		}
		return m.advance(s)

	case Back:
		return m.back(s)

	case FinishTransition:
		return s
	}

	return s
}

// CanProceed reports whether the active question has enough of an
// answer for explicit forward navigation.
func (m *Machine) CanProceed(s State) bool {
	q := m.Current(s)
	if q == nil {
		return false
	}
	switch q.Type {
	case Single:
		return s.Answers[q.ID].Option != ""
	case Multi:
		return len(s.Answers[q.ID].Options) > 0
	case Rank:
		return len(s.Ranking) == len(q.Options)
	}
	return true
}

// Progress reports the fractional position across the question
// sequence. A rank question's internal steps each contribute
// 1/(poolSize*questionCount).
func (m *Machine) Progress(s State) float64 {
	switch s.Phase {
	case NotStarted:
		return 0
	case Completed:
		return 1
	}
	total := len(m.questions)
	if total == 0 {
		return 0
	}
	progress := float64(s.Index) / float64(total)
	if q := m.Current(s); q != nil && q.Type == Rank && len(q.Options) > 0 {
		progress += float64(len(s.Ranking)) / float64(len(q.Options)) / float64(total)
	}
	return progress
}

// advance moves to the next question, or to Completed at the end.
func (m *Machine) advance(s State) State {
	if s.Index < len(m.questions)-1 {
		s.Index++
	} else {
		s.Phase = Completed
	}
	s.Transitioning = true
	return s
}

func (m *Machine) toggle(s State, optionID string) State {
	q := m.Current(s)
	if q == nil || q.Type != Multi || !hasOption(q, optionID) {
		return s
	}

	current := s.Answers[q.ID].Options

	// An exclusive option replaces the whole selection and advances.
	if opt := findOption(q, optionID); opt.Exclusive {
		s = setAnswer(s, q.ID, Answer{Options: []string{optionID}})
		return m.advance(s)
	}

	// Any non-exclusive pick replaces a lingering exclusive answer.
	if containsExclusive(q, current) {
		return setAnswer(s, q.ID, Answer{Options: []string{optionID}})
	}

	selected := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == optionID {
			removed = true
			continue
		}
		selected = append(selected, id)
	}
	if !removed {
		selected = append(selected, optionID)
	}
	return setAnswer(s, q.ID, Answer{Options: selected})
}

func (m *Machine) rank(s State, optionID string) State {
	q := m.Current(s)
	if q == nil || q.Type != Rank || !hasOption(q, optionID) {
		return s
	}
	for _, id := range s.Ranking {
		if id == optionID {
			return s
		}
	}

	ranking := append(append([]string{}, s.Ranking...), optionID)
	s.Ranking = ranking
	if len(ranking) == len(q.Options) {
		s = setAnswer(s, q.ID, Answer{Ranking: ranking})
	}
	s.Transitioning = true
	return s
}

func (m *Machine) back(s State) State {
	if s.Phase != InProgress {
		return s
	}
	if q := m.Current(s); q != nil && q.Type == Rank && len(s.Ranking) > 0 {
		s.Ranking = append([]string{}, s.Ranking[:len(s.Ranking)-1]...)
		s.Transitioning = true
		return s
	}
	if s.Index == 0 {
		return s
	}
	s.Index--
	s.Transitioning = true
	return s
}

// setAnswer copies the answer map before writing, keeping prior states
// observable.
func setAnswer(s State, questionID string, a Answer) State {
	answers := make(map[string]Answer, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[questionID] = a
	s.Answers = answers
	return s
}

func hasOption(q *Question, optionID string) bool {
	for _, o := range q.Options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

func findOption(q *Question, optionID string) Option {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o
		}
	}
	return Option{}
}

func containsExclusive(q *Question, selected []string) bool {
	for _, id := range selected {
		if findOption(q, id).Exclusive {
			return true
		}
	}
	return false
}
