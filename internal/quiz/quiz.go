// Package quiz implements the selling-plan questionnaire as an explicit
// state machine with pure transition functions, so the flow can be unit
// tested independently of any rendering layer.
package quiz

// QuestionType discriminates how a question collects its answer.
type QuestionType string

const (
	// Single allows exactly one option; selecting auto-advances.
	Single QuestionType = "single"
	// Multi toggles zero or more options; advancing is explicit.
	Multi QuestionType = "multi"
	// Rank consumes a fixed option pool one pick at a time, in strict
	// order of importance, until the pool is exhausted.
	Rank QuestionType = "rank"
)

// Option is one selectable answer. Exclusive marks a "none of the
// above" option: selecting it clears any other selections and advances
// immediately.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Exclusive   bool   `json:"exclusive,omitempty"`
}

// Question is one step of the quiz.
type Question struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"question"`
	Subtitle string       `json:"subtitle,omitempty"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options"`
}

// Phase is the coarse lifecycle of a quiz run.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Completed
)

// Answer holds the response to a single question. Exactly one field is
// populated depending on the question type.
type Answer struct {
	Option  string   `json:"option,omitempty"`
	Options []string `json:"options,omitempty"`
	Ranking []string `json:"ranking,omitempty"`
}

// State is an immutable snapshot of a quiz run. Transitions never
// mutate a State in place; Apply returns a new one.
type State struct {
	Phase   Phase
	Index   int
	Answers map[string]Answer
	// Ranking is the partial ordering built while a rank question is
	// active. Once complete it is copied into Answers.
	Ranking []string
	// Transitioning suppresses input while a step animation plays. It
	// is cleared by FinishTransition.
	Transitioning bool
}
