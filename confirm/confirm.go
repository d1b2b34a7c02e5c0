// Package confirm models the yes/no prompts that gate destructive actions.
package confirm

// Func shows prompt to the user and reports whether they agreed.
type Func func(prompt string) bool

// Answer returns a Func that always gives the same answer, for callers that
// collected the decision up front.
func Answer(yes bool) Func {
	return func(string) bool { return yes }
}

// Recorder wraps an answer and keeps the last prompt it was asked.
type Recorder struct {
	Yes    bool
	Prompt string
}

func (r *Recorder) Ask(prompt string) bool {
	r.Prompt = prompt
	return r.Yes
}
