package trivia

// Question is one "two truths and a twist" round: a set of statements of
// which exactly one, at AnswerIndex, is fabricated.
type Question struct {
	Intro       string   `json:"intro,omitempty"`
	Statements  []string `json:"statements"`
	AnswerIndex int      `json:"answer_index"`
	Options     []string `json:"options"`
	Twist       string   `json:"twist"`
	Outro       string   `json:"outro,omitempty"`
}

// Valid reports whether the question satisfies the structural contract:
// statements and options have the same length and the twist sits at
// AnswerIndex.
func (q Question) Valid() bool {
	if len(q.Statements) == 0 || len(q.Statements) != len(q.Options) {
		return false
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return false
	}
	return q.Options[q.AnswerIndex] == q.Twist
}
