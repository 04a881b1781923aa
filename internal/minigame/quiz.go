package minigame

import "fmt"

type Question struct {
	Prompt  string
	Options []string
	Correct int
}

// Quiz walks a question bank. Each correct answer is one unit of objective
// progress for the caller to record; running out of questions ends the quiz
// without passing it.
type Quiz struct {
	questions []Question
	current   int
	correct   int
	needed    int
}

func NewQuiz(questions []Question, alreadyCorrect, needed int) *Quiz {
	return &Quiz{questions: questions, correct: alreadyCorrect, needed: needed}
}

// Current returns the question being asked.
func (q *Quiz) Current() (Question, bool) {
	if q.Finished() {
		return Question{}, false
	}
	return q.questions[q.current], true
}

// Answer submits option i for the current question and moves on.
func (q *Quiz) Answer(i int) (bool, error) {
	if q.Finished() {
		return false, fmt.Errorf("quiz is finished")
	}
	cur := q.questions[q.current]
	if i < 0 || i >= len(cur.Options) {
		return false, fmt.Errorf("option %d out of range (0-%d)", i, len(cur.Options)-1)
	}
	q.current++
	if i != cur.Correct {
		return false, nil
	}
	q.correct++
	return true, nil
}

func (q *Quiz) Number() int    { return q.current + 1 }
func (q *Quiz) Total() int     { return len(q.questions) }
func (q *Quiz) Correct() int   { return q.correct }
func (q *Quiz) Needed() int    { return q.needed }
func (q *Quiz) Passed() bool   { return q.correct >= q.needed }
func (q *Quiz) Finished() bool { return q.Passed() || q.current >= len(q.questions) }
