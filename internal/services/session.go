package services

import (
	"time"

	"github.com/google/uuid"

	"examgen/internal/models"
)

// Session accumulates generated material over one interactive run. Both
// sequences are append-only and live only as long as the process; nothing is
// ever persisted, deduplicated, or reordered.
type Session struct {
	ID           string
	StartedAt    time.Time
	QuestionBank []any
	QuizHistory  []models.Artifact
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

// AddQuestions appends every entry of the artifact's "questions" array to the
// bank and reports how many were added. Artifacts without such an array
// contribute nothing.
func (s *Session) AddQuestions(artifact models.Artifact) int {
	questions, ok := artifact["questions"].([]any)
	if !ok {
		return 0
	}
	s.QuestionBank = append(s.QuestionBank, questions...)
	return len(questions)
}

// AddExam records a generated practice exam in the quiz history.
func (s *Session) AddExam(artifact models.Artifact) {
	s.QuizHistory = append(s.QuizHistory, artifact)
}

// RecentQuestions returns up to n of the most recently banked questions,
// oldest first.
func (s *Session) RecentQuestions(n int) []any {
	if n <= 0 || len(s.QuestionBank) == 0 {
		return nil
	}
	if n > len(s.QuestionBank) {
		n = len(s.QuestionBank)
	}
	return s.QuestionBank[len(s.QuestionBank)-n:]
}
