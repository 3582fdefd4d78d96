package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

func buildQuiz(correctOptions ...int) *model.Quiz {
	quiz := &model.Quiz{ID: uuid.New(), StudentID: uuid.New()}
	for i, correct := range correctOptions {
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			ID:            uuid.New(),
			QuestionID:    uuid.New(),
			Text:          "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: correct,
			OrderNum:      i,
		})
	}
	return quiz
}

func TestApplyAnswers(t *testing.T) {
	t.Run("valid answers are recorded", func(t *testing.T) {
		quiz := buildQuiz(0, 1)
		answers := map[uuid.UUID]int{
			quiz.Questions[0].QuestionID: 2,
			quiz.Questions[1].QuestionID: 1,
		}

		if err := applyAnswers(quiz, answers); err != nil {
			t.Fatalf("applyAnswers returned %v", err)
		}
		if quiz.Questions[0].StudentAnswer == nil || *quiz.Questions[0].StudentAnswer != 2 {
			t.Errorf("question 0 answer = %v, want 2", quiz.Questions[0].StudentAnswer)
		}
		if quiz.Questions[1].StudentAnswer == nil || *quiz.Questions[1].StudentAnswer != 1 {
			t.Errorf("question 1 answer = %v, want 1", quiz.Questions[1].StudentAnswer)
		}
	})

	t.Run("unknown question id is rejected", func(t *testing.T) {
		quiz := buildQuiz(0)
		answers := map[uuid.UUID]int{uuid.New(): 0}

		err := applyAnswers(quiz, answers)
		if !errors.Is(err, ErrAnswerNotInQuiz) {
			t.Fatalf("applyAnswers returned %v, want ErrAnswerNotInQuiz", err)
		}
	})

	t.Run("option index out of range is rejected", func(t *testing.T) {
		quiz := buildQuiz(0)
		answers := map[uuid.UUID]int{quiz.Questions[0].QuestionID: 4}

		err := applyAnswers(quiz, answers)
		if !errors.Is(err, ErrAnswerNotInQuiz) {
			t.Fatalf("applyAnswers returned %v, want ErrAnswerNotInQuiz", err)
		}
	})

	t.Run("negative option index is rejected", func(t *testing.T) {
		quiz := buildQuiz(0)
		answers := map[uuid.UUID]int{quiz.Questions[0].QuestionID: -1}

		err := applyAnswers(quiz, answers)
		if !errors.Is(err, ErrAnswerNotInQuiz) {
			t.Fatalf("applyAnswers returned %v, want ErrAnswerNotInQuiz", err)
		}
	})

	t.Run("partial submissions are allowed", func(t *testing.T) {
		quiz := buildQuiz(0, 1, 2)
		answers := map[uuid.UUID]int{quiz.Questions[0].QuestionID: 0}

		if err := applyAnswers(quiz, answers); err != nil {
			t.Fatalf("applyAnswers returned %v", err)
		}
		if quiz.Questions[1].StudentAnswer != nil {
			t.Errorf("question 1 answer = %v, want nil", quiz.Questions[1].StudentAnswer)
		}
	})
}

func TestScoreQuiz(t *testing.T) {
	answer := func(n int) *int { return &n }

	tests := []struct {
		name        string
		correct     []int
		answers     []*int
		wantCorrect int
		wantScore   float64
	}{
		{
			name:        "all correct",
			correct:     []int{0, 1, 2},
			answers:     []*int{answer(0), answer(1), answer(2)},
			wantCorrect: 3,
			wantScore:   100,
		},
		{
			name:        "all wrong",
			correct:     []int{0, 1},
			answers:     []*int{answer(1), answer(0)},
			wantCorrect: 0,
			wantScore:   0,
		},
		{
			name:        "partial",
			correct:     []int{0, 1, 2, 3},
			answers:     []*int{answer(0), answer(1), answer(0), answer(0)},
			wantCorrect: 2,
			wantScore:   50,
		},
		{
			name:        "unanswered questions score as wrong",
			correct:     []int{0, 1},
			answers:     []*int{answer(0), nil},
			wantCorrect: 1,
			wantScore:   50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := buildQuiz(tt.correct...)
			for i, a := range tt.answers {
				quiz.Questions[i].StudentAnswer = a
			}

			correct, score := scoreQuiz(quiz)
			if correct != tt.wantCorrect {
				t.Errorf("correct = %d, want %d", correct, tt.wantCorrect)
			}
			if score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
		})
	}

	t.Run("empty quiz scores zero", func(t *testing.T) {
		quiz := buildQuiz()
		correct, score := scoreQuiz(quiz)
		if correct != 0 || score != 0 {
			t.Errorf("scoreQuiz = (%d, %v), want (0, 0)", correct, score)
		}
	})
}

func TestSnapshotQuestions(t *testing.T) {
	questions := []model.Question{
		{ID: uuid.New(), Text: "first", Options: []string{"a", "b"}, CorrectOption: 1},
		{ID: uuid.New(), Text: "second", Options: []string{"x", "y", "z"}, CorrectOption: 0},
	}

	snapshots := snapshotQuestions(questions)
	if len(snapshots) != 2 {
		t.Fatalf("len(snapshots) = %d, want 2", len(snapshots))
	}
	for i, snap := range snapshots {
		if snap.QuestionID != questions[i].ID {
			t.Errorf("snapshot %d question id = %s, want %s", i, snap.QuestionID, questions[i].ID)
		}
		if snap.CorrectOption != questions[i].CorrectOption {
			t.Errorf("snapshot %d correct option = %d, want %d", i, snap.CorrectOption, questions[i].CorrectOption)
		}
		if snap.OrderNum != i {
			t.Errorf("snapshot %d order = %d, want %d", i, snap.OrderNum, i)
		}
	}
}
