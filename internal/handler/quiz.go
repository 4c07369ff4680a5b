package handler

import (
	"net/http"

	"accessrealty/internal/quiz"

	"github.com/gin-gonic/gin"
)

// QuizHandler serves the selling-plan questionnaire definition so the
// client renders from the same source of truth the state machine uses.
type QuizHandler struct{}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler() *QuizHandler {
	return &QuizHandler{}
}

// Questions handles GET /api/v1/quiz/questions
func (h *QuizHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions":      quiz.Questions,
		"rankingPrompts": quiz.RankingPrompts,
	})
}
