package quiz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/birthday-wall/internal/controller"
	"github.com/lshigami/birthday-wall/internal/dto"
	"github.com/lshigami/birthday-wall/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	triviaService service.TriviaService
}

func NewQuizController(ts service.TriviaService) *QuizController {
	return &QuizController{triviaService: ts}
}

// GetQuestions godoc
// @Summary List the trivia questions
// @Description Returns the question bank without correct answers, in grading order.
// @Tags Trivia
// @Produce json
// @Success 200 {object} dto.TriviaQuestionsResponse
// @Router /trivia/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.TriviaQuestionsResponse{
		Success:   true,
		Questions: c.triviaService.Questions(),
	})
}

// SubmitTrivia godoc
// @Summary Submit a trivia attempt
// @Description Grades the answers against the question bank and records the attempt on the leaderboard.
// @Description Multiple-choice answers are zero-based option indexes; free-text answers are strings.
// @Tags Trivia
// @Accept json
// @Produce json
// @Param submission body dto.TriviaSubmitDTO true "Participant name and answers keyed by question id"
// @Success 200 {object} dto.TriviaSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Name and answers are required"
// @Failure 500 {object} dto.ErrorResponse "Failed to submit trivia"
// @Router /trivia [post]
func (c *QuizController) SubmitTrivia(ctx *gin.Context) {
	var req dto.TriviaSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTrivia: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Name and answers are required", Details: err.Error()})
		return
	}

	submission, result, err := c.triviaService.RecordSubmission(ctx.Request.Context(), req.Name, req.Answers)
	if err != nil {
		controller.RespondError(ctx, "Failed to submit trivia", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TriviaSubmitResponse{
		Success:    true,
		Submission: *submission,
		Results:    *result,
	})
}

// GetLeaderboard godoc
// @Summary Trivia leaderboard
// @Description All submissions, highest score first; equal scores are ordered by submission time.
// @Tags Trivia
// @Produce json
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch leaderboard"
// @Router /trivia/leaderboard [get]
func (c *QuizController) GetLeaderboard(ctx *gin.Context) {
	submissions, err := c.triviaService.ListSubmissions(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to fetch leaderboard", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LeaderboardResponse{Success: true, Submissions: submissions})
}
