package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/mastrino/reflection/internal/catalog"
	"github.com/mastrino/reflection/internal/dto"
	"github.com/mastrino/reflection/internal/service"
)

type QuestionnaireController struct {
	tracker    service.TrackerService
	submission service.SubmissionService
}

func NewQuestionnaireController(tracker service.TrackerService, submission service.SubmissionService) *QuestionnaireController {
	return &QuestionnaireController{tracker: tracker, submission: submission}
}

// GetCatalog godoc
// @Summary Get the question catalog
// @Description Returns all sections with their icons and ordered questions, plus the total question count.
// @Tags Questionnaire
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Router /catalog [get]
func (c *QuestionnaireController) GetCatalog(ctx *gin.Context) {
	resp := dto.CatalogResponse{TotalQuestions: catalog.TotalQuestions}
	for idx, section := range catalog.Sections {
		var sr dto.SectionResponse
		if err := copier.Copy(&sr, &section); err != nil {
			log.Error().Err(err).Int("section", idx).Msg("GetCatalog: failed to copy section")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build catalog"})
			return
		}
		sr.Index = idx
		resp.Sections = append(resp.Sections, sr)
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetState godoc
// @Summary Get saved answers and progress
// @Description Returns everything a client needs to restore the page: saved answers, answered/total counts, completion percent and the submitted flag.
// @Tags Questionnaire
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Router /state [get]
func (c *QuestionnaireController) GetState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.tracker.State())
}

// SaveAnswer godoc
// @Summary Save one answer
// @Description Accepts a free-text answer for a question key ("section-question", zero-based). The write is debounced; 202 means accepted, not yet durable. Empty answers are allowed and count as unanswered.
// @Tags Questionnaire
// @Accept json
// @Produce json
// @Param key path string true "Question key, e.g. 0-3"
// @Param answer body dto.SaveAnswerRequest true "Answer text"
// @Success 202 {object} dto.SaveAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed or out-of-range key, or bad body"
// @Failure 409 {object} dto.ErrorResponse "Questionnaire already submitted"
// @Router /answers/{key} [put]
func (c *QuestionnaireController) SaveAnswer(ctx *gin.Context) {
	if c.tracker.IsSubmitted() {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Questionnaire has already been submitted"})
		return
	}

	var req dto.SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	key := ctx.Param("key")
	if err := c.tracker.SetAnswer(key, *req.Answer); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("SaveAnswer: rejected question key")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	answered := c.tracker.AnsweredCount()
	ctx.JSON(http.StatusAccepted, dto.SaveAnswerResponse{
		QuestionKey:    key,
		AnsweredCount:  answered,
		TotalQuestions: catalog.TotalQuestions,
		Percent:        catalog.Percent(answered, catalog.TotalQuestions),
	})
}

// Submit godoc
// @Summary Submit the questionnaire
// @Description Compiles every question with its answer (or a placeholder), emails the full report and moves the questionnaire to its terminal submitted state. Requires confirm=true; cannot be undone.
// @Tags Questionnaire
// @Accept json
// @Produce json
// @Param confirmation body dto.SubmitRequest true "Explicit confirmation"
// @Success 200 {object} dto.SubmissionReceipt
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Failure 502 {object} dto.ErrorResponse "Report email or record update failed; state unchanged, retry allowed"
// @Router /submit [post]
func (c *QuestionnaireController) Submit(ctx *gin.Context) {
	var req dto.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !req.Confirm {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Submission requires explicit confirmation"})
		return
	}

	receipt, err := c.submission.Submit()
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubmitted) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Questionnaire has already been submitted"})
			return
		}
		log.Error().Err(err).Msg("Submit: submission failed")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "There was an error submitting. Please try again."})
		return
	}
	ctx.JSON(http.StatusOK, receipt)
}
