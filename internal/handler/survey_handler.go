package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcus024/ssu-alumni-tracker/internal/dto"
	"github.com/marcus024/ssu-alumni-tracker/internal/service"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
	"github.com/marcus024/ssu-alumni-tracker/pkg/response"
	pkgvalidator "github.com/marcus024/ssu-alumni-tracker/pkg/validator"
)

type SurveyHandler struct {
	registrationService service.RegistrationService
}

func NewSurveyHandler(registrationService service.RegistrationService) *SurveyHandler {
	return &SurveyHandler{
		registrationService: registrationService,
	}
}

func (h *SurveyHandler) StartSession(c *gin.Context) {
	w, err := h.registrationService.StartSession(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse(w))
}

func (h *SurveyHandler) GetSession(c *gin.Context) {
	w, err := h.registrationService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(w))
}

func (h *SurveyHandler) PutAnswers(c *gin.Context) {
	var input dto.AnswersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	w, err := h.registrationService.PutAnswers(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(w))
}

// AttachImages accepts the profile picture and up to 5 activity images as
// multipart form files.
func (h *SurveyHandler) AttachImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read multipart form"})
		return
	}

	var picture *dto.UploadFile
	if headers := form.File["profile_picture"]; len(headers) > 0 {
		file, err := headers[0].Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read profile picture"})
			return
		}
		defer file.Close()

		picture = &dto.UploadFile{
			Reader:   file,
			FileName: headers[0].Filename,
			Size:     headers[0].Size,
		}
	}

	var images []*dto.UploadFile
	for _, header := range form.File["activity_images"] {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read activity image"})
			return
		}
		defer file.Close()

		images = append(images, &dto.UploadFile{
			Reader:   file,
			FileName: header.Filename,
			Size:     header.Size,
		})
	}

	w, err := h.registrationService.AttachImages(c.Request.Context(), c.Param("id"), picture, images)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(w))
}

func (h *SurveyHandler) Advance(c *gin.Context) {
	w, fieldErrs, err := h.registrationService.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": fieldErrs,
		})
		return
	}

	c.JSON(http.StatusOK, sessionResponse(w))
}

func (h *SurveyHandler) Retreat(c *gin.Context) {
	w, err := h.registrationService.Retreat(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(w))
}

func (h *SurveyHandler) Submit(c *gin.Context) {
	profile, err := h.registrationService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitResponse{
		ProfileID: profile.ID.String(),
		Status:    profile.Status,
	})
}

func (h *SurveyHandler) Abandon(c *gin.Context) {
	if err := h.registrationService.Abandon(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "survey session abandoned"})
}

func sessionResponse(w *survey.Workflow) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID:       w.ID,
		State:           w.State,
		Step:            w.Step,
		RequiredFields:  survey.RequiredFields(w.Step, &w.Answers),
		VisibleSections: survey.VisibleSections(&w.Answers),
		Answers:         w.Answers,
		Errors:          w.LastErrors,
	}
}
