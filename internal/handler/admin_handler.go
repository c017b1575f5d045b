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

type AdminHandler struct {
	approvalService service.ApprovalService
	syncService     service.SyncService
	searchService   service.GraduateSearchService
}

func NewAdminHandler(
	approvalService service.ApprovalService,
	syncService service.SyncService,
	searchService service.GraduateSearchService,
) *AdminHandler {
	return &AdminHandler{
		approvalService: approvalService,
		syncService:     syncService,
		searchService:   searchService,
	}
}

func (h *AdminHandler) ListGraduates(c *gin.Context) {
	var query dto.GraduateListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	graduates, err := h.approvalService.ListGraduates(c.Request.Context(), survey.Status(query.Status))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": graduates})
}

func (h *AdminHandler) GetGraduate(c *gin.Context) {
	graduate, err := h.approvalService.GetGraduate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GraduateResponse{Graduate: graduate})
}

func (h *AdminHandler) UpdateGraduateStatus(c *gin.Context) {
	var input dto.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	graduate, err := h.approvalService.UpdateStatus(c.Request.Context(), c.Param("id"), survey.Status(input.Status))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GraduateResponse{Graduate: graduate})
}

func (h *AdminHandler) SearchGraduates(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	docs, err := h.searchService.Search(query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func (h *AdminHandler) SyncStatuses(c *gin.Context) {
	summary, err := h.syncService.SyncStatuses(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SyncSummaryResponse{
		Processed:     summary.Processed,
		Synced:        summary.Synced,
		AlreadyInSync: summary.AlreadyInSync,
		NotFound:      summary.NotFound,
		Failed:        summary.Failed,
	})
}
