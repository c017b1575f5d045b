package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcus024/ssu-alumni-tracker/internal/repository"
	"github.com/marcus024/ssu-alumni-tracker/pkg/response"
)

type DepartmentHandler struct {
	departmentRepo repository.DepartmentRepository
}

func NewDepartmentHandler(departmentRepo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{
		departmentRepo: departmentRepo,
	}
}

func (h *DepartmentHandler) GetAllDepartments(c *gin.Context) {
	departments, err := h.departmentRepo.FindAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": departments})
}
