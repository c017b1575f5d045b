package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcus024/ssu-alumni-tracker/internal/dto"
	"github.com/marcus024/ssu-alumni-tracker/internal/service"
	pkgvalidator "github.com/marcus024/ssu-alumni-tracker/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": pkgvalidator.FormatValidationError(err)})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
