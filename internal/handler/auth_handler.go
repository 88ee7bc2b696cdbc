package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pokecreche/pokecreche-api/internal/models"
	appErrors "github.com/pokecreche/pokecreche-api/pkg/errors"
	"github.com/pokecreche/pokecreche-api/pkg/response"
)

type authService interface {
	RegisterStudent(ctx context.Context, req models.RegisterStudentRequest) (string, error)
	RegisterTeacher(ctx context.Context, req models.RegisterTeacherRequest) (string, error)
	LoginStudent(ctx context.Context, req models.StudentLoginRequest) (*models.LoginResult, error)
	LoginTeacher(ctx context.Context, req models.TeacherLoginRequest) (*models.LoginResult, error)
}

// AuthHandler wires the registration and login endpoints to the auth service.
type AuthHandler struct {
	service authService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// RegisterStudent godoc
// @Summary Register student
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.RegisterStudentRequest true "Student payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Failure 409 {object} response.Fail
// @Router /register/aluno [post]
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req models.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Campos nome, cpf e matricula são obrigatórios"))
		return
	}

	id, err := h.service.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Aluno cadastrado", "id": id})
}

// RegisterTeacher godoc
// @Summary Register teacher
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.RegisterTeacherRequest true "Teacher payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Failure 409 {object} response.Fail
// @Router /register/docente [post]
func (h *AuthHandler) RegisterTeacher(c *gin.Context) {
	var req models.RegisterTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Campos nome, identificador e senha são obrigatórios"))
		return
	}

	id, err := h.service.RegisterTeacher(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Docente cadastrado", "id": id})
}

// LoginStudent godoc
// @Summary Student login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.StudentLoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Failure 401 {object} response.Fail
// @Router /login/aluno [post]
func (h *AuthHandler) LoginStudent(c *gin.Context) {
	var req models.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Matrícula e CPF são obrigatórios"))
		return
	}

	res, err := h.service.LoginStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Login realizado",
		"token":   res.Token,
		"user":    res.User,
	})
}

// LoginTeacher godoc
// @Summary Teacher login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.TeacherLoginRequest true "Login payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Fail
// @Failure 401 {object} response.Fail
// @Router /login/docente [post]
func (h *AuthHandler) LoginTeacher(c *gin.Context) {
	var req models.TeacherLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Identificador e senha são obrigatórios"))
		return
	}

	res, err := h.service.LoginTeacher(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Login realizado",
		"token":   res.Token,
		"user":    res.User,
	})
}
