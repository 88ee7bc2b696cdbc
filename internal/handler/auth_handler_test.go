package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokecreche/pokecreche-api/internal/models"
	appErrors "github.com/pokecreche/pokecreche-api/pkg/errors"
)

type mockAuthService struct {
	registerStudentFn func(ctx context.Context, req models.RegisterStudentRequest) (string, error)
	registerTeacherFn func(ctx context.Context, req models.RegisterTeacherRequest) (string, error)
	loginStudentFn    func(ctx context.Context, req models.StudentLoginRequest) (*models.LoginResult, error)
	loginTeacherFn    func(ctx context.Context, req models.TeacherLoginRequest) (*models.LoginResult, error)
}

func (m *mockAuthService) RegisterStudent(ctx context.Context, req models.RegisterStudentRequest) (string, error) {
	return m.registerStudentFn(ctx, req)
}

func (m *mockAuthService) RegisterTeacher(ctx context.Context, req models.RegisterTeacherRequest) (string, error) {
	return m.registerTeacherFn(ctx, req)
}

func (m *mockAuthService) LoginStudent(ctx context.Context, req models.StudentLoginRequest) (*models.LoginResult, error) {
	return m.loginStudentFn(ctx, req)
}

func (m *mockAuthService) LoginTeacher(ctx context.Context, req models.TeacherLoginRequest) (*models.LoginResult, error) {
	return m.loginTeacherFn(ctx, req)
}

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/register/aluno", h.RegisterStudent)
	r.POST("/register/docente", h.RegisterTeacher)
	r.POST("/login/aluno", h.LoginStudent)
	r.POST("/login/docente", h.LoginTeacher)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestRegisterStudentCreated(t *testing.T) {
	svc := &mockAuthService{
		registerStudentFn: func(ctx context.Context, req models.RegisterStudentRequest) (string, error) {
			assert.Equal(t, "Maria", req.Nome)
			return "student-1", nil
		},
	}
	w, body := doJSON(t, newAuthRouter(svc), http.MethodPost, "/register/aluno", gin.H{
		"nome": "Maria", "cpf": "12345678900", "matricula": "2024001",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Aluno cadastrado", body["message"])
	assert.Equal(t, "student-1", body["id"])
}

func TestRegisterStudentConflict(t *testing.T) {
	svc := &mockAuthService{
		registerStudentFn: func(ctx context.Context, req models.RegisterStudentRequest) (string, error) {
			return "", appErrors.Clone(appErrors.ErrConflict, "Aluno já cadastrado")
		},
	}
	w, body := doJSON(t, newAuthRouter(svc), http.MethodPost, "/register/aluno", gin.H{
		"nome": "Maria", "cpf": "12345678900", "matricula": "2024001",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Aluno já cadastrado", body["message"])
}

func TestRegisterStudentMalformedJSON(t *testing.T) {
	called := false
	svc := &mockAuthService{
		registerStudentFn: func(ctx context.Context, req models.RegisterStudentRequest) (string, error) {
			called = true
			return "", nil
		},
	}
	r := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/register/aluno", bytes.NewBufferString("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestRegisterTeacherCreated(t *testing.T) {
	svc := &mockAuthService{
		registerTeacherFn: func(ctx context.Context, req models.RegisterTeacherRequest) (string, error) {
			assert.Equal(t, "ana1", req.Identificador)
			return "teacher-1", nil
		},
	}
	w, body := doJSON(t, newAuthRouter(svc), http.MethodPost, "/register/docente", gin.H{
		"nome": "Ana", "identificador": "ana1", "senha": "s3nha",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Docente cadastrado", body["message"])
	assert.Equal(t, "teacher-1", body["id"])
}

func TestLoginTeacherOK(t *testing.T) {
	svc := &mockAuthService{
		loginTeacherFn: func(ctx context.Context, req models.TeacherLoginRequest) (*models.LoginResult, error) {
			return &models.LoginResult{
				Token: "signed-token",
				User:  models.TeacherInfo{ID: "teacher-1", Nome: "Ana", Identificador: "ana1"},
			}, nil
		},
	}
	w, body := doJSON(t, newAuthRouter(svc), http.MethodPost, "/login/docente", gin.H{
		"identificador": "ana1", "senha": "s3nha",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "signed-token", body["token"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ana1", user["identificador"])
}

func TestLoginStudentInvalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginStudentFn: func(ctx context.Context, req models.StudentLoginRequest) (*models.LoginResult, error) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Matrícula ou CPF inválidos")
		},
	}
	w, body := doJSON(t, newAuthRouter(svc), http.MethodPost, "/login/aluno", gin.H{
		"matricula": "2024001", "cpf": "000",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Matrícula ou CPF inválidos", body["message"])
}
