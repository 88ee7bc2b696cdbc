package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pokecreche/pokecreche-api/internal/models"
	"github.com/pokecreche/pokecreche-api/internal/repository"
	appErrors "github.com/pokecreche/pokecreche-api/pkg/errors"
)

type studentRepository interface {
	ExistsByMatriculaOrCPF(ctx context.Context, matricula, cpf string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	FindByCredentials(ctx context.Context, matricula, cpf string) (*models.Student, error)
}

type teacherRepository interface {
	ExistsByIdentificador(ctx context.Context, identificador string) (bool, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	FindByIdentificador(ctx context.Context, identificador string) (*models.Teacher, error)
}

// AuthConfig defines configuration for authentication flows. The secret
// is process-wide; rotating it invalidates every outstanding token.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// AuthService covers registration, login and token issue/verify for both
// subject kinds.
type AuthService struct {
	students  studentRepository
	teachers  teacherRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(students studentRepository, teachers teacherRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{students: students, teachers: teachers, validator: validate, logger: logger, config: config}
}

// RegisterStudent creates a student after normalising both identifying
// fields. Duplicates on either field are a conflict; the check-then-insert
// race is closed by the unique constraint backstop.
func (s *AuthService) RegisterStudent(ctx context.Context, req models.RegisterStudentRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Campos nome, cpf e matricula são obrigatórios")
	}

	cpf := onlyDigits(req.CPF)
	matricula := strings.TrimSpace(req.Matricula)
	if cpf == "" || matricula == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Campos nome, cpf e matricula são obrigatórios")
	}

	taken, err := s.students.ExistsByMatriculaOrCPF(ctx, matricula, cpf)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao cadastrar aluno")
	}
	if taken {
		return "", appErrors.Clone(appErrors.ErrConflict, "Aluno já cadastrado")
	}

	student := &models.Student{Nome: req.Nome, CPF: cpf, Matricula: matricula}
	if err := s.students.Create(ctx, student); err != nil {
		if repository.IsUniqueViolation(err) {
			return "", appErrors.Clone(appErrors.ErrConflict, "Aluno já cadastrado")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao cadastrar aluno")
	}
	return student.ID, nil
}

// RegisterTeacher creates a teacher, storing only the bcrypt digest of
// the presented password.
func (s *AuthService) RegisterTeacher(ctx context.Context, req models.RegisterTeacherRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Campos nome, identificador e senha são obrigatórios")
	}

	taken, err := s.teachers.ExistsByIdentificador(ctx, req.Identificador)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao cadastrar docente")
	}
	if taken {
		return "", appErrors.Clone(appErrors.ErrConflict, "Identificador já existe")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao cadastrar docente")
	}

	teacher := &models.Teacher{Nome: req.Nome, Identificador: req.Identificador, SenhaHash: string(hash)}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		if repository.IsUniqueViolation(err) {
			return "", appErrors.Clone(appErrors.ErrConflict, "Identificador já existe")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro ao cadastrar docente")
	}
	return teacher.ID, nil
}

// LoginStudent authenticates a student by the (matricula, cpf) pair and
// issues a token.
func (s *AuthService) LoginStudent(ctx context.Context, req models.StudentLoginRequest) (*models.LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Matrícula e CPF são obrigatórios")
	}

	student, err := s.students.FindByCredentials(ctx, strings.TrimSpace(req.Matricula), onlyDigits(req.CPF))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Matrícula ou CPF inválidos")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro no servidor")
	}

	token, err := s.issueToken(&models.JWTClaims{
		UserID:    student.ID,
		Kind:      models.SubjectStudent,
		Matricula: student.Matricula,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro no servidor")
	}

	return &models.LoginResult{
		Token: token,
		User: models.StudentInfo{
			ID:        student.ID,
			Nome:      student.Nome,
			Matricula: student.Matricula,
			CPF:       student.CPF,
		},
	}, nil
}

// LoginTeacher authenticates a teacher by identificador and password.
// Unknown identifier and wrong password produce the same error.
func (s *AuthService) LoginTeacher(ctx context.Context, req models.TeacherLoginRequest) (*models.LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador e senha são obrigatórios")
	}

	teacher, err := s.teachers.FindByIdentificador(ctx, req.Identificador)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Identificador ou senha inválidos")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro no servidor")
	}

	if bcrypt.CompareHashAndPassword([]byte(teacher.SenhaHash), []byte(req.Senha)) != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Identificador ou senha inválidos")
	}

	token, err := s.issueToken(&models.JWTClaims{
		UserID:        teacher.ID,
		Kind:          models.SubjectTeacher,
		Identificador: teacher.Identificador,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Erro no servidor")
	}

	return &models.LoginResult{
		Token: token,
		User: models.TeacherInfo{
			ID:            teacher.ID,
			Nome:          teacher.Nome,
			Identificador: teacher.Identificador,
		},
	}, nil
}

// ValidateToken parses and validates an access token returning the
// claims. Bad signature, malformed structure and expiry all collapse to
// the same unauthorized error so callers cannot tell them apart.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "Token inválido")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Token inválido")
	}

	return claims, nil
}

func (s *AuthService) issueToken(claims *models.JWTClaims) (string, error) {
	issuedAt := time.Now().UTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.config.Issuer,
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenExpiry)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.TokenSecret))
}

// onlyDigits strips everything but ASCII digits, so formatted CPFs like
// 123.456.789-00 compare equal to their bare form.
func onlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
