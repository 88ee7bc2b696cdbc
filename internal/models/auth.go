package models

import "github.com/golang-jwt/jwt/v5"

// Subject kinds embedded in issued tokens.
const (
	SubjectStudent = "aluno"
	SubjectTeacher = "docente"
)

// RegisterStudentRequest is the /register/aluno payload.
type RegisterStudentRequest struct {
	Nome      string `json:"nome" validate:"required"`
	CPF       string `json:"cpf" validate:"required"`
	Matricula string `json:"matricula" validate:"required"`
}

// RegisterTeacherRequest is the /register/docente payload.
type RegisterTeacherRequest struct {
	Nome          string `json:"nome" validate:"required"`
	Identificador string `json:"identificador" validate:"required"`
	Senha         string `json:"senha" validate:"required"`
}

// StudentLoginRequest is the /login/aluno payload.
type StudentLoginRequest struct {
	Matricula string `json:"matricula" validate:"required"`
	CPF       string `json:"cpf" validate:"required"`
}

// TeacherLoginRequest is the /login/docente payload.
type TeacherLoginRequest struct {
	Identificador string `json:"identificador" validate:"required"`
	Senha         string `json:"senha" validate:"required"`
}

// StudentInfo describes the logged-in student in responses.
type StudentInfo struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	CPF       string `json:"cpf"`
}

// TeacherInfo describes the logged-in teacher in responses.
type TeacherInfo struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Identificador string `json:"identificador"`
}

// LoginResult carries the issued token together with public profile data.
type LoginResult struct {
	Token string
	User  interface{}
}

// JWTClaims is the payload of issued access tokens. Validity is decided
// solely by signature and expiry; nothing is stored server-side.
type JWTClaims struct {
	UserID        string `json:"user_id"`
	Kind          string `json:"kind"`
	Matricula     string `json:"matricula,omitempty"`
	Identificador string `json:"identificador,omitempty"`
	jwt.RegisteredClaims
}
