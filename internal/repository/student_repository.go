package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pokecreche/pokecreche-api/internal/models"
)

// StudentRepository manages persistence for "aluno" records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ExistsByMatriculaOrCPF checks whether a student already holds either
// identifying field. Callers pass the already-normalised values.
func (r *StudentRepository) ExistsByMatriculaOrCPF(ctx context.Context, matricula, cpf string) (bool, error) {
	const query = "SELECT 1 FROM alunos WHERE matricula = $1 OR cpf = $2 LIMIT 1"
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, matricula, cpf); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}
	return true, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO alunos (id, nome, cpf, matricula, created_at)
        VALUES (:id, :nome, :cpf, :matricula, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// FindByCredentials fetches the student matching both normalised login
// fields exactly. Returns sql.ErrNoRows when there is no match.
func (r *StudentRepository) FindByCredentials(ctx context.Context, matricula, cpf string) (*models.Student, error) {
	const query = `SELECT id, nome, cpf, matricula, created_at FROM alunos WHERE matricula = $1 AND cpf = $2`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, matricula, cpf); err != nil {
		return nil, err
	}
	return &student, nil
}
