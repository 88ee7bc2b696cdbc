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

// TeacherRepository manages persistence for "docente" records.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// ExistsByIdentificador checks whether a teacher login identifier is taken.
func (r *TeacherRepository) ExistsByIdentificador(ctx context.Context, identificador string) (bool, error) {
	const query = "SELECT 1 FROM docentes WHERE identificador = $1 LIMIT 1"
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, identificador); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check teacher: %w", err)
	}
	return true, nil
}

// Create inserts a new teacher record.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO docentes (id, nome, identificador, senha_hash, created_at)
        VALUES (:id, :nome, :identificador, :senha_hash, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// FindByIdentificador fetches a teacher by login identifier. Returns
// sql.ErrNoRows when no teacher holds it.
func (r *TeacherRepository) FindByIdentificador(ctx context.Context, identificador string) (*models.Teacher, error) {
	const query = `SELECT id, nome, identificador, senha_hash, created_at FROM docentes WHERE identificador = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, identificador); err != nil {
		return nil, err
	}
	return &teacher, nil
}
