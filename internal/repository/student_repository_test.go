package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokecreche/pokecreche-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestStudentRepositoryExistsByMatriculaOrCPF(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM alunos WHERE matricula = $1 OR cpf = $2 LIMIT 1")).
		WithArgs("2024001", "12345678900").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByMatriculaOrCPF(context.Background(), "2024001", "12345678900")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryExistsByMatriculaOrCPFNoRows(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM alunos WHERE matricula = $1 OR cpf = $2 LIMIT 1")).
		WithArgs("2024001", "12345678900").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.ExistsByMatriculaOrCPF(context.Background(), "2024001", "12345678900")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO alunos").
		WithArgs(sqlmock.AnyArg(), "Maria", "12345678900", "2024001", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	student := &models.Student{Nome: "Maria", CPF: "12345678900", Matricula: "2024001"}
	err := repo.Create(context.Background(), student)
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.False(t, student.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByCredentials(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nome", "cpf", "matricula", "created_at"}).
		AddRow("student-1", "Maria", "12345678900", "2024001", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nome, cpf, matricula, created_at FROM alunos WHERE matricula = $1 AND cpf = $2")).
		WithArgs("2024001", "12345678900").
		WillReturnRows(rows)

	student, err := repo.FindByCredentials(context.Background(), "2024001", "12345678900")
	require.NoError(t, err)
	assert.Equal(t, "student-1", student.ID)
	assert.Equal(t, "Maria", student.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}
