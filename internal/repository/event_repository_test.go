package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokecreche/pokecreche-api/internal/models"
)

func TestEventRepositoryListRange(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	rows := sqlmock.NewRows([]string{"id", "teacher_id", "date", "title", "color"}).
		AddRow("event-1", "teacher-1", "2024-02-01", "Reunião", "green").
		AddRow("event-2", nil, "2024-02-29", "Feriado", "red")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, teacher_id, to_char(date, 'YYYY-MM-DD') AS date, title, color\nFROM calendario_events WHERE date BETWEEN $1 AND $2 ORDER BY date ASC")).
		WithArgs("2024-02-01", "2024-02-29").
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), models.CalendarFilter{StartDate: "2024-02-01", EndDate: "2024-02-29"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2024-02-01", events[0].Date)
	assert.Nil(t, events[1].TeacherID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListFiltersByTeacher(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, teacher_id, to_char(date, 'YYYY-MM-DD') AS date, title, color\nFROM calendario_events WHERE date BETWEEN $1 AND $2 AND teacher_id = $3 ORDER BY date ASC")).
		WithArgs("2024-05-01", "2024-05-31", "teacher-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "date", "title", "color"}))

	events, err := repo.List(context.Background(), models.CalendarFilter{StartDate: "2024-05-01", EndDate: "2024-05-31", TeacherID: "teacher-1"})
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpsertReturnsWinningID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	// On a (teacher_id, date) conflict the existing row keeps its id.
	mock.ExpectQuery("INSERT INTO calendario_events").
		WithArgs(sqlmock.AnyArg(), "teacher-1", "2024-05-10", "Reunião", "green", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("existing-id"))

	teacherID := "teacher-1"
	event := &models.CalendarEvent{TeacherID: &teacherID, Date: "2024-05-10", Title: "Reunião", Color: models.ColorGreen}
	err := repo.Upsert(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, "existing-id", event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpdateReportsAffectedRows(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec("UPDATE calendario_events SET").
		WithArgs("2024-05-11", "Aula", "none", "teacher-1", sqlmock.AnyArg(), "event-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	teacherID := "teacher-1"
	affected, err := repo.Update(context.Background(), &models.CalendarEvent{
		ID: "event-1", TeacherID: &teacherID, Date: "2024-05-11", Title: "Aula", Color: models.ColorNone,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryUpdateUnknownID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec("UPDATE calendario_events SET").
		WithArgs("2024-05-11", "Aula", "none", "teacher-1", sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	teacherID := "teacher-1"
	affected, err := repo.Update(context.Background(), &models.CalendarEvent{
		ID: "missing", TeacherID: &teacherID, Date: "2024-05-11", Title: "Aula", Color: models.ColorNone,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM calendario_events WHERE id = $1")).
		WithArgs("event-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), "event-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
