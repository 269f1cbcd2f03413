package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rngenius/rngenius-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeneratorRepo(t *testing.T) (*GeneratorRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewGeneratorRepository(db), mock
}

func TestGeneratorRepository_Create_WithOptions(t *testing.T) {
	repo, mock := newTestGeneratorRepo(t)

	gen := &model.Generator{
		OwnerID: 1,
		Name:    "Dinner picker",
		Options: []model.Option{
			{Category: "food", Value: "pizza"},
			{Category: "food", Value: "ramen"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO generators").
		WithArgs(gen.OwnerID, gen.Name).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO options").
		WithArgs(int64(5), "food", "pizza").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO options").
		WithArgs(int64(5), "food", "ramen").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), gen))
	assert.Equal(t, int64(5), gen.ID)
	assert.Equal(t, int64(10), gen.Options[0].ID)
	assert.Equal(t, int64(5), gen.Options[0].GeneratorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGeneratorRepository_GetByID(t *testing.T) {
	repo, mock := newTestGeneratorRepo(t)

	mock.ExpectQuery("SELECT id, user_id, name FROM generators").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).AddRow(5, 1, "Dinner picker"))
	mock.ExpectQuery("SELECT id, generator_id, category, value FROM options").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "generator_id", "category", "value"}).
			AddRow(10, 5, "food", "pizza").
			AddRow(11, 5, "food", "ramen"))

	gen, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen.OwnerID)
	assert.Len(t, gen.Options, 2)
	assert.Equal(t, "pizza", gen.Options[0].Value)
}

func TestGeneratorRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestGeneratorRepo(t)

	mock.ExpectQuery("SELECT id, user_id, name FROM generators").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGeneratorNotFound)
}

func TestGeneratorRepository_ListByOwner_Empty(t *testing.T) {
	repo, mock := newTestGeneratorRepo(t)

	mock.ExpectQuery("SELECT id, user_id, name FROM generators WHERE user_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}))

	generators, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, generators)
	assert.Empty(t, generators)
}

func TestGeneratorRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestGeneratorRepo(t)

	mock.ExpectExec("DELETE FROM generators").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGeneratorNotFound)
}

func TestGeneratorRepository_DeleteOptionByCategory(t *testing.T) {
	repo, mock := newTestGeneratorRepo(t)

	mock.ExpectExec("DELETE FROM options").
		WithArgs(int64(10), "food").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteOptionByCategory(context.Background(), 10, "food"))
}

func TestGeneratorRepository_DeleteOptionByCategory_WrongCategory(t *testing.T) {
	repo, mock := newTestGeneratorRepo(t)

	mock.ExpectExec("DELETE FROM options").
		WithArgs(int64(10), "drinks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteOptionByCategory(context.Background(), 10, "drinks")
	assert.ErrorIs(t, err, ErrOptionNotFound)
}
