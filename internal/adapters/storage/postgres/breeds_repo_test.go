package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"breed-registry/internal/domain/breeds"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var breedColumns = []string{"id", "breed", "image_url", "votes"}

func newMockRepo(t *testing.T) (*BreedsRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewBreedsRepo(db), mock
}

func TestBreedsRepo_List_OrdersByVotes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, breed, image_url, votes FROM breeds ORDER BY votes DESC`).
		WillReturnRows(sqlmock.NewRows(breedColumns).
			AddRow(int64(2), "Pug", "http://x/pug.png", 5).
			AddRow(int64(1), "Beagle", nil, 1))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, breeds.Breed{ID: 2, Name: "Pug", ImageURL: strPtr("http://x/pug.png"), Votes: 5}, got[0])
	assert.Nil(t, got[1].ImageURL, "NULL image_url stays nil")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_List_EmptyIsNotNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM breeds`).WillReturnRows(sqlmock.NewRows(breedColumns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBreedsRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM breeds WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows(breedColumns))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, breeds.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_GetByID_WrapsDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`FROM breeds WHERE id = \$1`).WithArgs(int64(1)).WillReturnError(boom)

	_, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, breeds.ErrNotFound)
}

func TestBreedsRepo_Vote_IsSingleUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO breeds \(breed, image_url\) VALUES \(\$1, \$2\) ON CONFLICT \(breed\) DO UPDATE SET votes = breeds.votes \+ 1 RETURNING id, breed, image_url, votes`).
		WithArgs("Pug", "http://x/pug.png").
		WillReturnRows(sqlmock.NewRows(breedColumns).AddRow(int64(1), "Pug", "http://x/pug.png", 0))

	b, err := repo.Vote(context.Background(), "Pug", strPtr("http://x/pug.png"))
	require.NoError(t, err)
	assert.Equal(t, breeds.Breed{ID: 1, Name: "Pug", ImageURL: strPtr("http://x/pug.png"), Votes: 0}, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_Vote_NilImageIsNull(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO breeds`).
		WithArgs("Pug", nil).
		WillReturnRows(sqlmock.NewRows(breedColumns).AddRow(int64(1), "Pug", nil, 3))

	b, err := repo.Vote(context.Background(), "Pug", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Votes)
	assert.Nil(t, b.ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_Vote_EmptyImageIsKept(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO breeds`).
		WithArgs("Pug", "").
		WillReturnRows(sqlmock.NewRows(breedColumns).AddRow(int64(1), "Pug", "", 0))

	b, err := repo.Vote(context.Background(), "Pug", strPtr(""))
	require.NoError(t, err)
	require.NotNil(t, b.ImageURL)
	assert.Equal(t, "", *b.ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_DeleteByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM breeds WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM breeds WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByID(context.Background(), 7))
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), 8), breeds.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreedsRepo_DeleteAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`^DELETE FROM breeds$`).WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(s string) *string { return &s }
