package mysql_test

import (
	"context"
	"testing"
	"time"

	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/shopway/shopway/domain"
	mysqlRepo "github.com/shopway/shopway/internal/repository/mysql"
)

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gdb, mock
}

func commentColumns() []string {
	return []string{"id", "product_id", "user_id", "content", "parent_id", "reply_count", "is_deleted", "created_at", "updated_at"}
}

func TestGetByIDSkipsDeleted(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE is_deleted = \\? AND id = \\?").
		WithArgs(false, int64(42), int64(1)).
		WillReturnRows(sqlmock.NewRows(commentColumns()))

	_, err := repo.GetByID(context.Background(), 42, false)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDIncludeDeleted(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
		WithArgs(int64(42), int64(1)).
		WillReturnRows(sqlmock.NewRows(commentColumns()).
			AddRow(42, 7, 3, "gone", nil, 0, true, now, now))

	c, err := repo.GetByID(context.Background(), 42, true)

	require.NoError(t, err)
	assert.True(t, c.IsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteTwiceReportsNotFound(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec("UPDATE `comment` SET").
		WithArgs(true, sqlmock.AnyArg(), int64(42), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), 42))

	// second delete matches zero rows because of the is_deleted guard
	mock.ExpectExec("UPDATE `comment` SET").
		WithArgs(true, sqlmock.AnyArg(), int64(42), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContentOnDeletedComment(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec("UPDATE `comment` SET").
		WithArgs("edited", sqlmock.AnyArg(), int64(42), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateContent(context.Background(), 42, "edited")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementReplyCountIsAtomicExpr(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec("UPDATE `comment` SET `reply_count`=reply_count \\+ \\? WHERE id = \\?").
		WithArgs(int64(1), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementReplyCount(context.Background(), 10, 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecountReplies(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `comment` WHERE parent_id = \\? AND is_deleted = \\?").
		WithArgs(int64(10), false).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectExec("UPDATE `comment` SET `reply_count`=\\? WHERE id = \\?").
		WithArgs(int64(3), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.RecountReplies(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchTopLevelPage(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	// count and page select run concurrently
	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `comment` WHERE is_deleted = \\? AND product_id = \\? AND parent_id IS NULL").
		WithArgs(false, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(12))
	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE is_deleted = \\? AND product_id = \\? AND parent_id IS NULL ORDER BY created_at DESC").
		WithArgs(false, int64(7), int64(10)).
		WillReturnRows(sqlmock.NewRows(commentColumns()).
			AddRow(2, 7, 3, "second", nil, 0, false, now, now).
			AddRow(1, 7, 5, "first", nil, 2, false, now.Add(-time.Hour), now.Add(-time.Hour)))

	rows, total, err := repo.Fetch(context.Background(),
		domain.CommentFilter{ProductID: 7, TopLevelOnly: true},
		domain.PageQuery{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, int64(2), rows[1].ReplyCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupByProduct(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT c.product_id AS product_id, p.name AS product_name, p.slug AS product_slug, COUNT\\(\\*\\) AS comment_count FROM comment AS c JOIN product p ON p.id = c.product_id").
		WithArgs(false, false).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name", "product_slug", "comment_count"}).
			AddRow(7, "Keyboard", "keyboard", 12).
			AddRow(8, "Mouse", "mouse", 3))

	res, err := repo.GroupByProduct(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(12), res[0].CommentCount)
	assert.Equal(t, "keyboard", res[0].ProductSlug)
	assert.NoError(t, mock.ExpectationsWereMet())
}
