package service

import (
	"testing"

	"nihongo_backend/internal/repository"
	"nihongo_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func newGrammarServiceOver(db *gorm.DB) *GrammarService {
	userSvc := NewUserService(repository.NewUserRepository(db), nil)
	return NewGrammarService(
		repository.NewGrammarRepository(db),
		repository.NewSubmissionRepository(db),
		userSvc,
	)
}

func publishedLessonRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "is_published"}).
		AddRow(1, "Particles は and が", true)
}

func submissionColumns() []string {
	return []string{"id", "user_id", "lesson_id", "status"}
}

// One submission per (user, lesson): the second attempt is rejected by the existence
// check and no second row is ever inserted.
func TestSubmitLessonSecondAttemptRejected(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newGrammarServiceOver(db)

	req := SubmitLessonReq{
		Answers: []SubmitAnswerReq{
			{QuestionID: 1, UserAnswer: "a"},
			{QuestionID: 1, UserAnswer: "b"},
		},
		TimeSpent: 90,
	}

	// First attempt: lesson lookup, no prior submission, questions, one insert
	// transaction, then the points award.
	mock.ExpectQuery("SELECT (.+) FROM `grammar_lessons`").
		WillReturnRows(publishedLessonRows())
	mock.ExpectQuery("SELECT (.+) FROM `submissions`").
		WillReturnRows(sqlmock.NewRows(submissionColumns()))
	mock.ExpectQuery("SELECT (.+) FROM `grammar_questions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "lesson_id", "type", "correct_answer", "points"}).
			AddRow(1, 1, "fill_blank", "a;b", 10))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `submissions`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `submission_answers`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "points", "level"}).AddRow(42, 10, 1))

	// Second attempt: the stored row is found and the flow stops there.
	mock.ExpectQuery("SELECT (.+) FROM `grammar_lessons`").
		WillReturnRows(publishedLessonRows())
	mock.ExpectQuery("SELECT (.+) FROM `submissions`").
		WillReturnRows(sqlmock.NewRows(submissionColumns()).
			AddRow("3f1c9f0e-0000-0000-0000-000000000001", 42, 1, "pending"))

	res, err := svc.SubmitLesson(42, 1, req)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Submission.Score)
	assert.Equal(t, 100, res.Submission.Percentage)

	_, err = svc.SubmitLesson(42, 1, req)
	assert.ErrorIs(t, err, util.ErrAlreadySubmitted)

	require.NoError(t, mock.ExpectationsWereMet())
}

// Two submits racing past the existence check: the unique index rejects the insert
// and the caller still sees the duplicate sentinel, not a raw database error.
func TestSubmitLessonInsertRaceMapsToAlreadySubmitted(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newGrammarServiceOver(db)

	mock.ExpectQuery("SELECT (.+) FROM `grammar_lessons`").
		WillReturnRows(publishedLessonRows())
	mock.ExpectQuery("SELECT (.+) FROM `submissions`").
		WillReturnRows(sqlmock.NewRows(submissionColumns()))
	mock.ExpectQuery("SELECT (.+) FROM `grammar_questions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "lesson_id", "type", "correct_answer", "points"}).
			AddRow(1, 1, "rearrange", "私は学生です", 5))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `submissions`").
		WillReturnError(&mysqldrv.MySQLError{
			Number:  1062,
			Message: "Duplicate entry '42-1' for key 'idx_submission_user_lesson'",
		})
	mock.ExpectRollback()

	_, err := svc.SubmitLesson(42, 1, SubmitLessonReq{
		Answers: []SubmitAnswerReq{{QuestionID: 1, UserAnswer: "私は学生です"}},
	})
	assert.ErrorIs(t, err, util.ErrAlreadySubmitted)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitLessonUnpublishedLesson(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newGrammarServiceOver(db)

	mock.ExpectQuery("SELECT (.+) FROM `grammar_lessons`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published"}).
			AddRow(3, "Draft lesson", false))

	_, err := svc.SubmitLesson(42, 3, SubmitLessonReq{
		Answers: []SubmitAnswerReq{{QuestionID: 1, UserAnswer: "a"}},
	})
	assert.ErrorIs(t, err, util.ErrLessonNotPublished)

	require.NoError(t, mock.ExpectationsWereMet())
}
