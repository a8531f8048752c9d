package messages

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestFindAll_ReturnsMessagesInStoreOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "fiscal_code", "sender_service_id", "created_at"}).
		AddRow("m1", "AAAAAA00A00A000A", "svc-1", time.Unix(100, 0)).
		AddRow("m2", "AAAAAA00A00A000A", "svc-2", time.Unix(200, 0))

	mock.ExpectQuery(`SELECT id, fiscal_code, sender_service_id, created_at FROM messages WHERE fiscal_code=\$1 ORDER BY created_at`).
		WithArgs("AAAAAA00A00A000A").
		WillReturnRows(rows)

	got, err := repo.FindAll(context.Background(), "AAAAAA00A00A000A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m1" || got[1].ID != "m2" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindAll_EmptyResult(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM messages`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fiscal_code", "sender_service_id", "created_at"}))

	got, err := repo.FindAll(context.Background(), "AAAAAA00A00A000A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no messages, got %d", len(got))
	}
}

func TestFindAll_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM messages`).WillReturnError(errors.New("timeout"))

	if _, err := repo.FindAll(context.Background(), "AAAAAA00A00A000A"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDelete_Idempotent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `DELETE FROM messages WHERE fiscal_code=\$1 AND id=\$2`
	mock.ExpectExec(q).WithArgs("AAAAAA00A00A000A", "m1").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "AAAAAA00A00A000A", "m1"); err != nil {
		t.Fatalf("delete of a missing row must be satisfied, got: %v", err)
	}
}
