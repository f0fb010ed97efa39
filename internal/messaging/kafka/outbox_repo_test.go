package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-booking/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "3a6e63cd-4c1a-4b43-b4f3-0d9f4ac0a001",
		RequestID:     "req-1",
		AggregateType: "booking",
		AggregateID:   "3a6e63cd-4c1a-4b43-b4f3-0d9f4ac0a002",
		EventType:     "booking_created",
		Topic:         "booking.reservation.lifecycle.v1",
		Payload:       []byte(`{"event_type":"booking_created"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	t.Run("event lengkap lolos", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(pendingEvent()))
	})

	t.Run("field wajib kosong ditolak", func(t *testing.T) {
		e := pendingEvent()
		e.ID = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))

		e = pendingEvent()
		e.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))

		e = pendingEvent()
		e.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("status di luar daftar ditolak", func(t *testing.T) {
		e := pendingEvent()
		e.Status = "queued"
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("insert langsung lewat db", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		e := pendingEvent()
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := kafka.NewOutboxRepository(db)
		assert.NoError(t, repo.Create(ctx, e))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert ikut transaksi ketika dibungkus WithTx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		e := pendingEvent()
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.BeginTx(ctx, nil)
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db).WithTx(tx)
		assert.NoError(t, repo.Create(ctx, e))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	e := pendingEvent()
	nextRetry := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(e.ID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status, 0, nextRetry)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	repo := kafka.NewOutboxRepository(db)
	events, err := repo.ListPending(ctx, 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, e.ID, events[0].ID)
	assert.Equal(t, e.Topic, events[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("event-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("event-2", kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(ctx, "event-1"))
	assert.NoError(t, repo.MarkFailed(ctx, "event-2", "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
