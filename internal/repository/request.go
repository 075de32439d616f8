package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mshevelin/afisha/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create вставляет заявку, удерживая блокировку строки события на время
// проверки лимита: подтвержденные заявки считаются заново внутри транзакции,
// поэтому два конкурентных создания не могут оба пройти через последнее место.
func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var limit int
	limitQuery := `SELECT participant_limit FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, limitQuery, req.EventID).Scan(&limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get participant limit: %w", err)
	}

	if limit > 0 {
		var confirmed int64
		countQuery := `SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`
		if err = tx.QueryRowContext(
			ctx, countQuery, req.EventID, domain.ParticipationStatusConfirmed,
		).Scan(&confirmed); err != nil {
			return fmt.Errorf("count confirmed requests: %w", err)
		}
		if confirmed >= int64(limit) {
			return domain.ErrParticipantLimitReached
		}
	}

	insertQuery := `INSERT INTO requests (event_id, requester_id, status, created)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	err = tx.QueryRowContext(
		ctx, insertQuery, req.EventID, req.RequesterID, req.Status, req.Created,
	).Scan(&req.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request: %w", err)
	}

	return tx.Commit()
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created
			  FROM requests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.Request
	if err = row.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.Created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id int64, status domain.ParticipationStatus) error {
	query := `UPDATE requests SET status = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("request rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created
			  FROM requests
			  WHERE requester_id = $1
			  ORDER BY created DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created
			  FROM requests
			  WHERE event_id = $1
			  ORDER BY created`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests by event: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// ConfirmedCount всегда считается по живым строкам заявок, без кэширования.
func (r *RequestRepository) ConfirmedCount(ctx context.Context, eventID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.ParticipationStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("count confirmed: %w", err)
	}

	var count int64
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan confirmed count: %w", err)
	}

	return count, nil
}

// ConfirmedCounts возвращает счетчики по событиям; события без подтвержденных
// заявок в результат не попадают.
func (r *RequestRepository) ConfirmedCounts(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	if len(eventIDs) == 0 {
		return map[int64]int64{}, nil
	}

	query := `SELECT event_id, COUNT(*)
			  FROM requests
			  WHERE event_id = ANY($1) AND status = $2
			  GROUP BY event_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(eventIDs), domain.ParticipationStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed by events: %w", err)
	}
	defer rows.Close()

	res := make(map[int64]int64, len(eventIDs))
	for rows.Next() {
		var eventID, count int64
		if err = rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("scan confirmed counts: %w", err)
		}
		res[eventID] = count
	}

	return res, rows.Err()
}

// ModerateBatch применяет пакетное решение как единое целое: блокировка события,
// живой пересчет подтвержденных заявок, распределение вакансий в порядке
// requestIDs и запись статусов происходят в одной транзакции. Любое нарушение
// предусловий откатывает весь пакет.
func (r *RequestRepository) ModerateBatch(
	ctx context.Context,
	eventID int64,
	requestIDs []int64,
	target domain.ParticipationStatus,
) (*domain.ModerationResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var limit int
	limitQuery := `SELECT participant_limit FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, limitQuery, eventID).Scan(&limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get participant limit: %w", err)
	}

	var confirmed int64
	countQuery := `SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`
	if err = tx.QueryRowContext(
		ctx, countQuery, eventID, domain.ParticipationStatusConfirmed,
	).Scan(&confirmed); err != nil {
		return nil, fmt.Errorf("count confirmed requests: %w", err)
	}

	vacancies, err := domain.ModerationVacancies(limit, confirmed)
	if err != nil {
		return nil, err
	}

	requests, err := lockRequests(ctx, tx, eventID, requestIDs)
	if err != nil {
		return nil, err
	}

	result := domain.AllocateVacancies(requests, target, vacancies)

	if err = updateStatuses(ctx, tx, result.Confirmed, domain.ParticipationStatusConfirmed); err != nil {
		return nil, err
	}
	if err = updateStatuses(ctx, tx, result.Rejected, domain.ParticipationStatusRejected); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit moderation: %w", err)
	}

	return result, nil
}

// lockRequests читает заявки под блокировкой и возвращает их строго в порядке
// requestIDs — этот порядок определяет приоритет при распределении вакансий.
func lockRequests(ctx context.Context, tx *sql.Tx, eventID int64, requestIDs []int64) ([]*domain.Request, error) {
	query := `SELECT id, event_id, requester_id, status, created
			  FROM requests
			  WHERE event_id = $1 AND id = ANY($2)
			  FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, eventID, pq.Array(requestIDs))
	if err != nil {
		return nil, fmt.Errorf("lock requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}

	return domain.OrderForModeration(requests, requestIDs)
}

func updateStatuses(ctx context.Context, tx *sql.Tx, requests []*domain.Request, status domain.ParticipationStatus) error {
	if len(requests) == 0 {
		return nil
	}

	ids := make([]int64, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
	}

	query := `UPDATE requests SET status = $2 WHERE id = ANY($1)`
	if _, err := tx.ExecContext(ctx, query, pq.Array(ids), status); err != nil {
		return fmt.Errorf("update request statuses: %w", err)
	}

	return nil
}

// RejectStale отклоняет заявки, оставшиеся PENDING после начала события.
// Подтвержденные заявки не затрагиваются, поэтому счетчик вместимости
// операция не меняет.
func (r *RequestRepository) RejectStale(ctx context.Context) ([]*domain.Request, error) {
	query := `
		UPDATE requests r
		SET status = $2
		FROM events e
		WHERE r.event_id = e.id
		  AND r.status = $1
		  AND e.event_date < NOW()
		RETURNING r.id, r.event_id, r.requester_id, r.status, r.created`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ParticipationStatusPending, domain.ParticipationStatusRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("reject stale: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

func scanRequests(rows *sql.Rows) ([]*domain.Request, error) {
	var res []*domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.Created); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}
