package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/mshevelin/afisha/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, annotation, description, category_id, initiator_id,
		event_date, paid, participant_limit, request_moderation, state, created_on, published_on`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (title, annotation, description, category_id, initiator_id,
				event_date, paid, participant_limit, request_moderation, state, created_on)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.Title, e.Annotation, e.Description, e.CategoryID, e.InitiatorID,
		e.EventDate, e.Paid, e.ParticipantLimit, e.RequestModeration, e.State, e.CreatedOn,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("scan event id: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return scanEventRow(row)
}

func (r *EventRepository) GetByIDAndInitiator(ctx context.Context, id, initiatorID int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1 AND initiator_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, initiatorID)
	if err != nil {
		return nil, fmt.Errorf("get event by initiator: %w", err)
	}

	return scanEventRow(row)
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, annotation = $3, description = $4, category_id = $5,
			      event_date = $6, paid = $7, participant_limit = $8,
			      request_moderation = $9, state = $10, published_on = $11
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.CategoryID,
		e.EventDate, e.Paid, e.ParticipantLimit, e.RequestModeration, e.State, e.PublishedOn,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListByInitiator(ctx context.Context, initiatorID int64, from, size int) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE initiator_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, initiatorID, size, from)
	if err != nil {
		return nil, fmt.Errorf("list events by initiator: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) SearchAdmin(ctx context.Context, f domain.AdminEventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []interface{}
	)
	if len(f.Initiators) > 0 {
		args = append(args, pq.Array(f.Initiators))
		conds = append(conds, fmt.Sprintf("initiator_id = ANY($%d)", len(args)))
	}
	if len(f.States) > 0 {
		args = append(args, pq.Array(statesToStrings(f.States)))
		conds = append(conds, fmt.Sprintf("state = ANY($%d)", len(args)))
	}
	if len(f.Categories) > 0 {
		args = append(args, pq.Array(f.Categories))
		conds = append(conds, fmt.Sprintf("category_id = ANY($%d)", len(args)))
	}
	if f.RangeStart != nil && f.RangeEnd != nil {
		args = append(args, *f.RangeStart, *f.RangeEnd)
		conds = append(conds, fmt.Sprintf("event_date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, f.Size, f.From)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) SearchPublic(ctx context.Context, f domain.PublicEventFilter) ([]*domain.Event, error) {
	conds := []string{"state = 'PUBLISHED'"}
	var args []interface{}

	if f.Text != "" {
		args = append(args, "%"+f.Text+"%")
		conds = append(conds, fmt.Sprintf("(annotation ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if len(f.Categories) > 0 {
		args = append(args, pq.Array(f.Categories))
		conds = append(conds, fmt.Sprintf("category_id = ANY($%d)", len(args)))
	}
	if f.Paid != nil {
		args = append(args, *f.Paid)
		conds = append(conds, fmt.Sprintf("paid = $%d", len(args)))
	}
	if f.RangeStart != nil && f.RangeEnd != nil {
		args = append(args, *f.RangeStart, *f.RangeEnd)
		conds = append(conds, fmt.Sprintf("event_date BETWEEN $%d AND $%d", len(args)-1, len(args)))
	} else {
		// Без диапазона показываем только предстоящие события.
		conds = append(conds, "event_date > NOW()")
	}
	if f.OnlyAvailable {
		conds = append(conds, `(participant_limit = 0 OR participant_limit > (
			SELECT COUNT(*) FROM requests
			WHERE event_id = events.id AND status = 'CONFIRMED'))`)
	}

	args = append(args, f.Size, f.From)
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE ` + strings.Join(conds, " AND ") +
		fmt.Sprintf(" ORDER BY event_date LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search published events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE category_id = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, categoryID)
	if err != nil {
		return false, fmt.Errorf("check events by category: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func scanEventRow(row *sql.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.CategoryID, &e.InitiatorID,
		&e.EventDate, &e.Paid, &e.ParticipantLimit, &e.RequestModeration,
		&e.State, &e.CreatedOn, &e.PublishedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Annotation, &e.Description, &e.CategoryID, &e.InitiatorID,
			&e.EventDate, &e.Paid, &e.ParticipantLimit, &e.RequestModeration,
			&e.State, &e.CreatedOn, &e.PublishedOn,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func statesToStrings(states []domain.EventState) []string {
	res := make([]string, len(states))
	for i, s := range states {
		res[i] = string(s)
	}
	return res
}
