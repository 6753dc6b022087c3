package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-registry/lending/internal/events"
)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) *repository {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}
}

// Save is idempotent on event_id, so redelivered messages are harmless.
func (r *repository) Save(ctx context.Context, event events.Event) error {
	const q = `insert into lending_events (event_id, event_type, occurred_at, block, actor, book_id, counterpart, amount, fee)
	values (@event_id, @event_type, @occurred_at, @block, @actor, @book_id, @counterpart, @amount, @fee)
	on conflict (event_id) do nothing`
	var bookID *int64
	if event.BookID != nil {
		id := int64(*event.BookID)
		bookID = &id
	}
	args := pgx.NamedArgs{
		"event_id":    event.EventID,
		"event_type":  string(event.EventType),
		"occurred_at": event.OccurredAt,
		"block":       int64(event.Block),
		"actor":       event.Actor,
		"book_id":     bookID,
		"counterpart": event.Counterpart,
		"amount":      int64(event.Amount),
		"fee":         int64(event.Fee),
	}
	_, err := r.db.Exec(ctx, q, args)
	return err
}

func (r *repository) GetStats(ctx context.Context) (StatsInfo, error) {
	const q = `
	with parties as (
	    select actor as identity, event_type, amount, fee, 'actor' as role from lending_events
	    union all
	    select counterpart, event_type, amount, 0, 'counterpart' from lending_events
	    where event_type = 'BookBorrowed' and counterpart <> ''
	)
	select identity,
	       count(*) filter (where role = 'actor' and event_type = 'BookListed')   as listed,
	       count(*) filter (where role = 'actor' and event_type = 'BookDonated')  as donated,
	       count(*) filter (where role = 'actor' and event_type = 'BookBorrowed') as borrowed,
	       count(*) filter (where role = 'actor' and event_type = 'BookReturned') as returned,
	       count(*) filter (where role = 'actor' and event_type = 'BookRemoved')  as removed,
	       coalesce(sum(fee) filter (where role = 'actor' and event_type = 'BookBorrowed'), 0)::bigint          as fees_paid,
	       coalesce(sum(amount) filter (where role = 'actor' and event_type = 'BookBorrowed'), 0)::bigint       as price_paid,
	       coalesce(sum(amount) filter (where role = 'counterpart' and event_type = 'BookBorrowed'), 0)::bigint as earned_rent
	from parties
	group by identity
	order by identity
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return StatsInfo{}, err
	}
	defer rows.Close()
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[Stats])
	if err != nil {
		return StatsInfo{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return StatsInfo{Data: stats}, nil
}
