package ledger

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

const (
	accountsTableName  = `ledger_accounts`
	transfersTableName = `ledger_transfers`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgres struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewPostgres keeps balances in ledger_accounts; a check constraint keeps
// them non-negative and every batch runs in one transaction.
func NewPostgres(db *sqlx.DB, log *zap.Logger) *postgres {
	return &postgres{
		db:  db,
		log: log.Named("ledger"),
	}
}

func (p *postgres) Balance(ctx context.Context, id model.Identity) (uint64, error) {
	q, args, err := qb.Select("balance").
		From(accountsTableName).
		Where(sq.Eq{"identity": id}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var balance int64
	if err := p.db.GetContext(ctx, &balance, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "ledger balance")
	}
	return uint64(balance), nil
}

func (p *postgres) Credit(ctx context.Context, id model.Identity, amount uint64) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	return p.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := credit(ctx, tx, id, amount); err != nil {
			return err
		}
		return journal(ctx, tx, uuid.New(), Transfer{To: id, Amount: amount})
	})
}

func (p *postgres) Transfer(ctx context.Context, transfers ...Transfer) error {
	transfers = effective(transfers)
	if len(transfers) == 0 {
		return nil
	}
	for _, t := range transfers {
		if err := checkAmount(t.Amount); err != nil {
			return err
		}
	}
	batchID := uuid.New()
	return p.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, t := range transfers {
			if err := debit(ctx, tx, t.From, t.Amount); err != nil {
				return err
			}
			if err := credit(ctx, tx, t.To, t.Amount); err != nil {
				return err
			}
			if err := journal(ctx, tx, batchID, t); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *postgres) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			p.log.Error("rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

func debit(ctx context.Context, tx *sqlx.Tx, id model.Identity, amount uint64) error {
	q, args, err := qb.Update(accountsTableName).
		Set("balance", sq.Expr("balance - ?", int64(amount))).
		Where(sq.Eq{"identity": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return ErrInsufficientFunds
		}
		return errors.Wrap(err, "debit")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "debit rows")
	}
	if n == 0 {
		// no account row means a zero balance
		return ErrInsufficientFunds
	}
	return nil
}

func credit(ctx context.Context, tx *sqlx.Tx, id model.Identity, amount uint64) error {
	q, args, err := qb.Insert(accountsTableName).
		Columns("identity", "balance").
		Values(id, int64(amount)).
		Suffix("on conflict (identity) do update set balance = " + accountsTableName + ".balance + excluded.balance").
		ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.NumericValueOutOfRange {
			return ErrInvalidAmount
		}
		return errors.Wrap(err, "credit")
	}
	return nil
}

func journal(ctx context.Context, tx *sqlx.Tx, batchID uuid.UUID, t Transfer) error {
	var from any
	if t.From != "" {
		from = t.From
	}
	q, args, err := qb.Insert(transfersTableName).
		Columns("batch_id", "from_identity", "to_identity", "amount").
		Values(batchID, from, t.To, int64(t.Amount)).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return errors.Wrap(err, "journal transfer")
}
