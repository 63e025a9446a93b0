package ledger

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Record inserts a transaction inside the caller's sql transaction and
// fills in its id, ref and timestamp.
func (s *Service) Record(tx *sql.Tx, t *Transaction) error {
	if t.Ref == "" {
		t.Ref = uuid.New().String()
	}
	t.CreatedAt = time.Now().Unix()

	res, err := tx.Exec(`
	INSERT INTO transactions(ref,user_id,game_id,amount,type,status,tx_hash,address,created_at)
	VALUES (?,?,?,?,?,?,?,?,?)
	`, t.Ref, t.UserID, t.GameID, t.Amount, t.Type, t.Status,
		nullable(t.TxHash), nullable(t.Address), t.CreatedAt)
	if err != nil {
		return err
	}

	t.ID, err = res.LastInsertId()
	return err
}

func (s *Service) Get(ctx context.Context, id int64) (*Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id,ref,user_id,game_id,amount,type,status,
	       COALESCE(tx_hash,''),COALESCE(address,''),created_at
	FROM transactions WHERE id=?
	`, id)
	return scan(row)
}

func (s *Service) ListByUser(ctx context.Context, uid int64) ([]Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id,ref,user_id,game_id,amount,type,status,
	       COALESCE(tx_hash,''),COALESCE(address,''),created_at
	FROM transactions WHERE user_id=? ORDER BY id DESC
	`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scan(row scanner) (*Transaction, error) {
	var t Transaction
	err := row.Scan(&t.ID, &t.Ref, &t.UserID, &t.GameID, &t.Amount,
		&t.Type, &t.Status, &t.TxHash, &t.Address, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
