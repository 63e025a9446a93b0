package withdraw

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"casino-platform/internal/audit"
	"casino-platform/internal/event"
	"casino-platform/internal/ledger"
)

var ErrNotPending = errors.New("withdrawal not found or not pending")

type Wallet interface {
	CreditTx(tx *sql.Tx, uid int64, amount float64) error
}

type Service struct {
	db     *sql.DB
	wallet Wallet
	audit  *audit.Service
	bus    *event.Bus
	log    *zap.Logger
}

func New(db *sql.DB, wallet Wallet, auditService *audit.Service, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{db: db, wallet: wallet, audit: auditService, bus: bus, log: log}
}

// Approve completes a pending withdrawal. The funds were already debited
// when the withdrawal was requested, so no balance change happens here.
func (s *Service) Approve(ctx context.Context, id int64, adminUID int64) error {
	res, err := s.db.ExecContext(ctx, `
	UPDATE transactions SET status=?
	WHERE id=? AND type=? AND status=?
	`, ledger.StatusCompleted, id, ledger.TypeWithdrawal, ledger.StatusPending)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotPending
	}

	s.audit.Log(adminUID, "withdraw_approve", "")
	s.bus.Publish(event.EventWithdrawApproved, id)
	s.log.Info("withdrawal approved", zap.Int64("id", id))
	return nil
}

// Reject flips a pending withdrawal to rejected and refunds the held amount.
// The status flip is conditional on pending+withdrawal inside the same sql
// transaction as the refund, so a double reject cannot credit twice.
func (s *Service) Reject(ctx context.Context, id int64, adminUID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var uid int64
	var amount float64
	err = tx.QueryRow(`
	SELECT user_id, amount FROM transactions
	WHERE id=? AND type=? AND status=?
	`, id, ledger.TypeWithdrawal, ledger.StatusPending).Scan(&uid, &amount)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return ErrNotPending
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.Exec(`
	UPDATE transactions SET status=?
	WHERE id=? AND status=?
	`, ledger.StatusRejected, id, ledger.StatusPending)
	if err != nil {
		tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return ErrNotPending
	}

	// withdrawal amounts are stored negative; refund the absolute value
	if err := s.wallet.CreditTx(tx, uid, -amount); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.audit.Log(adminUID, "withdraw_reject", "")
	s.bus.Publish(event.EventWithdrawRejected, id)
	s.log.Info("withdrawal rejected and refunded",
		zap.Int64("id", id),
		zap.Int64("uid", uid),
		zap.Float64("refund", -amount),
	)
	return nil
}

// ListPending returns the admin review queue.
func (s *Service) ListPending(ctx context.Context) ([]ledger.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id,ref,user_id,game_id,amount,type,status,
	       COALESCE(tx_hash,''),COALESCE(address,''),created_at
	FROM transactions WHERE type=? AND status=? ORDER BY id
	`, ledger.TypeWithdrawal, ledger.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Transaction
	for rows.Next() {
		var t ledger.Transaction
		err := rows.Scan(&t.ID, &t.Ref, &t.UserID, &t.GameID, &t.Amount,
			&t.Type, &t.Status, &t.TxHash, &t.Address, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
