package wallet

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"go.uber.org/zap"

	"casino-platform/internal/event"
	"casino-platform/internal/ledger"
	"casino-platform/internal/monitoring"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserNotFound        = errors.New("user not found")
)

type Service struct {
	db     *sql.DB
	ledger *ledger.Service
	bus    *event.Bus
	log    *zap.Logger
}

func New(db *sql.DB, ledgerService *ledger.Service, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{db: db, ledger: ledgerService, bus: bus, log: log}
}

// Round2 normalizes a money amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Service) Balance(ctx context.Context, uid int64) (float64, error) {
	var balance float64
	err := s.db.QueryRowContext(ctx, `SELECT balance FROM users WHERE id=?`, uid).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUserNotFound
	}
	return balance, err
}

// CreditTx adds amount to the user's balance inside the caller's transaction.
func (s *Service) CreditTx(tx *sql.Tx, uid int64, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.ApplyTx(tx, uid, amount)
}

// DebitTx subtracts amount from the user's balance inside the caller's
// transaction, failing with ErrInsufficientBalance when it would go negative.
func (s *Service) DebitTx(tx *sql.Tx, uid int64, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.ApplyTx(tx, uid, -amount)
}

// ApplyTx applies a signed delta with a non-negative floor. The sufficiency
// check and the mutation are a single UPDATE, so concurrent requests cannot
// interleave between check and write.
func (s *Service) ApplyTx(tx *sql.Tx, uid int64, delta float64) error {
	delta = Round2(delta)

	res, err := tx.Exec(`
	UPDATE users SET balance = ROUND(balance + ?, 2)
	WHERE id = ? AND balance + ? >= -0.000001
	`, delta, uid, delta)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var exists int
		if err := tx.QueryRow(`SELECT 1 FROM users WHERE id=?`, uid).Scan(&exists); err != nil {
			return ErrUserNotFound
		}
		return ErrInsufficientBalance
	}

	monitoring.WalletBalanceChanges.Inc()
	return nil
}

// Credit is the standalone form of CreditTx.
func (s *Service) Credit(ctx context.Context, uid int64, amount float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.CreditTx(tx, uid, amount); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Debit is the standalone form of DebitTx for callers holding funds ahead
// of a deferred settlement (the blackjack deal and double).
func (s *Service) Debit(ctx context.Context, uid int64, amount float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := s.DebitTx(tx, uid, amount); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Deposit credits the balance and records a completed deposit transaction.
// Deposits are simulated: the tx hash is stored verbatim, never verified.
func (s *Service) Deposit(ctx context.Context, uid int64, amount float64, txHash string) (*ledger.Transaction, float64, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}
	amount = Round2(amount)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	if err := s.CreditTx(tx, uid, amount); err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	t := &ledger.Transaction{
		UserID: uid,
		Amount: amount,
		Type:   ledger.TypeDeposit,
		Status: ledger.StatusCompleted,
		TxHash: txHash,
	}
	if err := s.ledger.Record(tx, t); err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	balance, err := s.Balance(ctx, uid)
	if err != nil {
		return nil, 0, err
	}

	s.bus.Publish(event.EventDepositCompleted, t)
	s.log.Info("deposit completed",
		zap.Int64("uid", uid),
		zap.Float64("amount", amount),
	)

	return t, balance, nil
}

// Withdraw debits the balance immediately (funds held, not reserved) and
// records a pending withdrawal for admin review.
func (s *Service) Withdraw(ctx context.Context, uid int64, amount float64, address string) (*ledger.Transaction, float64, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}
	amount = Round2(amount)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	if err := s.DebitTx(tx, uid, amount); err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	t := &ledger.Transaction{
		UserID:  uid,
		Amount:  -amount,
		Type:    ledger.TypeWithdrawal,
		Status:  ledger.StatusPending,
		Address: address,
	}
	if err := s.ledger.Record(tx, t); err != nil {
		tx.Rollback()
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	balance, err := s.Balance(ctx, uid)
	if err != nil {
		return nil, 0, err
	}

	s.bus.Publish(event.EventWithdrawRequested, t)
	s.log.Info("withdrawal requested",
		zap.Int64("uid", uid),
		zap.Float64("amount", amount),
	)

	return t, balance, nil
}
