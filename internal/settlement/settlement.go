// Package settlement applies a resolved game outcome to the ledger as one
// logical unit: session row, balance delta, derived win/loss transaction.
package settlement

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"casino-platform/internal/event"
	"casino-platform/internal/ledger"
	"casino-platform/internal/monitoring"
	"casino-platform/internal/wallet"
)

var (
	ErrAlreadySettled      = errors.New("round already settled")
	ErrInsufficientBalance = wallet.ErrInsufficientBalance
)

// Session is one immutable record per completed round. Win is the signed
// net amount: negative means a net loss including the bet.
type Session struct {
	ID        int64           `json:"id"`
	Ref       string          `json:"ref"`
	UserID    int64           `json:"userId"`
	GameID    int64           `json:"gameId"`
	Bet       float64         `json:"bet"`
	Result    json.RawMessage `json:"result"`
	Win       float64         `json:"win"`
	CreatedAt int64           `json:"createdAt"`
}

// Request carries a resolved outcome into the ledger. NetWin is the round's
// signed net; BalanceDelta is the amount actually applied to the balance,
// which differs from NetWin when the stake was already held up front (the
// blackjack deal debits the bet, so its terminal delta is NetWin+stake).
type Request struct {
	Ref          string
	UserID       int64
	GameID       int64
	GameType     string
	Bet          float64
	Result       interface{}
	NetWin       float64
	BalanceDelta float64
}

type Outcome struct {
	Session     *Session
	Transaction *ledger.Transaction
	NewBalance  float64
}

// SettledRound is the payload published on event.EventRoundSettled.
type SettledRound struct {
	Ref      string  `json:"ref"`
	UserID   int64   `json:"userId"`
	GameID   int64   `json:"gameId"`
	GameType string  `json:"gameType"`
	Bet      float64 `json:"bet"`
	NetWin   float64 `json:"netWin"`
}

type Coordinator struct {
	db     *sql.DB
	wallet *wallet.Service
	ledger *ledger.Service
	bus    *event.Bus
	log    *zap.Logger
}

func New(db *sql.DB, walletService *wallet.Service, ledgerService *ledger.Service, bus *event.Bus, log *zap.Logger) *Coordinator {
	return &Coordinator{db: db, wallet: walletService, ledger: ledgerService, bus: bus, log: log}
}

// Settle persists the session, applies the balance delta and records the
// derived transaction in a single sql transaction. The session ref is
// unique and inserted before the balance is touched, so replaying the same
// ref fails with ErrAlreadySettled and never double-applies the delta.
func (c *Coordinator) Settle(ctx context.Context, req Request) (*Outcome, error) {
	payload, err := json.Marshal(req.Result)
	if err != nil {
		return nil, err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Ref:    req.Ref,
		UserID: req.UserID,
		GameID: req.GameID,
		Bet:    req.Bet,
		Result: payload,
		Win:    wallet.Round2(req.NetWin),
	}
	if err := insertSession(tx, session); err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, ErrAlreadySettled
		}
		return nil, err
	}

	if err := c.wallet.ApplyTx(tx, req.UserID, req.BalanceDelta); err != nil {
		tx.Rollback()
		return nil, err
	}

	txType := ledger.TypeLoss
	if session.Win > 0 {
		txType = ledger.TypeWin
	}
	gameID := req.GameID
	record := &ledger.Transaction{
		UserID: req.UserID,
		GameID: &gameID,
		Amount: session.Win,
		Type:   txType,
		Status: ledger.StatusCompleted,
	}
	if err := c.ledger.Record(tx, record); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	balance, err := c.wallet.Balance(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	monitoring.BetsTotal.WithLabelValues(req.GameType).Inc()
	monitoring.WageredTotal.WithLabelValues(req.GameType).Add(req.Bet)
	if payout := req.Bet + session.Win; payout > 0 {
		monitoring.PayoutTotal.WithLabelValues(req.GameType).Add(payout)
	}

	c.bus.Publish(event.EventRoundSettled, &SettledRound{
		Ref:      session.Ref,
		UserID:   req.UserID,
		GameID:   req.GameID,
		GameType: req.GameType,
		Bet:      req.Bet,
		NetWin:   session.Win,
	})

	c.log.Info("round settled",
		zap.String("ref", session.Ref),
		zap.String("game", req.GameType),
		zap.Int64("uid", req.UserID),
		zap.Float64("bet", req.Bet),
		zap.Float64("net", session.Win),
	)

	return &Outcome{Session: session, Transaction: record, NewBalance: balance}, nil
}

func insertSession(tx *sql.Tx, s *Session) error {
	s.CreatedAt = time.Now().Unix()
	res, err := tx.Exec(`
	INSERT INTO game_sessions(ref,user_id,game_id,bet,result,win,created_at)
	VALUES (?,?,?,?,?,?,?)
	`, s.Ref, s.UserID, s.GameID, s.Bet, string(s.Result), s.Win, s.CreatedAt)
	if err != nil {
		return err
	}
	s.ID, err = res.LastInsertId()
	return err
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
