package settlement

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"casino-platform/internal/db"
	"casino-platform/internal/event"
	"casino-platform/internal/ledger"
	"casino-platform/internal/wallet"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *sql.DB, *wallet.Service) {
	t.Helper()

	database, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))

	_, err = database.Exec(`
	INSERT INTO users(id,username,email,balance,created_at) VALUES (1,'alice','alice@test.local',100,0)`)
	require.NoError(t, err)
	_, err = database.Exec(`
	INSERT INTO games(id,type,min_bet,max_bet,house_edge,is_active) VALUES (1,'slots',1,1000,5,1)`)
	require.NoError(t, err)

	log := zap.NewNop()
	bus := event.NewBus()
	ledgerService := ledger.New(database)
	walletService := wallet.New(database, ledgerService, bus, log)

	return New(database, walletService, ledgerService, bus, log), database, walletService
}

func TestSettleLoss(t *testing.T) {
	c, database, _ := newTestCoordinator(t)

	out, err := c.Settle(context.Background(), Request{
		Ref:          "round-loss",
		UserID:       1,
		GameID:       1,
		GameType:     "slots",
		Bet:          10,
		Result:       map[string]string{"reels": "none"},
		NetWin:       -10,
		BalanceDelta: -10,
	})
	require.NoError(t, err)

	assert.Equal(t, 90.0, out.NewBalance)
	assert.Equal(t, -10.0, out.Session.Win)
	assert.Equal(t, ledger.TypeLoss, out.Transaction.Type)
	assert.Equal(t, ledger.StatusCompleted, out.Transaction.Status)
	require.NotNil(t, out.Transaction.GameID)
	assert.Equal(t, int64(1), *out.Transaction.GameID)

	var sessions int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM game_sessions`).Scan(&sessions))
	assert.Equal(t, 1, sessions)
}

func TestSettleWin(t *testing.T) {
	c, _, _ := newTestCoordinator(t)

	out, err := c.Settle(context.Background(), Request{
		Ref:          "round-win",
		UserID:       1,
		GameID:       1,
		GameType:     "slots",
		Bet:          10,
		Result:       map[string]string{"reels": "pair"},
		NetWin:       9,
		BalanceDelta: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, 109.0, out.NewBalance)
	assert.Equal(t, ledger.TypeWin, out.Transaction.Type)
}

func TestSettleReplayDoesNotDoubleApply(t *testing.T) {
	c, _, w := newTestCoordinator(t)

	req := Request{
		Ref:          "round-once",
		UserID:       1,
		GameID:       1,
		GameType:     "slots",
		Bet:          10,
		Result:       struct{}{},
		NetWin:       -10,
		BalanceDelta: -10,
	}

	_, err := c.Settle(context.Background(), req)
	require.NoError(t, err)

	_, err = c.Settle(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadySettled)

	balance, err := w.Balance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 90.0, balance)
}

func TestSettleRejectsOverdraft(t *testing.T) {
	c, database, w := newTestCoordinator(t)

	_, err := c.Settle(context.Background(), Request{
		Ref:          "round-overdraft",
		UserID:       1,
		GameID:       1,
		GameType:     "slots",
		Bet:          200,
		Result:       struct{}{},
		NetWin:       -200,
		BalanceDelta: -200,
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// the whole unit rolls back: no session, no transaction, balance intact
	balance, err := w.Balance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance)

	var sessions, txs int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM game_sessions`).Scan(&sessions))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&txs))
	assert.Zero(t, sessions)
	assert.Zero(t, txs)
}

func TestSettlePushRecordsZeroLoss(t *testing.T) {
	c, _, _ := newTestCoordinator(t)

	out, err := c.Settle(context.Background(), Request{
		Ref:          "round-push",
		UserID:       1,
		GameID:       1,
		GameType:     "blackjack",
		Bet:          10,
		Result:       struct{}{},
		NetWin:       0,
		BalanceDelta: 10, // held stake returned
	})
	require.NoError(t, err)

	assert.Equal(t, 110.0, out.NewBalance)
	assert.Zero(t, out.Transaction.Amount)
	assert.Equal(t, ledger.TypeLoss, out.Transaction.Type)
}
