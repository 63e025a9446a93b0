package casino

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"casino-platform/internal/games"
	"casino-platform/internal/rounds"
	"casino-platform/internal/settlement"
	"casino-platform/internal/wallet"
)

type Service struct {
	games    *games.Service
	wallet   *wallet.Service
	settle   *settlement.Coordinator
	store    rounds.Store
	roundTTL time.Duration
	log      *zap.Logger

	rng *rand.Rand
	mu  sync.Mutex
}

func NewService(gameService *games.Service, walletService *wallet.Service, coordinator *settlement.Coordinator, store rounds.Store, roundTTL time.Duration, log *zap.Logger) *Service {
	return &Service{
		games:    gameService,
		wallet:   walletService,
		settle:   coordinator,
		store:    store,
		roundTTL: roundTTL,
		log:      log,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// lookupGame loads the game config and validates type, activity and limits.
func (s *Service) lookupGame(ctx context.Context, gameID int64, wantType string, bet float64) (*games.Game, error) {
	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.Type != wantType {
		return nil, ErrWrongGameType
	}
	if err := ValidateBet(g, bet); err != nil {
		return nil, err
	}
	return g, nil
}

// requireBalance rejects a bet the caller cannot cover. The settlement's
// conditional update still enforces the floor at commit time; this check
// just fails fast before any outcome is drawn.
func (s *Service) requireBalance(ctx context.Context, uid int64, amount float64) error {
	balance, err := s.wallet.Balance(ctx, uid)
	if err != nil {
		return err
	}
	if balance < amount {
		return wallet.ErrInsufficientBalance
	}
	return nil
}

func (s *Service) PlaySlots(ctx context.Context, uid, gameID int64, bet float64) (*SlotsResponse, error) {
	g, err := s.lookupGame(ctx, gameID, games.TypeSlots, bet)
	if err != nil {
		return nil, err
	}
	if err := s.requireBalance(ctx, uid, bet); err != nil {
		return nil, err
	}

	s.mu.Lock()
	outcome := SpinSlots(s.rng, bet, g.HouseEdge)
	s.mu.Unlock()

	net := wallet.Round2(outcome.WinAmount - bet)
	settled, err := s.settle.Settle(ctx, settlement.Request{
		Ref:          uuid.New().String(),
		UserID:       uid,
		GameID:       g.ID,
		GameType:     g.Type,
		Bet:          bet,
		Result:       outcome,
		NetWin:       net,
		BalanceDelta: net,
	})
	if err != nil {
		return nil, err
	}

	return &SlotsResponse{
		Reels:      outcome.Reels,
		Bet:        bet,
		Win:        net,
		Multiplier: outcome.Multiplier,
		Balance:    settled.NewBalance,
	}, nil
}

func (s *Service) PlayRoulette(ctx context.Context, uid, gameID int64, bet float64, betType string, number *int) (*RouletteResponse, error) {
	g, err := s.lookupGame(ctx, gameID, games.TypeRoulette, bet)
	if err != nil {
		return nil, err
	}
	if err := ValidateRouletteBet(betType, number); err != nil {
		return nil, err
	}
	if err := s.requireBalance(ctx, uid, bet); err != nil {
		return nil, err
	}

	s.mu.Lock()
	outcome, err := SpinRoulette(s.rng, bet, betType, number, g.HouseEdge)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	net := wallet.Round2(outcome.WinAmount - bet)
	settled, err := s.settle.Settle(ctx, settlement.Request{
		Ref:          uuid.New().String(),
		UserID:       uid,
		GameID:       g.ID,
		GameType:     g.Type,
		Bet:          bet,
		Result:       outcome,
		NetWin:       net,
		BalanceDelta: net,
	})
	if err != nil {
		return nil, err
	}

	return &RouletteResponse{
		Result:     outcome.Result,
		IsRed:      outcome.IsRed,
		Bet:        bet,
		BetType:    betType,
		BetNumber:  number,
		Win:        net,
		Multiplier: outcome.Multiplier,
		Balance:    settled.NewBalance,
	}, nil
}

// blackjackResult is the session payload stored for a resolved hand.
type blackjackResult struct {
	Player      []Card `json:"player"`
	Dealer      []Card `json:"dealer"`
	PlayerValue int    `json:"playerValue"`
	DealerValue int    `json:"dealerValue"`
	Status      string `json:"status"`
	Doubled     bool   `json:"doubled"`
}

func resultOf(r *Round) blackjackResult {
	return blackjackResult{
		Player:      r.Player,
		Dealer:      r.Dealer,
		PlayerValue: HandValue(r.Player),
		DealerValue: HandValue(r.Dealer),
		Status:      r.Status,
		Doubled:     r.Doubled,
	}
}

// DealBlackjack starts a hand. Naturals settle immediately. A live hand
// holds the stake (atomic debit) and parks the round in the store; the
// server round is the source of truth for the follow-up action request.
func (s *Service) DealBlackjack(ctx context.Context, uid, gameID int64, bet float64) (*BlackjackResponse, error) {
	g, err := s.lookupGame(ctx, gameID, games.TypeBlackjack, bet)
	if err != nil {
		return nil, err
	}
	if err := s.requireBalance(ctx, uid, bet); err != nil {
		return nil, err
	}

	s.mu.Lock()
	round := Deal(s.rng, uid, gameID, bet)
	s.mu.Unlock()

	if round.Terminal() {
		net := round.NetWin(g.HouseEdge)
		settled, err := s.settle.Settle(ctx, settlement.Request{
			Ref:          round.ID,
			UserID:       uid,
			GameID:       g.ID,
			GameType:     g.Type,
			Bet:          round.Bet,
			Result:       resultOf(round),
			NetWin:       net,
			BalanceDelta: net,
		})
		if err != nil {
			return nil, err
		}
		return blackjackView(round, net, settled.NewBalance), nil
	}

	if err := s.wallet.Debit(ctx, uid, bet); err != nil {
		return nil, err
	}

	if err := s.saveRound(ctx, round); err != nil {
		// hand cannot continue without stored state; release the stake
		s.refundHold(ctx, uid, bet)
		return nil, err
	}

	balance, err := s.wallet.Balance(ctx, uid)
	if err != nil {
		return nil, err
	}
	return blackjackView(round, 0, balance), nil
}

// ActionBlackjack applies hit/stand/double to a stored round. Terminal
// outcomes settle with the held stake folded into the balance delta.
func (s *Service) ActionBlackjack(ctx context.Context, uid, gameID int64, roundID, action string) (*BlackjackResponse, error) {
	data, err := s.store.Get(ctx, roundID)
	if err != nil {
		return nil, ErrRoundNotFound
	}

	var round Round
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, err
	}
	if round.UserID != uid || (gameID != 0 && round.GameID != gameID) {
		return nil, ErrRoundNotFound
	}

	g, err := s.games.GetByID(ctx, round.GameID)
	if err != nil {
		return nil, err
	}

	var extraHold float64
	switch action {
	case ActionHit:
		err = round.Hit()
	case ActionStand:
		err = round.Stand()
	case ActionDouble:
		if !round.CanDouble() {
			return nil, ErrDoubleNotAllowed
		}
		// hold the extra stake before the card is drawn
		if err := s.wallet.Debit(ctx, uid, round.Bet); err != nil {
			return nil, err
		}
		extraHold = round.Bet
		err = round.Double()
	default:
		return nil, ErrInvalidAction
	}
	if err != nil {
		return nil, err
	}

	if !round.Terminal() {
		if err := s.saveRound(ctx, &round); err != nil {
			return nil, err
		}
		balance, err := s.wallet.Balance(ctx, uid)
		if err != nil {
			return nil, err
		}
		return blackjackView(&round, 0, balance), nil
	}

	net := round.NetWin(g.HouseEdge)
	settled, err := s.settle.Settle(ctx, settlement.Request{
		Ref:          round.ID,
		UserID:       uid,
		GameID:       round.GameID,
		GameType:     g.Type,
		Bet:          round.Bet,
		Result:       resultOf(&round),
		NetWin:       net,
		BalanceDelta: round.Bet + net, // stake was held at deal/double time
	})
	if err != nil {
		// the stored round is still pre-double, so release the extra
		// stake; a retried action then settles from a consistent state
		if extraHold > 0 {
			s.refundHold(ctx, uid, extraHold)
		}
		return nil, err
	}

	if err := s.store.Delete(ctx, roundID); err != nil {
		// settlement already landed and a replay is blocked by its ref
		s.log.Warn("settled round not deleted from store",
			zap.String("round", roundID),
			zap.Error(err),
		)
	}

	return blackjackView(&round, net, settled.NewBalance), nil
}

func (s *Service) saveRound(ctx context.Context, r *Round) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, r.ID, data, s.roundTTL)
}

func (s *Service) refundHold(ctx context.Context, uid int64, amount float64) {
	if err := s.wallet.Credit(ctx, uid, amount); err != nil {
		s.log.Error("stake refund failed", zap.Int64("uid", uid), zap.Error(err))
	}
}
