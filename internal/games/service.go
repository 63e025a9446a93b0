package games

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"casino-platform/internal/audit"
	"casino-platform/internal/event"
)

var (
	ErrNotFound    = errors.New("game not found")
	ErrInvalidEdge = errors.New("house edge must be between 0 and 100")
)

// maxProfitTargetEdge caps the edge derived from a profit target. A flat
// per-round edge compounds differently from a margin on total wagered
// volume, so the conversion below is an approximation, not a guarantee.
const maxProfitTargetEdge = 0.90

type Service struct {
	db    *sql.DB
	audit *audit.Service
	bus   *event.Bus
	log   *zap.Logger
}

func New(db *sql.DB, auditService *audit.Service, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{db: db, audit: auditService, bus: bus, log: log}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Game, error) {
	row := s.db.QueryRowContext(ctx, `
	SELECT id,type,min_bet,max_bet,house_edge,is_active FROM games WHERE id=?
	`, id)

	var g Game
	err := row.Scan(&g.ID, &g.Type, &g.MinBet, &g.MaxBet, &g.HouseEdge, &g.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) ListActive(ctx context.Context) ([]Game, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id,type,min_bet,max_bet,house_edge,is_active FROM games WHERE is_active=1 ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Type, &g.MinBet, &g.MaxBet, &g.HouseEdge, &g.IsActive); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SetHouseEdge updates a single game's edge percentage.
func (s *Service) SetHouseEdge(ctx context.Context, id int64, pct float64, actorUID int64) (*Game, error) {
	if pct < 0 || pct > 100 {
		return nil, ErrInvalidEdge
	}

	res, err := s.db.ExecContext(ctx, `UPDATE games SET house_edge=? WHERE id=?`, pct, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	s.audit.Log(actorUID, "set_house_edge", fmt.Sprintf("game=%d edge=%.2f", id, pct))
	s.bus.Publish(event.EventHouseEdgeUpdated, id)
	s.log.Info("house edge updated", zap.Int64("game", id), zap.Float64("edge", pct))

	return s.GetByID(ctx, id)
}

// SetGlobalHouseEdge applies the edge percentage to every active game.
func (s *Service) SetGlobalHouseEdge(ctx context.Context, pct float64, actorUID int64) ([]Game, error) {
	if pct < 0 || pct > 100 {
		return nil, ErrInvalidEdge
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE games SET house_edge=? WHERE is_active=1`, pct); err != nil {
		return nil, err
	}

	s.audit.Log(actorUID, "set_global_house_edge", fmt.Sprintf("edge=%.2f", pct))
	s.bus.Publish(event.EventHouseEdgeUpdated, int64(0))
	s.log.Info("global house edge updated", zap.Float64("edge", pct))

	return s.ListActive(ctx)
}

// EdgeForProfitTarget converts a target profit margin (percent of wagered
// volume) into a per-round edge percentage via edge = 1 - 1/(1+target),
// clamped to [0, 90]. This is a simplifying policy choice; it does not
// prove the stated long-run margin under every payout table.
func EdgeForProfitTarget(targetPct float64) float64 {
	target := targetPct / 100
	if target < 0 {
		target = 0
	}

	edge := 1 - 1/(1+target)
	edge = math.Min(math.Max(edge, 0), maxProfitTargetEdge)

	return edge * 100
}

// SetProfitTarget derives an edge from the target margin and optionally
// applies it to every active game.
func (s *Service) SetProfitTarget(ctx context.Context, targetPct float64, applyToAll bool, actorUID int64) (float64, []Game, error) {
	if targetPct < 0 {
		return 0, nil, ErrInvalidEdge
	}

	edge := EdgeForProfitTarget(targetPct)

	if !applyToAll {
		return edge, nil, nil
	}

	updated, err := s.SetGlobalHouseEdge(ctx, edge, actorUID)
	if err != nil {
		return 0, nil, err
	}

	s.audit.Log(actorUID, "set_profit_target", fmt.Sprintf("target=%.2f edge=%.2f", targetPct, edge))
	return edge, updated, nil
}
