package casino

import (
	"go.uber.org/zap"

	"casino-platform/internal/event"
	"casino-platform/internal/settlement"
)

type Broadcaster interface {
	BroadcastJSON(v interface{})
}

// RegisterConsumers fans settled rounds out to the leaderboard, the RTP
// tracker and the live websocket feed.
func RegisterConsumers(bus *event.Bus, leaderboard *Leaderboard, rtp *RTPTracker, hub Broadcaster, log *zap.Logger) {

	bus.Subscribe(event.EventRoundSettled, func(payload interface{}) {
		round, ok := payload.(*settlement.SettledRound)
		if !ok {
			log.Warn("unexpected round.settled payload")
			return
		}

		leaderboard.Record(round.UserID, round.NetWin)
		rtp.Record(round.GameType, round.Bet, round.Bet+round.NetWin)
		hub.BroadcastJSON(round)
	})
}
