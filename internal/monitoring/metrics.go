package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	BetsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_bets_total",
			Help: "Total settled bets per game type",
		},
		[]string{"game"},
	)

	WageredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_wagered_total",
			Help: "Total amount wagered per game type",
		},
		[]string{"game"},
	)

	PayoutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_payout_total",
			Help: "Total amount paid out per game type",
		},
		[]string{"game"},
	)

	RTPRatio = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "casino_rtp_ratio",
			Help: "Observed return-to-player ratio per game type",
		},
		[]string{"game"},
	)

	WalletBalanceChanges = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_balance_updates_total",
			Help: "Total wallet balance updates",
		},
	)
)

func Init() {
	prometheus.MustRegister(BetsTotal)
	prometheus.MustRegister(WageredTotal)
	prometheus.MustRegister(PayoutTotal)
	prometheus.MustRegister(RTPRatio)
	prometheus.MustRegister(WalletBalanceChanges)
}
