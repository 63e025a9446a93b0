package ledger

const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
	TypeWin        = "win"
	TypeLoss       = "loss"

	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// Transaction is an immutable financial record. Only a withdrawal's
// status ever changes after insert (pending -> completed|rejected).
type Transaction struct {
	ID        int64   `json:"id"`
	Ref       string  `json:"ref"`
	UserID    int64   `json:"userId"`
	GameID    *int64  `json:"gameId,omitempty"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	TxHash    string  `json:"txHash,omitempty"`
	Address   string  `json:"address,omitempty"`
	CreatedAt int64   `json:"createdAt"`
}
