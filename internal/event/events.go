package event

const (
	EventRoundSettled      Name = "round.settled"
	EventDepositCompleted  Name = "deposit.completed"
	EventWithdrawRequested Name = "withdraw.requested"
	EventWithdrawApproved  Name = "withdraw.approved"
	EventWithdrawRejected  Name = "withdraw.rejected"
	EventHouseEdgeUpdated  Name = "houseedge.updated"
)
