package domain

const (
	TxDeposit            = "deposit"
	TxWithdrawal         = "withdrawal"
	TxROIPayment         = "roi_payment"
	TxCampaignInvestment = "campaign_investment"
)

const (
	CampaignActive    = "active"
	CampaignCompleted = "completed"
	CampaignPaused    = "paused"
)

// Refresh events pushed to dashboard sockets after a successful investment.
const (
	EventCampaignsUpdated    = "campaigns_updated"
	EventTransactionsUpdated = "transactions_updated"
)
