package dto

type LotDrawResultDTO struct {
	LotID   int64   `json:"lot_id" example:"42"`
	OwnerID int64   `json:"owner_id" example:"1042"`
	Title   string  `json:"title" example:"Steam key"`
	Type    string  `json:"type" example:"raffle"`
	Winners []int64 `json:"winners"`
}

type DrawResponseDTO struct {
	RunID string             `json:"run_id" example:"9b2f6f1e-8f2a-4f70-b8a2-0f0f6a3f9f11"`
	Lots  []LotDrawResultDTO `json:"lots"`
}

type LotSummaryResponseDTO struct {
	LotID       int64  `json:"lot_id" example:"42"`
	Title       string `json:"title" example:"Steam key"`
	Type        string `json:"type" example:"raffle"`
	TicketsSold int    `json:"tickets_sold" example:"6"`
	TopBidder   *int64 `json:"top_bidder,omitempty" example:"1043"`
	TopAmount   *int64 `json:"top_amount,omitempty" example:"120"`
}
