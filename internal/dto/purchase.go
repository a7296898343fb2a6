package dto

// PurchaseRequestDTO covers both engines: quantity for raffle buys, bid for
// auction bids. Both accept numbers or comma-grouped strings.
type PurchaseRequestDTO struct {
	Kind     string `json:"kind" example:"raffle"`
	UserID   int64  `json:"user_id" example:"1043"`
	Quantity any    `json:"quantity,omitempty" swaggertype:"string" example:"2"`
	Bid      any    `json:"bid,omitempty" swaggertype:"string" example:"60"`
}

type TicketPurchaseResponseDTO struct {
	LotID       int64   `json:"lot_id" example:"42"`
	Title       string  `json:"title" example:"Steam key"`
	TicketPrice int64   `json:"ticket_price" example:"100"`
	TotalCost   int64   `json:"total_cost" example:"200"`
	TicketIDs   []int64 `json:"ticket_ids"`
}

type BidderDTO struct {
	UserID int64 `json:"user_id" example:"1043"`
	Amount int64 `json:"amount" example:"60"`
}

type BidResponseDTO struct {
	LotID         int64      `json:"lot_id" example:"42"`
	Title         string     `json:"title" example:"Rare avatar"`
	PrevTopBidder *BidderDTO `json:"prev_top_bidder,omitempty"`
	NewTopBidder  BidderDTO  `json:"new_top_bidder"`
}

type PurchaseResponseDTO struct {
	Tickets *TicketPurchaseResponseDTO `json:"tickets,omitempty"`
	Bid     *BidResponseDTO            `json:"bid,omitempty"`
}
