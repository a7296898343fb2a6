package domain

import "time"

// LotType is the closed set of lot kinds. The numeric values match the
// historical type table (1 = Raffle, 2 = Auction) kept by earlier deployments.
type LotType int

const (
	Raffle  LotType = 1
	Auction LotType = 2
)

func (t LotType) String() string {
	switch t {
	case Raffle:
		return "raffle"
	case Auction:
		return "auction"
	}
	return "unknown"
}

// ParseLotType resolves the textual purchase kind used by the bot layer.
func ParseLotType(s string) (LotType, bool) {
	switch s {
	case "raffle":
		return Raffle, true
	case "auction":
		return Auction, true
	}
	return 0, false
}

type User struct {
	ID           int64     `db:"uid"`
	Username     string    `db:"username"`
	RegisteredAt time.Time `db:"reg_date"`
	Currency     int64     `db:"currency"`
	HeldCurrency int64     `db:"held_currency"`
	Active       bool      `db:"is_active"`
}

// Available is the spendable remainder of the registration snapshot.
func (u *User) Available() int64 {
	return u.Currency - u.HeldCurrency
}

type Lot struct {
	ID              int64   `db:"id"`
	OwnerID         int64   `db:"owner_id"`
	Title           string  `db:"title"`
	HTMLTitle       *string `db:"html_title"`
	Description     string  `db:"description"`
	HTMLDescription *string `db:"html_description"`
	Quantity        int     `db:"quantity"`
	Price           *int64  `db:"price"` // nil for auction lots
	Type            LotType `db:"lot_type"`
}

type Bid struct {
	ID       int64     `db:"id"`
	BidderID int64     `db:"bidder_id"`
	LotID    int64     `db:"lot_id"`
	Amount   int64     `db:"amount"`
	PlacedAt time.Time `db:"placed_at"`
}

type TicketPurchase struct {
	ID      int64 `db:"id"`
	BuyerID int64 `db:"buyer_id"`
	LotID   int64 `db:"lot_id"`
}

// WinnerRecord is derived state: the whole table is recomputed on every draw run.
type WinnerRecord struct {
	ID       int64  `db:"id"`
	WinnerID int64  `db:"winner_id"`
	LotID    int64  `db:"lot_id"`
	TicketID *int64 `db:"ticket_id"` // set for raffle wins only
}

// CurrencyBreakdown itemizes the capped point sources summed into a user's
// registration snapshot.
type CurrencyBreakdown struct {
	NeoPts   int64 `json:"neopts"`
	GGPts    int64 `json:"ggpts"`
	PostPts  int64 `json:"postpts"`
	WikiPts  int64 `json:"wikipts"`
	TotalPts int64 `json:"totalpts"`
}
