package dto

// AddLotRequestDTO accepts price and quantity as JSON numbers or as strings
// with comma grouping ("1,500"), matching what the bot layer extracts from
// forum posts.
type AddLotRequestDTO struct {
	OwnerID         int64   `json:"owner_id" example:"1042"`
	Title           string  `json:"title" example:"Steam key"`
	HTMLTitle       *string `json:"html_title,omitempty"`
	Description     string  `json:"description" example:"A fine game"`
	HTMLDescription *string `json:"html_description,omitempty"`
	Price           any     `json:"price,omitempty" swaggertype:"string" example:"1,500"`
	Quantity        any     `json:"quantity" swaggertype:"string" example:"3"`
	Type            string  `json:"type" example:"raffle"`
}

type AddLotResponseDTO struct {
	LotID int64 `json:"lot_id" example:"42"`
}

type LotResponseDTO struct {
	ID          int64  `json:"id" example:"42"`
	OwnerID     int64  `json:"owner_id" example:"1042"`
	Title       string `json:"title" example:"Steam key"`
	Description string `json:"description" example:"A fine game"`
	Quantity    int    `json:"quantity" example:"3"`
	Price       *int64 `json:"price,omitempty" example:"1500"`
	Type        string `json:"type" example:"raffle"`
}

type EditLotRequestDTO struct {
	Title           *string `json:"title,omitempty"`
	HTMLTitle       *string `json:"html_title,omitempty"`
	Description     *string `json:"description,omitempty"`
	HTMLDescription *string `json:"html_description,omitempty"`
	Quantity        *int    `json:"quantity,omitempty"`
	Price           *int64  `json:"price,omitempty"`
	OwnerID         *int64  `json:"owner_id,omitempty"`
}

type DeleteLotResponseDTO struct {
	OwnerID   int64 `json:"owner_id" example:"1042"`
	OwnedLots int   `json:"owned_lots" example:"1"`
}

type ValidationProblemDTO struct {
	Field  string `json:"field" example:"price"`
	Reason string `json:"reason" example:"must be between 1 and 10,000"`
}
