package dto

type RegisterRequestDTO struct {
	UserID    int64  `json:"user_id" example:"1042"`
	Username  string `json:"username" example:"salem"`
	NeoPts    int64  `json:"neopts" example:"3000"`
	GGPts     int64  `json:"ggpts" example:"500"`
	PostCount int64  `json:"post_count" example:"100"`
	WikiEdits int64  `json:"wiki_edits" example:"10"`

	NeoPtsCap  int64 `json:"neopts_cap,omitempty"`
	GGPtsCap   int64 `json:"ggpts_cap,omitempty"`
	PostsCap   int64 `json:"posts_cap,omitempty"`
	WikiPtsCap int64 `json:"wikipts_cap,omitempty"`

	Inactive bool `json:"inactive,omitempty"`
}

type RegisterResponseDTO struct {
	NeoPts   int64 `json:"neopts" example:"2000"`
	GGPts    int64 `json:"ggpts" example:"500"`
	PostPts  int64 `json:"postpts" example:"100"`
	WikiPts  int64 `json:"wikipts" example:"10"`
	TotalPts int64 `json:"totalpts" example:"2610"`
}

type RegisteredResponseDTO struct {
	Registered bool `json:"registered" example:"true"`
}

type UsernamesResponseDTO struct {
	Usernames []string `json:"usernames"`
}

type BalanceResponseDTO struct {
	Available int64 `json:"available" example:"2410"`
}

// SetBalanceRequestDTO sets the spendable currency either to an absolute
// value or by a delta; exactly one field must be present.
type SetBalanceRequestDTO struct {
	Value *int64 `json:"value,omitempty" example:"2000"`
	Delta *int64 `json:"delta,omitempty" example:"-150"`
}
