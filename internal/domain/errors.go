package domain

import (
	"errors"
	"strings"
)

// Error kinds surfaced to the bot layer. All of them are recoverable by the
// caller; storage failures are wrapped and propagated separately.
var (
	ErrAlreadyRegistered = errors.New("user is already registered")
	ErrUserNotRegistered = errors.New("user is not registered")
	ErrAccountInactive   = errors.New("user account is inactive")
	ErrLotNotFound       = errors.New("lot not found")
	ErrInvalidOwner      = errors.New("new owner is not a registered user")
	ErrInvalidQuantity   = errors.New("quantity is not a valid positive number")
	ErrInvalidBid        = errors.New("bid is not a valid positive number")
	ErrInsufficientFunds = errors.New("purchase cost exceeds available currency")
	ErrBidTooLow         = errors.New("bid does not exceed the current top bid")
	ErrInvalidLotType    = errors.New("purchase kind does not match the lot type")
	ErrSelfPurchase      = errors.New("cannot buy tickets or bid on your own lot")
	ErrNotOwner          = errors.New("cannot delete a lot that belongs to another user")
)

// FieldProblem is a single validation failure on a lot submission.
type FieldProblem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors bundles every field-level problem found in one submission
// so the caller can report them all in a single response.
type ValidationErrors []FieldProblem

func (v ValidationErrors) Error() string {
	reasons := make([]string, len(v))
	for i, p := range v {
		reasons[i] = p.Field + ": " + p.Reason
	}
	return "validation failed: " + strings.Join(reasons, "; ")
}
