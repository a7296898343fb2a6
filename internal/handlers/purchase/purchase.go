package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/dto"
	"github.com/salembot/neoraffle/internal/notify"
	purchaseservice "github.com/salembot/neoraffle/internal/service/purchaseservice"
	"github.com/salembot/neoraffle/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, kind string, userID, lotID int64, params purchaseservice.Params) (*purchaseservice.Result, error)
}

type PurchaseHandler struct {
	purchaseService Service
	notifier        notify.Notifier
}

func New(purchaseService Service, notifier notify.Notifier) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		notifier:        notifier,
	}
}

// Purchase godoc
//
//	@Summary		Buy raffle tickets or place an auction bid
//	@Description	Routes by kind: "raffle" escrows quantity×price and issues tickets; "auction" accepts a bid strictly above the current top bid, refunding the outbid user's escrow. Quantity and bid accept comma-grouped strings.
//	@Tags			Purchase
//	@Accept			json
//	@Produce		json
//	@Param			lotID	path		int						true	"Lot ID"
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed request"
//	@Failure		402		{object}	utils.Response	"Insufficient available currency"
//	@Failure		403		{object}	utils.Response	"Account inactive or buying own lot"
//	@Failure		404		{object}	utils.Response	"User or lot not found"
//	@Failure		409		{object}	utils.Response	"Bid does not exceed the current top bid"
//	@Failure		422		{object}	utils.Response	"Invalid kind, quantity, or bid"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/lots/{lotID}/purchase [post]
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	lotID, err := strconv.ParseInt(chi.URLParam(r, "lotID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid lotID")
		return
	}

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.purchaseService.Purchase(r.Context(), req.Kind, req.UserID, lotID, purchaseservice.Params{
		Quantity: req.Quantity,
		Bid:      req.Bid,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotRegistered), errors.Is(err, domain.ErrLotNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrAccountInactive), errors.Is(err, domain.ErrSelfPurchase):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrInvalidLotType),
			errors.Is(err, domain.ErrInvalidQuantity),
			errors.Is(err, domain.ErrInvalidBid):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrBidTooLow):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := resultToDTO(result)
	h.publish(response)
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// publish forwards the outcome to the bot layer; an outbid auction user gets
// their own event.
func (h *PurchaseHandler) publish(response dto.PurchaseResponseDTO) {
	h.notifier.Notify(notify.Event{Type: notify.EventPurchase, Payload: response})
	if response.Bid != nil && response.Bid.PrevTopBidder != nil {
		h.notifier.Notify(notify.Event{Type: notify.EventOutbid, Payload: response.Bid})
	}
}

func resultToDTO(result *purchaseservice.Result) dto.PurchaseResponseDTO {
	var response dto.PurchaseResponseDTO
	if result.Tickets != nil {
		response.Tickets = &dto.TicketPurchaseResponseDTO{
			LotID:       result.Tickets.LotID,
			Title:       result.Tickets.Title,
			TicketPrice: result.Tickets.TicketPrice,
			TotalCost:   result.Tickets.TotalCost,
			TicketIDs:   result.Tickets.TicketIDs,
		}
	}
	if result.Bid != nil {
		bid := &dto.BidResponseDTO{
			LotID: result.Bid.LotID,
			Title: result.Bid.Title,
			NewTopBidder: dto.BidderDTO{
				UserID: result.Bid.NewTopBidder.UserID,
				Amount: result.Bid.NewTopBidder.Amount,
			},
		}
		if prev := result.Bid.PrevTopBidder; prev != nil {
			bid.PrevTopBidder = &dto.BidderDTO{UserID: prev.UserID, Amount: prev.Amount}
		}
		response.Bid = bid
	}
	return response
}
