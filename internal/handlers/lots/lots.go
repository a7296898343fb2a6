package lots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/dto"
	lotrepo "github.com/salembot/neoraffle/internal/repo/lot-repo"
	catalogservice "github.com/salembot/neoraffle/internal/service/catalogservice"
	"github.com/salembot/neoraffle/pkg/utils"
)

type Service interface {
	AddLot(ctx context.Context, p catalogservice.AddLotParams) (int64, error)
	GetLot(ctx context.Context, lotID int64) (*domain.Lot, error)
	ListLots(ctx context.Context) ([]domain.Lot, error)
	EditLot(ctx context.Context, lotID int64, upd lotrepo.Update) error
	DeleteLot(ctx context.Context, lotID int64, requesterID *int64) (*catalogservice.DeleteResult, error)
	CountOwnedLots(ctx context.Context, userID int64) (int, error)
}

type LotHandler struct {
	catalogService Service
}

func New(catalogService Service) *LotHandler {
	return &LotHandler{
		catalogService: catalogService,
	}
}

// AddLot godoc
//
//	@Summary		Offer a lot
//	@Description	Create a raffle or auction lot. Price applies to raffles only (1–10,000 per ticket); quantity is 1–10. Numeric fields accept comma-grouped strings. All validation problems are reported in one reply.
//	@Tags			Lots
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddLotRequestDTO	true	"Lot submission"
//	@Success		201		{object}	dto.AddLotResponseDTO
//	@Failure		400		{object}	utils.Response				"Malformed request body"
//	@Failure		404		{object}	utils.Response				"Owner not registered"
//	@Failure		422		{array}		dto.ValidationProblemDTO	"Validation problems"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/lots [post]
func (h *LotHandler) AddLot(w http.ResponseWriter, r *http.Request) {
	var req dto.AddLotRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lotType, ok := domain.ParseLotType(req.Type)
	if !ok {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, []dto.ValidationProblemDTO{
			{Field: "type", Reason: "must be raffle or auction"},
		})
		return
	}

	lotID, err := h.catalogService.AddLot(r.Context(), catalogservice.AddLotParams{
		OwnerID:         req.OwnerID,
		Title:           req.Title,
		HTMLTitle:       req.HTMLTitle,
		Description:     req.Description,
		HTMLDescription: req.HTMLDescription,
		Price:           req.Price,
		Quantity:        req.Quantity,
		Type:            lotType,
	})
	if err != nil {
		var problems domain.ValidationErrors
		switch {
		case errors.As(err, &problems):
			response := make([]dto.ValidationProblemDTO, len(problems))
			for i, p := range problems {
				response[i] = dto.ValidationProblemDTO{Field: p.Field, Reason: p.Reason}
			}
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, response)
		case errors.Is(err, domain.ErrUserNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.AddLotResponseDTO{LotID: lotID})
}

// GetLot godoc
//
//	@Summary		Get one lot
//	@Tags			Lots
//	@Produce		json
//	@Param			lotID	path		int	true	"Lot ID"
//	@Success		200		{object}	dto.LotResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid lot ID"
//	@Failure		404		{object}	utils.Response	"Lot not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/lots/{lotID} [get]
func (h *LotHandler) GetLot(w http.ResponseWriter, r *http.Request) {
	lotID, ok := pathID(w, r, "lotID")
	if !ok {
		return
	}

	lot, err := h.catalogService.GetLot(r.Context(), lotID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLotNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lotToDTO(lot))
}

// ListLots godoc
//
//	@Summary		List all lots
//	@Tags			Lots
//	@Produce		json
//	@Success		200	{array}		dto.LotResponseDTO
//	@Success		204	{object}	utils.Response	"No lots offered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/lots [get]
func (h *LotHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.catalogService.ListLots(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(lots) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No lots offered")
		return
	}

	response := make([]dto.LotResponseDTO, len(lots))
	for i := range lots {
		response[i] = lotToDTO(&lots[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// EditLot godoc
//
//	@Summary		Edit a lot
//	@Description	Apply a partial update; absent fields keep their values. Reassigning ownership to an unregistered user is rejected.
//	@Tags			Lots
//	@Accept			json
//	@Produce		json
//	@Param			lotID	path		int						true	"Lot ID"
//	@Param			request	body		dto.EditLotRequestDTO	true	"Fields to change"
//	@Success		200		{object}	utils.Response			"Lot updated"
//	@Failure		400		{object}	utils.Response			"Malformed request"
//	@Failure		404		{object}	utils.Response			"Lot not found"
//	@Failure		422		{object}	utils.Response			"Unknown owner"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/lots/{lotID} [patch]
func (h *LotHandler) EditLot(w http.ResponseWriter, r *http.Request) {
	lotID, ok := pathID(w, r, "lotID")
	if !ok {
		return
	}

	var req dto.EditLotRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.catalogService.EditLot(r.Context(), lotID, lotrepo.Update{
		Title:           req.Title,
		HTMLTitle:       req.HTMLTitle,
		Description:     req.Description,
		HTMLDescription: req.HTMLDescription,
		Quantity:        req.Quantity,
		Price:           req.Price,
		OwnerID:         req.OwnerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLotNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidOwner):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "lot updated"})
}

// DeleteLot godoc
//
//	@Summary		Delete a lot
//	@Description	Remove a lot together with its bids, ticket purchases, and winner records. With requester_id set, only the lot's owner may delete it. Returns the former owner and their remaining lot count.
//	@Tags			Lots
//	@Produce		json
//	@Param			lotID			path		int	true	"Lot ID"
//	@Param			requester_id	query		int	false	"Acting user, for the ownership check"
//	@Success		200				{object}	dto.DeleteLotResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid parameters"
//	@Failure		403				{object}	utils.Response	"Requester does not own the lot"
//	@Failure		404				{object}	utils.Response	"Lot or requester not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/lots/{lotID} [delete]
func (h *LotHandler) DeleteLot(w http.ResponseWriter, r *http.Request) {
	lotID, ok := pathID(w, r, "lotID")
	if !ok {
		return
	}

	var requesterID *int64
	if raw := r.URL.Query().Get("requester_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid requester_id")
			return
		}
		requesterID = &id
	}

	result, err := h.catalogService.DeleteLot(r.Context(), lotID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLotNotFound), errors.Is(err, domain.ErrUserNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteLotResponseDTO{
		OwnerID:   result.OwnerID,
		OwnedLots: result.OwnedLots,
	})
}

// CountOwnedLots godoc
//
//	@Summary		Count a user's offered lots
//	@Tags			Lots
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	map[string]int
//	@Failure		400		{object}	utils.Response	"Invalid user ID"
//	@Failure		404		{object}	utils.Response	"User not registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{userID}/lots/count [get]
func (h *LotHandler) CountOwnedLots(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	count, err := h.catalogService.CountOwnedLots(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]int{"owned_lots": count})
}

func lotToDTO(lot *domain.Lot) dto.LotResponseDTO {
	return dto.LotResponseDTO{
		ID:          lot.ID,
		OwnerID:     lot.OwnerID,
		Title:       lot.Title,
		Description: lot.Description,
		Quantity:    lot.Quantity,
		Price:       lot.Price,
		Type:        lot.Type.String(),
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
