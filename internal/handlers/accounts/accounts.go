package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salembot/neoraffle/internal/domain"
	"github.com/salembot/neoraffle/internal/dto"
	accountservice "github.com/salembot/neoraffle/internal/service/accountservice"
	"github.com/salembot/neoraffle/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, p accountservice.RegisterParams) (*domain.CurrencyBreakdown, error)
	IsRegistered(ctx context.Context, userID int64) (bool, error)
	ListUsernames(ctx context.Context) ([]string, error)
}

type Ledger interface {
	Available(ctx context.Context, userID int64) (int64, error)
	SetBalance(ctx context.Context, userID int64, value int64) error
	Adjust(ctx context.Context, userID int64, delta int64) error
}

type AccountHandler struct {
	accountService Service
	ledgerService  Ledger
}

func New(accountService Service, ledgerService Ledger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
	}
}

// Register godoc
//
//	@Summary		Register a user for the event
//	@Description	Snapshot the user's forum points into spendable event currency. Each point source is clamped into [0, cap] before summing.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		201		{object}	dto.RegisterResponseDTO	"Currency breakdown"
//	@Failure		400		{object}	utils.Response			"Malformed request body"
//	@Failure		409		{object}	utils.Response			"User already registered"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/accounts/register [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	breakdown, err := h.accountService.Register(r.Context(), accountservice.RegisterParams{
		UserID:     req.UserID,
		Username:   req.Username,
		NeoPts:     req.NeoPts,
		GGPts:      req.GGPts,
		PostCount:  req.PostCount,
		WikiEdits:  req.WikiEdits,
		NeoPtsCap:  req.NeoPtsCap,
		GGPtsCap:   req.GGPtsCap,
		PostsCap:   req.PostsCap,
		WikiPtsCap: req.WikiPtsCap,
		Inactive:   req.Inactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		NeoPts:   breakdown.NeoPts,
		GGPts:    breakdown.GGPts,
		PostPts:  breakdown.PostPts,
		WikiPts:  breakdown.WikiPts,
		TotalPts: breakdown.TotalPts,
	})
}

// IsRegistered godoc
//
//	@Summary		Check whether a user is registered
//	@Tags			Accounts
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.RegisteredResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user ID"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{userID}/registered [get]
func (h *AccountHandler) IsRegistered(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	registered, err := h.accountService.IsRegistered(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisteredResponseDTO{Registered: registered})
}

// ListUsernames godoc
//
//	@Summary		List registered usernames
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	dto.UsernamesResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/usernames [get]
func (h *AccountHandler) ListUsernames(w http.ResponseWriter, r *http.Request) {
	usernames, err := h.accountService.ListUsernames(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UsernamesResponseDTO{Usernames: usernames})
}

// GetBalance godoc
//
//	@Summary		Get a user's available currency
//	@Description	Available currency is the registration snapshot minus active holds.
//	@Tags			Accounts
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user ID"
//	@Failure		404		{object}	utils.Response	"User not registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{userID}/balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	available, err := h.ledgerService.Available(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Available: available})
}

// SetBalance godoc
//
//	@Summary		Correct a user's currency
//	@Description	Set the currency to an absolute value, or apply a signed delta. Exactly one of the two fields must be present. Held currency is untouched.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int							true	"User ID"
//	@Param			request	body		dto.SetBalanceRequestDTO	true	"Value or delta"
//	@Success		200		{object}	utils.Response				"Balance updated"
//	@Failure		400		{object}	utils.Response				"Malformed request"
//	@Failure		404		{object}	utils.Response				"User not registered"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/accounts/{userID}/balance [put]
func (h *AccountHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req dto.SetBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if (req.Value == nil) == (req.Delta == nil) {
		utils.RespondWithError(w, http.StatusBadRequest, "exactly one of value or delta must be set")
		return
	}

	var err error
	if req.Value != nil {
		err = h.ledgerService.SetBalance(r.Context(), userID, *req.Value)
	} else {
		err = h.ledgerService.Adjust(r.Context(), userID, *req.Delta)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotRegistered):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "balance updated"})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
