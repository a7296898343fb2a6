package draw

import (
	"context"
	"net/http"

	"github.com/salembot/neoraffle/internal/dto"
	"github.com/salembot/neoraffle/internal/notify"
	drawservice "github.com/salembot/neoraffle/internal/service/drawservice"
	"github.com/salembot/neoraffle/pkg/utils"
)

type Service interface {
	DrawWinners(ctx context.Context) (*drawservice.Report, error)
	EventSummary(ctx context.Context) ([]drawservice.LotSummary, error)
}

type DrawHandler struct {
	drawService Service
	notifier    notify.Notifier
}

func New(drawService Service, notifier notify.Notifier) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
		notifier:    notifier,
	}
}

// Draw godoc
//
//	@Summary		Run the event close-out draw
//	@Description	Clears all winner records and recomputes them: random without-replacement winners for raffles, the top bidder for auctions. Purchase activity must be stopped before calling.
//	@Tags			Draw
//	@Produce		json
//	@Success		200	{object}	dto.DrawResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/draw [post]
func (h *DrawHandler) Draw(w http.ResponseWriter, r *http.Request) {
	report, err := h.drawService.DrawWinners(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.DrawResponseDTO{RunID: report.RunID}
	for _, lot := range report.Lots {
		response.Lots = append(response.Lots, dto.LotDrawResultDTO{
			LotID:   lot.LotID,
			OwnerID: lot.OwnerID,
			Title:   lot.Title,
			Type:    lot.Type.String(),
			Winners: lot.Winners,
		})
	}

	h.notifier.Notify(notify.Event{Type: notify.EventDraw, Payload: response})
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Summary godoc
//
//	@Summary		Summarize event activity per lot
//	@Tags			Draw
//	@Produce		json
//	@Success		200	{array}		dto.LotSummaryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/draw/summary [get]
func (h *DrawHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.drawService.EventSummary(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LotSummaryResponseDTO, len(summaries))
	for i, s := range summaries {
		response[i] = dto.LotSummaryResponseDTO{
			LotID:       s.LotID,
			Title:       s.Title,
			Type:        s.Type.String(),
			TicketsSold: s.TicketsSold,
			TopBidder:   s.TopBidder,
			TopAmount:   s.TopAmount,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
