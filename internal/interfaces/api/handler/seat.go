package handler

import (
	"errors"
	"net/http"
	"strconv"

	"seatsync/internal/application/dto"
	appService "seatsync/internal/application/service"
	"seatsync/internal/domain/entity"
	"seatsync/internal/pkg/clock"
	appErrors "seatsync/internal/pkg/errors"
	"seatsync/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SeatHandler serves the reservation, auth and settings endpoints.
type SeatHandler struct {
	syncSvc  appService.SyncService
	eventSvc appService.EventService
	store    appService.StoreService
	clock    clock.Clock
	log      logger.Logger
}

// NewSeatHandler creates a new SeatHandler.
func NewSeatHandler(
	syncSvc appService.SyncService,
	eventSvc appService.EventService,
	store appService.StoreService,
	clk clock.Clock,
	log logger.Logger,
) *SeatHandler {
	return &SeatHandler{
		syncSvc:  syncSvc,
		eventSvc: eventSvc,
		store:    store,
		clock:    clk,
		log:      log,
	}
}

// respondError maps the error taxonomy onto HTTP statuses with enough
// structure for a client to render.
func (h *SeatHandler) respondError(c echo.Context, err error) error {
	if failed, ok := appErrors.AsFailed(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: failed.Message, Code: failed.Code})
	}
	switch {
	case errors.Is(err, appErrors.ErrRequireLogin), errors.Is(err, appErrors.ErrNoAccount):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, appErrors.ErrInvalidPage):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, appErrors.ErrSeatAPI):
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	}
	h.log.Error("Unhandled error in seat handler", err)
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: appErrors.ErrInternalServer.Error()})
}

// Login handles POST /auth/login.
func (h *SeatHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "username and password are required"})
	}
	account, err := h.eventSvc.AccountLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AccountResponse{Username: account.Username})
}

// Logout handles POST /auth/logout.
func (h *SeatHandler) Logout(c echo.Context) error {
	if err := h.eventSvc.AccountLogout(c.Request().Context()); err != nil {
		return h.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetReservation handles GET /reservation.
func (h *SeatHandler) GetReservation(c echo.Context) error {
	now := h.clock.Now()
	resp := dto.StateResponse{History: dto.ToReservationResponseList(h.store.History(), now)}
	if current := h.store.Current(); current != nil {
		r := dto.ToReservationResponse(current, now)
		resp.Reservation = &r
	}
	return c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /reservation/refresh.
func (h *SeatHandler) Refresh(c echo.Context) error {
	current, err := h.syncSvc.Refresh(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	resp := dto.StateResponse{History: dto.ToReservationResponseList(h.store.History(), h.clock.Now())}
	if current != nil {
		r := dto.ToReservationResponse(current, h.clock.Now())
		resp.Reservation = &r
	}
	return c.JSON(http.StatusOK, resp)
}

// Cancel handles POST /reservation/cancel.
func (h *SeatHandler) Cancel(c echo.Context) error {
	if err := h.syncSvc.Cancel(c.Request().Context()); err != nil {
		return h.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// History handles GET /reservation/history?page=n.
func (h *SeatHandler) History(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "page must be a number"})
		}
		page = parsed
	}
	reservations, err := h.syncSvc.FetchPage(c.Request().Context(), page)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.HistoryResponse{
		Page:         page,
		Reservations: dto.ToReservationResponseList(reservations, h.clock.Now()),
	})
}

// GetPreferences handles GET /settings/notifications.
func (h *SeatHandler) GetPreferences(c echo.Context) error {
	prefs, err := h.eventSvc.Preferences(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /settings/notifications.
func (h *SeatHandler) UpdatePreferences(c echo.Context) error {
	var req dto.PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	prefs := &entity.NotificationPreferences{
		Enabled:     req.Enabled,
		ReserveOpen: req.AutoReserveReminder,
		Upcoming:    req.UpcomingReminder,
		End:         req.EndReminder,
		TempAway:    req.TempAwayReminder,
	}
	if err := h.eventSvc.PreferencesChanged(c.Request().Context(), prefs); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, prefs)
}
