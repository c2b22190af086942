package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/shenikar/geo_safety_system/internal/service"
)

// @Summary Trigger SOS
// @Description Enrich an emergency alert with location context and nearby incident stats and queue it for webhook delivery. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sos body SOSRequest true "SOS request"
// @Success 202 {object} models.SOSAlert
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	var input SOSRequest
	log := h.logger.WithField("method", "triggerSOS")
	if !h.bindJSON(c, log, &input) {
		return
	}

	alert, err := h.alertService.TriggerSOS(c.Request.Context(), DTOToSOSRequest(input))
	if err != nil {
		h.writeServiceError(c, log.WithField("user_id", input.UserID), err)
		return
	}
	c.JSON(http.StatusAccepted, alert)
}

// @Summary Share live location
// @Description Create or update a time-limited live location share. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param share body ShareLocationRequest true "Location share"
// @Success 200 {object} models.LocationShare
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Share belongs to another user"
// @Router /location/share [post]
func (h *Handler) shareLocation(c *gin.Context) {
	var input ShareLocationRequest
	log := h.logger.WithField("method", "shareLocation")
	if !h.bindJSON(c, log, &input) {
		return
	}

	share, err := h.alertService.ShareLocation(c.Request.Context(), DTOToLocationShare(input))
	if err != nil {
		h.writeServiceError(c, log.WithField("share_id", input.ID), err)
		return
	}
	c.JSON(http.StatusOK, share)
}

// @Summary Get shared location
// @Description Current position of a live location share
// @Tags Alerts
// @Produce json
// @Param id path string true "Share ID"
// @Success 200 {object} models.LocationShare
// @Failure 404 {object} map[string]string "Share not found or expired"
// @Router /location/share/{id} [get]
func (h *Handler) getSharedLocation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getSharedLocation").WithField("share_id", id)

	share, err := h.alertService.GetSharedLocation(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, share)
}

// @Summary Stream shared location
// @Description Websocket stream of a live location share. A message is sent on every position update; the stream closes when the share expires.
// @Tags Alerts
// @Param id path string true "Share ID"
// @Success 101 "Switching Protocols"
// @Failure 404 {object} map[string]string "Share not found or expired"
// @Router /location/share/{id}/ws [get]
func (h *Handler) streamSharedLocation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "streamSharedLocation").WithField("share_id", id)

	share, err := h.alertService.GetSharedLocation(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, log, err)
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: h.cfg.CORSOrigins,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to accept websocket connection")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	// Входящие сообщения не ожидаются; CloseRead отменяет контекст, когда клиент уходит
	ctx := conn.CloseRead(c.Request.Context())
	log.Debug("Location stream opened")

	if err := wsjson.Write(ctx, conn, share); err != nil {
		log.WithError(err).Debug("Failed to write location update")
		return
	}
	lastUpdate := share.UpdatedAt

	ticker := time.NewTicker(h.streamInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug("Location stream closed by client")
			return
		case <-ticker.C:
			current, err := h.alertService.GetSharedLocation(ctx, id)
			if errors.Is(err, service.ErrShareNotFound) {
				_ = conn.Close(websocket.StatusNormalClosure, "location share expired")
				return
			}
			if err != nil || current.UpdatedAt.Equal(lastUpdate) {
				continue
			}
			if err := wsjson.Write(ctx, conn, current); err != nil {
				log.WithError(err).Debug("Failed to write location update")
				return
			}
			lastUpdate = current.UpdatedAt
		}
	}
}
