package handlers

import (
	"net/http"

	request "lyft_client/internal/adapter/http/dto/request"
	response "lyft_client/internal/adapter/http/dto/response"
	"lyft_client/internal/domain/entities"
	"lyft_client/internal/usecase"
	"lyft_client/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	sseEventEstimate = "estimate"
	sseEventError    = "error"
	sseEventEnd      = "end"
)

//go:generate mockgen -source=../../../usecase/estimate_usecase.go -destination=mocks/mock_estimate_usecase.go -package=mocks

// EstimateHandler is the HTTP mirror of internal.Estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     logger.ILogger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, log logger.ILogger) *EstimateHandler {
	return &EstimateHandler{usecase: uc, log: log}
}

// StreamEstimates godoc
// @Summary      Stream estimates
// @Description  Prices every requested service and streams one server-sent "estimate" event per quote, then an "end" event.
// @Tags         estimates
// @Accept       json
// @Produce      text/event-stream
// @Param        payload  body      request.EstimatesRequest  true  "Estimate request"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimates [post]
func (h *EstimateHandler) StreamEstimates(c *gin.Context) {
	credential, ok := sessionCredential(c)
	if !ok {
		abortWithError(c, errMissingCredential)
		return
	}

	var payload request.EstimatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	// Headers are committed by the first event; until then errors are plain JSON.
	sent := 0
	err := h.usecase.StreamEstimates(c.Request.Context(), credential, payload.ToQuery(), func(q entities.Quote) error {
		c.SSEvent(sseEventEstimate, response.FromQuote(q))
		c.Writer.Flush()
		sent++
		return c.Request.Context().Err()
	})
	if err != nil {
		appErr := mapUseCaseError(err)
		h.log.Warning("[estimate][http] stream failed", logger.Int("sent", sent), logger.Error(err))
		if sent == 0 {
			abortWithError(c, appErr)
			return
		}
		c.SSEvent(sseEventError, appErr.ToHTTPError())
		c.Writer.Flush()
		return
	}

	c.SSEvent(sseEventEnd, gin.H{"count": sent})
	c.Writer.Flush()
}

// RefreshEstimate godoc
// @Summary      Refresh an estimate
// @Description  Re-prices a cached estimate with its original parameters.
// @Tags         estimates
// @Produce      json
// @Param        estimate_id  path      string  true  "Estimate ID"
// @Success      200          {object}  response.EstimateResponse
// @Failure      404          {object}  pkg.HTTPError
// @Failure      502          {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /estimates/{estimate_id}/refresh [get]
func (h *EstimateHandler) RefreshEstimate(c *gin.Context) {
	credential, ok := sessionCredential(c)
	if !ok {
		abortWithError(c, errMissingCredential)
		return
	}

	estimateID := c.Param("estimate_id")
	q, err := h.usecase.RefreshEstimate(c.Request.Context(), credential, estimateID)
	if err != nil {
		h.log.Warning("[estimate][http] refresh failed", logger.String("estimate_id", estimateID), logger.Error(err))
		abortWithError(c, mapUseCaseError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}
