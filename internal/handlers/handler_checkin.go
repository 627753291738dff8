package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
)

// checkInHandler handles HTTP requests for both check-in kinds.
type checkInHandler struct {
	checkInService portssvc.CheckInSvcFacade
}

func newCheckInHandler(checkInService portssvc.CheckInSvcFacade) *checkInHandler {
	return &checkInHandler{checkInService: checkInService}
}

// RegisterCheckInRoutes sets up the check-in routes on the protected group.
func RegisterCheckInRoutes(rg *gin.RouterGroup, checkInService portssvc.CheckInSvcFacade) {
	h := newCheckInHandler(checkInService)

	checkin := rg.Group("/checkin")
	{
		checkin.GET("", h.listCheckIns)
		checkin.POST("", h.createCheckIn)

		quick := checkin.Group("/quick")
		{
			quick.GET("", h.listQuickCheckIns)
			quick.POST("", h.createQuickCheckIn)
			quick.GET("/:id", h.getQuickCheckIn)
			quick.PUT("/:id", h.updateQuickCheckIn)
			quick.PATCH("/:id", h.updateQuickCheckIn)
			quick.DELETE("/:id", h.deleteQuickCheckIn)
		}

		checkin.GET("/:id", h.getCheckIn)
		checkin.PUT("/:id", h.updateCheckIn)
		checkin.PATCH("/:id", h.updateCheckIn)
		checkin.DELETE("/:id", h.deleteCheckIn)
	}
}

// listCheckIns godoc
// @Summary List own check-ins
// @Description Returns the caller's detailed check-ins, newest first.
// @Tags checkin
// @Produce json
// @Success 200 {array} dto.CheckInResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin [get]
func (h *checkInHandler) listCheckIns(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	checkIns, err := h.checkInService.ListCheckIns(c.Request.Context(), caller)
	if err != nil {
		handleServiceError(c, err, "Check-in not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckInResponseList(checkIns))
}

// createCheckIn godoc
// @Summary Create a check-in
// @Description Creates a detailed check-in owned by the caller; any owner field in the payload is ignored.
// @Tags checkin
// @Accept json
// @Produce json
// @Param checkin body dto.CreateCheckInRequest true "Check-in payload"
// @Success 201 {object} dto.CheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin [post]
func (h *checkInHandler) createCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	checkIn, err := h.checkInService.CreateCheckIn(c.Request.Context(), caller, req)
	if err != nil {
		handleServiceError(c, err, "Check-in not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCheckInResponse(checkIn))
}

// getCheckIn godoc
// @Summary Get a check-in
// @Description Returns one of the caller's check-ins. Records owned by other accounts are reported as not found.
// @Tags checkin
// @Produce json
// @Param id path string true "Check-in ID"
// @Success 200 {object} dto.CheckInResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/{id} [get]
func (h *checkInHandler) getCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	checkIn, err := h.checkInService.GetCheckIn(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Check-in not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckInResponse(checkIn))
}

// updateCheckIn godoc
// @Summary Update a check-in
// @Description Applies a partial update to one of the caller's check-ins. PUT and PATCH behave identically.
// @Tags checkin
// @Accept json
// @Produce json
// @Param id path string true "Check-in ID"
// @Param checkin body dto.UpdateCheckInRequest true "Fields to update"
// @Success 200 {object} dto.CheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/{id} [put]
func (h *checkInHandler) updateCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	checkIn, err := h.checkInService.UpdateCheckIn(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Check-in not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckInResponse(checkIn))
}

// deleteCheckIn godoc
// @Summary Delete a check-in
// @Tags checkin
// @Produce json
// @Param id path string true "Check-in ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/{id} [delete]
func (h *checkInHandler) deleteCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.checkInService.DeleteCheckIn(c.Request.Context(), caller, c.Param("id")); err != nil {
		handleServiceError(c, err, "Check-in not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// listQuickCheckIns godoc
// @Summary List own quick check-ins
// @Tags checkin
// @Produce json
// @Success 200 {array} dto.QuickCheckInResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/quick [get]
func (h *checkInHandler) listQuickCheckIns(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	quickCheckIns, err := h.checkInService.ListQuickCheckIns(c.Request.Context(), caller)
	if err != nil {
		handleServiceError(c, err, "Quick check-in not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuickCheckInResponseList(quickCheckIns))
}

// createQuickCheckIn godoc
// @Summary Create a quick check-in
// @Description Creates a quick check-in. The mood code is capped at 16 characters but its value is not interpreted.
// @Tags checkin
// @Accept json
// @Produce json
// @Param checkin body dto.CreateQuickCheckInRequest true "Quick check-in payload"
// @Success 201 {object} dto.QuickCheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/quick [post]
func (h *checkInHandler) createQuickCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.CreateQuickCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quickCheckIn, err := h.checkInService.CreateQuickCheckIn(c.Request.Context(), caller, req)
	if err != nil {
		handleServiceError(c, err, "Quick check-in not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuickCheckInResponse(quickCheckIn))
}

// getQuickCheckIn godoc
// @Summary Get a quick check-in
// @Tags checkin
// @Produce json
// @Param id path string true "Quick check-in ID"
// @Success 200 {object} dto.QuickCheckInResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/quick/{id} [get]
func (h *checkInHandler) getQuickCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	quickCheckIn, err := h.checkInService.GetQuickCheckIn(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Quick check-in not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuickCheckInResponse(quickCheckIn))
}

// updateQuickCheckIn godoc
// @Summary Update a quick check-in
// @Tags checkin
// @Accept json
// @Produce json
// @Param id path string true "Quick check-in ID"
// @Param checkin body dto.UpdateQuickCheckInRequest true "Fields to update"
// @Success 200 {object} dto.QuickCheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/quick/{id} [put]
func (h *checkInHandler) updateQuickCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateQuickCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	quickCheckIn, err := h.checkInService.UpdateQuickCheckIn(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Quick check-in not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuickCheckInResponse(quickCheckIn))
}

// deleteQuickCheckIn godoc
// @Summary Delete a quick check-in
// @Tags checkin
// @Produce json
// @Param id path string true "Quick check-in ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checkin/quick/{id} [delete]
func (h *checkInHandler) deleteQuickCheckIn(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.checkInService.DeleteQuickCheckIn(c.Request.Context(), caller, c.Param("id")); err != nil {
		handleServiceError(c, err, "Quick check-in not found")
		return
	}
	c.Status(http.StatusNoContent)
}
