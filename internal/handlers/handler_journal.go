package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes sets up the journal routes on the protected group.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journal := rg.Group("/journal")
	{
		journal.GET("", h.listEntries)
		journal.POST("", h.createEntry)
		journal.GET("/:id", h.getEntry)
		journal.PUT("/:id", h.updateEntry)
		journal.PATCH("/:id", h.updateEntry)
		journal.DELETE("/:id", h.deleteEntry)
	}
}

// listEntries godoc
// @Summary List own journal entries
// @Description Returns the caller's journal entries, newest first.
// @Tags journal
// @Produce json
// @Success 200 {array} dto.JournalEntryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	entries, err := h.journalService.ListJournalEntries(c.Request.Context(), caller)
	if err != nil {
		handleServiceError(c, err, "Journal entry not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponseList(entries))
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates an entry owned by the caller; created_at and updated_at start equal.
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Entry payload"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), caller, req)
	if err != nil {
		handleServiceError(c, err, "Journal entry not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Returns one of the caller's entries. Records owned by other accounts are reported as not found.
// @Tags journal
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetJournalEntry(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Journal entry not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Applies a partial update and refreshes updated_at. created_at never changes. PUT and PATCH behave identically.
// @Tags journal
// @Accept json
// @Produce json
// @Param id path string true "Journal entry ID"
// @Param entry body dto.UpdateJournalEntryRequest true "Fields to update"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal/{id} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.journalService.UpdateJournalEntry(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Journal entry not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Tags journal
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal/{id} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.journalService.DeleteJournalEntry(c.Request.Context(), caller, c.Param("id")); err != nil {
		handleServiceError(c, err, "Journal entry not found")
		return
	}
	c.Status(http.StatusNoContent)
}
