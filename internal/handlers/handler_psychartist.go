package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
	portssvc "github.com/mindcare-app/mindcare_backend/internal/core/ports/services"
	"github.com/mindcare-app/mindcare_backend/internal/dto"
	"github.com/mindcare-app/mindcare_backend/internal/middleware"
)

// maxProfilePictureBytes caps profile picture uploads at 5 MiB.
const maxProfilePictureBytes = 5 << 20

// psychartistHandler handles the application workflow, the admin review
// surface, and public discovery.
type psychartistHandler struct {
	psychartistService portssvc.PsychartistSvcFacade
}

func newPsychartistHandler(psychartistService portssvc.PsychartistSvcFacade) *psychartistHandler {
	return &psychartistHandler{psychartistService: psychartistService}
}

// registerPsychartistRoutes sets up the authenticated practitioner routes on
// the protected group.
func registerPsychartistRoutes(rg *gin.RouterGroup, psychartistService portssvc.PsychartistSvcFacade) {
	h := newPsychartistHandler(psychartistService)

	psychartist := rg.Group("/psychartist")
	{
		psychartist.POST("/apply", h.apply)
		psychartist.GET("/application/status", h.applicationStatus)
		psychartist.PUT("/application/picture", h.attachPicture)

		admin := psychartist.Group("/admin", middleware.RequireSuperuser())
		{
			admin.GET("/applications", h.listApplications)
			admin.POST("/applications/:id/approve", h.approveApplication)
			admin.POST("/applications/:id/reject", h.rejectApplication)
		}
	}
}

// registerPublicPsychartistRoutes sets up public discovery, no auth required.
func registerPublicPsychartistRoutes(r *gin.Engine, psychartistService portssvc.PsychartistSvcFacade) {
	h := newPsychartistHandler(psychartistService)

	public := r.Group("/api/v1/psychartist")
	{
		public.GET("", h.listPublicProfiles)
		public.GET("/:id", h.getPublicProfile)
	}
}

// apply godoc
// @Summary Submit a practitioner application
// @Description Creates the caller's one-time application in pending state. A second submission is rejected and the original is left untouched.
// @Tags psychartist
// @Accept json
// @Produce json
// @Param application body dto.ApplyRequest true "Application payload"
// @Success 201 {object} dto.ApplyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /psychartist/apply [post]
func (h *psychartistHandler) apply(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	app, err := h.psychartistService.SubmitApplication(c.Request.Context(), caller, req)
	if err != nil {
		handleServiceError(c, err, "Application not found")
		return
	}

	c.JSON(http.StatusCreated, dto.ApplyResponse{
		Message:       "Application submitted successfully",
		ApplicationID: app.ApplicationID,
		Status:        string(app.Status),
	})
}

// applicationStatus godoc
// @Summary Own application
// @Description Returns the caller's application, or 404 when none exists.
// @Tags psychartist
// @Produce json
// @Success 200 {object} dto.ApplicationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /psychartist/application/status [get]
func (h *psychartistHandler) applicationStatus(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	app, err := h.psychartistService.GetOwnApplication(c.Request.Context(), caller)
	if err != nil {
		handleServiceError(c, err, "No application found")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// attachPicture godoc
// @Summary Upload a profile picture
// @Description Stores the picture in the media store and records its URL on the caller's application and profile.
// @Tags psychartist
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /psychartist/application/picture [put]
func (h *psychartistHandler) attachPicture(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Picture file is required"})
		return
	}
	if fileHeader.Size > maxProfilePictureBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Picture exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read picture file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.psychartistService.AttachProfilePicture(c.Request.Context(), caller, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		handleServiceError(c, err, "No application found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_picture": url})
}

// listApplications godoc
// @Summary List applications (admin)
// @Description Returns all practitioner applications, newest first, optionally filtered by exact status.
// @Tags psychartist-admin
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {array} dto.ApplicationAdminResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /psychartist/admin/applications [get]
func (h *psychartistHandler) listApplications(c *gin.Context) {
	var params dto.ListApplicationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
		return
	}

	var status *domain.ApplicationStatus
	if params.Status != "" {
		s := domain.ApplicationStatus(params.Status)
		status = &s
	}

	apps, err := h.psychartistService.ListApplications(c.Request.Context(), status)
	if err != nil {
		handleServiceError(c, err, "Application not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationAdminResponseList(apps))
}

// approveApplication godoc
// @Summary Approve an application (admin)
// @Description Transitions a pending application to approved and publishes (or reactivates) the practitioner profile.
// @Tags psychartist-admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param review body dto.ReviewRequest false "Optional review notes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Already reviewed"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /psychartist/admin/applications/{id}/approve [post]
func (h *psychartistHandler) approveApplication(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}

	profile, err := h.psychartistService.ApproveApplication(c.Request.Context(), caller, c.Param("id"), req.ReviewNotes)
	if err != nil {
		handleServiceError(c, err, "Application not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application approved",
		"psychartist": dto.ToPsychartistResponse(profile),
	})
}

// rejectApplication godoc
// @Summary Reject an application (admin)
// @Description Transitions a pending application to rejected. An existing profile is deactivated, not deleted.
// @Tags psychartist-admin
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param review body dto.ReviewRequest false "Optional review notes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Already reviewed"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /psychartist/admin/applications/{id}/reject [post]
func (h *psychartistHandler) rejectApplication(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
			return
		}
	}

	app, err := h.psychartistService.RejectApplication(c.Request.Context(), caller, c.Param("id"), req.ReviewNotes)
	if err != nil {
		handleServiceError(c, err, "Application not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application rejected",
		"application": dto.ToApplicationResponse(app),
	})
}

// listPublicProfiles godoc
// @Summary Public practitioner directory
// @Description Lists active, verified practitioner profiles. No authentication required.
// @Tags psychartist
// @Produce json
// @Success 200 {array} dto.PsychartistResponse
// @Router /psychartist [get]
func (h *psychartistHandler) listPublicProfiles(c *gin.Context) {
	profiles, err := h.psychartistService.ListPublicProfiles(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Psychartist not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToPsychartistResponseList(profiles))
}

// getPublicProfile godoc
// @Summary Public practitioner profile
// @Description Returns one active, verified profile. Inactive or unverified profiles are reported as not found.
// @Tags psychartist
// @Produce json
// @Param id path string true "Psychartist ID"
// @Success 200 {object} dto.PsychartistResponse
// @Failure 404 {object} ErrorResponse
// @Router /psychartist/{id} [get]
func (h *psychartistHandler) getPublicProfile(c *gin.Context) {
	profile, err := h.psychartistService.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Psychartist not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToPsychartistResponse(profile))
}
