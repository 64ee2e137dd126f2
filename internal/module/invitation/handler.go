// Package invitation exposes the invitation endpoints used by the web client.
//
// The invitation flow is not built yet. Every handler answers 200 with a fixed
// payload, ignores the request body and never touches storage, so callers can
// integrate against the response shape today.
package invitation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for invitations.
type Handler struct{}

// NewHandler creates a new invitation handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers public invitation routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	invitations := r.Group("/invitations")
	{
		invitations.POST("/register", h.Register)
		invitations.POST("/claim", h.Claim)
		invitations.POST("/validate", h.ValidateToken)
		invitations.GET("/:token", h.Show)
	}
}

// Show handles looking up an invitation by token.
//
//	@Summary		Show invitation
//	@Description	Echo the invitation token (placeholder)
//	@Tags			Invitation
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	ShowResponse
//	@Router			/invitations/{token} [get]
func (h *Handler) Show(c *gin.Context) {
	c.JSON(http.StatusOK, ShowResponse{OK: true, Token: c.Param("token")})
}

// Register handles registration through an invitation.
//
//	@Summary		Register with invitation
//	@Description	Placeholder; the request body is ignored
//	@Tags			Invitation
//	@Produce		json
//	@Success		200	{object}	MessageResponse
//	@Router			/invitations/register [post]
func (h *Handler) Register(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{OK: true, Message: registerPlaceholder})
}

// Claim handles claiming an invitation.
//
//	@Summary		Claim invitation
//	@Description	Placeholder; the request body is ignored
//	@Tags			Invitation
//	@Produce		json
//	@Success		200	{object}	MessageResponse
//	@Router			/invitations/claim [post]
func (h *Handler) Claim(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{OK: true, Message: claimPlaceholder})
}

// ValidateToken handles token validation. No token is valid until the
// invitation flow exists.
//
//	@Summary		Validate invitation token
//	@Description	Placeholder; always reports valid=false
//	@Tags			Invitation
//	@Produce		json
//	@Success		200	{object}	ValidateResponse
//	@Router			/invitations/validate [post]
func (h *Handler) ValidateToken(c *gin.Context) {
	c.JSON(http.StatusOK, ValidateResponse{OK: true, Valid: false})
}
