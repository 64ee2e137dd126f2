package testimonial

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uniedit/landing/internal/shared/response"
)

// An open breaker is reported like any other store failure.
var errorMappings = []response.ErrorMapping{
	{Err: ErrStoreUnavailable, Status: http.StatusInternalServerError, Message: "internal error"},
}

// Handler handles HTTP requests for testimonials.
type Handler struct {
	service *Service
}

// NewHandler creates a new testimonial handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers public testimonial routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/testimonials", h.ListTestimonials)
}

// ListTestimonials handles listing active testimonials.
//
//	@Summary		List testimonials
//	@Description	Get every active testimonial in store order
//	@Tags			Testimonial
//	@Produce		json
//	@Success		200	{object}	ListResponse
//	@Failure		500	{object}	response.ErrorResponse
//	@Router			/testimonials [get]
func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListActiveTestimonials(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.HandleErrorWithDefault(c, err, errorMappings)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Testimonials: testimonials})
}
