package v1

import (
	"net/http"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	// Public Routes - NO authentication required
	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email         formData  string  true   "Submitter email address"
// @Param        message       formData  string  true   "Message body"
// @Param        name          formData  string  false  "Submitter name"
// @Param        captchaToken  formData  string  false  "CAPTCHA response token"
// @Param        csrfToken     formData  string  false  "CSRF token"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Everything the pipeline needs is threaded in explicitly; the usecase
	// never reads request state on its own.
	req := &domain.ContactRequest{
		Email:        c.PostForm("email"),
		Message:      c.PostForm("message"),
		Name:         c.PostForm("name"),
		CaptchaToken: c.PostForm("captchaToken"),
		CsrfToken:    c.PostForm("csrfToken"),
		RemoteIP:     c.ClientIP(),
		Host:         c.Request.Host,
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
