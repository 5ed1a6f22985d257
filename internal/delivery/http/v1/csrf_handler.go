package v1

import (
	"net/http"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/csrf"

	"github.com/gin-gonic/gin"
)

type CsrfHandler struct {
	store *csrf.Store
}

// NewCsrfHandler registers the token issuance route. The page fetches a
// token here on render and echoes it back in the form's csrfToken field.
func NewCsrfHandler(public *gin.RouterGroup, store *csrf.Store) {
	handler := &CsrfHandler{store: store}
	public.GET("/csrf-token", handler.IssueToken)
}

// IssueToken godoc
// @Summary      Issue CSRF Token
// @Description  Issue a session token for the contact form.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /csrf-token [get]
func (h *CsrfHandler) IssueToken(c *gin.Context) {
	token, err := h.store.Issue(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"csrfToken": token})
}
