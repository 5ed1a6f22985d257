package v1

import (
	"net/http"

	"go-contact-backend/config"
	"go-contact-backend/internal/delivery/http/middleware"
	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/csrf"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	CsrfStore *csrf.Store
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// A wrong verb on a known route is 405, not 404, with the same envelope.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Error: Method not allowed", nil)
	})
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Error: Not found", nil)
	})

	public := r.Group("/v1")

	public.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"healthy": true})
	})

	NewContactHandler(public, deps.ContactUC)
	NewCsrfHandler(public, deps.CsrfStore)

	return r
}
