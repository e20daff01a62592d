package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pammu-27/sparsha-backend/internal/config"
	"github.com/pammu-27/sparsha-backend/internal/domain/admin"
	"github.com/pammu-27/sparsha-backend/internal/domain/inquiry"
	"github.com/pammu-27/sparsha-backend/internal/domain/media"
	"github.com/pammu-27/sparsha-backend/internal/domain/testimonial"
	"github.com/pammu-27/sparsha-backend/internal/middleware"
	jwtsvc "github.com/pammu-27/sparsha-backend/internal/pkg/jwt"
	"github.com/pammu-27/sparsha-backend/internal/pkg/response"
	"github.com/pammu-27/sparsha-backend/internal/storage"
)

// Deps are the process-scoped handles the router is built from.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Store  storage.Store
	// Metrics may be nil, in which case no metrics are collected.
	Metrics *middleware.Metrics
}

// NewRouter wires every domain module onto a fresh gin engine.
func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	r.Use(middleware.RequestLogger())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	// recovery sits inside the logger and metrics so recovered 500s are recorded
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is live with %s storage", d.Store.Kind())
	})
	if d.Metrics != nil {
		r.GET("/metrics", d.Metrics.Handler())
	}
	if cfg.StorageBackend == config.StorageLocal {
		r.Static(cfg.UploadURLPrefix, cfg.UploadDir)
	}

	public := r.Group("")
	protected := r.Group("")
	if cfg.AdminEnabled() {
		j := jwtsvc.New(cfg.JWTSecret, cfg.AdminTokenTTL)
		authHandler := admin.NewAuthHandler(admin.NewService(cfg.AdminPasswordHash, j))
		authHandler.RegisterRoutes(public)
		protected.Use(admin.AdminJWTAuth(j))
	}

	mediaService := media.NewService(media.NewRepository(d.DB), d.Store, cfg.MaxUploadBytes)
	media.RegisterRoutes(public, protected, media.NewHandler(mediaService))

	testimonialService := testimonial.NewService(testimonial.NewRepository(d.DB))
	testimonial.RegisterRoutes(public, protected, testimonial.NewHandler(testimonialService))

	inquiryService := inquiry.NewService(inquiry.NewRepository(d.DB))
	inquiry.RegisterRoutes(public, protected, inquiry.NewHandler(inquiryService))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	return r
}
