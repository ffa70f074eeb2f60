package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "scholarlink/docs"
	"scholarlink/internal/handler"
	"scholarlink/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health  *handler.HealthHandler
	Verify  *handler.VerifyHandler
	Student *handler.StudentHandler
	Donor   *handler.DonorHandler
	Session *handler.SessionHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, maxUploadBytes int64) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(allowedOrigins))

	if maxUploadBytes > 0 {
		r.MaxMultipartMemory = maxUploadBytes
	}

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Session())

	v1.POST("/verify", h.Verify.Verify)

	students := v1.Group("/students")
	students.POST("", h.Student.Register)
	students.GET("", h.Student.List)
	students.GET("/export", h.Student.Export)
	students.GET("/:id", h.Student.GetByID)
	students.PATCH("/:id", h.Student.Update)
	students.POST("/:id/marks-memo", h.Student.SubmitMarksMemo)

	donors := v1.Group("/donors")
	donors.POST("", h.Donor.Register)
	donors.GET("/:id", h.Donor.GetByID)
	donors.PUT("/:id/preferences", h.Donor.SetPreferences)
	donors.GET("/:id/preferences", h.Donor.GetPreferences)
	donors.GET("/:id/matches", h.Donor.Matches)

	session := v1.Group("/session")
	session.PUT("/role", h.Session.SetRole)
	session.GET("/role", h.Session.GetRole)
	session.DELETE("/role", h.Session.ClearRole)

	return r
}
