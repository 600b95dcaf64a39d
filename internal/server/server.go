package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showbench/internal/config"
	"showbench/internal/mailer"
	"showbench/internal/uploads"
)

type Server struct {
	cfg       config.Config
	tenants   map[string]*gorm.DB
	presigner uploads.Presigner
	mail      mailer.Sender
}

func New(tenants map[string]*gorm.DB, cfg config.Config, presigner uploads.Presigner, mail mailer.Sender) *Server {
	if mail == nil {
		mail = mailer.LogSender{}
	}
	return &Server{
		cfg:       cfg,
		tenants:   tenants,
		presigner: presigner,
		mail:      mail,
	}
}

func (s *Server) Router(mode string) *gin.Engine {
	gin.SetMode(mode)
	registerValidations()
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	api := r.Group("/api", s.resolveTenant)

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/exchange", s.handleExchange)

	api.GET("/events", s.handleListEvents)
	api.GET("/events/:id", s.handleGetEvent)
	api.GET("/events/:id/categories", s.handleListCategories)
	api.GET("/events/:id/sponsors", s.handleListSponsors)

	user := api.Group("", s.authRequired())
	user.POST("/models", s.handleCreateModel)
	user.GET("/my/models", s.handleMyModels)
	user.GET("/models/:id", s.handleGetModel)
	user.PATCH("/models/:id", s.handleUpdateModel)
	user.DELETE("/models/:id", s.handleDeleteModel)
	user.POST("/models/:id/image-upload", s.handleImageUpload)
	user.POST("/registrations", s.handleCreateRegistration)
	user.GET("/my/registrations", s.handleMyRegistrations)
	user.POST("/modification-requests", s.handleCreateModificationRequest)

	judge := api.Group("/judge", s.authRequired(), s.requireRole("judge", "admin"))
	judge.GET("/models", s.handleJudgeModels)
	judge.POST("/vote", s.handleJudgeVote)
	judge.GET("/votes", s.handleMyVotes)
	judge.POST("/special-mentions", s.handleCreateSpecialMention)

	manager := api.Group("", s.authRequired(), s.requireRole("manager", "staff", "admin"))
	manager.GET("/awards/events/:eventId", s.handleEventAwards)
	manager.GET("/awards/events/:eventId/categories/:categoryId", s.handleCategoryAwards)
	manager.GET("/registrations", s.handleListRegistrations)
	manager.PATCH("/registrations/:id", s.handleReviewRegistration)
	manager.POST("/registrations/:id/checkin", s.handleCheckIn)
	manager.POST("/registrations/:id/payments", s.handleRecordPayment)
	manager.GET("/judge-assignments", s.handleListJudgeAssignments)
	manager.POST("/judge-assignments", s.handleCreateJudgeAssignment)
	manager.DELETE("/judge-assignments/:id", s.handleDeleteJudgeAssignment)
	manager.POST("/events/:id/sponsors", s.handleCreateSponsor)
	manager.DELETE("/sponsors/:id", s.handleDeleteSponsor)
	manager.GET("/modification-requests", s.handleListModificationRequests)
	manager.PATCH("/modification-requests/:id", s.handleReviewModificationRequest)

	admin := api.Group("", s.authRequired(), s.requireRole("admin"))
	admin.POST("/events", s.handleCreateEvent)
	admin.PATCH("/events/:id", s.handleUpdateEvent)
	admin.DELETE("/events/:id", s.handleDeleteEvent)
	admin.POST("/events/:id/categories", s.handleCreateCategory)
	admin.PATCH("/categories/:id", s.handleUpdateCategory)
	admin.DELETE("/categories/:id", s.handleDeleteCategory)
	admin.GET("/users", s.handleListUsers)
	admin.PATCH("/users/:id/role", s.handleSetUserRole)
	admin.GET("/settings", s.handleListSettings)
	admin.PUT("/settings/:key", s.handlePutSetting)
	admin.GET("/export/events/:id/awards.xlsx", s.handleExportAwardsXLSX)

	export := r.Group("/export", s.resolveTenant, s.authRequired(), s.requireRole("manager", "staff", "admin"))
	export.GET("/events/:id/results", s.handlePrintableResults)
	export.GET("/events/:id/badges", s.handlePrintableBadges)

	return r
}
