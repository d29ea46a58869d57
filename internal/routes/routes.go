package routes

import (
	"github.com/gin-gonic/gin"

	"coursehub/internal/handlers"
	"coursehub/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	verificationHandler *handlers.VerificationHandler,
	passwordHandler *handlers.PasswordHandler,
	userHandler *handlers.UserHandler,
	categoryHandler *handlers.CategoryHandler,
	skillHandler *handlers.SkillHandler,
	centreHandler *handlers.CentreHandler,
	branchHandler *handlers.BranchHandler,
	courseHandler *handlers.CourseHandler,
	integrationsHandler *handlers.IntegrationsHandler, // nil, если бот не настроен
) *gin.Engine {

	// ---- public
	auth := r.Group("/auth")
	{
		auth.POST("/register-phone", verificationHandler.Register)
		auth.POST("/verify-code", verificationHandler.Verify)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
	}
	r.POST("/phone-verification/verify_phone", verificationHandler.GetCode)

	r.POST("/user/forgot-password", passwordHandler.ForgotPassword)
	r.POST("/user/forgot-password/verify", passwordHandler.VerifyResetCode)
	r.POST("/user/forgot-password/confirm", passwordHandler.ResetPassword)

	// Telegram webhook публикуем только если есть интеграция
	if integrationsHandler != nil {
		r.POST("/integrations/telegram/webhook", integrationsHandler.Webhook)
	}

	// Каталог на чтение открыт без токена
	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:id", categoryHandler.GetByID)
	r.GET("/skills", skillHandler.List)
	r.GET("/skills/:id", skillHandler.GetByID)
	r.GET("/education-centres", centreHandler.List)
	r.GET("/education-centres/:id", centreHandler.GetByID)
	r.GET("/branches", branchHandler.List)
	r.GET("/branches/:id", branchHandler.GetByID)
	r.GET("/courses", courseHandler.List)
	r.GET("/courses/:id", courseHandler.GetByID)
	r.GET("/courses/:id/sheet", courseHandler.Sheet)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	user := r.Group("/user")
	{
		user.GET("/me", userHandler.Me)
		user.PUT("/update", userHandler.UpdateProfile)
		user.POST("/change-password", passwordHandler.ChangePassword)
	}

	r.POST("/auth/logout", authHandler.Logout)

	if integrationsHandler != nil {
		r.POST("/integrations/telegram/request-link", integrationsHandler.RequestTelegramLink)
	}

	// Мутации каталога — только для персонала
	staff := r.Group("/", middleware.StaffOnly())
	{
		staff.POST("/categories", categoryHandler.Create)
		staff.PUT("/categories/:id", categoryHandler.Update)
		staff.DELETE("/categories/:id", categoryHandler.Delete)

		staff.POST("/skills", skillHandler.Create)
		staff.PUT("/skills/:id", skillHandler.Update)
		staff.DELETE("/skills/:id", skillHandler.Delete)

		staff.POST("/education-centres", centreHandler.Create)
		staff.PUT("/education-centres/:id", centreHandler.Update)
		staff.DELETE("/education-centres/:id", centreHandler.Delete)

		staff.POST("/branches", branchHandler.Create)
		staff.PUT("/branches/:id", branchHandler.Update)
		staff.DELETE("/branches/:id", branchHandler.Delete)

		staff.POST("/courses", courseHandler.Create)
		staff.PUT("/courses/:id", courseHandler.Update)
		staff.DELETE("/courses/:id", courseHandler.Delete)
	}

	return r
}
