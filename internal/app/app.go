package app

import (
	"database/sql"
	"fmt"
	"log"

	"coursehub/internal/config"
	"coursehub/internal/handlers"
	"coursehub/internal/middleware"
	"coursehub/internal/pdf"
	"coursehub/internal/repositories"
	"coursehub/internal/routes"
	"coursehub/internal/services"
	"coursehub/internal/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "coursehub/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.JWT.Secret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	verificationRepo := repositories.NewPhoneVerificationRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)
	linkRepo := repositories.NewTelegramLinkRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	centreRepo := repositories.NewCentreRepository(db)
	branchRepo := repositories.NewBranchRepository(db)
	courseRepo := repositories.NewCourseRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	userService := services.NewUserService(userRepo)

	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	smsClient := utils.NewEskizClient(cfg.Eskiz.Token, cfg.Eskiz.SenderID, cfg.Eskiz.DryRun)

	// Telegram опционален: без токена работаем на SMS и email
	var telegramService *services.TelegramService
	if cfg.Telegram.BotToken != "" {
		telegramService, err = services.NewTelegramService(cfg.Telegram.BotToken, linkRepo, userRepo)
		if err != nil {
			log.Printf("Telegram отключён: %v", err)
			telegramService = nil
		}
	}

	notifier := services.NewNotifyService(smsClient, telegramService, emailService)
	codes := services.NewCodeGenerator()

	verificationService := services.NewVerificationService(verificationRepo, userRepo, authService, codes, notifier)
	passwordService := services.NewPasswordService(userRepo, resetRepo, authService, codes, notifier)

	categoryService := services.NewCategoryService(categoryRepo)
	skillService := services.NewSkillService(skillRepo)
	centreService := services.NewCentreService(centreRepo)
	branchService := services.NewBranchService(branchRepo)
	courseService := services.NewCourseService(courseRepo)

	sheetGen := pdf.NewSheetGenerator(cfg.Files.RootDir, "assets/fonts/DejaVuSans.ttf")

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	passwordHandler := handlers.NewPasswordHandler(passwordService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	skillHandler := handlers.NewSkillHandler(skillService)
	centreHandler := handlers.NewCentreHandler(centreService)
	branchHandler := handlers.NewBranchHandler(branchService)
	courseHandler := handlers.NewCourseHandler(courseService, centreService, sheetGen)

	var integrationsHandler *handlers.IntegrationsHandler
	if telegramService != nil {
		integrationsHandler = handlers.NewIntegrationsHandler(telegramService)
	}

	// === Gin ===
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		verificationHandler,
		passwordHandler,
		userHandler,
		categoryHandler,
		skillHandler,
		centreHandler,
		branchHandler,
		courseHandler,
		integrationsHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
