package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bookmydoc-api/internal/config"
	"bookmydoc-api/internal/database"
	"bookmydoc-api/internal/handler"
	"bookmydoc-api/internal/middleware"
	"bookmydoc-api/internal/models"
	"bookmydoc-api/internal/repository"
	"bookmydoc-api/internal/service"
	"bookmydoc-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, userRepo, auditRepo, cfg.Appointments.DoctorScope)
	workerService := service.NewWorkerService(userRepo)

	// 6. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "bookmydoc-api",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/doctors", middleware.AuthMiddleware(), authHandler.GetDoctors)
	}

	// Appointment routes (authenticated)
	appointments := r.Group("/appointments")
	appointments.Use(middleware.AuthMiddleware())
	{
		appointments.POST("", middleware.RequireRoles(models.RolePatient), appointmentHandler.CreateAppointment)
		appointments.GET("", middleware.RequireRoles(models.RolePatient, models.RoleDoctor), appointmentHandler.GetAppointments)
		appointments.PUT("/:id", middleware.RequireRoles(models.RoleDoctor), appointmentHandler.UpdateAppointmentStatus)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
