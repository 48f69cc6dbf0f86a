package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"rental-api/config"
	"rental-api/controllers"
	"rental-api/domain"
	"rental-api/middleware"
	"rental-api/publishers"
	"rental-api/repositories"
	"rental-api/services"
)

func main() {
	// ============================================
	// 1. CONFIGURACIÓN
	// ============================================
	cfg := config.LoadConfig()

	log.Println("🔧 Configuración cargada:")
	log.Printf("   - DB Host: %s:%s", cfg.DBHost, cfg.DBPort)
	log.Printf("   - DB Name: %s", cfg.DBName)
	log.Printf("   - Memcached: %s", cfg.MemcachedHost)

	// ============================================
	// 2. CONECTAR A MYSQL
	// ============================================
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("📡 Conectando a MySQL...")
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	log.Println("✅ Conexión a MySQL exitosa")

	// ============================================
	// 3. AUTO-MIGRAR LAS TABLAS
	// ============================================
	log.Println("🔄 Ejecutando migraciones...")
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.Booking{},
		&domain.Review{},
	)
	if err != nil {
		log.Fatal("❌ Failed to migrate database:", err)
	}
	log.Println("✅ Tablas creadas/actualizadas")

	// ============================================
	// 4. INICIALIZAR CAPAS
	// ============================================
	log.Println("🏗️  Inicializando capas...")

	// Repositories: acceso a datos + caché de dos niveles
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost)

	// Publisher de eventos de propiedades para el indexador de búsqueda
	// Si RabbitMQ no está, la API sigue sin publicar
	var publisher publishers.PropertyPublisher
	publisher, err = publishers.NewRabbitMQPublisher(cfg.RabbitMQURL, "properties_queue")
	if err != nil {
		log.Printf("⚠️  RabbitMQ no disponible, eventos deshabilitados: %v", err)
		publisher = publishers.NewNoopPublisher()
	}

	// Services: lógica de negocio
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	propertyService := services.NewPropertyService(propertyRepo, cacheRepo, publisher)
	bookingService := services.NewBookingService(db, bookingRepo, propertyRepo, cacheRepo, publisher)
	reviewService := services.NewReviewService(db, reviewRepo, bookingRepo, propertyRepo, cacheRepo, publisher)

	// Controllers: manejan HTTP
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	propertyController := controllers.NewPropertyController(propertyService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)

	log.Println("✅ Capas inicializadas")

	// ============================================
	// 5. CONFIGURAR GIN
	// ============================================
	router := gin.Default()

	// CORS - Permitir requests desde el frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// ============================================
	// 6. DEFINIR RUTAS
	// ============================================
	log.Println("🛣️  Configurando rutas...")

	router.GET("/health", userController.HealthCheck)

	api := router.Group("/api")

	// Autenticación
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/logout", authController.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}

	// Propiedades: lectura pública, mutación de landlord/admin
	properties := api.Group("/properties")
	{
		properties.GET("", propertyController.GetProperties)
		properties.GET("/:id", propertyController.GetProperty)
		properties.GET("/:id/reviews", reviewController.GetPropertyReviews)

		properties.POST("", middleware.AuthMiddleware(),
			middleware.RequireRoles(domain.RoleLandlord, domain.RoleAdmin),
			propertyController.CreateProperty)
		properties.PUT("/:id", middleware.AuthMiddleware(), propertyController.UpdateProperty)
		properties.DELETE("/:id", middleware.AuthMiddleware(), propertyController.DeleteProperty)
		properties.GET("/landlord/properties", middleware.AuthMiddleware(),
			middleware.RequireRoles(domain.RoleLandlord, domain.RoleAdmin),
			propertyController.GetLandlordProperties)

		properties.POST("/:id/reviews", middleware.AuthMiddleware(),
			middleware.RequireRoles(domain.RoleTenant),
			reviewController.CreateReview)
	}

	// Reservas: todas requieren autenticación
	bookings := api.Group("/bookings", middleware.AuthMiddleware())
	{
		bookings.GET("", bookingController.GetBookings)
		bookings.POST("", middleware.RequireRoles(domain.RoleTenant), bookingController.CreateBooking)
		bookings.GET("/:id", bookingController.GetBooking)
		bookings.PUT("/:id", bookingController.UpdateBooking)
		bookings.DELETE("/:id", bookingController.DeleteBooking)
	}

	// Reseñas: lectura pública, mutación del autor o admin
	reviews := api.Group("/reviews")
	{
		reviews.GET("/:id", reviewController.GetReview)
		reviews.PUT("/:id", middleware.AuthMiddleware(), reviewController.UpdateReview)
		reviews.DELETE("/:id", middleware.AuthMiddleware(), reviewController.DeleteReview)
	}

	// Usuarios: listar y borrar solo admin, perfil propio o admin
	users := api.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("", middleware.RequireRoles(domain.RoleAdmin), userController.GetUsers)
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin), userController.DeleteUser)
	}

	log.Println("✅ Rutas configuradas")

	// ============================================
	// 7. ARRANCAR EL SERVIDOR
	// ============================================
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("🚀 =======================================")
		log.Printf("🚀 Rental API corriendo en puerto %s", cfg.Port)
		log.Println("🚀 =======================================")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Graceful shutdown con signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Rental API...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Printf("Error closing publisher: %v", err)
	}

	log.Println("Rental API shut down complete")
}
