package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	handlerHttp "github.com/melodix-app/melodix-backend/internal/handler/http"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/config"
	database "github.com/melodix-app/melodix-backend/internal/infrastructure/database"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/jwt"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/logger"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/repository/mongodb"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/store"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/uuidgen"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/validator"
	"github.com/melodix-app/melodix-backend/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)
	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure MongoDB indexes: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	contentRepo := mongodb.NewContentRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	downloadRepo := mongodb.NewDownloadRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	// Dependency Injection: Services
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret)
	appLogger := logger.NewStdLogger()
	uuidGenerator := uuidgen.NewGenerator()

	// Optional Dependency Injection: Redis search cache
	var searchCache contract.ISearchCache
	if appConfig.RedisURL != "" {
		rdb, err := store.NewRedisFromURL(appConfig.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse REDIS_URL: %v", err)
		}
		defer rdb.Close()
		searchCache = store.NewSearchCacheStore(rdb, appConfig.SearchCacheTTL)
	}

	// Dependency Injection: Usecases
	counterSync := usecase.NewCounterSync(contentRepo)
	likeUsecase := usecase.NewLikeUsecase(likeRepo, contentRepo, userRepo, counterSync, uuidGenerator, appLogger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, contentRepo, userRepo, counterSync, uuidGenerator, appLogger)
	downloadUsecase := usecase.NewDownloadUsecase(downloadRepo, contentRepo, counterSync, uuidGenerator, appLogger)
	searchUsecase := usecase.NewSearchUsecase(contentRepo, searchCache, appLogger)
	catalogUsecase := usecase.NewCatalogUsecase(contentRepo)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		likeUsecase, commentUsecase, downloadUsecase,
		searchUsecase, catalogUsecase,
		jwtManager, appConfig.RateLimitRPS,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
