package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/melodix-app/melodix-backend/internal/handler/http/middleware"
	"github.com/melodix-app/melodix-backend/internal/infrastructure/jwt"
	usecasecontract "github.com/melodix-app/melodix-backend/internal/usecase/contract"
)

type Router struct {
	likeHandler     *LikeHandler
	commentHandler  *CommentHandler
	downloadHandler *DownloadHandler
	searchHandler   *SearchHandler
	catalogHandler  *CatalogHandler
	jwtManager      *jwt.JWTManager
	rateLimitRPS    float64
}

func NewRouter(likeUC usecasecontract.ILikeUseCase, commentUC usecasecontract.ICommentUseCase, downloadUC usecasecontract.IDownloadUseCase, searchUC usecasecontract.ISearchUseCase, catalogUC usecasecontract.ICatalogUseCase, jwtManager *jwt.JWTManager, rateLimitRPS float64) *Router {
	return &Router{
		likeHandler:     NewLikeHandler(likeUC),
		commentHandler:  NewCommentHandler(commentUC),
		downloadHandler: NewDownloadHandler(downloadUC),
		searchHandler:   NewSearchHandler(searchUC),
		catalogHandler:  NewCatalogHandler(catalogUC),
		jwtManager:      jwtManager,
		rateLimitRPS:    rateLimitRPS,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimitRPS, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/v1/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	v1.GET("/likes/:targetType/:targetId", r.likeHandler.ListLikesHandler)
	v1.GET("/comments/:targetType/:targetId", r.commentHandler.ListCommentsHandler)

	songs := v1.Group("/songs")
	{
		songs.GET("", r.catalogHandler.ListSongsHandler)
		songs.GET("/:id", r.catalogHandler.GetSongHandler)
	}
	albums := v1.Group("/albums")
	{
		albums.GET("", r.catalogHandler.ListAlbumsHandler)
		albums.GET("/:id", r.catalogHandler.GetAlbumHandler)
	}

	// Routes whose results depend on who is asking, if anyone
	optional := v1.Group("/")
	optional.Use(middleware.OptionalAuth(r.jwtManager))
	{
		optional.GET("/search", r.searchHandler.SearchContentHandler)
		optional.GET("/playlists/:id", r.catalogHandler.GetPlaylistHandler)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtManager))
	{
		// Like routes
		protected.POST("/likes/:targetType/:targetId", r.likeHandler.LikeTargetHandler)
		protected.DELETE("/likes/:targetType/:targetId", r.likeHandler.UnlikeTargetHandler)
		protected.GET("/likes/:targetType/:targetId/check", r.likeHandler.CheckLikedHandler)

		// Comment routes
		protected.POST("/comments/:targetType/:targetId", r.commentHandler.CreateCommentHandler)
		protected.PUT("/comments/:commentId", r.commentHandler.UpdateCommentHandler)
		protected.DELETE("/comments/:commentId", r.commentHandler.DeleteCommentHandler)

		// Download routes
		protected.POST("/downloads/:songId", r.downloadHandler.RecordDownloadHandler)

		// Current user routes
		protected.GET("/me/likes/songs", r.likeHandler.GetLikedSongsHandler)
		protected.GET("/me/likes/playlists", r.likeHandler.GetLikedPlaylistsHandler)
		protected.GET("/me/downloads", r.downloadHandler.ListDownloadsHandler)
		protected.GET("/me/playlists", r.catalogHandler.ListOwnPlaylistsHandler)
	}
}
