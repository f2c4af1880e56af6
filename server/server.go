package server

import (
	"fmt"
	"log/slog"

	"krapi/db"
	"krapi/handlers"
	httpHandler "krapi/handlers/http"
	"krapi/repositories"
	"krapi/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.New(),
		db:  database,
	}
}

func (s *Server) Start(port int) error {
	s.app.Use(gin.Recovery())
	s.app.Use(handlers.RequestID())
	s.app.Use(handlers.RequestLogger())

	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Wire repositories, use cases and handlers
	userRepo := repositories.NewUserPgRepository(s.db)
	userUseCase := usecases.NewUserUseCase(userRepo)
	userHandler := httpHandler.NewUserHandler(userUseCase)

	// User routes
	s.app.POST("/create-user", userHandler.CreateUser)
	s.app.GET("/get-users", userHandler.GetUsers)
	s.app.GET("/get-user/:id", userHandler.GetUser)
	s.app.POST("/match-user", userHandler.MatchUser)
	s.app.POST("/verify-user", userHandler.MatchUser)
	s.app.POST("/update-password", userHandler.UpdatePassword)
	s.app.POST("/update-user", userHandler.UpdateUser)

	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting server", "addr", addr)
	return s.app.Run(addr)
}
