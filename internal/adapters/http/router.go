package httpadapter

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires all routes and middleware into a gin engine.
func (h *Handler) NewRouter(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(h.log))

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Sudoku API"})
	})

	r.POST("/auth/login", h.login)

	users := r.Group("/users")
	{
		users.POST("/register", h.register)
		users.GET("/me", RequireAuth(h.tokens), h.me)
		users.GET("/allusers", h.listUsers)
		users.GET("/userid/:id", h.userByID)
		users.GET("/username/:username", h.userByUsername)
		users.GET("/:id/stats", h.userStats)
		users.PATCH("/update/:id", RequireAuth(h.tokens), h.updateUser)
		users.DELETE("/delete/:id", h.deleteUser)
	}

	r.GET("/game", h.newGame)

	boards := r.Group("/boards")
	{
		boards.GET("/allboards", h.listBoards)
		boards.GET("/difficulty/:difficulty", h.boardsByDifficulty)
		boards.GET("/boardid/:id", h.boardByID)
		boards.GET("/random", h.randomBoard)
		boards.GET("/count/:difficulty", h.boardCount)
		boards.PATCH("/updateboard/:id", h.regradeBoard)
		boards.DELETE("/delete/:id", h.deleteBoard)
	}

	sessions := r.Group("/gamesession")
	{
		sessions.POST("/start", h.startSession)
		sessions.POST("/move/:userID", h.move)
		sessions.POST("/hint/:userID", h.hint)
		sessions.GET("/active/user/:userID", h.activeSession)
		sessions.POST("/pause/:userID", h.pauseSession)
		sessions.POST("/resume/:userID", h.resumeSession)
		sessions.DELETE("/delete/:userID", h.deleteSession)
		sessions.POST("/complete/:userID", h.completeSession)
		sessions.GET("/allgamesessions", h.listSessions)
	}

	return r
}
