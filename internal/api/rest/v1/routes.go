package v1

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/domain/books"
	"github.com/MGTheTrain/bookshelf/internal/domain/catalog"
	"github.com/MGTheTrain/bookshelf/internal/domain/heroes"
	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the handlers depend on
type Services struct {
	Books   books.BookService
	Authors books.AuthorService
	Heroes  heroes.HeroService
	Teams   heroes.TeamService
	Auth    users.AuthService
	Catalog catalog.Service
	Ping    PingFunc
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services Services, log logger.Logger) {
	RegisterValidators()
	requireUser := Authenticate(services.Auth)

	// Catalog Routes
	catalogHandler := NewCatalogHandler(services.Catalog)
	r.GET("/items/", catalogHandler.ListItems)
	r.GET("/items/search", catalogHandler.SearchItems)
	r.GET("/items/filter", catalogHandler.FilterItems)
	r.GET("/items/validate/:item_id", catalogHandler.ValidateItem)
	r.GET("/items/:item_id", catalogHandler.GetItem)
	r.GET("/calc", catalogHandler.Calc)
	r.GET("/divide/:a/:b", catalogHandler.Divide)
	r.GET("/products/:product_id", catalogHandler.GetProduct)

	api := r.Group(BasePath) // lookup in version file

	// Book Routes
	bookHandler := NewBookHandler(services.Books)
	api.GET("/book", requireUser, bookHandler.List)
	api.POST("/book", requireUser, bookHandler.Create)
	api.GET("/book/:book_id", bookHandler.GetByID)
	api.PUT("/book/:book_id", requireUser, bookHandler.Update)
	api.DELETE("/book/:book_id", requireUser, bookHandler.DeleteByID)

	// Author Routes
	authorHandler := NewAuthorHandler(services.Authors)
	api.GET("/author", authorHandler.List)
	api.POST("/author", requireUser, authorHandler.Create)
	api.GET("/author/:author_id", authorHandler.GetByID)
	api.DELETE("/author/:author_id", requireUser, authorHandler.DeleteByID)
	api.GET("/author/:author_id/books", authorHandler.ListBooks)
	api.POST("/author/:author_id/books", requireUser, authorHandler.AddBook)

	// Hero Routes
	heroHandler := NewHeroHandler(services.Heroes)
	r.POST("/heroes/", requireUser, heroHandler.Create)
	r.GET("/heroes/", heroHandler.List)
	r.GET("/heroes/:hero_id", heroHandler.GetByID)
	r.PATCH("/heroes/:hero_id", requireUser, heroHandler.Update)
	r.DELETE("/heroes/:hero_id", requireUser, heroHandler.DeleteByID)

	// Team Routes
	teamHandler := NewTeamHandler(services.Teams)
	r.POST("/teams/", requireUser, teamHandler.Create)
	r.GET("/teams/", teamHandler.List)
	r.GET("/teams/:team_id", teamHandler.GetByID)
	r.PATCH("/teams/:team_id", requireUser, teamHandler.Update)
	r.DELETE("/teams/:team_id", requireUser, teamHandler.DeleteByID)
	r.PUT("/teams/:team_id/heroes/:hero_id", requireUser, teamHandler.AddHero)
	r.DELETE("/teams/:team_id/heroes/:hero_id", requireUser, teamHandler.RemoveHero)

	// User Routes
	userHandler := NewUserHandler(services.Auth)
	r.POST("/auth/token", userHandler.Token)
	r.GET("/users/me", requireUser, userHandler.Me)

	r.GET("/health", NewHealthHandler(services.Ping, log).Health)
}

// NewRouter builds the engine with the full middleware chain and every route.
func NewRouter(corsSettings config.CORSSettings, rateLimit config.RateLimitSettings, services Services, log logger.Logger) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(rateLimit.TrustedProxies); err != nil {
		log.Error(fmt.Sprintf("invalid trusted proxies %v, trusting none: %v", rateLimit.TrustedProxies, err))
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		Recovery(log),
		RequestLogger(log),
		SecurityHeaders(),
		ErrorHandler(log),
		cors.New(newCORSConfig(corsSettings)),
		RateLimit(rateLimit),
	)

	SetupRoutes(r, services, log)
	return r
}

func newCORSConfig(settings config.CORSSettings) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// credentials cannot be combined with a wildcard origin
	if len(settings.AllowOrigins) == 1 && settings.AllowOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = settings.AllowOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}
