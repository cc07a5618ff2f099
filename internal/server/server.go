// Package server wires the storefront engines to the HTTP JSON API.
package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fuego-be/internal/assets"
	"fuego-be/internal/cart"
	"fuego-be/internal/catalog"
	"fuego-be/internal/checkout"
	"fuego-be/internal/logger"
	"fuego-be/internal/middleware"
	"fuego-be/internal/search"
)

// Server holds the engines behind the route surface.
type Server struct {
	catalog  *catalog.Catalog
	search   *search.Index
	cart     *cart.Store
	checkout *checkout.Builder
	assets   *assets.Service

	allowedOrigins string
}

type Options struct {
	Catalog        *catalog.Catalog
	Search         *search.Index
	Cart           *cart.Store
	Checkout       *checkout.Builder
	Assets         *assets.Service
	AllowedOrigins string
}

func New(opts Options) *Server {
	return &Server{
		catalog:        opts.Catalog,
		search:         opts.Search,
		cart:           opts.Cart,
		checkout:       opts.Checkout,
		assets:         opts.Assets,
		allowedOrigins: opts.AllowedOrigins,
	}
}

// Router builds the gin engine with the ambient middleware chain and
// every route mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	if origins := corsOrigins(s.allowedOrigins); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOriginFunc: func(origin string) bool {
				return origins[origin]
			},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", s.health)

	api := r.Group("/api")
	{
		api.GET("/catalog", s.getCatalog)
		api.GET("/catalog/facets", s.getFacets)
		api.GET("/products/iconic", s.getIconic)
		api.GET("/products/:code", s.getProduct)
		api.GET("/search", s.getSearch)

		api.GET("/cart", s.getCart)
		api.POST("/cart/items", s.addCartItem)
		api.PATCH("/cart/items/:code", s.updateCartItem)
		api.DELETE("/cart/items/:code", s.removeCartItem)
		api.DELETE("/cart", s.clearCart)

		api.POST("/checkout", s.postCheckout)
	}

	r.GET("/images/:name", s.getImage)

	return r
}

func corsOrigins(raw string) map[string]bool {
	origins := map[string]bool{}
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins[origin] = true
		}
	}
	return origins
}
