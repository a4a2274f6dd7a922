package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler registers a resource's routes on the router.
type Handler interface {
	Register(router gin.IRouter)
}

// NewRouter assembles the HTTP surface: the API endpoints, the ticket
// document store as static files, and the single-page client.
func NewRouter(ticketsDir, staticDir string, handlers ...Handler) *gin.Engine {
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Flight Booking Backend Running")
	})

	if ticketsDir != "" {
		router.Static("/tickets", ticketsDir)
	}
	if staticDir != "" {
		router.Static("/app", staticDir)
	}

	for _, h := range handlers {
		h.Register(router)
	}
	return router
}
