package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/movecrm/backoffice/internal/server/http/handlers"
	"github.com/movecrm/backoffice/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Every
// route except login requires an operator session.
func Setup(facade handlers.BackofficeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	editHandler := handlers.NewEditHandler(facade)
	directoryHandler := handlers.NewDirectoryHandler(facade)
	auditHandler := handlers.NewAuditHandler(facade)

	api := engine.Group("/api")
	api.POST("/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))

	authorized.GET("/orders", orderHandler.List)
	authorized.POST("/orders", orderHandler.Place)
	authorized.POST("/orders/reload", orderHandler.Reload)
	authorized.GET("/orders/search", orderHandler.Search)

	authorized.POST("/orders/:orderId/edit", editHandler.Begin)
	authorized.PATCH("/edit", editHandler.SetField)
	authorized.DELETE("/edit", editHandler.CancelEdit)
	authorized.POST("/edit/save", editHandler.RequestSave)
	authorized.POST("/edit/save/confirm", editHandler.ConfirmSave)
	authorized.DELETE("/edit/save", editHandler.CancelSave)

	authorized.POST("/orders/:orderId/delete", editHandler.RequestDelete)
	authorized.POST("/orders/:orderId/delete/confirm", editHandler.ConfirmDelete)
	authorized.DELETE("/orders/:orderId/delete", editHandler.CancelDelete)

	authorized.GET("/state", editHandler.State)
	authorized.GET("/customers", directoryHandler.Customers)
	authorized.GET("/customers/search", directoryHandler.SearchCustomers)
	authorized.GET("/consultants", directoryHandler.Consultants)
	authorized.GET("/service-types", directoryHandler.ServiceTypes)
	authorized.GET("/audit", auditHandler.List)

	return engine
}
