package server

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/foundit/internal/database"
	"github.com/mdouchement/foundit/internal/server/middlewares"
	"github.com/mdouchement/foundit/internal/server/service"
	"github.com/sirupsen/logrus"
)

// A Controller is an Iversion Of Control pattern used to init the server package.
type Controller struct {
	Version     string
	ServiceName string
	Database    database.Client
	Logger      *logrus.Logger
}

// EchoEngine instantiates the wep server.
func EchoEngine(ctrl Controller) *echo.Echo {
	if ctrl.Logger == nil {
		ctrl.Logger = logrus.StandardLogger()
	}

	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig)) // Any origin.
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
		Output: ctrl.Logger.Out,
	}))
	engine.Binder = middlewares.NewBinder()
	engine.Validator = middlewares.NewValidator()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler(ctrl.Logger)

	engine.Pre(middleware.Rewrite(map[string]string{
		"^/$": "/api/health",
	}))

	////////////
	// Router //
	////////////

	router := engine.Group("/api")

	// generic handlers
	//
	router.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, service.M{
			"status":  "ok",
			"service": ctrl.ServiceName,
		})
	})
	router.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, service.M{
			"version": ctrl.Version,
		})
	})

	//
	// lost item handlers
	//
	lostItem := &lostItem{
		listing: service.NewListing(ctrl.Database),
	}
	router.GET("/lost-items", lostItem.List)
	router.POST("/lost-items", lostItem.Create)

	return engine
}

// PrintRoutes prints the Echo engin exposed routes.
func PrintRoutes(w io.Writer, e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	fmt.Fprintln(w, "Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Fprintf(w, "%6s %s\n", route.Method, route.Path)
	}
}
