package bootstrap

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	httpapi "github.com/rallypoint-app/rallypoint-backend/internal/api/http"
	"github.com/rallypoint-app/rallypoint-backend/internal/api/http/middleware"

	activitieshttp "github.com/rallypoint-app/rallypoint-backend/internal/activities/http"
	activitiesrepo "github.com/rallypoint-app/rallypoint-backend/internal/activities/repository"
	groupshttp "github.com/rallypoint-app/rallypoint-backend/internal/groups/http"
	groupsrepo "github.com/rallypoint-app/rallypoint-backend/internal/groups/repository"
	locationshttp "github.com/rallypoint-app/rallypoint-backend/internal/locations/http"
	locationsrepo "github.com/rallypoint-app/rallypoint-backend/internal/locations/repository"
	usershttp "github.com/rallypoint-app/rallypoint-backend/internal/users/http"
	usersrepo "github.com/rallypoint-app/rallypoint-backend/internal/users/repository"
	"github.com/rallypoint-app/rallypoint-backend/internal/web"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Logger      zerolog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger(dep.Logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}
		web.ServerError(c, err)
	}))
	r.Use(cors.Default())

	r.SetHTMLTemplate(web.Templates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	userRepo := usersrepo.New(dep.DB)
	locationRepo := locationsrepo.New(dep.DB)
	activityRepo := activitiesrepo.New(dep.DB)
	groupRepo := groupsrepo.New(dep.DB)

	usershttp.New(userRepo).Register(r)
	locationshttp.New(locationRepo).Register(r)
	activitieshttp.New(activityRepo, locationRepo, userRepo).Register(r)
	groupshttp.New(groupRepo, activityRepo, userRepo).Register(r)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/users")
	})

	r.NoRoute(web.NotFound)

	return r
}
