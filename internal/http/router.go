package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/geocoder89/campushub/internal/auth"
	"github.com/geocoder89/campushub/internal/cache"
	"github.com/geocoder89/campushub/internal/config"
	"github.com/geocoder89/campushub/internal/http/handlers"
	"github.com/geocoder89/campushub/internal/http/middlewares"
	"github.com/geocoder89/campushub/internal/observability"
	"github.com/geocoder89/campushub/internal/repo/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxBodyBytes = 1 << 20 // 1 MiB is plenty for these payloads

// Deps carries everything the router needs, constructed in main (or by a
// test) and passed in explicitly. No package-level state.
type Deps struct {
	UserReader handlers.UserReader
	UserWriter handlers.UserWriter
	Students   handlers.StudentsStore
	Courses    handlers.CoursesStore

	Cache cache.Cache // optional

	Prom         *observability.Prom  // optional
	PromRegistry *prometheus.Registry // optional, serves /metrics
	Ping         func() error         // optional readiness probe
}

// MongoDeps wires the production repositories over one mongo database.
func MongoDeps(client *mongo.Client, dbName string, prom *observability.Prom) Deps {
	database := client.Database(dbName)

	users := mongodb.NewUsersRepo(database, prom)

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return client.Ping(ctx, readpref.Primary())
	}

	return Deps{
		UserReader: users,
		UserWriter: users,
		Students:   mongodb.NewStudentsRepo(database, prom),
		Courses:    mongodb.NewCoursesRepo(database, prom),
		Prom:       prom,
		Ping:       ping,
	}
}

func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(otelgin.Middleware("campushub"))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))
	r.Use(middlewares.RequestLogger(log))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}

	if deps.PromRegistry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.PromRegistry, promhttp.HandlerOpts{})))
	}

	// health
	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "CampusHub API")
	})

	// auth
	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL())
	authMW := middlewares.NewAuthMiddleware(jwtManager)

	authHandler := handlers.NewAuthHandler(deps.UserReader, deps.UserWriter, jwtManager)

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// students: reads are public, writes need a token
	studentsHandler := handlers.NewStudentsHandler(deps.Students, deps.Cache)

	r.GET("/students", studentsHandler.ListStudents)
	r.GET("/students/:id", studentsHandler.GetStudentById)
	r.POST("/students", authMW.RequireAuth(), studentsHandler.CreateStudent)
	r.PUT("/students/:id", authMW.RequireAuth(), studentsHandler.UpdateStudent)
	r.DELETE("/students/:id", authMW.RequireAuth(), studentsHandler.DeleteStudent)

	// courses mirror students
	coursesHandler := handlers.NewCoursesHandler(deps.Courses, deps.Cache)

	r.GET("/courses", coursesHandler.ListCourses)
	r.GET("/courses/:id", coursesHandler.GetCourseById)
	r.POST("/courses", authMW.RequireAuth(), coursesHandler.CreateCourse)
	r.PUT("/courses/:id", authMW.RequireAuth(), coursesHandler.UpdateCourse)
	r.DELETE("/courses/:id", authMW.RequireAuth(), coursesHandler.DeleteCourse)

	return r
}
