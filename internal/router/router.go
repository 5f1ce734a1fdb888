package router

import (
	"net/http"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/apierror"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/config"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/handler"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/infra"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/middleware"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/security"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil; rate limits and token revocation then live in memory.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	apiLimit, err := middleware.RateLimiter("api", cfg.RateLimit, rdb)
	if err != nil {
		return nil, err
	}
	loginLimit, err := middleware.RateLimiter("login", cfg.LoginRateLimit, rdb)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(apiLimit)

	// ── Infrastructure ───────────────────────────────────────────────────────
	var revoked service.RevocationStore = infra.NewMemoryRevocationStore()
	if rdb != nil {
		revoked = infra.NewRedisRevocationStore(rdb)
	}
	tokens := security.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	// ── Repositories ─────────────────────────────────────────────────────────
	employeeRepo := repository.NewEmployeeRepository(db)
	saleRepo := repository.NewDailySaleRepository(db)
	goalRepo := repository.NewSalesGoalRepository(db)
	mistakeRepo := repository.NewMistakeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(employeeRepo, tokens, revoked, cfg.BcryptCost)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	saleSvc := service.NewDailySaleService(saleRepo, cfg.UpsertConcurrency)
	goalSvc := service.NewSalesGoalService(goalRepo)
	mistakeSvc := service.NewMistakeService(mistakeRepo, cfg.UpsertConcurrency)
	reportSvc := service.NewReportService(saleRepo, mistakeRepo, goalRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	salesH := handler.NewDailySalesHandler(saleSvc)
	goalsH := handler.NewSalesGoalsHandler(goalSvc)
	mistakesH := handler.NewMistakesHandler(mistakeSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", handler.Root)
	r.GET("/ping", handler.Ping)
	r.GET("/health", handler.Health(db, rdb))

	r.POST("/signup", loginLimit, authH.Signup)
	r.POST("/login", loginLimit, authH.Login)

	// Reads are public
	r.GET("/employee", employeesH.List)
	r.GET("/employee/:id", employeesH.Get)
	r.GET("/salesgoal", goalsH.List)
	r.GET("/salesgoal/:saledate", goalsH.Get)
	r.GET("/dailysale", salesH.List)
	r.GET("/dailysale/:id", salesH.Get)
	r.GET("/mistake", mistakesH.List)
	r.GET("/mistake/:id", mistakesH.Get)

	// Every mutation requires a bearer token
	gated := r.Group("", middleware.RequireAuth(authSvc))
	{
		gated.POST("/logout", authH.Logout)

		gated.POST("/employee", employeesH.Create)
		gated.PUT("/employee/:id", employeesH.Update)
		gated.DELETE("/employee/:id", employeesH.Delete)

		gated.POST("/salesgoal", goalsH.Create)
		gated.POST("/salesgoals", goalsH.CreateMany)
		gated.PUT("/salesgoal/:saledate", goalsH.Update)
		gated.DELETE("/salesgoal/:saledate", goalsH.Delete)

		gated.POST("/dailysale", salesH.Create)
		gated.POST("/dailysales", salesH.CreateMany)
		gated.POST("/upsertsales", salesH.UpsertMany)
		gated.PUT("/dailysale/:id", salesH.Update)
		gated.DELETE("/dailysale/:id", salesH.Delete)

		gated.POST("/mistake", mistakesH.Create)
		gated.POST("/mistakes", mistakesH.CreateMany)
		gated.POST("/upsertmistakes", mistakesH.UpsertMany)
		gated.PUT("/mistake/:id", mistakesH.Update)
		gated.DELETE("/mistake/:id", mistakesH.Delete)

		gated.GET("/report", reportsH.Sales)
		gated.GET("/report/pdf", reportsH.SalesPDF)
	}

	// Swagger UI is only served outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierror.New("Not found"))
	})

	return r, nil
}
