package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mealhub/internal/config"
	"mealhub/internal/handler"
	"mealhub/internal/middleware"
	"mealhub/internal/payments"
	"mealhub/internal/repository"
	"mealhub/internal/token"
)

// Deps are the collaborators the router is wired from. They are injected
// explicitly so tests can swap stores and the payment provider for doubles.
type Deps struct {
	Tokens       *token.Service
	Users        repository.UserRepository
	Meals        repository.MealRepository
	Upcoming     repository.UpcomingMealRepository
	Reviews      repository.ReviewRepository
	Packages     repository.PackageRepository
	MealRequests repository.MealRequestRepository
	Payments     handler.IntentCreator
	Registry     *prometheus.Registry
	Logger       *zap.Logger
}

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// NewServer builds the production dependency set from the database handle
// and configuration.
func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	tokens, err := token.NewService(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, err
	}

	return NewServerFromDeps(Deps{
		Tokens:       tokens,
		Users:        repository.NewUserRepository(db),
		Meals:        repository.NewMealRepository(db),
		Upcoming:     repository.NewUpcomingMealRepository(db),
		Reviews:      repository.NewReviewRepository(db),
		Packages:     repository.NewPackageRepository(db),
		MealRequests: repository.NewMealRequestRepository(db),
		Payments:     payments.NewClient(cfg.Payments.SecretKey, cfg.Payments.BaseURL),
		Registry:     prometheus.NewRegistry(),
		Logger:       logger,
	}), nil
}

func NewServerFromDeps(deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		logger: deps.Logger,
	}

	s.setupRoutes(deps)

	return s
}

func (s *Server) setupRoutes(deps Deps) {
	metrics := middleware.NewMetrics(deps.Registry)
	s.router.Use(metrics.Handler())

	requireAuth := middleware.RequireAuth(deps.Tokens, deps.Logger)
	requireAdmin := middleware.RequireAdmin(deps.Users, deps.Logger)

	jwtHandler := handler.NewJWTHandler(deps.Tokens, deps.Logger)
	userHandler := handler.NewUserHandler(deps.Users, deps.Logger)
	mealHandler := handler.NewMealHandler(deps.Meals, deps.Logger)
	upcomingHandler := handler.NewUpcomingMealHandler(deps.Upcoming, deps.Logger)
	reviewHandler := handler.NewReviewHandler(deps.Reviews, deps.Logger)
	packageHandler := handler.NewPackageHandler(deps.Packages, deps.Logger)
	requestHandler := handler.NewMealRequestHandler(deps.MealRequests, deps.Logger)
	paymentHandler := handler.NewPaymentHandler(deps.Payments, deps.Logger)

	// Liveness and metrics
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "meals are coming")
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	// Credential issuance
	s.router.POST("/jwt", jwtHandler.IssueToken)

	// Users
	s.router.GET("/users", userHandler.ListUsers)
	s.router.GET("/users/:id", userHandler.GetUserByID)
	s.router.GET("/users/admin/:email", requireAuth, userHandler.CheckAdmin)
	s.router.POST("/users", userHandler.CreateUser)
	s.router.PATCH("/users/:id", userHandler.UpdateProfile)
	s.router.PATCH("/users/admin/:id", userHandler.PromoteToAdmin)

	// Meals. Delete is the only destructive route and carries both gates;
	// RequireAdmin is never installed without RequireAuth in front of it.
	s.router.GET("/meal", mealHandler.ListMeals)
	s.router.GET("/meal/:id", mealHandler.GetMealByID)
	s.router.POST("/meal", mealHandler.CreateMeal)
	s.router.PATCH("/meal/:id", mealHandler.UpdateMeal)
	s.router.DELETE("/meal/:id", requireAuth, requireAdmin, mealHandler.DeleteMeal)

	// Upcoming meals
	s.router.GET("/upcomingMeal", upcomingHandler.ListUpcomingMeals)
	s.router.POST("/upcomingMeal", upcomingHandler.CreateUpcomingMeal)

	// Reviews
	s.router.GET("/allReviews", reviewHandler.ListReviews)
	s.router.GET("/allReviews/:id", reviewHandler.GetReviewByID)
	s.router.POST("/allReviews", reviewHandler.CreateReview)
	s.router.PATCH("/allReviews/:id", reviewHandler.UpdateReview)
	s.router.DELETE("/allReviews/:id", reviewHandler.DeleteReview)

	// Subscription packages
	s.router.GET("/package", packageHandler.ListPackages)
	s.router.GET("/package/:name", packageHandler.GetPackageByName)

	// Payments
	s.router.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent)

	// Requested meals
	s.router.GET("/requestedMeal", requestHandler.ListMealRequests)
	s.router.POST("/requestedMeal", requestHandler.CreateMealRequest)
	s.router.DELETE("/requestedMeal/:id", requestHandler.DeleteMealRequest)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	s.logger.Info("Server starting", zap.String("addr", addr))
	return s.router.Run(addr)
}
