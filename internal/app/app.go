package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"cinetix/internal/backend"
	"cinetix/internal/domain"
	"cinetix/internal/repository"
	appvalidator "cinetix/internal/validator"
	"cinetix/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config         config
	logger         *slog.Logger
	redis          redis.UniversalClient
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	metrics        *metrics

	movieService      domain.MovieService
	theaterService    domain.TheaterService
	seatService       domain.SeatService
	concessionService domain.ConcessionService
	authService       domain.AuthService
	ticketService     domain.TicketService

	selectionRepo domain.SelectionRepository
	cartRepo      domain.CartRepository
	orderRepo     domain.OrderRepository
}

type config struct {
	port    int
	env     string
	backend struct {
		url     string
		timeout time.Duration
	}
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	order struct {
		ttl             time.Duration
		baseTicketPrice decimal.Decimal
		fallbackSeed    int64
	}
}

func Run() error {
	// .env is optional; flags and real environment variables win.
	_ = godotenv.Load()

	var cfg config
	var baseTicketPrice string

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.backend.url, "backend-url", envOr("BACKEND_URL", "http://localhost:5144"), "Ticketing backend base URL")
	flag.DurationVar(&cfg.backend.timeout, "backend-timeout", 10*time.Second, "Ticketing backend request timeout")

	flag.StringVar(&cfg.redis.url, "redis-url", envOr("REDIS_URL", ""), "Redis URL")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.DurationVar(&cfg.order.ttl, "order-ttl", 15*time.Minute, "How long abandoned order state is kept")
	flag.StringVar(&baseTicketPrice, "base-ticket-price", "10.00", "Per-seat price used when a showtime carries none")
	flag.Int64Var(&cfg.order.fallbackSeed, "seat-fallback-seed", 1, "Seed for the fallback seat grid generator")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	price, err := decimal.NewFromString(baseTicketPrice)
	if err != nil {
		return fmt.Errorf("invalid base ticket price %q: %w", baseTicketPrice, err)
	}
	cfg.order.baseTicketPrice = price

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.backend.url,
		Timeout: cfg.backend.timeout,
	})

	app := &application{
		config:         cfg,
		logger:         logger,
		redis:          redisClient,
		validator:      appvalidator.NewValidator(),
		sessionManager: newSessionManager(redisClient),
		metrics:        newMetrics(),

		movieService:      backendClient,
		theaterService:    backendClient,
		seatService:       backendClient,
		concessionService: backendClient,
		authService:       backendClient,
		ticketService:     backendClient,

		selectionRepo: repository.NewRedisSelectionRepository(redisClient, cfg.order.ttl),
		cartRepo:      repository.NewRedisCartRepository(redisClient, cfg.order.ttl),
		orderRepo:     repository.NewRedisOrderRepository(redisClient, cfg.order.ttl),
	}

	return app.run()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func newSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(app.logRequest)
	r.Use(app.instrumentRequest)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestUserSession)

	r.Get("/health", app.GetHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/{movieId}", app.GetMovieById)
		r.Get("/{movieId}/showtimes", app.GetMovieShowtimes)
	})

	r.Get("/theaters", app.GetTheaters)
	r.Get("/concessions", app.GetConcessions)

	r.Get("/rooms/{roomId}/seats", app.GetSeatMapByRoom)

	r.Route("/selection", func(r chi.Router) {
		r.Get("/", app.GetSelection)
		r.Post("/toggle", app.ToggleSeat)
		r.Delete("/", app.ClearSelection)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", app.GetCart)
		r.Post("/pending", app.AdjustPending)
		r.Post("/items", app.CommitItem)
		r.Delete("/items/{productId}", app.RemoveCartLine)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", app.Login)
		r.Post("/register", app.RegisterUser)
		r.Post("/logout", app.Logout)
	})

	r.With(app.requireAuthentication).Route("/checkout", func(r chi.Router) {
		r.Post("/", app.CreateOrder)
		r.Get("/", app.GetOrder)
		r.Post("/confirm", app.ConfirmOrder)
	})

	r.With(app.requireAuthentication).Route("/users/me", func(r chi.Router) {
		r.Get("/", app.GetCurrentUser)
		r.Get("/tickets", app.GetUserTickets)
	})

	return r
}
