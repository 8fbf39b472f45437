package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hackhub/cache"
	"hackhub/config"
	"hackhub/geocode"
	"hackhub/handlers"
	"hackhub/middleware"
	"hackhub/models"
	"hackhub/pricing"
	"hackhub/repository"
	"hackhub/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hackhub",
	Short: "hackhub API server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger, err = config.NewLogger(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.InitDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		applied, err := repository.Migrate(cmd.Context(), db)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", zap.Strings("versions", applied))
		return nil
	},
}

var (
	tokenUserID int
	tokenRole   string
	tokenEmail  string
	tokenScope  int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed JWT for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID <= 0 {
			return errors.New("--user-id is required")
		}
		claims := service.Claims{UserID: tokenUserID, Email: tokenEmail, Role: tokenRole}
		switch tokenRole {
		case models.RoleUser:
		case models.RoleCollegeAdmin:
			claims.CollegeID = tokenScope
		case models.RoleClubAdmin:
			claims.ClubID = tokenScope
		default:
			return fmt.Errorf("unknown role %q", tokenRole)
		}

		svc := service.NewService(nil, cfg.Auth.JWTSecret, service.WithTokenTTL(config.Duration(cfg.Auth.TokenTTL)))
		tok, err := svc.IssueToken(claims)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	tokenCmd.Flags().IntVar(&tokenUserID, "user-id", 0, "Subject id (user or admin)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", models.RoleUser, "user, college_admin or club_admin")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim")
	tokenCmd.Flags().IntVar(&tokenScope, "scope-id", 0, "College id or club id for admin roles")

	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	db, err := config.InitDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithTokenTTL(config.Duration(cfg.Auth.TokenTTL)),
		service.WithPriceTTL(config.Duration(cfg.Pricing.CacheTTL)),
		service.WithPriceOracle(pricing.NewClient(cfg.Pricing.BaseURL, config.Duration(cfg.Pricing.Timeout), logger)),
		service.WithGeocoder(geocode.NewClient(cfg.Mapbox.BaseURL, cfg.Mapbox.Token, config.Duration(cfg.Mapbox.Timeout), logger)),
	}
	proxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return err
	}
	routerCfg := handlers.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      cfg.Server.RateLimit,
		TrustedProxies: proxies,
	}

	rdb, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("redis unavailable, running without cache and rate limiting", zap.Error(err))
	} else {
		defer func() { _ = rdb.Close() }()
		opts = append(opts, service.WithCache(rdb))
		routerCfg.Limiter = rdb
	}

	idem := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{TrustedProxies: proxies})
	defer idem.Stop()
	routerCfg.Idempotency = idem

	svc := service.NewService(repository.NewPostgresRepository(db), cfg.Auth.JWTSecret, opts...)
	h := handlers.NewHandler(svc, logger)

	srv := &http.Server{
		Handler:      handlers.NewRouter(h, routerCfg),
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  config.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: config.Duration(cfg.Server.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
