package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"librarycatalog/config"
	"librarycatalog/controller"
	"librarycatalog/database"
	"librarycatalog/logger"
	"librarycatalog/middlewares"
	"librarycatalog/routes"
	"librarycatalog/seed"
	"librarycatalog/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile string
	verbose bool

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Library catalog backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		log, err = logger.New(cfg.LogLevel, verbose)
		if err != nil {
			return err
		}
		if cfg.EnvFileErr != nil {
			log.Warn("env file not loaded", zap.String("path", envFile), zap.Error(cfg.EnvFileErr))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the /genres and /authors routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the genre collection with the default genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func connect(ctx context.Context) (*database.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	return database.Connect(ctx, cfg.MongoURI, cfg.DatabaseName, log)
}

func closeDB(db *database.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := db.Close(ctx); err != nil {
		log.Error("close database", zap.Error(err))
	}
}

func serve(ctx context.Context) error {
	db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closeDB(db)

	genres := store.NewGenreStore(db.Genres())
	authors := store.NewAuthorStore(db.Authors())

	idxCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := genres.EnsureIndexes(idxCtx); err != nil {
		return err
	}
	if err := authors.EnsureIndexes(idxCtx); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middlewares.Recovery(log), middlewares.RequestLogger(log))
	routes.Register(router, routes.Controllers{
		Genres:  controller.NewGenreController(genres, cfg.RequestTimeout, log),
		Authors: controller.NewAuthorController(authors, cfg.RequestTimeout, log),
		Health:  controller.NewHealthController(db, cfg.RequestTimeout, log),
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func runSeed(ctx context.Context) error {
	db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closeDB(db)

	seedCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	if err := seed.Genres(seedCtx, store.NewGenreStore(db.Genres()), log); err != nil {
		log.Error("error seeding genres", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
