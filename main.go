package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/biancatraining/promenade/internal/config"
	"github.com/biancatraining/promenade/internal/resume"
	"github.com/biancatraining/promenade/internal/shared"
	"github.com/biancatraining/promenade/internal/view"
)

func main() {
	logger := shared.NewLogger(nil)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}
	logger.SetLevel(cfg.LogLevel)

	content, err := loadResume(cfg.ContentFile)
	if err != nil {
		logger.Fatal("failed to load resume", "error", err)
	}

	page, err := view.New(content)
	if err != nil {
		logger.Fatal("failed to prepare page", "error", err)
	}

	r := gin.New()
	setupRoutes(r, page, logger)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("serving resume", "addr", srv.Addr, "name", content.Profile.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		logger.Fatal("server error", "error", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", "error", err)
	}
}

// loadResume reads the resume from path, or returns the built-in one when
// path is empty.
func loadResume(path string) (resume.Resume, error) {
	if path == "" {
		return defaultResume, nil
	}
	r, err := resume.LoadFile(path)
	if err != nil {
		return resume.Resume{}, err
	}
	return *r, nil
}
