package main

import (
	"context"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/ineqquest/internal/database"
	"github.com/example/ineqquest/internal/generator"
	"github.com/example/ineqquest/internal/scheduler"
	"github.com/example/ineqquest/internal/server"
	"github.com/example/ineqquest/internal/session"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := server.ConfigFromEnv()

	if err := database.Connect(cfg.DataDir); err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer database.Close()

	gen := generator.New()
	store := session.NewStore(gen, cfg.SessionTTL)

	sched := scheduler.New(store, cfg.PruneInterval, sugar)
	sched.Start()
	defer sched.Stop()

	srv := server.New(cfg, sugar, store, gen)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		sig := <-sigChan
		sugar.Infow("received signal", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("error during shutdown", "error", err)
		}
		close(done)
	}()

	if cfg.OpenBrowser {
		go func() {
			// Give the listener a moment before pointing the browser at it.
			time.Sleep(300 * time.Millisecond)
			if err := openBrowser(cfg.URL()); err != nil {
				sugar.Warnw("could not open browser", "url", cfg.URL(), "error", err)
			}
		}()
	}

	sugar.Infow("Inequalities Quest started. Press Ctrl+C to stop.", "url", cfg.URL())
	if err := srv.Start(); err != nil {
		sugar.Fatalw("server error", "error", err)
	}

	<-done
	sugar.Info("server stopped successfully")
}

// openBrowser points the default browser at the UI.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
