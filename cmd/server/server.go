package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/toxicgrid/model"
	"github.com/zucenko/toxicgrid/server"
)

type Server struct {
	router *way.Router
	Runner *server.Runner
}

func main() {
	settings, err := server.LoadSettings(os.Getenv)
	if err != nil {
		log.Fatalln(err)
	}
	s := Server{
		Runner: server.NewRunner(model.DefaultConfig(), settings),
	}
	s.routes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go s.Runner.Loop(ctx)

	httpServer := &http.Server{Addr: ":" + settings.Port, Handler: s.router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("observing %dx%d grid on :%s (seed %d)", settings.Width, settings.Height, settings.Port, settings.Seed)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalln(err)
	}
}
