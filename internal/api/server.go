package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(config *config.Config, dashboardService dashboarding.Dashboarder) (*Server, error) {
	if dashboardService == nil {
		return nil, errors.New("serviço do painel não informado")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.CORSAllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}

	return srv, nil
}

// Handler retorna o handler HTTP completo, com a cadeia de middlewares
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "erro ao desligar o servidor HTTP")
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
