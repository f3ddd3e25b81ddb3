// Package health отдаёт состояние хранилища гостевой книги по протоколу gRPC Health Checking.
package health

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName имя сервиса в ответах Health/Check.
const ServiceName = "guestbook"

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	grpcServer *grpc.Server
	health     *grpchealth.Server
	pinger     Pinger
	logger     *zap.Logger
	interval   time.Duration

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewServer(pinger Pinger, logger *zap.Logger, interval time.Duration) *Server {
	s := &Server{
		grpcServer: grpc.NewServer(),
		health:     grpchealth.NewServer(),
		pinger:     pinger,
		logger:     logger,
		interval:   interval,
		stop:       make(chan struct{}),
	}
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Refresh опрашивает хранилище и обновляет статус сервиса и сервера в целом.
func (s *Server) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn("storage is not reachable", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus(ServiceName, status)
	s.health.SetServingStatus("", status)
	return status
}

// Serve обслуживает gRPC на lis до вызова Stop.
func (s *Server) Serve(lis net.Listener) error {
	s.Refresh(context.Background())

	s.wg.Add(1)
	go s.watch()

	return s.grpcServer.Serve(lis)
}

func (s *Server) watch() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.interval)
			s.Refresh(ctx)
			cancel()
		}
	}
}

// Stop переводит сервис в NOT_SERVING и останавливает сервер, дожидаясь активных вызовов.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		s.wg.Wait()
	})
}
