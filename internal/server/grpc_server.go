package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/radar-match/internal/config"
)

// NewGRPCServer builds a gRPC server with logging and, when parser is
// non-nil, bearer-token authentication, and registers every service.
func NewGRPCServer(log *slog.Logger, parser TokenParser, registrars ...Registrar) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{LoggingInterceptor(log)}
	if parser != nil {
		interceptors = append(interceptors, AuthInterceptor(parser))
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	return grpcServer
}

// Serve listens on the configured address and serves until ctx is done,
// then stops gracefully.
func Serve(ctx context.Context, cfg *config.Config, grpcServer *grpc.Server) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	return grpcServer.Serve(lis)
}
