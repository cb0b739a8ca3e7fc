package server

import "google.golang.org/grpc"

// Registrar attaches one service to the shared gRPC server.
type Registrar interface {
	Register(s *grpc.Server)
}
