package server

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// StorageHealthService is the gRPC health service name tracking the entries store.
const StorageHealthService = "homepage.storage"

// Health publishes process and storage health over the gRPC health protocol.
type Health struct {
	hs *health.Server
}

func NewHealth() *Health {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(StorageHealthService, healthpb.HealthCheckResponse_SERVING)
	return &Health{hs: hs}
}

// StorageStatusChanged is installed as the fallback store's status hook.
func (h *Health) StorageStatusChanged(healthy bool) {
	status := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.hs.SetServingStatus(StorageHealthService, status)
}

// Shutdown marks every service NOT_SERVING.
func (h *Health) Shutdown() {
	h.hs.Shutdown()
}

// NewGRPCServer returns a gRPC server exposing health and reflection.
func NewGRPCServer(h *Health) *grpc.Server {
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, h.hs)
	reflection.Register(grpcServer)
	return grpcServer
}
