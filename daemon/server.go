// Package daemon exposes a *sim.Model over gRPC so CLI and remote tools
// can drive a running simulation over a unix socket.
package daemon

import (
	"context"
	"fmt"
	"net"
	"os"

	"foors/daemon/pb"
	"foors/internal/sim"

	"github.com/containerd/errdefs"
	"google.golang.org/grpc"
)

// Server wraps a *sim.Model behind the daemon's gRPC interface.
type Server struct {
	pb.UnimplementedDaemonServer
	model *sim.Model
}

// NewServer builds a Server over model.
func NewServer(model *sim.Model) *Server {
	return &Server{model: model}
}

func (s *Server) Tick(_ context.Context, req *pb.TickRequest) (*pb.TickResponse, error) {
	s.model.Tick(req.DeltaSeconds)
	return &pb.TickResponse{}, nil
}

func (s *Server) AddNode(_ context.Context, req *pb.AddNodeRequest) (*pb.AddNodeResponse, error) {
	id := s.model.AddNode(req.Type, req.Position)
	return &pb.AddNodeResponse{ID: id}, nil
}

func (s *Server) RemoveNode(_ context.Context, req *pb.RemoveNodeRequest) (*pb.RemoveNodeResponse, error) {
	if _, ok := s.model.GetNode(req.ID); !ok {
		return nil, fmt.Errorf("node %s: %w", req.ID, errdefs.ErrNotFound)
	}
	s.model.RemoveNode(req.ID)
	return &pb.RemoveNodeResponse{}, nil
}

func (s *Server) SendMessage(_ context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	if _, ok := s.model.GetNode(req.From); !ok {
		return nil, fmt.Errorf("node %s: %w", req.From, errdefs.ErrNotFound)
	}
	s.model.SendMessage(req.From, req.Kind, req.Severity)
	return &pb.SendMessageResponse{}, nil
}

func (s *Server) GetStats(_ context.Context, _ *pb.GetStatsRequest) (*pb.GetStatsResponse, error) {
	return &pb.GetStatsResponse{Stats: s.model.GetStats()}, nil
}

func (s *Server) GetNodes(_ context.Context, _ *pb.GetNodesRequest) (*pb.GetNodesResponse, error) {
	return &pb.GetNodesResponse{Nodes: s.model.GetNodes()}, nil
}

func (s *Server) GetNode(_ context.Context, req *pb.GetNodeRequest) (*pb.GetNodeResponse, error) {
	n, ok := s.model.GetNode(req.ID)
	if !ok {
		return nil, fmt.Errorf("node %s: %w", req.ID, errdefs.ErrNotFound)
	}
	return &pb.GetNodeResponse{Node: n, Found: true}, nil
}

func (s *Server) ToggleNodeType(_ context.Context, req *pb.ToggleNodeTypeRequest) (*pb.ToggleNodeTypeResponse, error) {
	if _, ok := s.model.GetNode(req.ID); !ok {
		return nil, fmt.Errorf("node %s: %w", req.ID, errdefs.ErrNotFound)
	}
	s.model.ToggleNodeType(req.ID)
	return &pb.ToggleNodeTypeResponse{}, nil
}

func (s *Server) UpdateNodePosition(_ context.Context, req *pb.UpdateNodePositionRequest) (*pb.UpdateNodePositionResponse, error) {
	if _, ok := s.model.GetNode(req.ID); !ok {
		return nil, fmt.Errorf("node %s: %w", req.ID, errdefs.ErrNotFound)
	}
	s.model.UpdateNodePosition(req.ID, req.Position)
	return &pb.UpdateNodePositionResponse{}, nil
}

func (s *Server) UpdateNodeVelocity(_ context.Context, req *pb.UpdateNodeVelocityRequest) (*pb.UpdateNodeVelocityResponse, error) {
	if _, ok := s.model.GetNode(req.ID); !ok {
		return nil, fmt.Errorf("node %s: %w", req.ID, errdefs.ErrNotFound)
	}
	s.model.UpdateNodeVelocity(req.ID, req.Velocity)
	return &pb.UpdateNodeVelocityResponse{}, nil
}

func (s *Server) SetConnectionRadius(_ context.Context, req *pb.SetConnectionRadiusRequest) (*pb.SetConnectionRadiusResponse, error) {
	s.model.SetConnectionRadius(req.Radius)
	return &pb.SetConnectionRadiusResponse{}, nil
}

func (s *Server) SetInactiveRoutingTimeout(_ context.Context, req *pb.SetInactiveRoutingTimeoutRequest) (*pb.SetInactiveRoutingTimeoutResponse, error) {
	s.model.SetInactiveRoutingTimeout(req.Timeout)
	return &pb.SetInactiveRoutingTimeoutResponse{}, nil
}

func (s *Server) SetRouteExpiry(_ context.Context, req *pb.SetRouteExpiryRequest) (*pb.SetRouteExpiryResponse, error) {
	s.model.SetRouteExpiry(req.Expiry)
	return &pb.SetRouteExpiryResponse{}, nil
}

func (s *Server) SetMessageSpeed(_ context.Context, req *pb.SetMessageSpeedRequest) (*pb.SetMessageSpeedResponse, error) {
	s.model.SetMessageSpeed(req.Speed)
	return &pb.SetMessageSpeedResponse{}, nil
}

func (s *Server) SetTriageGenerationInterval(_ context.Context, req *pb.SetTriageGenerationIntervalRequest) (*pb.SetTriageGenerationIntervalResponse, error) {
	s.model.SetTriageGenerationInterval(req.Interval)
	return &pb.SetTriageGenerationIntervalResponse{}, nil
}

func (s *Server) StartAutoGeneration(_ context.Context, _ *pb.StartAutoGenerationRequest) (*pb.StartAutoGenerationResponse, error) {
	s.model.StartAutoGeneration()
	return &pb.StartAutoGenerationResponse{}, nil
}

func (s *Server) StopAutoGeneration(_ context.Context, _ *pb.StopAutoGenerationRequest) (*pb.StopAutoGenerationResponse, error) {
	s.model.StopAutoGeneration()
	return &pb.StopAutoGenerationResponse{}, nil
}

func (s *Server) IsAutoGenerationActive(_ context.Context, _ *pb.IsAutoGenerationActiveRequest) (*pb.IsAutoGenerationActiveResponse, error) {
	return &pb.IsAutoGenerationActiveResponse{Active: s.model.IsAutoGenerationActive()}, nil
}

func (s *Server) Reset(_ context.Context, _ *pb.ResetRequest) (*pb.ResetResponse, error) {
	s.model.Reset()
	return &pb.ResetResponse{}, nil
}

func (s *Server) GetMessages(_ context.Context, _ *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	return &pb.GetMessagesResponse{Messages: s.model.GetMessages()}, nil
}

func (s *Server) GetConnections(_ context.Context, _ *pb.GetConnectionsRequest) (*pb.GetConnectionsResponse, error) {
	return &pb.GetConnectionsResponse{Connections: s.model.GetConnections()}, nil
}

// ListenAndServe starts the gRPC server on a unix socket and blocks until
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, socketPath string) error {
	_ = os.Remove(socketPath)
	defer func() { _ = os.Remove(socketPath) }()

	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen unix %s: %w", socketPath, err)
	}

	srv := grpc.NewServer()
	pb.RegisterDaemonServer(srv, s)

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	if err := srv.Serve(ln); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
