// Package sdk provides a Go client for the foors daemon. CLI commands and
// external tools use this to drive a running simulation.
package sdk

import (
	"context"
	"fmt"
	"time"

	"foors"
	"foors/daemon/pb"

	"google.golang.org/grpc"
)

// Client wraps a gRPC connection to a foors daemon.
type Client struct {
	conn   *grpc.ClientConn
	daemon pb.DaemonClient
}

// Dial builds a client for a daemon listening on a unix socket. The
// connection is made lazily on the first RPC, so Dial does not fail when
// nothing is listening on socketPath yet.
func Dial(_ context.Context, socketPath string) (*Client, error) {
	conn, err := dialUnix(socketPath)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, daemon: pb.NewDaemonClient(conn)}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Tick advances the daemon's simulation by deltaSeconds.
func (c *Client) Tick(ctx context.Context, deltaSeconds float64) error {
	_, err := c.daemon.Tick(ctx, &pb.TickRequest{DeltaSeconds: deltaSeconds})
	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	return nil
}

// AddNode places a new node and returns its id.
func (c *Client) AddNode(ctx context.Context, typ foors.NodeType, pos foors.Position) (foors.NodeID, error) {
	resp, err := c.daemon.AddNode(ctx, &pb.AddNodeRequest{Type: typ, Position: pos})
	if err != nil {
		return "", fmt.Errorf("add node: %w", err)
	}
	return resp.ID, nil
}

// RemoveNode deletes a node.
func (c *Client) RemoveNode(ctx context.Context, id foors.NodeID) error {
	_, err := c.daemon.RemoveNode(ctx, &pb.RemoveNodeRequest{ID: id})
	if err != nil {
		return fmt.Errorf("remove node: %w", err)
	}
	return nil
}

// SendMessage sends a message from the given node.
func (c *Client) SendMessage(ctx context.Context, from foors.NodeID, kind foors.MessageKind, severity foors.Severity) error {
	_, err := c.daemon.SendMessage(ctx, &pb.SendMessageRequest{From: from, Kind: kind, Severity: severity})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// GetStats returns the daemon's current aggregate stats.
func (c *Client) GetStats(ctx context.Context) (foors.Stats, error) {
	resp, err := c.daemon.GetStats(ctx, &pb.GetStatsRequest{})
	if err != nil {
		return foors.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return resp.Stats, nil
}

// GetNodes returns every node in the daemon's current simulation.
func (c *Client) GetNodes(ctx context.Context) ([]foors.NodeView, error) {
	resp, err := c.daemon.GetNodes(ctx, &pb.GetNodesRequest{})
	if err != nil {
		return nil, fmt.Errorf("get nodes: %w", err)
	}
	return resp.Nodes, nil
}

// GetNode returns one node, if it exists.
func (c *Client) GetNode(ctx context.Context, id foors.NodeID) (foors.NodeView, bool, error) {
	resp, err := c.daemon.GetNode(ctx, &pb.GetNodeRequest{ID: id})
	if err != nil {
		return foors.NodeView{}, false, fmt.Errorf("get node: %w", err)
	}
	return resp.Node, resp.Found, nil
}

// ToggleNodeType flips a node between source and sink.
func (c *Client) ToggleNodeType(ctx context.Context, id foors.NodeID) error {
	_, err := c.daemon.ToggleNodeType(ctx, &pb.ToggleNodeTypeRequest{ID: id})
	if err != nil {
		return fmt.Errorf("toggle node type: %w", err)
	}
	return nil
}

// UpdateNodePosition sets a node's absolute position.
func (c *Client) UpdateNodePosition(ctx context.Context, id foors.NodeID, pos foors.Position) error {
	_, err := c.daemon.UpdateNodePosition(ctx, &pb.UpdateNodePositionRequest{ID: id, Position: pos})
	if err != nil {
		return fmt.Errorf("update node position: %w", err)
	}
	return nil
}

// UpdateNodeVelocity sets a node's per-second drift.
func (c *Client) UpdateNodeVelocity(ctx context.Context, id foors.NodeID, vel foors.Position) error {
	_, err := c.daemon.UpdateNodeVelocity(ctx, &pb.UpdateNodeVelocityRequest{ID: id, Velocity: vel})
	if err != nil {
		return fmt.Errorf("update node velocity: %w", err)
	}
	return nil
}

// SetConnectionRadius updates the daemon's global connection radius.
func (c *Client) SetConnectionRadius(ctx context.Context, radius float64) error {
	_, err := c.daemon.SetConnectionRadius(ctx, &pb.SetConnectionRadiusRequest{Radius: radius})
	if err != nil {
		return fmt.Errorf("set connection radius: %w", err)
	}
	return nil
}

// SetInactiveRoutingTimeout updates how long a demoted route is retained.
func (c *Client) SetInactiveRoutingTimeout(ctx context.Context, timeout time.Duration) error {
	_, err := c.daemon.SetInactiveRoutingTimeout(ctx, &pb.SetInactiveRoutingTimeoutRequest{Timeout: timeout})
	if err != nil {
		return fmt.Errorf("set inactive routing timeout: %w", err)
	}
	return nil
}

// SetRouteExpiry updates the active-route freshness window.
func (c *Client) SetRouteExpiry(ctx context.Context, expiry time.Duration) error {
	_, err := c.daemon.SetRouteExpiry(ctx, &pb.SetRouteExpiryRequest{Expiry: expiry})
	if err != nil {
		return fmt.Errorf("set route expiry: %w", err)
	}
	return nil
}

// SetMessageSpeed updates the progress-per-second rate applied to newly
// emitted messages.
func (c *Client) SetMessageSpeed(ctx context.Context, speed float64) error {
	_, err := c.daemon.SetMessageSpeed(ctx, &pb.SetMessageSpeedRequest{Speed: speed})
	if err != nil {
		return fmt.Errorf("set message speed: %w", err)
	}
	return nil
}

// SetTriageGenerationInterval updates the auto-generation cadence.
func (c *Client) SetTriageGenerationInterval(ctx context.Context, interval time.Duration) error {
	_, err := c.daemon.SetTriageGenerationInterval(ctx, &pb.SetTriageGenerationIntervalRequest{Interval: interval})
	if err != nil {
		return fmt.Errorf("set triage generation interval: %w", err)
	}
	return nil
}

// StartAutoGeneration enables automatic periodic triage generation.
func (c *Client) StartAutoGeneration(ctx context.Context) error {
	_, err := c.daemon.StartAutoGeneration(ctx, &pb.StartAutoGenerationRequest{})
	if err != nil {
		return fmt.Errorf("start auto generation: %w", err)
	}
	return nil
}

// StopAutoGeneration disables automatic periodic triage generation.
func (c *Client) StopAutoGeneration(ctx context.Context) error {
	_, err := c.daemon.StopAutoGeneration(ctx, &pb.StopAutoGenerationRequest{})
	if err != nil {
		return fmt.Errorf("stop auto generation: %w", err)
	}
	return nil
}

// IsAutoGenerationActive reports whether auto-generation is currently on.
func (c *Client) IsAutoGenerationActive(ctx context.Context) (bool, error) {
	resp, err := c.daemon.IsAutoGenerationActive(ctx, &pb.IsAutoGenerationActiveRequest{})
	if err != nil {
		return false, fmt.Errorf("is auto generation active: %w", err)
	}
	return resp.Active, nil
}

// Reset clears every node, message, and triage record on the daemon.
func (c *Client) Reset(ctx context.Context) error {
	_, err := c.daemon.Reset(ctx, &pb.ResetRequest{})
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// GetMessages returns every in-flight message.
func (c *Client) GetMessages(ctx context.Context) ([]foors.MessageView, error) {
	resp, err := c.daemon.GetMessages(ctx, &pb.GetMessagesRequest{})
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return resp.Messages, nil
}

// GetConnections returns every symmetric link, one Connection per pair.
func (c *Client) GetConnections(ctx context.Context) ([]foors.Connection, error) {
	resp, err := c.daemon.GetConnections(ctx, &pb.GetConnectionsRequest{})
	if err != nil {
		return nil, fmt.Errorf("get connections: %w", err)
	}
	return resp.Connections, nil
}
