package pb

import (
	"time"

	"foors"
)

type TickRequest struct {
	DeltaSeconds float64
}

type TickResponse struct{}

type AddNodeRequest struct {
	Type     foors.NodeType
	Position foors.Position
}

type AddNodeResponse struct {
	ID foors.NodeID
}

type RemoveNodeRequest struct {
	ID foors.NodeID
}

type RemoveNodeResponse struct{}

type SendMessageRequest struct {
	From     foors.NodeID
	Kind     foors.MessageKind
	Severity foors.Severity
}

type SendMessageResponse struct{}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Stats foors.Stats
}

type GetNodesRequest struct{}

type GetNodesResponse struct {
	Nodes []foors.NodeView
}

type GetNodeRequest struct {
	ID foors.NodeID
}

type GetNodeResponse struct {
	Node  foors.NodeView
	Found bool
}

type ToggleNodeTypeRequest struct {
	ID foors.NodeID
}

type ToggleNodeTypeResponse struct{}

type UpdateNodePositionRequest struct {
	ID       foors.NodeID
	Position foors.Position
}

type UpdateNodePositionResponse struct{}

type UpdateNodeVelocityRequest struct {
	ID       foors.NodeID
	Velocity foors.Position
}

type UpdateNodeVelocityResponse struct{}

type SetConnectionRadiusRequest struct {
	Radius float64
}

type SetConnectionRadiusResponse struct{}

type SetInactiveRoutingTimeoutRequest struct {
	Timeout time.Duration
}

type SetInactiveRoutingTimeoutResponse struct{}

type SetRouteExpiryRequest struct {
	Expiry time.Duration
}

type SetRouteExpiryResponse struct{}

type SetMessageSpeedRequest struct {
	Speed float64
}

type SetMessageSpeedResponse struct{}

type SetTriageGenerationIntervalRequest struct {
	Interval time.Duration
}

type SetTriageGenerationIntervalResponse struct{}

type StartAutoGenerationRequest struct{}

type StartAutoGenerationResponse struct{}

type StopAutoGenerationRequest struct{}

type StopAutoGenerationResponse struct{}

type IsAutoGenerationActiveRequest struct{}

type IsAutoGenerationActiveResponse struct {
	Active bool
}

type ResetRequest struct{}

type ResetResponse struct{}

type GetMessagesRequest struct{}

type GetMessagesResponse struct {
	Messages []foors.MessageView
}

type GetConnectionsRequest struct{}

type GetConnectionsResponse struct {
	Connections []foors.Connection
}
