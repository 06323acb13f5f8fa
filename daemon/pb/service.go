package pb

import (
	"context"

	"google.golang.org/grpc"
)

// DaemonServer is the interface a foors daemon implementation provides.
type DaemonServer interface {
	Tick(context.Context, *TickRequest) (*TickResponse, error)
	AddNode(context.Context, *AddNodeRequest) (*AddNodeResponse, error)
	RemoveNode(context.Context, *RemoveNodeRequest) (*RemoveNodeResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	GetNodes(context.Context, *GetNodesRequest) (*GetNodesResponse, error)
	GetNode(context.Context, *GetNodeRequest) (*GetNodeResponse, error)
	ToggleNodeType(context.Context, *ToggleNodeTypeRequest) (*ToggleNodeTypeResponse, error)
	UpdateNodePosition(context.Context, *UpdateNodePositionRequest) (*UpdateNodePositionResponse, error)
	UpdateNodeVelocity(context.Context, *UpdateNodeVelocityRequest) (*UpdateNodeVelocityResponse, error)
	SetConnectionRadius(context.Context, *SetConnectionRadiusRequest) (*SetConnectionRadiusResponse, error)
	SetInactiveRoutingTimeout(context.Context, *SetInactiveRoutingTimeoutRequest) (*SetInactiveRoutingTimeoutResponse, error)
	SetRouteExpiry(context.Context, *SetRouteExpiryRequest) (*SetRouteExpiryResponse, error)
	SetMessageSpeed(context.Context, *SetMessageSpeedRequest) (*SetMessageSpeedResponse, error)
	SetTriageGenerationInterval(context.Context, *SetTriageGenerationIntervalRequest) (*SetTriageGenerationIntervalResponse, error)
	StartAutoGeneration(context.Context, *StartAutoGenerationRequest) (*StartAutoGenerationResponse, error)
	StopAutoGeneration(context.Context, *StopAutoGenerationRequest) (*StopAutoGenerationResponse, error)
	IsAutoGenerationActive(context.Context, *IsAutoGenerationActiveRequest) (*IsAutoGenerationActiveResponse, error)
	Reset(context.Context, *ResetRequest) (*ResetResponse, error)
	GetMessages(context.Context, *GetMessagesRequest) (*GetMessagesResponse, error)
	GetConnections(context.Context, *GetConnectionsRequest) (*GetConnectionsResponse, error)
}

// UnimplementedDaemonServer can be embedded to satisfy DaemonServer for
// methods a given server doesn't need to override.
type UnimplementedDaemonServer struct{}

func (UnimplementedDaemonServer) Tick(context.Context, *TickRequest) (*TickResponse, error) {
	return nil, errUnimplemented("Tick")
}
func (UnimplementedDaemonServer) AddNode(context.Context, *AddNodeRequest) (*AddNodeResponse, error) {
	return nil, errUnimplemented("AddNode")
}
func (UnimplementedDaemonServer) RemoveNode(context.Context, *RemoveNodeRequest) (*RemoveNodeResponse, error) {
	return nil, errUnimplemented("RemoveNode")
}
func (UnimplementedDaemonServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, errUnimplemented("SendMessage")
}
func (UnimplementedDaemonServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, errUnimplemented("GetStats")
}
func (UnimplementedDaemonServer) GetNodes(context.Context, *GetNodesRequest) (*GetNodesResponse, error) {
	return nil, errUnimplemented("GetNodes")
}
func (UnimplementedDaemonServer) GetNode(context.Context, *GetNodeRequest) (*GetNodeResponse, error) {
	return nil, errUnimplemented("GetNode")
}
func (UnimplementedDaemonServer) ToggleNodeType(context.Context, *ToggleNodeTypeRequest) (*ToggleNodeTypeResponse, error) {
	return nil, errUnimplemented("ToggleNodeType")
}
func (UnimplementedDaemonServer) UpdateNodePosition(context.Context, *UpdateNodePositionRequest) (*UpdateNodePositionResponse, error) {
	return nil, errUnimplemented("UpdateNodePosition")
}
func (UnimplementedDaemonServer) UpdateNodeVelocity(context.Context, *UpdateNodeVelocityRequest) (*UpdateNodeVelocityResponse, error) {
	return nil, errUnimplemented("UpdateNodeVelocity")
}
func (UnimplementedDaemonServer) SetConnectionRadius(context.Context, *SetConnectionRadiusRequest) (*SetConnectionRadiusResponse, error) {
	return nil, errUnimplemented("SetConnectionRadius")
}
func (UnimplementedDaemonServer) SetInactiveRoutingTimeout(context.Context, *SetInactiveRoutingTimeoutRequest) (*SetInactiveRoutingTimeoutResponse, error) {
	return nil, errUnimplemented("SetInactiveRoutingTimeout")
}
func (UnimplementedDaemonServer) SetRouteExpiry(context.Context, *SetRouteExpiryRequest) (*SetRouteExpiryResponse, error) {
	return nil, errUnimplemented("SetRouteExpiry")
}
func (UnimplementedDaemonServer) SetMessageSpeed(context.Context, *SetMessageSpeedRequest) (*SetMessageSpeedResponse, error) {
	return nil, errUnimplemented("SetMessageSpeed")
}
func (UnimplementedDaemonServer) SetTriageGenerationInterval(context.Context, *SetTriageGenerationIntervalRequest) (*SetTriageGenerationIntervalResponse, error) {
	return nil, errUnimplemented("SetTriageGenerationInterval")
}
func (UnimplementedDaemonServer) StartAutoGeneration(context.Context, *StartAutoGenerationRequest) (*StartAutoGenerationResponse, error) {
	return nil, errUnimplemented("StartAutoGeneration")
}
func (UnimplementedDaemonServer) StopAutoGeneration(context.Context, *StopAutoGenerationRequest) (*StopAutoGenerationResponse, error) {
	return nil, errUnimplemented("StopAutoGeneration")
}
func (UnimplementedDaemonServer) IsAutoGenerationActive(context.Context, *IsAutoGenerationActiveRequest) (*IsAutoGenerationActiveResponse, error) {
	return nil, errUnimplemented("IsAutoGenerationActive")
}
func (UnimplementedDaemonServer) Reset(context.Context, *ResetRequest) (*ResetResponse, error) {
	return nil, errUnimplemented("Reset")
}
func (UnimplementedDaemonServer) GetMessages(context.Context, *GetMessagesRequest) (*GetMessagesResponse, error) {
	return nil, errUnimplemented("GetMessages")
}
func (UnimplementedDaemonServer) GetConnections(context.Context, *GetConnectionsRequest) (*GetConnectionsResponse, error) {
	return nil, errUnimplemented("GetConnections")
}

func errUnimplemented(method string) error {
	return &unimplementedError{method: method}
}

type unimplementedError struct{ method string }

func (e *unimplementedError) Error() string { return "pb: method " + e.method + " not implemented" }

func _Daemon_Tick_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TickRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).Tick(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/Tick"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).Tick(ctx, req.(*TickRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_AddNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddNodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).AddNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/AddNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).AddNode(ctx, req.(*AddNodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_RemoveNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveNodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).RemoveNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/RemoveNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).RemoveNode(ctx, req.(*RemoveNodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/SendMessage"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/GetStats"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_GetNodes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNodesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).GetNodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/GetNodes"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).GetNodes(ctx, req.(*GetNodesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_GetNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).GetNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/GetNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).GetNode(ctx, req.(*GetNodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_ToggleNodeType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleNodeTypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).ToggleNodeType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/ToggleNodeType"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).ToggleNodeType(ctx, req.(*ToggleNodeTypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_UpdateNodePosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateNodePositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).UpdateNodePosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/UpdateNodePosition"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).UpdateNodePosition(ctx, req.(*UpdateNodePositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_UpdateNodeVelocity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateNodeVelocityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).UpdateNodeVelocity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/UpdateNodeVelocity"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).UpdateNodeVelocity(ctx, req.(*UpdateNodeVelocityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_SetConnectionRadius_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetConnectionRadiusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).SetConnectionRadius(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/SetConnectionRadius"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).SetConnectionRadius(ctx, req.(*SetConnectionRadiusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_SetInactiveRoutingTimeout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetInactiveRoutingTimeoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).SetInactiveRoutingTimeout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/SetInactiveRoutingTimeout"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).SetInactiveRoutingTimeout(ctx, req.(*SetInactiveRoutingTimeoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_SetRouteExpiry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetRouteExpiryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).SetRouteExpiry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/SetRouteExpiry"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).SetRouteExpiry(ctx, req.(*SetRouteExpiryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_SetMessageSpeed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetMessageSpeedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).SetMessageSpeed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/SetMessageSpeed"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).SetMessageSpeed(ctx, req.(*SetMessageSpeedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_SetTriageGenerationInterval_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetTriageGenerationIntervalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).SetTriageGenerationInterval(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/SetTriageGenerationInterval"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).SetTriageGenerationInterval(ctx, req.(*SetTriageGenerationIntervalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_StartAutoGeneration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartAutoGenerationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).StartAutoGeneration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/StartAutoGeneration"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).StartAutoGeneration(ctx, req.(*StartAutoGenerationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_StopAutoGeneration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopAutoGenerationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).StopAutoGeneration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/StopAutoGeneration"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).StopAutoGeneration(ctx, req.(*StopAutoGenerationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_IsAutoGenerationActive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IsAutoGenerationActiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).IsAutoGenerationActive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/IsAutoGenerationActive"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).IsAutoGenerationActive(ctx, req.(*IsAutoGenerationActiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_Reset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/Reset"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).Reset(ctx, req.(*ResetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_GetMessages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).GetMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/GetMessages"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).GetMessages(ctx, req.(*GetMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Daemon_GetConnections_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetConnectionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DaemonServer).GetConnections(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/foors.Daemon/GetConnections"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DaemonServer).GetConnections(ctx, req.(*GetConnectionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Daemon_ServiceDesc is the grpc.ServiceDesc generated code would normally
// produce from a .proto file; it is authored by hand here.
var Daemon_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "foors.Daemon",
	HandlerType: (*DaemonServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Tick", Handler: _Daemon_Tick_Handler},
		{MethodName: "AddNode", Handler: _Daemon_AddNode_Handler},
		{MethodName: "RemoveNode", Handler: _Daemon_RemoveNode_Handler},
		{MethodName: "SendMessage", Handler: _Daemon_SendMessage_Handler},
		{MethodName: "GetStats", Handler: _Daemon_GetStats_Handler},
		{MethodName: "GetNodes", Handler: _Daemon_GetNodes_Handler},
		{MethodName: "GetNode", Handler: _Daemon_GetNode_Handler},
		{MethodName: "ToggleNodeType", Handler: _Daemon_ToggleNodeType_Handler},
		{MethodName: "UpdateNodePosition", Handler: _Daemon_UpdateNodePosition_Handler},
		{MethodName: "UpdateNodeVelocity", Handler: _Daemon_UpdateNodeVelocity_Handler},
		{MethodName: "SetConnectionRadius", Handler: _Daemon_SetConnectionRadius_Handler},
		{MethodName: "SetInactiveRoutingTimeout", Handler: _Daemon_SetInactiveRoutingTimeout_Handler},
		{MethodName: "SetRouteExpiry", Handler: _Daemon_SetRouteExpiry_Handler},
		{MethodName: "SetMessageSpeed", Handler: _Daemon_SetMessageSpeed_Handler},
		{MethodName: "SetTriageGenerationInterval", Handler: _Daemon_SetTriageGenerationInterval_Handler},
		{MethodName: "StartAutoGeneration", Handler: _Daemon_StartAutoGeneration_Handler},
		{MethodName: "StopAutoGeneration", Handler: _Daemon_StopAutoGeneration_Handler},
		{MethodName: "IsAutoGenerationActive", Handler: _Daemon_IsAutoGenerationActive_Handler},
		{MethodName: "Reset", Handler: _Daemon_Reset_Handler},
		{MethodName: "GetMessages", Handler: _Daemon_GetMessages_Handler},
		{MethodName: "GetConnections", Handler: _Daemon_GetConnections_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "foors/daemon.proto",
}

// RegisterDaemonServer registers srv on s.
func RegisterDaemonServer(s grpc.ServiceRegistrar, srv DaemonServer) {
	s.RegisterService(&Daemon_ServiceDesc, srv)
}

// DaemonClient is the client-side stub for DaemonServer.
type DaemonClient interface {
	Tick(ctx context.Context, in *TickRequest, opts ...grpc.CallOption) (*TickResponse, error)
	AddNode(ctx context.Context, in *AddNodeRequest, opts ...grpc.CallOption) (*AddNodeResponse, error)
	RemoveNode(ctx context.Context, in *RemoveNodeRequest, opts ...grpc.CallOption) (*RemoveNodeResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
	GetNodes(ctx context.Context, in *GetNodesRequest, opts ...grpc.CallOption) (*GetNodesResponse, error)
	GetNode(ctx context.Context, in *GetNodeRequest, opts ...grpc.CallOption) (*GetNodeResponse, error)
	ToggleNodeType(ctx context.Context, in *ToggleNodeTypeRequest, opts ...grpc.CallOption) (*ToggleNodeTypeResponse, error)
	UpdateNodePosition(ctx context.Context, in *UpdateNodePositionRequest, opts ...grpc.CallOption) (*UpdateNodePositionResponse, error)
	UpdateNodeVelocity(ctx context.Context, in *UpdateNodeVelocityRequest, opts ...grpc.CallOption) (*UpdateNodeVelocityResponse, error)
	SetConnectionRadius(ctx context.Context, in *SetConnectionRadiusRequest, opts ...grpc.CallOption) (*SetConnectionRadiusResponse, error)
	SetInactiveRoutingTimeout(ctx context.Context, in *SetInactiveRoutingTimeoutRequest, opts ...grpc.CallOption) (*SetInactiveRoutingTimeoutResponse, error)
	SetRouteExpiry(ctx context.Context, in *SetRouteExpiryRequest, opts ...grpc.CallOption) (*SetRouteExpiryResponse, error)
	SetMessageSpeed(ctx context.Context, in *SetMessageSpeedRequest, opts ...grpc.CallOption) (*SetMessageSpeedResponse, error)
	SetTriageGenerationInterval(ctx context.Context, in *SetTriageGenerationIntervalRequest, opts ...grpc.CallOption) (*SetTriageGenerationIntervalResponse, error)
	StartAutoGeneration(ctx context.Context, in *StartAutoGenerationRequest, opts ...grpc.CallOption) (*StartAutoGenerationResponse, error)
	StopAutoGeneration(ctx context.Context, in *StopAutoGenerationRequest, opts ...grpc.CallOption) (*StopAutoGenerationResponse, error)
	IsAutoGenerationActive(ctx context.Context, in *IsAutoGenerationActiveRequest, opts ...grpc.CallOption) (*IsAutoGenerationActiveResponse, error)
	Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error)
	GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*GetMessagesResponse, error)
	GetConnections(ctx context.Context, in *GetConnectionsRequest, opts ...grpc.CallOption) (*GetConnectionsResponse, error)
}

type daemonClient struct {
	cc grpc.ClientConnInterface
}

// NewDaemonClient wraps a connection in a DaemonClient.
func NewDaemonClient(cc grpc.ClientConnInterface) DaemonClient {
	return &daemonClient{cc: cc}
}

func (c *daemonClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *daemonClient) Tick(ctx context.Context, in *TickRequest, opts ...grpc.CallOption) (*TickResponse, error) {
	out := new(TickResponse)
	if err := c.invoke(ctx, "/foors.Daemon/Tick", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) AddNode(ctx context.Context, in *AddNodeRequest, opts ...grpc.CallOption) (*AddNodeResponse, error) {
	out := new(AddNodeResponse)
	if err := c.invoke(ctx, "/foors.Daemon/AddNode", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) RemoveNode(ctx context.Context, in *RemoveNodeRequest, opts ...grpc.CallOption) (*RemoveNodeResponse, error) {
	out := new(RemoveNodeResponse)
	if err := c.invoke(ctx, "/foors.Daemon/RemoveNode", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	out := new(SendMessageResponse)
	if err := c.invoke(ctx, "/foors.Daemon/SendMessage", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	out := new(GetStatsResponse)
	if err := c.invoke(ctx, "/foors.Daemon/GetStats", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) GetNodes(ctx context.Context, in *GetNodesRequest, opts ...grpc.CallOption) (*GetNodesResponse, error) {
	out := new(GetNodesResponse)
	if err := c.invoke(ctx, "/foors.Daemon/GetNodes", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) GetNode(ctx context.Context, in *GetNodeRequest, opts ...grpc.CallOption) (*GetNodeResponse, error) {
	out := new(GetNodeResponse)
	if err := c.invoke(ctx, "/foors.Daemon/GetNode", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) ToggleNodeType(ctx context.Context, in *ToggleNodeTypeRequest, opts ...grpc.CallOption) (*ToggleNodeTypeResponse, error) {
	out := new(ToggleNodeTypeResponse)
	if err := c.invoke(ctx, "/foors.Daemon/ToggleNodeType", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) UpdateNodePosition(ctx context.Context, in *UpdateNodePositionRequest, opts ...grpc.CallOption) (*UpdateNodePositionResponse, error) {
	out := new(UpdateNodePositionResponse)
	if err := c.invoke(ctx, "/foors.Daemon/UpdateNodePosition", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) UpdateNodeVelocity(ctx context.Context, in *UpdateNodeVelocityRequest, opts ...grpc.CallOption) (*UpdateNodeVelocityResponse, error) {
	out := new(UpdateNodeVelocityResponse)
	if err := c.invoke(ctx, "/foors.Daemon/UpdateNodeVelocity", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) SetConnectionRadius(ctx context.Context, in *SetConnectionRadiusRequest, opts ...grpc.CallOption) (*SetConnectionRadiusResponse, error) {
	out := new(SetConnectionRadiusResponse)
	if err := c.invoke(ctx, "/foors.Daemon/SetConnectionRadius", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) SetInactiveRoutingTimeout(ctx context.Context, in *SetInactiveRoutingTimeoutRequest, opts ...grpc.CallOption) (*SetInactiveRoutingTimeoutResponse, error) {
	out := new(SetInactiveRoutingTimeoutResponse)
	if err := c.invoke(ctx, "/foors.Daemon/SetInactiveRoutingTimeout", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) SetRouteExpiry(ctx context.Context, in *SetRouteExpiryRequest, opts ...grpc.CallOption) (*SetRouteExpiryResponse, error) {
	out := new(SetRouteExpiryResponse)
	if err := c.invoke(ctx, "/foors.Daemon/SetRouteExpiry", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) SetMessageSpeed(ctx context.Context, in *SetMessageSpeedRequest, opts ...grpc.CallOption) (*SetMessageSpeedResponse, error) {
	out := new(SetMessageSpeedResponse)
	if err := c.invoke(ctx, "/foors.Daemon/SetMessageSpeed", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) SetTriageGenerationInterval(ctx context.Context, in *SetTriageGenerationIntervalRequest, opts ...grpc.CallOption) (*SetTriageGenerationIntervalResponse, error) {
	out := new(SetTriageGenerationIntervalResponse)
	if err := c.invoke(ctx, "/foors.Daemon/SetTriageGenerationInterval", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) StartAutoGeneration(ctx context.Context, in *StartAutoGenerationRequest, opts ...grpc.CallOption) (*StartAutoGenerationResponse, error) {
	out := new(StartAutoGenerationResponse)
	if err := c.invoke(ctx, "/foors.Daemon/StartAutoGeneration", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) StopAutoGeneration(ctx context.Context, in *StopAutoGenerationRequest, opts ...grpc.CallOption) (*StopAutoGenerationResponse, error) {
	out := new(StopAutoGenerationResponse)
	if err := c.invoke(ctx, "/foors.Daemon/StopAutoGeneration", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) IsAutoGenerationActive(ctx context.Context, in *IsAutoGenerationActiveRequest, opts ...grpc.CallOption) (*IsAutoGenerationActiveResponse, error) {
	out := new(IsAutoGenerationActiveResponse)
	if err := c.invoke(ctx, "/foors.Daemon/IsAutoGenerationActive", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error) {
	out := new(ResetResponse)
	if err := c.invoke(ctx, "/foors.Daemon/Reset", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*GetMessagesResponse, error) {
	out := new(GetMessagesResponse)
	if err := c.invoke(ctx, "/foors.Daemon/GetMessages", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *daemonClient) GetConnections(ctx context.Context, in *GetConnectionsRequest, opts ...grpc.CallOption) (*GetConnectionsResponse, error) {
	out := new(GetConnectionsResponse)
	if err := c.invoke(ctx, "/foors.Daemon/GetConnections", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
