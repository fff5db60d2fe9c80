package pipelined

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/gvc0461082002/magma/api/pipelined/v1"
	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/sid"
)

// GRPCServer exposes the controller and diagnostics over the
// magma.lte.Pipelined service.
type GRPCServer struct {
	pb.UnimplementedPipelinedServer
	ctrl *Controller
	diag *Diagnostics
	log  *logrus.Entry
}

func NewGRPCServer(ctrl *Controller, diag *Diagnostics) *GRPCServer {
	return &GRPCServer{
		ctrl: ctrl,
		diag: diag,
		log:  logrus.WithField("component", "grpc"),
	}
}

func (s *GRPCServer) ActivateFlows(ctx context.Context, req *pb.ActivateFlowsRequest) (*pb.ActivateFlowsResult, error) {
	sub, err := subscriberFromPB(req.GetSid())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	dynamic := make([]*PolicyRule, len(req.GetDynamicRules()))
	for i, r := range req.GetDynamicRules() {
		dynamic[i] = ruleFromPB(r)
	}

	res, err := s.ctrl.ActivateFlows(ctx, ActivateRequest{
		Subscriber:   sub,
		IPAddr:       req.GetIpAddr(),
		StaticRules:  req.GetRuleIds(),
		DynamicRules: dynamic,
		Origin:       originFromPB(req.GetRequestOrigin()),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ActivateFlowsResult{
		StaticRuleResults:  ruleResultsToPB(res.StaticResults),
		DynamicRuleResults: ruleResultsToPB(res.DynamicResults),
	}, nil
}

func (s *GRPCServer) DeactivateFlows(ctx context.Context, req *pb.DeactivateFlowsRequest) (*pb.DeactivateFlowsResult, error) {
	sub, err := subscriberFromPB(req.GetSid())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	err = s.ctrl.DeactivateFlows(ctx, DeactivateRequest{
		Subscriber: sub,
		IPAddr:     req.GetIpAddr(),
		RuleIDs:    req.GetRuleIds(),
		Origin:     originFromPB(req.GetRequestOrigin()),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.DeactivateFlowsResult{}, nil
}

func (s *GRPCServer) AddUEMacFlow(ctx context.Context, req *pb.UEMacFlowRequest) (*pb.FlowResponse, error) {
	sub, err := subscriberFromPB(req.GetSid())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.ctrl.AddUEMacFlow(ctx, sub, req.GetMacAddr()); err != nil {
		return flowResponseFromError(err)
	}
	return &pb.FlowResponse{Result: pb.FlowResponse_SUCCESS}, nil
}

func (s *GRPCServer) DeleteUEMacFlow(ctx context.Context, req *pb.UEMacFlowRequest) (*pb.FlowResponse, error) {
	sub, err := subscriberFromPB(req.GetSid())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.ctrl.DeleteUEMacFlow(ctx, sub, req.GetMacAddr()); err != nil {
		return flowResponseFromError(err)
	}
	return &pb.FlowResponse{Result: pb.FlowResponse_SUCCESS}, nil
}

func (s *GRPCServer) UpdateSubscriberQuotaState(ctx context.Context, req *pb.UpdateSubscriberQuotaStateRequest) (*pb.FlowResponse, error) {
	result := pb.FlowResponse_SUCCESS
	for _, upd := range req.GetUpdates() {
		sub, err := subscriberFromPB(upd.GetSid())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		state, err := quotaStateFromPB(upd.GetUpdateType())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		if err := s.ctrl.UpdateQuotaState(ctx, sub, upd.GetMacAddr(), state); err != nil {
			if KindOf(err) == KindValidation {
				return nil, status.Error(codes.InvalidArgument, err.Error())
			}
			s.log.WithError(err).WithField("imsi", sub.String()).Warn("quota update failed")
			result = pb.FlowResponse_FAILURE
		}
	}
	return &pb.FlowResponse{Result: result}, nil
}

func (s *GRPCServer) GetAllTableAssignments(ctx context.Context, _ *pb.Void) (*pb.AllTableAssignments, error) {
	assignments := s.diag.TableAssignments("")
	out := make([]*pb.TableAssignment, len(assignments))
	for i, asg := range assignments {
		out[i] = &pb.TableAssignment{
			AppName:       asg.AppName,
			MainTable:     asg.MainTable,
			ScratchTables: append([]uint64(nil), asg.ScratchTables...),
		}
	}
	return &pb.AllTableAssignments{TableAssignments: out}, nil
}

func subscriberFromPB(id *pb.SubscriberID) (sid.SubscriberID, error) {
	if id == nil {
		return sid.SubscriberID{}, newError(KindValidation, "missing subscriber id")
	}
	return sid.Parse(id.GetId())
}

// originFromPB defaults an absent origin to the policy interface, matching
// what callers that predate origin tagging expect.
func originFromPB(o *pb.RequestOriginType) Origin {
	if o != nil && o.GetType() == pb.RequestOriginType_GY {
		return OriginCharging
	}
	return OriginPolicy
}

func ruleFromPB(r *pb.PolicyRule) *PolicyRule {
	if r == nil {
		return nil
	}
	rule := &PolicyRule{
		ID:          r.GetId(),
		Priority:    r.GetPriority(),
		HardTimeout: r.GetHardTimeout(),
	}
	for _, fd := range r.GetFlowList() {
		rule.Flows = append(rule.Flows, FlowDescriptor{
			Match:  matchFromPB(fd.GetMatch()),
			Action: actionFromPB(fd.GetAction()),
		})
	}
	if red := r.GetRedirect(); red != nil && red.GetSupport() == pb.RedirectInformation_ENABLED {
		rule.Redirect = &Redirect{
			AddressType:   redirectAddressTypeFromPB(red.GetAddressType()),
			ServerAddress: red.GetServerAddress(),
		}
	}
	return rule
}

func matchFromPB(m *pb.FlowMatch) dataplane.Match {
	if m == nil {
		return dataplane.Match{}
	}
	dir := dataplane.Uplink
	if m.GetDirection() == pb.FlowMatch_DOWNLINK {
		dir = dataplane.Downlink
	}
	return dataplane.Match{
		Direction: dir,
		IPv4Src:   m.GetIpv4Src(),
		IPv4Dst:   m.GetIpv4Dst(),
		IPProto:   uint8(m.GetIpProto()),
		TCPSrc:    uint16(m.GetTcpSrc()),
		TCPDst:    uint16(m.GetTcpDst()),
		UDPSrc:    uint16(m.GetUdpSrc()),
		UDPDst:    uint16(m.GetUdpDst()),
	}
}

func actionFromPB(a pb.FlowDescription_Action) dataplane.ActionType {
	if a == pb.FlowDescription_DENY {
		return dataplane.ActionDrop
	}
	return dataplane.ActionPermit
}

func redirectAddressTypeFromPB(t pb.RedirectInformation_AddressType) RedirectAddressType {
	switch t {
	case pb.RedirectInformation_IPV6:
		return RedirectIPv6
	case pb.RedirectInformation_URL:
		return RedirectURL
	case pb.RedirectInformation_SIP_URI:
		return RedirectSIPURI
	default:
		return RedirectIPv4
	}
}

func quotaStateFromPB(t pb.SubscriberQuotaUpdate_Type) (QuotaState, error) {
	switch t {
	case pb.SubscriberQuotaUpdate_VALID_QUOTA:
		return QuotaValid, nil
	case pb.SubscriberQuotaUpdate_NO_QUOTA:
		return QuotaExhausted, nil
	case pb.SubscriberQuotaUpdate_TERMINATE:
		return QuotaTerminate, nil
	default:
		return QuotaValid, newError(KindValidation, "unknown quota update type %d", t)
	}
}

func ruleResultsToPB(results []RuleResult) []*pb.RuleModResult {
	out := make([]*pb.RuleModResult, len(results))
	for i, r := range results {
		out[i] = &pb.RuleModResult{
			RuleId: r.RuleID,
			Result: outcomeToPB(r.Outcome),
		}
	}
	return out
}

func outcomeToPB(o OutcomeCode) pb.RuleModResult_Result {
	switch o {
	case OutcomeSuccess:
		return pb.RuleModResult_SUCCESS
	case OutcomeFailureRuleInvalid:
		return pb.RuleModResult_FAILURE_RULE_INVALID
	case OutcomeFailureDataplane:
		return pb.RuleModResult_FAILURE_DATAPLANE
	default:
		return pb.RuleModResult_FAILURE_UNKNOWN
	}
}

func statusFromError(err error) error {
	switch KindOf(err) {
	case KindValidation:
		return status.Error(codes.InvalidArgument, err.Error())
	case KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case KindPermission:
		return status.Error(codes.PermissionDenied, err.Error())
	case KindUnavailable:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func flowResponseFromError(err error) (*pb.FlowResponse, error) {
	if KindOf(err) == KindValidation {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &pb.FlowResponse{Result: pb.FlowResponse_FAILURE}, nil
}
