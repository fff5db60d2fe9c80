package pipelined

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/gvc0461082002/magma/api/pipelined/v1"
	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/dataplane/mock"
)

func testGRPCServer(t *testing.T, rules map[string]*PolicyRule) (*GRPCServer, *mock.MockDataplane) {
	t.Helper()
	dp := mock.NewMockDataplane()
	ctrl := testController(t, dp, rules)
	diag := NewDiagnostics(ctrl.tables, dp, time.Second)
	return NewGRPCServer(ctrl, diag), dp
}

func TestGRPCActivateFlows(t *testing.T) {
	srv, _ := testGRPCServer(t, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
	})

	res, err := srv.ActivateFlows(context.Background(), &pb.ActivateFlowsRequest{
		Sid:     &pb.SubscriberID{Id: "IMSI12345"},
		IpAddr:  "120.12.1.9",
		RuleIds: []string{"rule1", "no_such_rule"},
		DynamicRules: []*pb.PolicyRule{{
			Id:       "dyn1",
			Priority: 50,
			FlowList: []*pb.FlowDescription{{
				Match:  &pb.FlowMatch{Direction: pb.FlowMatch_UPLINK, TcpDst: 443, IpProto: 6},
				Action: pb.FlowDescription_DENY,
			}},
		}},
		RequestOrigin: &pb.RequestOriginType{Type: pb.RequestOriginType_GX},
	})
	require.NoError(t, err)

	require.Len(t, res.StaticRuleResults, 2)
	assert.Equal(t, "rule1", res.StaticRuleResults[0].RuleId)
	assert.Equal(t, pb.RuleModResult_SUCCESS, res.StaticRuleResults[0].Result)
	assert.Equal(t, pb.RuleModResult_FAILURE_RULE_INVALID, res.StaticRuleResults[1].Result)

	require.Len(t, res.DynamicRuleResults, 1)
	assert.Equal(t, "dyn1", res.DynamicRuleResults[0].RuleId)
	assert.Equal(t, pb.RuleModResult_SUCCESS, res.DynamicRuleResults[0].Result)
}

func TestGRPCActivateRejectsBadSubscriber(t *testing.T) {
	srv, _ := testGRPCServer(t, nil)

	for _, sid := range []*pb.SubscriberID{nil, {Id: "bogus"}} {
		_, err := srv.ActivateFlows(context.Background(), &pb.ActivateFlowsRequest{
			Sid:    sid,
			IpAddr: "120.12.1.9",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	}
}

func TestGRPCDeactivateFlows(t *testing.T) {
	srv, _ := testGRPCServer(t, map[string]*PolicyRule{
		"rule1": permitRule("rule1", 100),
	})
	ctx := context.Background()

	_, err := srv.ActivateFlows(ctx, &pb.ActivateFlowsRequest{
		Sid:     &pb.SubscriberID{Id: "IMSI12345"},
		IpAddr:  "120.12.1.9",
		RuleIds: []string{"rule1"},
	})
	require.NoError(t, err)

	_, err = srv.DeactivateFlows(ctx, &pb.DeactivateFlowsRequest{
		Sid:     &pb.SubscriberID{Id: "IMSI12345"},
		IpAddr:  "120.12.1.9",
		RuleIds: []string{"rule1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, srv.ctrl.store.Count())
}

func TestGRPCUEMacFlow(t *testing.T) {
	srv, dp := testGRPCServer(t, nil)
	ctx := context.Background()
	req := &pb.UEMacFlowRequest{
		Sid:     &pb.SubscriberID{Id: "IMSI12345"},
		MacAddr: "5e:cc:cc:b1:49:ff",
	}

	res, err := srv.AddUEMacFlow(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, pb.FlowResponse_SUCCESS, res.Result)

	ueMac, _ := srv.ctrl.tables.Assignment(AppUEMac)
	assert.Len(t, dp.Entries(ueMac.MainTable), 2)

	res, err = srv.DeleteUEMacFlow(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, pb.FlowResponse_SUCCESS, res.Result)
	assert.Empty(t, dp.Entries(ueMac.MainTable))

	_, err = srv.AddUEMacFlow(ctx, &pb.UEMacFlowRequest{
		Sid:     &pb.SubscriberID{Id: "IMSI12345"},
		MacAddr: "not-a-mac",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPCUpdateSubscriberQuotaState(t *testing.T) {
	srv, dp := testGRPCServer(t, nil)
	ctx := context.Background()

	res, err := srv.UpdateSubscriberQuotaState(ctx, &pb.UpdateSubscriberQuotaStateRequest{
		Updates: []*pb.SubscriberQuotaUpdate{{
			Sid:        &pb.SubscriberID{Id: "IMSI12345"},
			MacAddr:    "5e:cc:cc:b1:49:ff",
			UpdateType: pb.SubscriberQuotaUpdate_NO_QUOTA,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, pb.FlowResponse_SUCCESS, res.Result)

	checkQuota, _ := srv.ctrl.tables.Assignment(AppCheckQuota)
	entries := dp.Entries(checkQuota.MainTable)
	require.Len(t, entries, 1)
	assert.Equal(t, dataplane.ActionRedirect, entries[0].Action.Type)

	// A dataplane failure surfaces as a FAILURE result, not an RPC error.
	dp.FailNext(1, dataplane.ErrUnavailable)
	res, err = srv.UpdateSubscriberQuotaState(ctx, &pb.UpdateSubscriberQuotaStateRequest{
		Updates: []*pb.SubscriberQuotaUpdate{{
			Sid:        &pb.SubscriberID{Id: "IMSI12345"},
			MacAddr:    "5e:cc:cc:b1:49:ff",
			UpdateType: pb.SubscriberQuotaUpdate_VALID_QUOTA,
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, pb.FlowResponse_FAILURE, res.Result)
}

func TestGRPCGetAllTableAssignments(t *testing.T) {
	srv, _ := testGRPCServer(t, nil)

	res, err := srv.GetAllTableAssignments(context.Background(), &pb.Void{})
	require.NoError(t, err)
	require.Len(t, res.TableAssignments, 4)

	// Ordered by main table number, mirroring the registry snapshot.
	var prev uint64
	for _, asg := range res.TableAssignments {
		assert.Greater(t, asg.MainTable, prev)
		prev = asg.MainTable
	}
}

func TestOriginConversionDefaultsToPolicy(t *testing.T) {
	assert.Equal(t, OriginPolicy, originFromPB(nil))
	assert.Equal(t, OriginPolicy, originFromPB(&pb.RequestOriginType{Type: pb.RequestOriginType_GX}))
	assert.Equal(t, OriginCharging, originFromPB(&pb.RequestOriginType{Type: pb.RequestOriginType_GY}))
}

func TestRuleConversionIgnoresDisabledRedirect(t *testing.T) {
	rule := ruleFromPB(&pb.PolicyRule{
		Id: "r",
		Redirect: &pb.RedirectInformation{
			Support:       pb.RedirectInformation_DISABLED,
			AddressType:   pb.RedirectInformation_URL,
			ServerAddress: "http://x",
		},
	})
	assert.Nil(t, rule.Redirect)

	rule = ruleFromPB(&pb.PolicyRule{
		Id: "r",
		Redirect: &pb.RedirectInformation{
			Support:       pb.RedirectInformation_ENABLED,
			AddressType:   pb.RedirectInformation_URL,
			ServerAddress: "http://x",
		},
	})
	require.NotNil(t, rule.Redirect)
	assert.Equal(t, RedirectURL, rule.Redirect.AddressType)
}
