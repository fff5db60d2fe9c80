// Smoke test client for a running pipelined instance: activates two static
// rules and a dynamic drop rule for a subscriber, walks the table layout,
// flips the subscriber's quota state and tears the session down.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/gvc0461082002/magma/api/pipelined/v1"
)

func main() {
	addr := flag.String("addr", "localhost:50063", "pipelined gRPC address")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewPipelinedClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sid := &pb.SubscriberID{Id: "IMSI12345"}

	log.Println("Activating flows...")
	res, err := client.ActivateFlows(ctx, &pb.ActivateFlowsRequest{
		Sid:     sid,
		IpAddr:  "120.12.1.9",
		RuleIds: []string{"rule1", "rule2"},
		DynamicRules: []*pb.PolicyRule{{
			Id:       "block_http",
			Priority: 500,
			FlowList: []*pb.FlowDescription{{
				Match:  &pb.FlowMatch{Direction: pb.FlowMatch_UPLINK, IpProto: 6, TcpDst: 80},
				Action: pb.FlowDescription_DENY,
			}},
		}},
		RequestOrigin: &pb.RequestOriginType{Type: pb.RequestOriginType_GX},
	})
	if err != nil {
		log.Fatalf("Failed to activate flows: %v", err)
	}
	for _, r := range append(res.StaticRuleResults, res.DynamicRuleResults...) {
		log.Printf("  rule %s: %s", r.RuleId, r.Result)
	}

	log.Println("Table assignments:")
	tables, err := client.GetAllTableAssignments(ctx, &pb.Void{})
	if err != nil {
		log.Fatalf("Failed to get table assignments: %v", err)
	}
	for _, asg := range tables.TableAssignments {
		log.Printf("  %-20s main=%d scratch=%v", asg.AppName, asg.MainTable, asg.ScratchTables)
	}

	log.Println("Marking quota exhausted...")
	quotaRes, err := client.UpdateSubscriberQuotaState(ctx, &pb.UpdateSubscriberQuotaStateRequest{
		Updates: []*pb.SubscriberQuotaUpdate{{
			Sid:        sid,
			MacAddr:    "5e:cc:cc:b1:49:ff",
			UpdateType: pb.SubscriberQuotaUpdate_NO_QUOTA,
		}},
	})
	if err != nil {
		log.Fatalf("Failed to update quota state: %v", err)
	}
	log.Printf("  quota update: %s", quotaRes.Result)

	log.Println("Deactivating all GX flows...")
	_, err = client.DeactivateFlows(ctx, &pb.DeactivateFlowsRequest{
		Sid:           sid,
		IpAddr:        "120.12.1.9",
		RequestOrigin: &pb.RequestOriginType{Type: pb.RequestOriginType_GX},
	})
	if err != nil {
		log.Fatalf("Failed to deactivate flows: %v", err)
	}

	log.Println("SUCCESS: activation cycle complete")
}
