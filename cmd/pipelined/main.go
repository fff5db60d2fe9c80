package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	pb "github.com/gvc0461082002/magma/api/pipelined/v1"
	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/dataplane/mock"
	"github.com/gvc0461082002/magma/pkg/dataplane/ovs"
	"github.com/gvc0461082002/magma/pkg/dataplane/vpp"
	"github.com/gvc0461082002/magma/pkg/pipelined"
	"github.com/gvc0461082002/magma/pkg/policydb"
)

func main() {
	configPath := flag.String("config", "", "Path to pipelined config file")
	grpcAddr := flag.String("grpc-addr", "", "gRPC API address (overrides config)")
	dataplaneKind := flag.String("dataplane", "", "Dataplane backend: mock, ovs or vpp (overrides config)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := pipelined.DefaultConfig()
	if *configPath != "" {
		cfg, err = pipelined.LoadConfig(*configPath)
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
	}
	if *grpcAddr != "" {
		cfg.GRPCAddress = *grpcAddr
	}
	if *dataplaneKind != "" {
		cfg.Dataplane = *dataplaneKind
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}

	logrus.Infof("Starting pipelined")
	logrus.Infof("  Bridge: %s", cfg.BridgeName)
	logrus.Infof("  gRPC Address: %s", cfg.GRPCAddress)
	logrus.Infof("  Dataplane: %s", cfg.Dataplane)

	tables, err := cfg.BuildRegistry()
	if err != nil {
		logrus.Fatalf("Failed to build table registry: %v", err)
	}

	var dp dataplane.Dataplane
	switch cfg.Dataplane {
	case "mock":
		dp = mock.NewMockDataplane()
	case "ovs":
		dp = ovs.NewOVSDataplane(cfg.BridgeName)
	case "vpp":
		vppDP, err := vpp.NewVPPDataplane(cfg.VPPSocket)
		if err != nil {
			logrus.Fatalf("Failed to connect to VPP: %v", err)
		}
		defer vppDP.Close()
		dp = vppDP
	default:
		logrus.Fatalf("Unknown dataplane %q", cfg.Dataplane)
	}

	rules := policydb.NewStaticDB()
	if cfg.StaticRulesPath != "" {
		if err := rules.LoadFile(cfg.StaticRulesPath); err != nil {
			logrus.Fatalf("Failed to load static rules: %v", err)
		}
	}

	metrics := pipelined.NewMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := metrics.Register(registry); err != nil {
		logrus.Fatalf("Failed to register metrics: %v", err)
	}

	store := pipelined.NewRuleStore()
	ctrl, err := pipelined.NewController(store, dp, tables, rules, metrics, pipelined.ControllerConfig{
		DataplaneTimeout: cfg.RequestTimeout,
		RuleConcurrency:  cfg.RuleConcurrency,
		QuotaRedirect:    cfg.QuotaRedirect,
	})
	if err != nil {
		logrus.Fatalf("Failed to create controller: %v", err)
	}
	diag := pipelined.NewDiagnostics(tables, dp, cfg.RequestTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.StaticRulesPath != "" {
		err := pipelined.WatchFile(ctx, cfg.StaticRulesPath, func() {
			if err := rules.LoadFile(cfg.StaticRulesPath); err != nil {
				logrus.Warnf("Static rules reload failed: %v", err)
			}
		})
		if err != nil {
			logrus.Warnf("Static rules watch unavailable: %v", err)
		}
	}

	metricsSrv := &http.Server{
		Addr:    cfg.MetricsAddress,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	go func() {
		logrus.Infof("Metrics listening on %s", cfg.MetricsAddress)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Errorf("Metrics server error: %v", err)
		}
	}()

	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		logrus.Fatalf("Failed to listen on gRPC address: %v", err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterPipelinedServer(grpcServer, pipelined.NewGRPCServer(ctrl, diag))
	reflection.Register(grpcServer)

	go func() {
		logrus.Infof("gRPC server listening on %s", cfg.GRPCAddress)
		if err := grpcServer.Serve(lis); err != nil {
			logrus.Errorf("gRPC server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	logrus.Info("pipelined ready")

	<-sigCh
	logrus.Info("Shutting down...")
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer shutdownCancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	cancel()
}
