package pipelined

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// AppConfig declares one pipeline application in the table layout. A zero
// MainTable means "assign automatically in declaration order".
type AppConfig struct {
	Name          string   `yaml:"name"`
	MainTable     uint64   `yaml:"main_table,omitempty"`
	ScratchTables int      `yaml:"scratch_tables,omitempty"`
	Scratch       []uint64 `yaml:"scratch,omitempty"`
}

// Config is the pipelined service configuration, loaded once at startup.
type Config struct {
	BridgeName        string        `yaml:"bridge_name"`
	GRPCAddress       string        `yaml:"grpc_address"`
	MetricsAddress    string        `yaml:"metrics_address"`
	Dataplane         string        `yaml:"dataplane"` // mock, ovs or vpp
	VPPSocket         string        `yaml:"vpp_socket"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	RuleConcurrency   int           `yaml:"rule_concurrency"`
	MainTableStart    uint64        `yaml:"main_table_start"`
	ScratchTableStart uint64        `yaml:"scratch_table_start"`
	QuotaRedirect     string        `yaml:"quota_redirect"`
	StaticRulesPath   string        `yaml:"static_rules_path"`
	Apps              []AppConfig   `yaml:"apps"`
}

// DefaultConfig returns the layout the service runs with when no config
// file is given: the standard five-application pipeline on an OVS bridge.
func DefaultConfig() Config {
	return Config{
		BridgeName:        "gtp_br0",
		GRPCAddress:       ":50063",
		MetricsAddress:    ":9100",
		Dataplane:         "ovs",
		VPPSocket:         "/run/vpp/api.sock",
		RequestTimeout:    3 * time.Second,
		RuleConcurrency:   4,
		MainTableStart:    1,
		ScratchTableStart: 100,
		QuotaRedirect:     "http://192.168.128.1/quota",
		Apps: []AppConfig{
			{Name: AppEnforcement, ScratchTables: 1},
			{Name: AppEnforcementStats, ScratchTables: 1},
			{Name: AppUEMac},
			{Name: AppCheckQuota, ScratchTables: 1},
			{Name: AppQoS, ScratchTables: 1},
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Dataplane {
	case "mock", "ovs", "vpp":
	default:
		return newError(KindValidation, "unknown dataplane %q", c.Dataplane)
	}
	if c.RequestTimeout <= 0 {
		return newError(KindValidation, "request_timeout must be positive")
	}
	if c.RuleConcurrency <= 0 {
		return newError(KindValidation, "rule_concurrency must be positive")
	}
	if len(c.Apps) == 0 {
		return newError(KindValidation, "no pipeline apps configured")
	}
	seen := make(map[string]bool, len(c.Apps))
	for _, app := range c.Apps {
		if app.Name == "" {
			return newError(KindValidation, "app with empty name")
		}
		if seen[app.Name] {
			return newError(KindConflict, "app %s configured twice", app.Name)
		}
		seen[app.Name] = true
	}
	return nil
}

// BuildRegistry constructs the table registry from the configured layout.
// Collisions between explicit assignments are fatal here, at startup.
func (c *Config) BuildRegistry() (*TableRegistry, error) {
	registry := NewTableRegistry(c.MainTableStart, c.ScratchTableStart)
	for _, app := range c.Apps {
		var err error
		if app.MainTable != 0 || len(app.Scratch) > 0 {
			_, err = registry.RegisterExplicit(app.Name, app.MainTable, app.Scratch)
		} else {
			_, err = registry.Register(app.Name, app.ScratchTables)
		}
		if err != nil {
			return nil, fmt.Errorf("table layout: %w", err)
		}
	}
	return registry, nil
}

// WatchFile invokes onChange whenever path is written or replaced, until
// ctx is cancelled. Used to hot-reload the static rule database.
func WatchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	log := logrus.WithField("component", "config_watcher")
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					log.WithField("path", event.Name).Info("file changed, reloading")
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Warn("watch error")
			}
		}
	}()
	return nil
}
