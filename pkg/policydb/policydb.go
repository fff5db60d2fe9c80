// Package policydb holds the static rule definitions referenced by id in
// activation requests. Rules load from a YAML file and can be swapped
// atomically when the file changes.
package policydb

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/pipelined"
)

type ruleFile struct {
	StaticRules []ruleSpec `yaml:"static_rules"`
}

type ruleSpec struct {
	ID          string     `yaml:"id"`
	Priority    uint32     `yaml:"priority"`
	HardTimeout uint32     `yaml:"hard_timeout"`
	Flows       []flowSpec `yaml:"flows"`
	Redirect    *redirSpec `yaml:"redirect"`
}

type flowSpec struct {
	Direction string `yaml:"direction"`
	IPv4Src   string `yaml:"ipv4_src"`
	IPv4Dst   string `yaml:"ipv4_dst"`
	IPProto   uint8  `yaml:"ip_proto"`
	TCPSrc    uint16 `yaml:"tcp_src"`
	TCPDst    uint16 `yaml:"tcp_dst"`
	UDPSrc    uint16 `yaml:"udp_src"`
	UDPDst    uint16 `yaml:"udp_dst"`
	Action    string `yaml:"action"`
}

type redirSpec struct {
	AddressType   string `yaml:"address_type"`
	ServerAddress string `yaml:"server_address"`
}

// StaticDB is an in-memory id-to-rule index. It satisfies the controller's
// resolver interface; lookups hand out copies so callers can never mutate
// the loaded set.
type StaticDB struct {
	mu    sync.RWMutex
	rules map[string]*pipelined.PolicyRule
	log   *logrus.Entry
}

func NewStaticDB() *StaticDB {
	return &StaticDB{
		rules: make(map[string]*pipelined.PolicyRule),
		log:   logrus.WithField("component", "policydb"),
	}
}

// LoadFile replaces the rule set with the file's contents. A file that
// fails to parse or validate leaves the current set untouched.
func (db *StaticDB) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file: %w", err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse rules file %s: %w", path, err)
	}

	rules := make(map[string]*pipelined.PolicyRule, len(f.StaticRules))
	for _, spec := range f.StaticRules {
		rule, err := spec.toRule()
		if err != nil {
			return fmt.Errorf("rule %q: %w", spec.ID, err)
		}
		if _, dup := rules[rule.ID]; dup {
			return fmt.Errorf("duplicate rule id %q", rule.ID)
		}
		rules[rule.ID] = rule
	}

	db.mu.Lock()
	db.rules = rules
	db.mu.Unlock()

	db.log.WithFields(logrus.Fields{
		"path":  path,
		"rules": len(rules),
	}).Info("static rules loaded")
	return nil
}

// ResolveRule returns a copy of the named rule.
func (db *StaticDB) ResolveRule(id string) (*pipelined.PolicyRule, bool) {
	db.mu.RLock()
	rule, ok := db.rules[id]
	db.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return rule.Clone(), true
}

// Set installs rules directly, bypassing the file path.
func (db *StaticDB) Set(rules ...*pipelined.PolicyRule) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, r := range rules {
		db.rules[r.ID] = r.Clone()
	}
}

// Count reports how many rules are loaded.
func (db *StaticDB) Count() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.rules)
}

func (s ruleSpec) toRule() (*pipelined.PolicyRule, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("missing id")
	}

	rule := &pipelined.PolicyRule{
		ID:          s.ID,
		Priority:    s.Priority,
		HardTimeout: s.HardTimeout,
	}

	for i, fs := range s.Flows {
		dir, err := parseDirection(fs.Direction)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		action, err := parseAction(fs.Action)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		rule.Flows = append(rule.Flows, pipelined.FlowDescriptor{
			Match: dataplane.Match{
				Direction: dir,
				IPv4Src:   fs.IPv4Src,
				IPv4Dst:   fs.IPv4Dst,
				IPProto:   fs.IPProto,
				TCPSrc:    fs.TCPSrc,
				TCPDst:    fs.TCPDst,
				UDPSrc:    fs.UDPSrc,
				UDPDst:    fs.UDPDst,
			},
			Action: action,
		})
	}

	if s.Redirect != nil {
		at, err := parseAddressType(s.Redirect.AddressType)
		if err != nil {
			return nil, err
		}
		rule.Redirect = &pipelined.Redirect{
			AddressType:   at,
			ServerAddress: s.Redirect.ServerAddress,
		}
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

func parseDirection(s string) (dataplane.Direction, error) {
	switch s {
	case "uplink", "UPLINK", "":
		return dataplane.Uplink, nil
	case "downlink", "DOWNLINK":
		return dataplane.Downlink, nil
	default:
		return dataplane.Uplink, fmt.Errorf("unknown direction %q", s)
	}
}

func parseAction(s string) (dataplane.ActionType, error) {
	switch s {
	case "permit", "PERMIT", "":
		return dataplane.ActionPermit, nil
	case "deny", "DENY", "drop":
		return dataplane.ActionDrop, nil
	default:
		return dataplane.ActionPermit, fmt.Errorf("unknown action %q", s)
	}
}

func parseAddressType(s string) (pipelined.RedirectAddressType, error) {
	switch s {
	case "ipv4", "IPV4", "":
		return pipelined.RedirectIPv4, nil
	case "ipv6", "IPV6":
		return pipelined.RedirectIPv6, nil
	case "url", "URL":
		return pipelined.RedirectURL, nil
	case "sip_uri", "SIP_URI":
		return pipelined.RedirectSIPURI, nil
	default:
		return pipelined.RedirectIPv4, fmt.Errorf("unknown redirect address type %q", s)
	}
}
