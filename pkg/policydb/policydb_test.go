package policydb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvc0461082002/magma/pkg/dataplane"
	"github.com/gvc0461082002/magma/pkg/pipelined"
)

const rulesYAML = `
static_rules:
  - id: rule1
    priority: 100
    flows:
      - direction: uplink
        action: permit
      - direction: downlink
        action: permit
  - id: rule2
    priority: 200
    hard_timeout: 60
    flows:
      - direction: uplink
        ip_proto: 6
        tcp_dst: 80
        action: deny
  - id: redirect_rule
    priority: 50
    redirect:
      address_type: url
      server_address: http://captive.example
`

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	db := NewStaticDB()
	require.NoError(t, db.LoadFile(writeRules(t, rulesYAML)))
	assert.Equal(t, 3, db.Count())

	rule, ok := db.ResolveRule("rule1")
	require.True(t, ok)
	assert.Equal(t, uint32(100), rule.Priority)
	require.Len(t, rule.Flows, 2)
	assert.Equal(t, dataplane.Uplink, rule.Flows[0].Match.Direction)
	assert.Equal(t, dataplane.ActionPermit, rule.Flows[0].Action)

	rule, ok = db.ResolveRule("rule2")
	require.True(t, ok)
	assert.Equal(t, uint32(60), rule.HardTimeout)
	assert.Equal(t, uint8(6), rule.Flows[0].Match.IPProto)
	assert.Equal(t, uint16(80), rule.Flows[0].Match.TCPDst)
	assert.Equal(t, dataplane.ActionDrop, rule.Flows[0].Action)

	rule, ok = db.ResolveRule("redirect_rule")
	require.True(t, ok)
	require.NotNil(t, rule.Redirect)
	assert.Equal(t, pipelined.RedirectURL, rule.Redirect.AddressType)
	assert.Equal(t, "http://captive.example", rule.Redirect.ServerAddress)
}

func TestResolveUnknownRule(t *testing.T) {
	db := NewStaticDB()
	_, ok := db.ResolveRule("absent")
	assert.False(t, ok)
}

func TestResolveHandsOutCopies(t *testing.T) {
	db := NewStaticDB()
	require.NoError(t, db.LoadFile(writeRules(t, rulesYAML)))

	first, ok := db.ResolveRule("rule1")
	require.True(t, ok)
	first.Priority = 9999
	first.Flows[0].Action = dataplane.ActionDrop

	second, ok := db.ResolveRule("rule1")
	require.True(t, ok)
	assert.Equal(t, uint32(100), second.Priority)
	assert.Equal(t, dataplane.ActionPermit, second.Flows[0].Action)
}

func TestLoadFileBadContentKeepsCurrentSet(t *testing.T) {
	db := NewStaticDB()
	require.NoError(t, db.LoadFile(writeRules(t, rulesYAML)))

	for _, bad := range []string{
		"static_rules: [{id: \"\"}]",
		"static_rules: [{id: dup}, {id: dup}]",
		"static_rules: [{id: nodirections, flows: [{direction: sideways}]}]",
		"static_rules: [{id: noflows}]",
		"not yaml: [",
	} {
		err := db.LoadFile(writeRules(t, bad))
		assert.Error(t, err, "content %q", bad)
		assert.Equal(t, 3, db.Count())
	}
}

func TestLoadFileMissing(t *testing.T) {
	db := NewStaticDB()
	assert.Error(t, db.LoadFile(filepath.Join(t.TempDir(), "absent.yml")))
}
