package pipelined

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsSequentially(t *testing.T) {
	reg := NewTableRegistry(1, 100)

	enforcement, err := reg.Register(AppEnforcement, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), enforcement.MainTable)
	assert.Equal(t, []uint64{100, 101}, enforcement.ScratchTables)

	ueMac, err := reg.Register(AppUEMac, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ueMac.MainTable)
	assert.Equal(t, []uint64{102}, ueMac.ScratchTables)
}

func TestRegisterDuplicateApp(t *testing.T) {
	reg := NewTableRegistry(1, 100)

	_, err := reg.Register(AppEnforcement, 0)
	require.NoError(t, err)
	_, err = reg.Register(AppEnforcement, 0)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestRegisterExplicitOverlap(t *testing.T) {
	reg := NewTableRegistry(1, 100)

	_, err := reg.RegisterExplicit(AppEnforcement, 5, []uint64{20, 21})
	require.NoError(t, err)

	// Claiming an owned main table fails.
	_, err = reg.RegisterExplicit(AppUEMac, 5, nil)
	assert.Equal(t, KindConflict, KindOf(err))

	// Claiming an owned scratch table fails too.
	_, err = reg.RegisterExplicit(AppUEMac, 6, []uint64{21})
	assert.Equal(t, KindConflict, KindOf(err))

	// A self-overlapping claim fails.
	_, err = reg.RegisterExplicit(AppCheckQuota, 7, []uint64{7})
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestAssignmentsAreDisjointAndOwned(t *testing.T) {
	reg := NewTableRegistry(1, 100)
	for _, app := range []string{AppUEMac, AppEnforcement, AppEnforcementStats, AppCheckQuota} {
		_, err := reg.Register(app, 1)
		require.NoError(t, err)
	}

	seen := make(map[uint64]string)
	for _, asg := range reg.Assignments() {
		tables := append([]uint64{asg.MainTable}, asg.ScratchTables...)
		for _, table := range tables {
			other, dup := seen[table]
			require.False(t, dup, "table %d assigned to both %s and %s", table, other, asg.AppName)
			seen[table] = asg.AppName

			owner, ok := reg.OwnerOf(table)
			require.True(t, ok)
			assert.Equal(t, asg.AppName, owner)
		}
	}

	_, ok := reg.OwnerOf(9999)
	assert.False(t, ok)
}

func TestAssignmentsSortedByMainTable(t *testing.T) {
	reg := NewTableRegistry(1, 100)
	_, err := reg.RegisterExplicit(AppCheckQuota, 9, nil)
	require.NoError(t, err)
	_, err = reg.RegisterExplicit(AppEnforcement, 3, nil)
	require.NoError(t, err)

	assignments := reg.Assignments()
	require.Len(t, assignments, 2)
	assert.Equal(t, AppEnforcement, assignments[0].AppName)
	assert.Equal(t, AppCheckQuota, assignments[1].AppName)
}
