package statecache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Accessors(t *testing.T) {
	s := Snapshot{data: map[PropertyKey]string{
		{ResourceID: "vm_1", Name: "ip"}:    "10.0.0.1",
		{ResourceID: "vm_1", Name: "state"}: "started",
		{ResourceID: "vm_2", Name: "state"}: "stopped",
	}}

	assert.True(t, s.ContainsProperty("vm_1", "ip"))
	assert.False(t, s.ContainsProperty("vm_1", "port"))
	assert.False(t, s.ContainsProperty("vm_3", "ip"))

	value, ok := s.GetProperty("vm_2", "state")
	require.True(t, ok)
	assert.Equal(t, "stopped", value)

	_, ok = s.GetProperty("vm_2", "ip")
	assert.False(t, ok)

	assert.Equal(t, 3, s.Len())
}

func TestSnapshot_ResourceProperties(t *testing.T) {
	s := Snapshot{data: map[PropertyKey]string{
		{ResourceID: "vm_1", Name: "ip"}:    "10.0.0.1",
		{ResourceID: "vm_1", Name: "state"}: "started",
		{ResourceID: "vm_2", Name: "state"}: "stopped",
	}}

	props := s.ResourceProperties("vm_1")
	assert.Equal(t, map[string]string{
		"ip":    "10.0.0.1",
		"state": "started",
	}, props)

	// Unknown resource yields an empty, non-nil map.
	unknown := s.ResourceProperties("vm_3")
	require.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestSnapshot_ImmutableAfterPut(t *testing.T) {
	c := New(Options{Name: "test_snapshot_immutable"})
	defer c.Close()

	c.Put("vm_1", "ip", "10.0.0.1")
	before := c.Snapshot()

	c.Put("vm_1", "ip", "10.0.0.2")
	c.Put("vm_2", "state", "started")

	value, ok := before.GetProperty("vm_1", "ip")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", value)
	assert.False(t, before.ContainsProperty("vm_2", "state"))
	assert.Equal(t, 1, before.Len())

	after := c.Snapshot()
	value, ok = after.GetProperty("vm_1", "ip")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.2", value)
}

func TestSnapshot_ZeroValue(t *testing.T) {
	var s Snapshot

	assert.False(t, s.ContainsProperty("vm_1", "ip"))
	assert.Empty(t, s.ResourceProperties("vm_1"))
	assert.Zero(t, s.Len())
}
