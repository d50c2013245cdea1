package converter

import (
	"testing"

	"github.com/couchcryptid/fdsn-sourceid/internal/sourceid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(network string) sourceid.Result {
	return sourceid.Result{
		SID:  sourceid.SourceID{Network: network},
		NSLC: &sourceid.NSLC{Network: network},
	}
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", testResult("A"))
	c.put("b", testResult("B"))
	_, _ = c.get("a") // a is now most recent
	c.put("c", testResult("C"))

	_, ok := c.get("b")
	assert.False(t, ok, "b should have been evicted")

	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", testResult("A"))
	c.put("a", testResult("Z"))

	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, "Z", got.SID.Network)
	assert.Equal(t, 1, c.len())
}

func TestLRUCache_ReturnsCopies(t *testing.T) {
	c := newLRUCache(1)
	c.put("a", testResult("A"))

	got, ok := c.get("a")
	require.True(t, ok)
	got.NSLC.Network = "XX"

	again, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, "A", again.NSLC.Network)
}
