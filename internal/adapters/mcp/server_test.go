package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soleret/hamming"
	"github.com/soleret/hamming/pkg/adapters/memory"
	"github.com/soleret/hamming/pkg/index"
)

func newTestServer(t *testing.T) (*Server, *index.Index) {
	t.Helper()
	ix := index.New(memory.NewStore())
	return NewServer(ix), ix
}

func TestHandleBitDistance(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.handleBitDistance(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"a_hex": "0101",
		"b_hex": "03ff",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Distance)
}

func TestHandleBitDistance_Errors(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleBitDistance(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"a_hex": "zz",
		"b_hex": "01",
	})
	assert.ErrorContains(t, err, "a_hex")

	_, err = s.handleBitDistance(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"a_hex": "01",
		"b_hex": "0101",
	})
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch)
}

func TestHandleTextDistance(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.handleTextDistance(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"a": "Cat",
		"b": "Hat",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Distance)
}

func TestHandleTextDistance_LengthMismatch(t *testing.T) {
	s, _ := newTestServer(t)

	_, err := s.handleTextDistance(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"a": "ab",
		"b": "abc",
	})
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch)
}

func TestHandleSearchFingerprints(t *testing.T) {
	s, ix := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, ix.Add(ctx, "near", []byte{0x01}))
	require.NoError(t, ix.Add(ctx, "far", []byte{0xFF}))

	resp, err := s.handleSearchFingerprints(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"vector_hex": "00",
		"limit":      float64(1), // JSON numbers arrive as float64
	})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "near", resp.Matches[0].Name)
	assert.Equal(t, 1, resp.Matches[0].Distance)
	assert.Equal(t, 2, resp.Scanned)
}
