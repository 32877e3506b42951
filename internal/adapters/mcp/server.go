// Package mcp exposes the hamming library as an MCP server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/soleret/hamming"
	"github.com/soleret/hamming/pkg/fingerprint"
	"github.com/soleret/hamming/pkg/index"
)

// DistanceResponse is the structured payload of the distance tools.
type DistanceResponse struct {
	Distance int `json:"distance" jsonschema_description:"Number of differing positions"`
}

// SearchResponse is the structured payload of search_fingerprints.
type SearchResponse struct {
	Matches []index.Match `json:"matches" jsonschema_description:"Nearest fingerprints, best first"`
	Scanned int           `json:"scanned" jsonschema_description:"Number of fingerprints examined"`
	Skipped int           `json:"skipped" jsonschema_description:"Fingerprints whose width differs from the probe"`
}

// Server wraps the fingerprint index and exposes it as an MCP Server.
type Server struct {
	index     *index.Index
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(ix *index.Index) *Server {
	s := &Server{
		index:     ix,
		mcpServer: server.NewMCPServer("hamming-mcp", strings.TrimSpace(hamming.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: bit_distance
	bitTool := mcp.NewTool("bit_distance",
		mcp.WithDescription("Compute the bitwise Hamming distance between two hex-encoded byte strings of equal length."),
		mcp.WithString("a_hex", mcp.Required(), mcp.Description("First operand, hex encoded")),
		mcp.WithString("b_hex", mcp.Required(), mcp.Description("Second operand, hex encoded")),
		mcp.WithOutputSchema[DistanceResponse](),
	)
	s.mcpServer.AddTool(bitTool, mcp.NewStructuredToolHandler(s.handleBitDistance))

	// TOOL: text_distance
	textTool := mcp.NewTool("text_distance",
		mcp.WithDescription("Count the character positions at which two equal-length strings differ."),
		mcp.WithString("a", mcp.Required(), mcp.Description("First string")),
		mcp.WithString("b", mcp.Required(), mcp.Description("Second string")),
		mcp.WithOutputSchema[DistanceResponse](),
	)
	s.mcpServer.AddTool(textTool, mcp.NewStructuredToolHandler(s.handleTextDistance))

	// TOOL: search_fingerprints
	searchTool := mcp.NewTool("search_fingerprints",
		mcp.WithDescription("Find the stored fingerprints nearest to a probe vector by bitwise Hamming distance."),
		mcp.WithString("vector_hex", mcp.Required(), mcp.Description("Probe vector, hex encoded")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of matches to return (omit or 0 for all)")),
		mcp.WithOutputSchema[SearchResponse](),
	)
	s.mcpServer.AddTool(searchTool, mcp.NewStructuredToolHandler(s.handleSearchFingerprints))

	// TOOL: list_fingerprints
	s.mcpServer.AddTool(mcp.NewTool("list_fingerprints",
		mcp.WithDescription("List the stored fingerprints with their hex vectors."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := s.fingerprintEntries(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(entries)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

type bitDistanceArgs struct {
	AHex string `mapstructure:"a_hex"`
	BHex string `mapstructure:"b_hex"`
}

func (s *Server) handleBitDistance(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DistanceResponse, error) {
	var in bitDistanceArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return DistanceResponse{}, fmt.Errorf("failed to decode arguments: %w", err)
	}

	a, err := fingerprint.DecodeVector(in.AHex)
	if err != nil {
		return DistanceResponse{}, fmt.Errorf("argument a_hex: %w", err)
	}
	b, err := fingerprint.DecodeVector(in.BHex)
	if err != nil {
		return DistanceResponse{}, fmt.Errorf("argument b_hex: %w", err)
	}

	distance, err := hamming.Bytes(a, b)
	if err != nil {
		return DistanceResponse{}, err
	}
	return DistanceResponse{Distance: distance}, nil
}

type textDistanceArgs struct {
	A string `mapstructure:"a"`
	B string `mapstructure:"b"`
}

func (s *Server) handleTextDistance(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DistanceResponse, error) {
	var in textDistanceArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return DistanceResponse{}, fmt.Errorf("failed to decode arguments: %w", err)
	}

	distance, err := hamming.Strings(in.A, in.B)
	if err != nil {
		return DistanceResponse{}, err
	}
	return DistanceResponse{Distance: distance}, nil
}

type searchArgs struct {
	VectorHex string `mapstructure:"vector_hex"`
	Limit     int    `mapstructure:"limit"`
}

func (s *Server) handleSearchFingerprints(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SearchResponse, error) {
	var in searchArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return SearchResponse{}, fmt.Errorf("failed to decode arguments: %w", err)
	}

	probe, err := fingerprint.DecodeVector(in.VectorHex)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("argument vector_hex: %w", err)
	}

	res, err := s.index.Search(ctx, probe, in.Limit)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("search failed: %w", err)
	}

	return SearchResponse{
		Matches: res.Matches,
		Scanned: res.Scanned,
		Skipped: res.Skipped,
	}, nil
}

type fingerprintEntry struct {
	Name   string `json:"name"`
	Vector string `json:"vector"`
}

func (s *Server) fingerprintEntries(ctx context.Context) ([]fingerprintEntry, error) {
	all, err := s.index.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fingerprints: %w", err)
	}

	entries := make([]fingerprintEntry, 0, len(all))
	for _, fp := range all {
		entries = append(entries, fingerprintEntry{Name: fp.Name, Vector: fp.Hex()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (s *Server) registerResources() {
	// EXPOSE: hamming://fingerprints
	s.mcpServer.AddResource(mcp.NewResource("hamming://fingerprints", "Stored Fingerprints",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := s.fingerprintEntries(ctx)
		if err != nil {
			return nil, err
		}
		jsonBytes, _ := json.Marshal(entries)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "hamming://fingerprints",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
