package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// handleGreet writes a greeting to the sink.
func (s *Server) handleGreet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultText("error: no arguments provided"), nil
	}

	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultText("error: missing or invalid 'name' parameter"), nil
	}

	s.svc.Greet(name)
	return mcp.NewToolResultText("ok"), nil
}

// binaryHandler returns the tool handler for the named two-operand operation.
func (s *Server) binaryHandler(name string) server.ToolHandlerFunc {
	op, ok := arith.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("mcpserver: unknown operation %q", name))
	}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		if args == nil {
			return mcp.NewToolResultText("error: no arguments provided"), nil
		}

		a, err := int32Arg(args, "a")
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
		}
		b, err := int32Arg(args, "b")
		if err != nil {
			return mcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
		}

		result := op(s.svc, a, b)
		logger.Debug("tool %s(%d, %d) = %d", name, a, b, result)
		return mcp.NewToolResultText(strconv.FormatInt(int64(result), 10)), nil
	}
}

// int32Arg extracts an integral int32 argument. JSON numbers arrive as float64.
func int32Arg(args map[string]any, key string) (int32, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing '%s' parameter", key)
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int32:
		return v, nil
	case int64:
		f = float64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("'%s' must be an integer", key)
		}
		f = float64(n)
	default:
		return 0, fmt.Errorf("'%s' must be a number", key)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("'%s' must be an integer", key)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("'%s' is out of 32-bit range", key)
	}
	return int32(f), nil
}
