package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var binaryToolDescriptions = map[string]string{
	"add": "Add two 32-bit integers (wraps on overflow)",
	"sub": "Subtract b from a as 32-bit integers (wraps on overflow)",
	"mul": "Multiply two 32-bit integers (wraps on overflow)",
	"div": "Divide a by b truncating toward zero; returns 0 and logs a warning when b is 0",
	"mod": "Remainder of a divided by b with the sign of a; returns 0 and logs a warning when b is 0",
}

// binaryToolOrder fixes registration order so tools/list output is stable.
var binaryToolOrder = []string{"add", "sub", "mul", "div", "mod"}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("greet",
			mcp.WithDescription("Write \"Hello, {name}!\" to the log sink"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Name to greet"),
			),
		),
		s.handleGreet,
	)

	for _, name := range binaryToolOrder {
		s.mcpServer.AddTool(
			mcp.NewTool(name,
				mcp.WithDescription(binaryToolDescriptions[name]),
				mcp.WithNumber("a",
					mcp.Required(),
					mcp.Description("Left operand, a 32-bit signed integer"),
				),
				mcp.WithNumber("b",
					mcp.Required(),
					mcp.Description("Right operand, a 32-bit signed integer"),
				),
			),
			s.binaryHandler(name),
		)
	}
}
