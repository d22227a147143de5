// Package server implements an MCP (Model Context Protocol) server for 2D
// coordinate conversion and linear transforms.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - coords_convert: Convert between cartesian, polar and pair forms
//   - coords_transform: Apply a 2x2 matrix
//   - coords_rotate: Rotate about the origin
//   - coords_plot: Render points as a PNG
//
// Points are passed as {"x":..,"y":..} (cartesian), {"r":..,"theta":..}
// (polar) or [x, y] (pair). Results carry the point in the same shape plus a
// text rendering. When a result has a NaN or infinite component, such as the
// polar angle of the origin, only the text form is returned.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32602 for malformed or incomplete arguments, -32000 for other
//     tool failures, or the standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Every tool call is counted in the coords_tool_calls_total metric. Names
// outside the tool list share the "unknown" label.
//
// # Usage
//
//	srv := server.New(server.Options{Arctan: coords.ArctanSingle})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
