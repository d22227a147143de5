package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/ironsheep/coord-tools/internal/coords"
	"github.com/ironsheep/coord-tools/internal/plot"
)

// Point kinds accepted by the tools.
const (
	KindCartesian = "cartesian"
	KindPolar     = "polar"
	KindPair      = "pair"
)

var (
	// ErrInvalidParams marks tool arguments that are malformed or incomplete.
	// handleToolsCall reports these as JSON-RPC -32602.
	ErrInvalidParams = errors.New("invalid params")

	// ErrUnknownKind is returned for a kind outside cartesian, polar and pair.
	ErrUnknownKind = errors.New("unknown point kind")
)

// unknownToolLabel is the metrics label for names outside the tool list.
const unknownToolLabel = "unknown"

// toolNames holds the names GetToolDefinitions advertises.
var toolNames = func() map[string]bool {
	names := make(map[string]bool)
	for _, t := range GetToolDefinitions() {
		names[t.Name] = true
	}
	return names
}()

// invalidParams wraps a message in ErrInvalidParams.
func invalidParams(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}

// toolLabel bounds the metric label set to the known tools.
func toolLabel(name string) string {
	if toolNames[name] {
		return name
	}
	return unknownToolLabel
}

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "coords_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Argument errors return code -32602; other tool execution errors return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	s.metrics.ObserveCall(toolLabel(params.Name), err)
	if err != nil {
		s.logger.Debug("tool failed", zap.String("tool", params.Name), zap.Error(err))
		if errors.Is(err, ErrInvalidParams) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "coords_convert":
		return s.handleConvert(args)
	case "coords_transform":
		return s.handleTransform(args)
	case "coords_rotate":
		return s.handleRotate(args)
	case "coords_plot":
		return s.handlePlot(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// PointResult is returned by the point tools. Point is omitted when a
// coordinate is NaN or infinite, which JSON cannot carry; Text always has
// the value.
type PointResult struct {
	Kind  string      `json:"kind"`
	Point interface{} `json:"point,omitempty"`
	Text  string      `json:"text"`
}

func newPointResult(kind string, p coords.Coordinates) *PointResult {
	r := &PointResult{Kind: kind, Text: fmt.Sprint(p)}
	if representable(p) {
		r.Point = p
	}
	return r
}

// representable reports whether every stored component of p is finite.
func representable(p coords.Coordinates) bool {
	var vals []float64
	switch v := p.(type) {
	case coords.CartesianPoint:
		vals = []float64{v.X, v.Y}
	case coords.PolarPoint:
		vals = []float64{v.R, v.Theta}
	case coords.PairPoint:
		vals = v[:]
	}
	for _, f := range vals {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// unknownKind reports kind as both invalid params and ErrUnknownKind.
func unknownKind(kind string) error {
	return fmt.Errorf("%w: %w: %q", ErrInvalidParams, ErrUnknownKind, kind)
}

// decodeArgs unmarshals tool arguments, reporting failures as invalid params.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return invalidParams("%v", err)
	}
	return nil
}

// decodePoint parses raw in the representation named by kind. Every
// component must be present.
func decodePoint(kind string, raw json.RawMessage) (coords.Coordinates, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, invalidParams("point is required")
	}

	switch kind {
	case KindCartesian:
		var v struct{ X, Y *float64 }
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, invalidParams("invalid cartesian point: %v", err)
		}
		if v.X == nil || v.Y == nil {
			return nil, invalidParams("cartesian point needs x and y")
		}
		return coords.Cartesian(*v.X, *v.Y), nil
	case KindPolar:
		var v struct{ R, Theta *float64 }
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, invalidParams("invalid polar point: %v", err)
		}
		if v.R == nil || v.Theta == nil {
			return nil, invalidParams("polar point needs r and theta")
		}
		return coords.Polar(*v.R, *v.Theta), nil
	case KindPair:
		var v []float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, invalidParams("invalid pair point: %v", err)
		}
		return pairOf(v, "pair point")
	default:
		return nil, unknownKind(kind)
	}
}

// pairOf requires exactly two values.
func pairOf(v []float64, what string) (coords.PairPoint, error) {
	if len(v) != 2 {
		return coords.PairPoint{}, invalidParams("%s needs 2 values, got %d", what, len(v))
	}
	return coords.Pair(v[0], v[1]), nil
}

// decodeMatrix requires exactly two rows of two values.
func decodeMatrix(rows [][]float64) (coords.Matrix, error) {
	var m coords.Matrix
	if rows == nil {
		return m, invalidParams("matrix is required")
	}
	if len(rows) != 2 {
		return m, invalidParams("matrix needs 2 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 2 {
			return m, invalidParams("matrix row %d needs 2 values, got %d", i, len(row))
		}
		m[i] = [2]float64{row[0], row[1]}
	}
	return m, nil
}

// === Conversion ===

type convertArgs struct {
	Point  json.RawMessage `json:"point"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Arctan string          `json:"arctan"`
}

func (s *Server) handleConvert(args json.RawMessage) (interface{}, error) {
	var a convertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	p, err := decodePoint(a.From, a.Point)
	if err != nil {
		return nil, err
	}
	mode := s.arctan
	if a.Arctan != "" {
		if mode, err = coords.ParseArctan(a.Arctan); err != nil {
			return nil, invalidParams("%v", err)
		}
	}

	c := p.ToCartesian()
	switch a.To {
	case KindCartesian:
		return newPointResult(a.To, c), nil
	case KindPolar:
		return newPointResult(a.To, mode.Polar(c)), nil
	case KindPair:
		return newPointResult(a.To, coords.FromCartesian[coords.PairPoint](c)), nil
	default:
		return nil, unknownKind(a.To)
	}
}

// === Transforms ===

type transformArgs struct {
	Point  json.RawMessage `json:"point"`
	Kind   string          `json:"kind"`
	Matrix [][]float64     `json:"matrix"`
}

func (s *Server) handleTransform(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	m, err := decodeMatrix(a.Matrix)
	if err != nil {
		return nil, err
	}
	p, err := decodePoint(a.Kind, a.Point)
	if err != nil {
		return nil, err
	}

	switch v := p.(type) {
	case coords.CartesianPoint:
		return newPointResult(a.Kind, coords.Transform(v, m)), nil
	case coords.PairPoint:
		return newPointResult(a.Kind, coords.Transform(v, m)), nil
	case coords.PolarPoint:
		if s.arctan == coords.ArctanSingle {
			return newPointResult(a.Kind, coords.Transform(v, m)), nil
		}
		return newPointResult(a.Kind, s.arctan.TransformPolar(v, m)), nil
	}
	return nil, unknownKind(a.Kind)
}

type rotateArgs struct {
	Point json.RawMessage `json:"point"`
	Kind  string          `json:"kind"`
	Theta *float64        `json:"theta"`
}

func (s *Server) handleRotate(args json.RawMessage) (interface{}, error) {
	var a rotateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Theta == nil {
		return nil, invalidParams("theta is required")
	}
	p, err := decodePoint(a.Kind, a.Point)
	if err != nil {
		return nil, err
	}
	theta := *a.Theta

	switch v := p.(type) {
	case coords.CartesianPoint:
		return newPointResult(a.Kind, coords.Rotate(v, theta)), nil
	case coords.PairPoint:
		return newPointResult(a.Kind, coords.Rotate(v, theta)), nil
	case coords.PolarPoint:
		return newPointResult(a.Kind, coords.Rotate(v, theta)), nil
	}
	return nil, unknownKind(a.Kind)
}

// === Plotting ===

type plotArgs struct {
	Points   [][]float64 `json:"points"`
	Size     int         `json:"size"`
	Extent   float64     `json:"extent"`
	GridStep float64     `json:"grid_step"`
	Labels   bool        `json:"labels"`
}

func (s *Server) handlePlot(args json.RawMessage) (interface{}, error) {
	var a plotArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = plot.DefaultSize
	}

	points := make([]coords.CartesianPoint, len(a.Points))
	for i, raw := range a.Points {
		p, err := pairOf(raw, fmt.Sprintf("points[%d]", i))
		if err != nil {
			return nil, err
		}
		points[i] = p.ToCartesian()
	}
	return plot.Render(points, plot.Options{
		Size:     a.Size,
		Extent:   a.Extent,
		GridStep: a.GridStep,
		Labels:   a.Labels,
	})
}
