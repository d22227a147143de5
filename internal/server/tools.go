package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var kindEnum = []string{KindCartesian, KindPolar, KindPair}

// pointSchema describes a point argument whose shape depends on its kind.
func pointSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description + ` Cartesian: {"x":1,"y":2}. Polar: {"r":1,"theta":0.5}. Pair: [1,2].`,
		"oneOf": []interface{}{
			map[string]interface{}{
				"type":     "object",
				"required": []string{"x", "y"},
				"properties": map[string]interface{}{
					"x": map[string]interface{}{"type": "number"},
					"y": map[string]interface{}{"type": "number"},
				},
			},
			map[string]interface{}{
				"type":     "object",
				"required": []string{"r", "theta"},
				"properties": map[string]interface{}{
					"r":     map[string]interface{}{"type": "number"},
					"theta": map[string]interface{}{"type": "number"},
				},
			},
			map[string]interface{}{
				"type":     "array",
				"items":    map[string]interface{}{"type": "number"},
				"minItems": 2,
				"maxItems": 2,
			},
		},
	}
}

func kindSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        kindEnum,
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "coords_convert",
			Description: "Convert a 2D point between cartesian, polar and pair representations. Polar angles are in radians. With arctan=atan (default) the polar angle is only correct for x > 0; use atan2 for the full circle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"point": pointSchema("Point to convert, in the 'from' representation."),
					"from":  kindSchema("Representation of the input point"),
					"to":    kindSchema("Representation to convert to"),
					"arctan": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"atan", "atan2"},
						"description": "Arctangent used for polar angles. Defaults to the server setting.",
					},
				},
				"required": []string{"point", "from", "to"},
			},
		},
		{
			Name:        "coords_transform",
			Description: "Apply a 2x2 linear map to a point and return it in the same representation. The matrix is row-major: x' = m[0][0]*x + m[0][1]*y, y' = m[1][0]*x + m[1][1]*y.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"point": pointSchema("Point to transform."),
					"kind":  kindSchema("Representation of the point"),
					"matrix": map[string]interface{}{
						"type":        "array",
						"description": "2x2 matrix as [[m00, m01], [m10, m11]]",
						"items": map[string]interface{}{
							"type":     "array",
							"items":    map[string]interface{}{"type": "number"},
							"minItems": 2,
							"maxItems": 2,
						},
						"minItems": 2,
						"maxItems": 2,
					},
				},
				"required": []string{"point", "kind", "matrix"},
			},
		},
		{
			Name:        "coords_rotate",
			Description: "Rotate a point counter-clockwise about the origin. Polar points rotate by adding to their angle directly; other kinds use the rotation matrix.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"point": pointSchema("Point to rotate."),
					"kind":  kindSchema("Representation of the point"),
					"theta": map[string]interface{}{
						"type":        "number",
						"description": "Rotation angle in radians",
					},
				},
				"required": []string{"point", "kind", "theta"},
			},
		},
		{
			Name:        "coords_plot",
			Description: "Render cartesian points on a grid with axes through the origin and return a base64-encoded PNG. Points are coloured by angle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points as [x, y] pairs",
						"items": map[string]interface{}{
							"type":     "array",
							"items":    map[string]interface{}{"type": "number"},
							"minItems": 2,
							"maxItems": 2,
						},
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Image width and height in pixels. Default 256",
						"default":     256,
					},
					"extent": map[string]interface{}{
						"type":        "number",
						"description": "Half-width of the visible area in world units. Default fits all points",
					},
					"grid_step": map[string]interface{}{
						"type":        "number",
						"description": "Spacing of grid lines in world units. Default 1",
						"default":     1,
					},
					"labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw each point's index next to it",
						"default":     false,
					},
				},
				"required": []string{"points"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
