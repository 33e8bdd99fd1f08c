package dto

import "github.com/spec-kit/support-mesh/internal/tool"

// InvokeToolRequest is the body of POST /tools/call.
type InvokeToolRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ToolListResponse is the body of POST /tools/list.
type ToolListResponse struct {
	Tools []tool.Definition `json:"tools"`
}

// InvokeToolResponse wraps a successful tool result.
type InvokeToolResponse struct {
	Result any `json:"result"`
}
