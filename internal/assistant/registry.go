// Package assistant exposes rental operations to an external tool-calling
// agent. Each tool declares a strict input schema and a required permission;
// mutations additionally require explicit confirmation before they execute.
package assistant

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Property is one field of a tool's input schema. Types follow JSON schema
// scalars: string, boolean, integer.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Schema is a closed object schema: unrecognized fields are rejected and
// required fields must be present. Tools trust input that passed validation.
type Schema struct {
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Validate checks args against the schema before dispatch.
func (s Schema) Validate(args map[string]any) error {
	for name := range args {
		if _, ok := s.Properties[name]; !ok {
			return fmt.Errorf("unrecognized field %q", name)
		}
	}
	for _, name := range s.Required {
		if _, ok := args[name]; !ok {
			return fmt.Errorf("missing required field %q", name)
		}
	}
	for name, value := range args {
		prop := s.Properties[name]
		switch prop.Type {
		case "string":
			if _, ok := value.(string); !ok {
				return fmt.Errorf("field %q must be a string", name)
			}
		case "boolean":
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("field %q must be a boolean", name)
			}
		case "integer":
			switch v := value.(type) {
			case int:
			case float64:
				if v != float64(int(v)) {
					return fmt.Errorf("field %q must be an integer", name)
				}
			default:
				return fmt.Errorf("field %q must be an integer", name)
			}
		}
	}
	return nil
}

// ExecuteFunc runs a tool against the caller's hub with validated args.
type ExecuteFunc func(ctx context.Context, hubID uuid.UUID, args map[string]any) (any, error)

type Tool struct {
	Name                 string
	Description          string
	RequiredPermission   string
	RequiresConfirmation bool
	Schema               Schema
	Execute              ExecuteFunc
}

type ResultStatus string

const (
	StatusOK                   ResultStatus = "ok"
	StatusDenied               ResultStatus = "denied"
	StatusConfirmationRequired ResultStatus = "confirmation_required"
	StatusInvalidArgs          ResultStatus = "invalid_args"
	StatusUnknownTool          ResultStatus = "unknown_tool"
	StatusError                ResultStatus = "error"
)

// Result is the outcome of one tool invocation. Anything but StatusOK means no
// side effect took place.
type Result struct {
	Status  ResultStatus `json:"status"`
	Data    any          `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Registry holds the tool set resolved through an explicit name mapping.
type Registry struct {
	tools map[string]*Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

func (r *Registry) Register(t *Tool) {
	r.tools[t.Name] = t
}

func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List returns the registered tools in name order, for advertising the tool
// surface to the host agent.
func (r *Registry) List() []*Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	tools := make([]*Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, r.tools[name])
	}
	return tools
}

func hasPermission(perms []string, required string) bool {
	for _, p := range perms {
		if p == required {
			return true
		}
	}
	return false
}

// Invoke authorizes, validates and runs one tool call. Permission checks come
// first; an unconfirmed mutation stops before any work is done.
func (r *Registry) Invoke(ctx context.Context, hubID uuid.UUID, perms []string, name string, args map[string]any, confirmed bool) Result {
	tool, ok := r.tools[name]
	if !ok {
		return Result{Status: StatusUnknownTool, Message: fmt.Sprintf("unknown tool %q", name)}
	}
	if !hasPermission(perms, tool.RequiredPermission) {
		return Result{Status: StatusDenied, Message: fmt.Sprintf("missing permission %q", tool.RequiredPermission)}
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := tool.Schema.Validate(args); err != nil {
		return Result{Status: StatusInvalidArgs, Message: err.Error()}
	}
	if tool.RequiresConfirmation && !confirmed {
		return Result{Status: StatusConfirmationRequired, Message: fmt.Sprintf("tool %q requires confirmation", name)}
	}
	data, err := tool.Execute(ctx, hubID, args)
	if err != nil {
		return Result{Status: StatusError, Message: err.Error()}
	}
	return Result{Status: StatusOK, Data: data}
}
