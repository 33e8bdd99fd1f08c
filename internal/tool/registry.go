package tool

// Tool names exposed by the registry. The set is fixed at process start;
// there is no dynamic registration.
const (
	NameGetCustomer        = "get_customer"
	NameListCustomers      = "list_customers"
	NameUpdateCustomer     = "update_customer"
	NameCreateTicket       = "create_ticket"
	NameGetCustomerHistory = "get_customer_history"
)

// Argument type identifiers used in schemas.
const (
	TypeInteger = "integer"
	TypeString  = "string"
	TypeObject  = "object"
)

// Property declares the type of a single tool argument.
type Property struct {
	Type    string `json:"type"`
	Default any    `json:"default,omitempty"`
}

// InputSchema is the JSON-schema-shaped argument declaration for one tool.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Definition describes one callable tool: its name, a human-readable
// description, and its argument schema. Immutable after construction.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"input_schema"`
}

// Registry is the fixed, ordered set of tool definitions.
type Registry struct {
	defs   []Definition
	byName map[string]Definition
}

// NewRegistry builds the registry with the complete tool set.
func NewRegistry() *Registry {
	defs := []Definition{
		{
			Name:        NameGetCustomer,
			Description: "Retrieve a single customer using its ID.",
			InputSchema: InputSchema{
				Type:       TypeObject,
				Properties: map[string]Property{"customer_id": {Type: TypeInteger}},
				Required:   []string{"customer_id"},
			},
		},
		{
			Name:        NameListCustomers,
			Description: "Return a list of customers, optionally filtered by status.",
			InputSchema: InputSchema{
				Type: TypeObject,
				Properties: map[string]Property{
					"status": {Type: TypeString},
					"limit":  {Type: TypeInteger, Default: DefaultListLimit},
				},
			},
		},
		{
			Name:        NameUpdateCustomer,
			Description: "Modify customer fields such as name, email, or status.",
			InputSchema: InputSchema{
				Type: TypeObject,
				Properties: map[string]Property{
					"customer_id": {Type: TypeInteger},
					"data":        {Type: TypeObject},
				},
				Required: []string{"customer_id", "data"},
			},
		},
		{
			Name:        NameCreateTicket,
			Description: "Open a new support ticket for a customer.",
			InputSchema: InputSchema{
				Type: TypeObject,
				Properties: map[string]Property{
					"customer_id": {Type: TypeInteger},
					"issue":       {Type: TypeString},
					"priority":    {Type: TypeString},
				},
				Required: []string{"customer_id", "issue", "priority"},
			},
		},
		{
			Name:        NameGetCustomerHistory,
			Description: "Retrieve the interaction history for a customer.",
			InputSchema: InputSchema{
				Type:       TypeObject,
				Properties: map[string]Property{"customer_id": {Type: TypeInteger}},
				Required:   []string{"customer_id"},
			},
		},
	}

	byName := make(map[string]Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}
	return &Registry{defs: defs, byName: byName}
}

// List returns the tool definitions in registration order.
func (r *Registry) List() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Lookup finds a definition by tool name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}
