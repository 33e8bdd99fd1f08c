package agent

// Skill is one functional capability an agent advertises: text in, text out.
type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	InputModes  []string `json:"inputModes"`
	OutputModes []string `json:"outputModes"`
	Examples    []string `json:"examples"`
}

// Capabilities flags features supported by the agent.
type Capabilities struct {
	Streaming bool `json:"streaming"`
}

// Provider describes the organization hosting the agent.
type Provider struct {
	Organization string `json:"organization"`
	URL          string `json:"url"`
}

// Card is the full metadata record for an agent, served so remote callers can
// discover what the agent does and how to invoke it.
type Card struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	URL                string       `json:"url"`
	Version            string       `json:"version"`
	Skills             []Skill      `json:"skills"`
	DefaultInputModes  []string     `json:"defaultInputModes"`
	DefaultOutputModes []string     `json:"defaultOutputModes"`
	Capabilities       Capabilities `json:"capabilities"`
	Provider           Provider     `json:"provider"`
	DocumentationURL   string       `json:"documentationUrl,omitempty"`
	PreferredTransport string       `json:"preferredTransport,omitempty"`
}
