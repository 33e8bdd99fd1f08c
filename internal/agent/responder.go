package agent

import (
	"fmt"
	"strings"
)

// Responder is a canned text-reply generator behind one agent identity. No
// model calls, no state: pure string templating over the incoming text.
type Responder interface {
	ID() string
	Card() Card
	Respond(text string) string
}

// Registry holds the built-in responders keyed by agent id.
type Registry struct {
	agents map[string]Responder
	order  []string
}

// NewRegistry registers the built-in payments and support agents.
func NewRegistry(baseURL string) *Registry {
	r := &Registry{agents: make(map[string]Responder)}
	for _, a := range []Responder{
		&paymentAgent{baseURL: baseURL},
		&supportAgent{baseURL: baseURL},
	} {
		r.agents[a.ID()] = a
		r.order = append(r.order, a.ID())
	}
	return r
}

// Lookup finds a responder by agent id.
func (r *Registry) Lookup(id string) (Responder, bool) {
	a, ok := r.agents[id]
	return a, ok
}

// IDs returns the registered agent ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

type paymentAgent struct {
	baseURL string
}

func (a *paymentAgent) ID() string { return "payment" }

func (a *paymentAgent) Respond(text string) string {
	request := strings.TrimSpace(text)
	if request == "" {
		request = "your request"
	}
	return fmt.Sprintf(
		"Payment Agent Response:\nI handle refunds, invoice issues, failed payments, and account charges.\nYour request: %s",
		request,
	)
}

func (a *paymentAgent) Card() Card {
	return Card{
		Name:               "Payment Agent",
		Description:        "Provides assistance for payment, invoices, and refund inquiries.",
		URL:                a.baseURL,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Capabilities:       Capabilities{Streaming: true},
		Provider:           Provider{Organization: "Support Mesh", URL: a.baseURL},
		Skills: []Skill{{
			ID:          "payment",
			Name:        "Payment Services",
			Description: "Supports billing problems and refund workflows.",
			Tags:        []string{"billing", "payments"},
			InputModes:  []string{"text"},
			OutputModes: []string{"text"},
			Examples:    []string{"Issue refund", "Send invoice", "Payment failed"},
		}},
		PreferredTransport: "JSONRPC",
	}
}

type supportAgent struct {
	baseURL string
}

func (a *supportAgent) ID() string { return "support" }

func (a *supportAgent) Respond(text string) string {
	lower := strings.ToLower(text)

	var suggestions []string
	switch {
	case containsAny(lower, "login", "password"):
		suggestions = []string{
			"Try resetting your password and confirm you can sign in from a trusted browser.",
			"If it still fails, share the exact error message so we can diagnose quickly.",
		}
	case containsAny(lower, "ticket", "issue", "problem"):
		suggestions = []string{
			"I can open a support ticket and notify you as soon as there's progress.",
			"Screenshots or timestamps would help us troubleshoot faster.",
		}
	case containsAny(lower, "history", "follow", "activity"):
		suggestions = []string{
			"I've reviewed your recent activity and will keep an eye on any new updates.",
			"If something changes on your side, let me know and we can adjust next steps.",
		}
	default:
		suggestions = []string{
			"Tell me any specific details you'd like us to verify or double-check.",
			"We can also set up a short follow-up if you need more help.",
		}
	}
	suggestions = append(suggestions, "If this is urgent, reply here and I'll jump on it immediately.")

	var b strings.Builder
	b.WriteString("Hi there, thanks for reaching out.\n")
	for _, s := range suggestions {
		b.WriteString("- ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *supportAgent) Card() Card {
	return Card{
		Name:               "Support Agent",
		Description:        "Provides empathetic, user-facing support responses.",
		URL:                a.baseURL,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Capabilities:       Capabilities{Streaming: true},
		Provider:           Provider{Organization: "Support Mesh", URL: a.baseURL},
		Skills: []Skill{{
			ID:          "support",
			Name:        "Customer Support",
			Description: "Suggests practical next steps for account and product issues.",
			Tags:        []string{"support", "guidance"},
			InputModes:  []string{"text"},
			OutputModes: []string{"text"},
			Examples:    []string{"I can't log in", "Open a ticket for me", "What happened recently?"},
		}},
		PreferredTransport: "JSONRPC",
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
