package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryListIsDeterministic(t *testing.T) {
	registry := NewRegistry()

	first := registry.List()
	second := registry.List()
	assert.Equal(t, first, second)

	names := make([]string, 0, len(first))
	seen := make(map[string]struct{})
	for _, def := range first {
		names = append(names, def.Name)
		_, dup := seen[def.Name]
		assert.False(t, dup, "duplicate tool name %s", def.Name)
		seen[def.Name] = struct{}{}
	}
	assert.Equal(t, []string{
		NameGetCustomer,
		NameListCustomers,
		NameUpdateCustomer,
		NameCreateTicket,
		NameGetCustomerHistory,
	}, names)
}

func TestRegistryListReturnsCopy(t *testing.T) {
	registry := NewRegistry()

	mutated := registry.List()
	mutated[0].Name = "tampered"

	assert.Equal(t, NameGetCustomer, registry.List()[0].Name)
}

func TestRegistrySchemas(t *testing.T) {
	registry := NewRegistry()

	def, ok := registry.Lookup(NameCreateTicket)
	require.True(t, ok)
	assert.Equal(t, TypeObject, def.InputSchema.Type)
	assert.ElementsMatch(t, []string{"customer_id", "issue", "priority"}, def.InputSchema.Required)
	assert.Equal(t, TypeInteger, def.InputSchema.Properties["customer_id"].Type)
	assert.Equal(t, TypeString, def.InputSchema.Properties["priority"].Type)

	def, ok = registry.Lookup(NameListCustomers)
	require.True(t, ok)
	assert.Empty(t, def.InputSchema.Required)
	assert.Equal(t, DefaultListLimit, def.InputSchema.Properties["limit"].Default)

	_, ok = registry.Lookup("drop_customer")
	assert.False(t, ok)
}
