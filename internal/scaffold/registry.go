package scaffold

import "strings"

// NameRegistry answers whether a fully-qualified module name is already
// bound. It is an injected capability so tests can simulate both outcomes
// without touching global state.
type NameRegistry interface {
	IsTaken(name string) bool
}

// StdlibRegistry is the shipped NameRegistry. A generator process cannot
// inspect a running BEAM's symbol table, so it checks against the module
// namespaces every Forge project loads: Elixir, OTP, and the framework
// itself. A name is taken when its first dotted segment is reserved.
type StdlibRegistry struct{}

// reservedNamespaces are the top-level module segments claimed by the
// standard toolchain and the framework.
var reservedNamespaces = map[string]bool{
	"Access":      true,
	"Agent":       true,
	"Application": true,
	"Atom":        true,
	"Base":        true,
	"Calendar":    true,
	"Code":        true,
	"Config":      true,
	"Date":        true,
	"DateTime":    true,
	"Ecto":        true,
	"Elixir":      true,
	"Enum":        true,
	"Exception":   true,
	"File":        true,
	"Float":       true,
	"Forge":       true,
	"Function":    true,
	"GenServer":   true,
	"IO":          true,
	"Integer":     true,
	"Kernel":      true,
	"Keyword":     true,
	"List":        true,
	"Logger":      true,
	"Macro":       true,
	"Map":         true,
	"MapSet":      true,
	"Mix":         true,
	"Module":      true,
	"NaiveDateTime": true,
	"Node":        true,
	"Plug":        true,
	"Port":        true,
	"Process":     true,
	"Protocol":    true,
	"Range":       true,
	"Record":      true,
	"Regex":       true,
	"Registry":    true,
	"Stream":      true,
	"String":      true,
	"Supervisor":  true,
	"System":      true,
	"Task":        true,
	"Time":        true,
	"Tuple":       true,
	"URI":         true,
	"Version":     true,
}

// IsTaken reports whether the name collides with a reserved namespace.
func (StdlibRegistry) IsTaken(name string) bool {
	first, _, _ := strings.Cut(name, ".")
	return reservedNamespaces[first]
}

// MemoryRegistry is an in-memory NameRegistry for tests and scripted use.
type MemoryRegistry map[string]bool

// IsTaken reports whether the exact name is registered.
func (m MemoryRegistry) IsTaken(name string) bool {
	return m[name]
}
