package core

const (
	ActorCtxKey     = "st-actor"
	RequestIdCtxKey = "st-request-id"
)

const (
	ActorIdHeader  = "st-actor-id"
	ClientIdHeader = "st-client-id"
)

// Standard CRUD actions. These participate in possession splitting;
// anything else is a custom action matched by exact string.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type Scope string

const (
	ScopeAny       Scope = "any"
	ScopeMine      Scope = "mine"
	ScopeAssigned  Scope = "assigned"
	ScopeAvailable Scope = "available"
)

// IsBusinessScope reports whether the scope cannot be answered from the
// compiled grant table and needs runtime context.
func (s Scope) IsBusinessScope() bool {
	return s == ScopeAssigned || s == ScopeAvailable
}

type Possession int

const (
	PossessionAny Possession = iota
	PossessionOwn
)

func (p Possession) String() string {
	switch p {
	case PossessionAny:
		return "any"
	case PossessionOwn:
		return "own"
	default:
		return "unknown"
	}
}

const (
	UserStatusActive       = "active"
	UserStatusDisconnected = "disconnected"
)
