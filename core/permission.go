package core

// GrantSpecification is the declarative description of what each role may do.
// It is authored externally, loaded once at process start, and never mutated
// afterwards.
type GrantSpecification struct {
	Roles     map[string]RoleSpec     `yaml:"roles" json:"roles"`
	Resources map[string]ResourceSpec `yaml:"resources" json:"resources"`
	Scopes    map[string]ScopeSpec    `yaml:"scopes" json:"scopes"`
}

// RoleSpec is one role's declared grants: optional $extend edges plus
// permission strings ("action:scope") keyed by resource.
type RoleSpec struct {
	Extends   []string
	Resources map[string][]string
}

// UnmarshalYAML flattens the role mapping: the "$extend" key names parent
// roles, every other key is a resource with its permission strings.
func (r *RoleSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := map[string][]string{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	r.Resources = map[string][]string{}
	for key, values := range raw {
		if key == "$extend" {
			r.Extends = values
			continue
		}
		r.Resources[key] = values
	}

	return nil
}

type ResourceSpec struct {
	Actions []string `yaml:"actions" json:"actions"`
}

type ScopeSpec struct{}

// PermissionContext carries the runtime facts a caller must supply to
// resolve ownership and business-specific scopes.
type PermissionContext struct {
	UserID          string   `json:"userId"`
	ClientID        string   `json:"clientId"`
	ResourceOwnerID string   `json:"resourceOwnerId,omitempty"`
	AssignedUsers   []string `json:"assignedUsers,omitempty"`
}

type PermissionCheckRequest struct {
	Role     string             `json:"role"`
	Resource string             `json:"resource"`
	Action   string             `json:"action"`
	Scope    Scope              `json:"scope"`
	Context  *PermissionContext `json:"context,omitempty"`
}

// PermissionResult is the engine's answer. Reason is always populated, for
// grants and denials alike.
type PermissionResult struct {
	Granted    bool     `json:"granted"`
	Reason     string   `json:"reason"`
	Attributes []string `json:"attributes,omitempty"`
}

// Actor is the engine-read-only view of the current caller. Permissions is
// the flattened projection computed once per session refresh.
type Actor struct {
	UserID      string   `json:"userId"`
	ClientID    string   `json:"clientId"`
	Role        string   `json:"role"`
	Connected   bool     `json:"connected"`
	Permissions []string `json:"permissions,omitempty"`
}
