package grant

import (
	"slices"
	"strings"

	"github.com/stewardhq/steward/core"
)

// Table is the compiled grant table. It is built once by Compile and never
// mutated afterwards, so it can be shared across any number of concurrent
// evaluation calls without locking.
type Table struct {
	grants    map[string]map[string]map[string]map[core.Possession]bool
	declared  map[string]map[string]map[string]bool
	resources map[string][]string
	scopes    []string
}

// Granted answers the standard-scope question: may this role perform the
// action on the resource under the given possession. Any and own are
// independent facts, not a hierarchy: holding one never implies the other.
// Unknown roles and resources are implicitly denied.
func (t *Table) Granted(role, resource, action string, possession core.Possession) bool {
	return t.grants[role][resource][action][possession]
}

// Declared returns the role's normalized permission strings for a resource,
// inheritance resolved. Business scopes (assigned/available) are only
// visible here, never in the possession table.
func (t *Table) Declared(role, resource string) []string {
	set := t.declared[role][resource]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for perm := range set {
		out = append(out, perm)
	}
	slices.Sort(out)
	return out
}

func (t *Table) KnownRole(role string) bool {
	_, ok := t.declared[role]
	return ok
}

// RolePermissions flattens the role's full resolved grant set per resource.
func (t *Table) RolePermissions(role string) map[string][]string {
	out := map[string][]string{}
	for resource := range t.declared[role] {
		out[resource] = t.Declared(role, resource)
	}
	return out
}

func (t *Table) Resources() []string {
	out := make([]string, 0, len(t.resources))
	for name := range t.resources {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func (t *Table) ResourceActions(resource string) []string {
	actions := t.resources[resource]
	out := make([]string, len(actions))
	copy(out, actions)
	slices.Sort(out)
	return out
}

func (t *Table) Scopes() []string {
	out := make([]string, len(t.scopes))
	copy(out, t.scopes)
	return out
}

// IsValidPermission is a syntactic check only: the action part must be
// present, and the scope part, if given, must be a declared scope. Used by
// configuration-authoring tools, not by the runtime check path.
func (t *Table) IsValidPermission(permission string) bool {
	action, scope, found := strings.Cut(permission, ":")
	if action == "" {
		return false
	}
	if !found {
		return true
	}
	return slices.Contains(t.scopes, scope)
}
