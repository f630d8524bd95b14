package grant

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/stewardhq/steward/core"
)

var standardScopes = []string{
	string(core.ScopeAny),
	string(core.ScopeMine),
	string(core.ScopeAssigned),
	string(core.ScopeAvailable),
}

var crudActions = []string{
	core.ActionCreate,
	core.ActionRead,
	core.ActionUpdate,
	core.ActionDelete,
}

// Compile resolves a grant specification into an immutable Table.
// Direct grants are built for every role first, then $extend edges are
// resolved depth-first so multi-level inheritance propagates completely.
// Unparseable permission strings, $extend references to undeclared roles,
// and inheritance cycles are configuration errors and must abort startup.
func Compile(spec core.GrantSpecification) (*Table, error) {
	table := &Table{
		grants:    map[string]map[string]map[string]map[core.Possession]bool{},
		declared:  map[string]map[string]map[string]bool{},
		resources: map[string][]string{},
		scopes:    knownScopes(spec),
	}

	for name, resource := range spec.Resources {
		table.resources[name] = slices.Clone(resource.Actions)
	}

	// first pass: direct grants only, independent of $extend, so that
	// extension resolution copies already-known facts
	for roleName, role := range spec.Roles {
		table.grants[roleName] = map[string]map[string]map[core.Possession]bool{}
		table.declared[roleName] = map[string]map[string]bool{}

		for resource, permissions := range role.Resources {
			for _, permission := range permissions {
				action, scope, err := parsePermission(permission, table.scopes)
				if err != nil {
					return nil, core.NewErrorConfiguration("role %s, resource %s: %v", roleName, resource, err)
				}

				if !slices.Contains(crudActions, action) && !declaredAction(spec, resource, action) {
					slog.Warn("unrecognized action treated as custom action",
						slog.String("role", roleName),
						slog.String("resource", resource),
						slog.String("action", action),
					)
				}

				table.record(roleName, resource, action, scope)
			}
		}
	}

	// second pass: resolve $extend to a fixed point. Declaration order is
	// not guaranteed, so targets may be declared after their dependents.
	states := map[string]int{}
	for roleName := range spec.Roles {
		if err := resolveExtends(spec, table, roleName, states); err != nil {
			return nil, err
		}
	}

	return table, nil
}

const (
	stateUnvisited = iota
	stateVisiting
	stateResolved
)

func resolveExtends(spec core.GrantSpecification, table *Table, roleName string, states map[string]int) error {
	switch states[roleName] {
	case stateResolved:
		return nil
	case stateVisiting:
		return core.NewErrorConfiguration("inheritance cycle detected at role %s", roleName)
	}
	states[roleName] = stateVisiting

	for _, parent := range spec.Roles[roleName].Extends {
		if _, ok := spec.Roles[parent]; !ok {
			return core.NewErrorConfiguration("role %s extends undeclared role %s", roleName, parent)
		}
		if err := resolveExtends(spec, table, parent, states); err != nil {
			return err
		}
		table.union(roleName, parent)
	}

	states[roleName] = stateResolved
	return nil
}

// record registers a single normalized grant. Business scopes are declared
// facts only; any/mine additionally land in the possession table. Custom
// actions do not participate in possession splitting and always bind to
// any possession.
func (t *Table) record(role, resource, action string, scope core.Scope) {
	if t.declared[role][resource] == nil {
		t.declared[role][resource] = map[string]bool{}
	}
	t.declared[role][resource][fmt.Sprintf("%s:%s", action, scope)] = true

	if scope.IsBusinessScope() {
		return
	}

	possession := core.PossessionAny
	if scope == core.ScopeMine && slices.Contains(crudActions, action) {
		possession = core.PossessionOwn
	}

	if t.grants[role][resource] == nil {
		t.grants[role][resource] = map[string]map[core.Possession]bool{}
	}
	if t.grants[role][resource][action] == nil {
		t.grants[role][resource][action] = map[core.Possession]bool{}
	}
	t.grants[role][resource][action][possession] = true
}

// union copies every resolved fact of parent into role.
func (t *Table) union(role, parent string) {
	for resource, perms := range t.declared[parent] {
		if t.declared[role][resource] == nil {
			t.declared[role][resource] = map[string]bool{}
		}
		for perm := range perms {
			t.declared[role][resource][perm] = true
		}
	}
	for resource, actions := range t.grants[parent] {
		if t.grants[role][resource] == nil {
			t.grants[role][resource] = map[string]map[core.Possession]bool{}
		}
		for action, possessions := range actions {
			if t.grants[role][resource][action] == nil {
				t.grants[role][resource][action] = map[core.Possession]bool{}
			}
			for possession := range possessions {
				t.grants[role][resource][action][possession] = true
			}
		}
	}
}

// parsePermission splits "action:scope" into its parts. A bare action
// defaults to the any scope. A missing action or an undeclared scope is a
// configuration error.
func parsePermission(permission string, scopes []string) (string, core.Scope, error) {
	action, scope, found := strings.Cut(permission, ":")
	if action == "" {
		return "", "", fmt.Errorf("permission %q has no action", permission)
	}
	if !found || scope == "" {
		return action, core.ScopeAny, nil
	}
	if !slices.Contains(scopes, scope) {
		return "", "", fmt.Errorf("permission %q has unknown scope %q", permission, scope)
	}
	return action, core.Scope(scope), nil
}

func knownScopes(spec core.GrantSpecification) []string {
	scopes := slices.Clone(standardScopes)
	for name := range spec.Scopes {
		if !slices.Contains(scopes, name) {
			scopes = append(scopes, name)
		}
	}
	slices.Sort(scopes)
	return scopes
}

func declaredAction(spec core.GrantSpecification, resource, action string) bool {
	declared, ok := spec.Resources[resource]
	if !ok {
		return false
	}
	return slices.Contains(declared.Actions, action)
}
