package grant

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/stewardhq/steward/core"
)

var tracer = otel.Tracer("grant")

type service struct {
	table *Table
}

// NewService loads and compiles the grant specification. It runs once
// during process initialization, before any request handling begins; the
// returned service is a read-only view over the compiled table.
func NewService(repository Repository) (core.GrantService, error) {
	spec, err := repository.Load(context.Background())
	if err != nil {
		return nil, err
	}

	table, err := Compile(spec)
	if err != nil {
		return nil, err
	}

	slog.Info("grant table compiled",
		slog.Int("roles", len(spec.Roles)),
		slog.Int("resources", len(spec.Resources)),
	)

	return &service{table: table}, nil
}

// NewServiceFromTable wraps an already compiled table. Used by tests and
// by tools that author specifications in memory.
func NewServiceFromTable(table *Table) core.GrantService {
	return &service{table: table}
}

func (s *service) Granted(role, resource, action string, possession core.Possession) bool {
	return s.table.Granted(role, resource, action, possession)
}

func (s *service) Declared(role, resource string) []string {
	return s.table.Declared(role, resource)
}

func (s *service) KnownRole(role string) bool {
	return s.table.KnownRole(role)
}

func (s *service) RolePermissions(role string) map[string][]string {
	return s.table.RolePermissions(role)
}

func (s *service) Resources() []string {
	return s.table.Resources()
}

func (s *service) ResourceActions(resource string) []string {
	return s.table.ResourceActions(resource)
}

func (s *service) Scopes() []string {
	return s.table.Scopes()
}

func (s *service) IsValidPermission(permission string) bool {
	return s.table.IsValidPermission(permission)
}
