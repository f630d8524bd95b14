//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/stewardhq/steward/core"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

// Client is a thin HTTP client for the steward permission API, meant for
// other services in the platform.
type Client interface {
	Check(ctx context.Context, host string, request core.PermissionCheckRequest) (core.PermissionResult, error)
	GetRolePermissions(ctx context.Context, host string, role string) (map[string][]string, error)
	GetActorPermissions(ctx context.Context, host string, userID string) ([]string, error)
}

type client struct{}

func NewClient() Client {
	return &client{}
}

type response[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content"`
}

func (c *client) Check(ctx context.Context, host string, request core.PermissionCheckRequest) (core.PermissionResult, error) {
	ctx, span := tracer.Start(ctx, "Client.Check")
	defer span.End()

	body, err := json.Marshal(request)
	if err != nil {
		span.RecordError(err)
		return core.PermissionResult{}, err
	}

	req, err := http.NewRequest("POST", "https://"+host+"/api/v1/permissions/check", bytes.NewBuffer(body))
	if err != nil {
		span.RecordError(err)
		return core.PermissionResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpClient := new(http.Client)
	httpClient.Timeout = defaultTimeout
	resp, err := httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return core.PermissionResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.PermissionResult{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	jsonStr, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return core.PermissionResult{}, err
	}

	var envelope response[core.PermissionResult]
	err = json.Unmarshal(jsonStr, &envelope)
	if err != nil {
		span.RecordError(err)
		return core.PermissionResult{}, err
	}

	return envelope.Content, nil
}

func (c *client) GetRolePermissions(ctx context.Context, host string, role string) (map[string][]string, error) {
	ctx, span := tracer.Start(ctx, "Client.GetRolePermissions")
	defer span.End()

	var envelope response[map[string][]string]
	err := c.get(ctx, "https://"+host+"/api/v1/roles/"+role+"/permissions", &envelope)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return envelope.Content, nil
}

func (c *client) GetActorPermissions(ctx context.Context, host string, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Client.GetActorPermissions")
	defer span.End()

	var envelope response[[]string]
	err := c.get(ctx, "https://"+host+"/api/v1/actors/"+userID+"/permissions", &envelope)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return envelope.Content, nil
}

func (c *client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpClient := new(http.Client)
	httpClient.Timeout = defaultTimeout
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	jsonStr, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(jsonStr, out)
}
