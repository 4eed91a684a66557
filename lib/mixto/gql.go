package mixto

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	gqlPath      = "/api/v1/gql"
	gqlAdminPath = "/api/admin/gql"
)

// GraphQLErrorDetail is a single error returned by the GraphQL endpoint.
type GraphQLErrorDetail struct {
	Message    string `json:"message,omitempty"`
	Extensions *struct {
		Code string `json:"code,omitempty"`
		Path string `json:"path,omitempty"`
	} `json:"extensions,omitempty"`
}

// GraphQLError is returned when a GraphQL request fails or the response
// carries an errors list.
type GraphQLError struct {
	Status int
	Errors []GraphQLErrorDetail
}

func (e *GraphQLError) Error() string {
	if len(e.Errors) > 0 && e.Errors[0].Message != "" {
		return fmt.Sprintf("mixto: graphql error: %s (HTTP %d)", e.Errors[0].Message, e.Status)
	}
	return fmt.Sprintf("mixto: graphql error (HTTP %d)", e.Status)
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage      `json:"data"`
	Errors []GraphQLErrorDetail `json:"errors"`
}

// GraphQL executes a query against the user GraphQL endpoint and returns
// the raw data document.
func (c *Client) GraphQL(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	return c.gql(ctx, gqlPath, query, variables)
}

// GraphQLAdmin executes a query against the admin GraphQL endpoint.
func (c *Client) GraphQLAdmin(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	return c.gql(ctx, gqlAdminPath, query, variables)
}

func (c *Client) gql(ctx context.Context, path, query string, variables map[string]any) (json.RawMessage, error) {
	data, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("mixto: marshal graphql request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.makeURL(path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mixto: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	// The endpoint reports resolver errors in the body, so the body is
	// inspected before the HTTP status decides anything.
	var resp gqlResponse
	body, err := c.send(req, &resp)
	if err != nil {
		status := 0
		if se, ok := err.(interface{ HTTPStatus() int }); ok {
			status = se.HTTPStatus()
		}
		var gerr gqlResponse
		if len(body) > 0 && json.Unmarshal(body, &gerr) == nil && len(gerr.Errors) > 0 {
			return nil, &GraphQLError{Status: status, Errors: gerr.Errors}
		}
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, &GraphQLError{Status: http.StatusOK, Errors: resp.Errors}
	}
	return resp.Data, nil
}
