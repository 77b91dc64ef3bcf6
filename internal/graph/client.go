package graph

import (
	"context"
	"errors"
	"fmt"
)

// Client defines the minimal contract the stores need from the graph database.
type Client interface {
	Write(ctx context.Context, stmt Statement) (Result, error)
	Read(ctx context.Context, stmt Statement) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Statement is a parameterised cypher query.
type Statement struct {
	Cypher string
	Params map[string]any
}

// Result is a simplified representation of a query response.
type Result struct {
	Records []Record
}

// First returns the first record, if any.
func (r Result) First() (Record, bool) {
	if len(r.Records) == 0 {
		return nil, false
	}
	return r.Records[0], true
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Map returns the nested map stored under key, typically node properties.
func (r Record) Map(key string) (map[string]any, error) {
	switch v := r[key].(type) {
	case map[string]any:
		return v, nil
	case nil:
		return nil, fmt.Errorf("record key %q: %w", key, ErrMissingValue)
	default:
		return nil, fmt.Errorf("record key %q: unexpected type %T", key, v)
	}
}

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

var (
	// ErrMissingURI indicates the graph URI is not provided.
	ErrMissingURI = errors.New("graph URI is required")
	// ErrMissingValue indicates a record lacks an expected key.
	ErrMissingValue = errors.New("missing value")
)
