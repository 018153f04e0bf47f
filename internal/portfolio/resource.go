package portfolio

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is one backend collection under /api/admin (projects, skills,
// experiences, posts, social, messages). All writes carry the full record
// payload; the backend assigns ids.
type Resource struct {
	client *Client
	path   string // e.g. /api/admin/projects
}

// Resource returns a handle for the named admin collection.
func (c *Client) Resource(name string) *Resource {
	return &Resource{client: c, path: "/api/admin/" + name}
}

// List fetches every record in the collection.
func (r *Resource) List(ctx context.Context, token string) ([]Record, error) {
	var items []Record
	if err := r.client.doJSON(ctx, token, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create adds a new record and returns whatever the backend echoes back.
func (r *Resource) Create(ctx context.Context, token string, payload Record) error {
	return r.client.doJSON(ctx, token, http.MethodPost, r.path, payload, nil)
}

// Update replaces the record with the given id.
func (r *Resource) Update(ctx context.Context, token string, id int64, payload Record) error {
	return r.client.doJSON(ctx, token, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), payload, nil)
}

// Delete removes the record with the given id.
func (r *Resource) Delete(ctx context.Context, token string, id int64) error {
	return r.client.doJSON(ctx, token, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}

// Get fetches a single record by listing and scanning for the id. The
// backend exposes no GET-by-id route, and collections here are small.
func (r *Resource) Get(ctx context.Context, token string, id int64) (Record, error) {
	items, err := r.List(ctx, token)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID() == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("record %d not found in %s", id, r.path)
}
