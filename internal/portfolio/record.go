package portfolio

// Record is one content item as the backend returns it. Field sets differ
// per resource and are passed through unchanged; the only field the gateway
// interprets is the server-assigned integer id.
type Record map[string]any

// ID returns the record's server-assigned id, or 0 if absent. JSON numbers
// decode as float64, but backends occasionally send ids as strings too.
func (r Record) ID() int64 {
	switch v := r["id"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// String returns the named field as a string, or "" when missing or not
// textual. Used by list templates, which only ever display text.
func (r Record) String(field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}
