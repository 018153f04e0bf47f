package portfolio

import (
	"context"
	"net/http"
)

// SettingKeyCVLink is the one key the admin panel manages today.
const SettingKeyCVLink = "cvLink"

// Setting is a backend key/value pair.
type Setting struct {
	KeyName string `json:"keyName"`
	Value   string `json:"value"`
}

// Settings fetches all settings.
func (c *Client) Settings(ctx context.Context, token string) ([]Setting, error) {
	var items []Setting
	if err := c.doJSON(ctx, token, http.MethodGet, "/api/admin/settings", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SettingValue returns the value for key, or "" when the key is absent.
func (c *Client) SettingValue(ctx context.Context, token, key string) (string, error) {
	items, err := c.Settings(ctx, token)
	if err != nil {
		return "", err
	}
	for _, s := range items {
		if s.KeyName == key {
			return s.Value, nil
		}
	}
	return "", nil
}

type putSettingRequest struct {
	Value string `json:"value"`
}

// PutSetting writes the value for key.
func (c *Client) PutSetting(ctx context.Context, token, key, value string) error {
	return c.doJSON(ctx, token, http.MethodPut, "/api/admin/settings/"+key, putSettingRequest{Value: value}, nil)
}
