package generation

import (
	"encoding/json"
	"strings"
)

// decodeObject parses body as a JSON object. An empty body is an empty object.
func decodeObject(body []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	obj, _ := v.(map[string]any)
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, nil
}

func objectField(m map[string]any, key string) (map[string]any, bool) {
	obj, ok := m[key].(map[string]any)
	return obj, ok
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// firstMessage returns the first non-empty string among keys.
func firstMessage(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := stringField(m, k); ok && s != "" {
			return s
		}
	}
	return ""
}

// urlList collects URLs from the first key holding a non-empty list. List
// items may be strings or objects carrying the URL under one of nestedKeys.
func urlList(m map[string]any, keys []string, nestedKeys []string) []string {
	for _, key := range keys {
		items, ok := m[key].([]any)
		if !ok {
			continue
		}
		var urls []string
		for _, item := range items {
			switch v := item.(type) {
			case string:
				if s := strings.TrimSpace(v); s != "" {
					urls = append(urls, s)
				}
			case map[string]any:
				for _, nk := range nestedKeys {
					if s, ok := stringField(v, nk); ok && strings.TrimSpace(s) != "" {
						urls = append(urls, strings.TrimSpace(s))
					}
				}
			}
		}
		if len(urls) > 0 {
			return urls
		}
	}
	return nil
}

func compact(body []byte) string {
	return strings.TrimSpace(string(body))
}
