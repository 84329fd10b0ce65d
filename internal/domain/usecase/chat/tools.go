package chat

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/agent-console/internal/domain/port/llm"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// SaveCollectionTool stores key/value data gathered during a chat
const SaveCollectionTool = "save_data_collection"

func saveCollectionTool() llm.Tool {
	return llm.Tool{
		Name:        SaveCollectionTool,
		Description: "Save a named list of key/value items (for example contacts read from the device) to the user's dashboard.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Collection name",
				},
				"items": map[string]any{
					"type":        "array",
					"description": "Items to store in order",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"key":   map[string]any{"type": "string"},
							"value": map[string]any{"type": "string"},
						},
						"required": []any{"key", "value"},
					},
				},
			},
			"required": []any{"name", "items"},
		},
	}
}

func (s *Service) saveCollection(ctx context.Context, userID uint64, sessionID string, args map[string]any) (string, error) {
	name, _ := args["name"].(string)
	items, err := collectionItems(args["items"])
	if err != nil {
		return "", err
	}
	c, err := s.collections.SaveCollection(ctx, userID, name, sessionID, items)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("saved %d items to collection %q", len(c.Items), c.Name), nil
}

// collectionItems accepts either a list of {key, value} objects or a flat object
func collectionItems(raw any) ([]usecase.CollectionItemInput, error) {
	switch v := raw.(type) {
	case []any:
		items := make([]usecase.CollectionItemInput, 0, len(v))
		for _, entry := range v {
			obj, ok := entry.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("items must be objects with key and value")
			}
			items = append(items, usecase.CollectionItemInput{
				Key:   stringify(obj["key"]),
				Value: stringify(obj["value"]),
			})
		}
		return items, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]usecase.CollectionItemInput, 0, len(keys))
		for _, k := range keys {
			items = append(items, usecase.CollectionItemInput{Key: k, Value: stringify(v[k])})
		}
		return items, nil
	case nil:
		return nil, fmt.Errorf("items is required")
	}
	return nil, fmt.Errorf("items has unsupported type %T", raw)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(v)
}
