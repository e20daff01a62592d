package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// UpdateMediaRequest is the body of PUT /media/:id.
// Alt is left unchanged when absent; Tags always replaces the stored list.
type UpdateMediaRequest struct {
	Alt  *string `json:"alt"`
	Tags TagList `json:"tags"`
}

// TagList accepts either the comma-separated form ("a,b") or a JSON array.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("tags: %w", err)
		}
		*t = normalizeTags(items)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tags must be a string or an array of strings")
	}
	*t = SplitTags(raw)
	return nil
}

// SplitTags turns "a, b,,c" into ["a" "b" "c"]. The result is never nil.
func SplitTags(raw string) []string {
	return normalizeTags(strings.Split(raw, ","))
}

func normalizeTags(items []string) []string {
	out := make([]string, 0, len(items))
	for _, tag := range items {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
