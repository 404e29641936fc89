package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Transfer converts an identity claim into a user id. JWT claims decode
// numbers as float64, ids are issued as strings to keep their precision.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id
		}
	}
	return -1
}

// ParseID validates a record identifier taken from the request. A well-formed
// identifier is a positive base-10 int64.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty identifier")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed identifier %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("identifier %q out of range", raw)
	}
	return id, nil
}

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
