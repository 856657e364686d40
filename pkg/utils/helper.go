package utils

import (
	"strconv"
)

// ParseID converts a path segment into an id that fits a Postgres integer column.
// Zero and negative ids are well formed; they simply match no row.
func ParseID(value string) (int, bool) {
	id, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
