package conv

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AsKey normalizes a request id into a map key. Numeric ids decoded as float64
// and ids built as int share a key; a string id never collides with a number.
func AsKey(id interface{}) string {
	switch actual := id.(type) {
	case nil:
		return ""
	case string:
		return "s:" + actual
	case float64:
		return "n:" + strconv.FormatFloat(actual, 'f', -1, 64)
	case float32:
		return "n:" + strconv.FormatFloat(float64(actual), 'f', -1, 32)
	case int:
		return "n:" + strconv.Itoa(actual)
	case int32:
		return "n:" + strconv.FormatInt(int64(actual), 10)
	case int64:
		return "n:" + strconv.FormatInt(actual, 10)
	case uint64:
		return "n:" + strconv.FormatUint(actual, 10)
	case json.Number:
		return "n:" + actual.String()
	}
	return fmt.Sprintf("%T:%v", id, id)
}
