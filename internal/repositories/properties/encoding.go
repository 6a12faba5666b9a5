package properties

import (
	"encoding/json"

	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

// encode returns nil data for values that mean "unset"
func encode(key string, value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, daberr.Wrapf(err, "failed to encode property %s", key)
	}
	if string(data) == "null" {
		return nil, nil
	}
	return data, nil
}

func decode(key string, data []byte, dst any) error {
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return daberr.Wrapf(err, "failed to decode property %s", key)
	}
	return nil
}
