// internal/models/id.go
package models

import (
	"encoding/json"
	"strconv"
)

// FlexInt64 decodes ids that clients send either as numbers or strings
// (select inputs submit "" or "3"). Empty or unparseable input decodes to 0,
// meaning "not set".
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	*f = 0

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil && s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			*f = FlexInt64(n)
		}
	}
	return nil
}

func (f FlexInt64) Int64() int64 {
	return int64(f)
}
