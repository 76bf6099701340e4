package client

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Money is a price on the wire. The gateway is free to send it as a JSON
// number, a quoted decimal string, null, or to omit it entirely; anything
// unparseable decodes to zero rather than failing the whole payload.
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	*m = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		*m = Money(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	*m = Money(f)
	return nil
}

func (m Money) String() string {
	return strconv.FormatFloat(float64(m), 'f', 2, 64)
}
