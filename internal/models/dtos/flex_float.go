package dtos

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number or a numeric string.
type FlexFloat float64

func (ff *FlexFloat) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*ff = FlexFloat(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*ff = FlexFloat(f)
	return nil
}
