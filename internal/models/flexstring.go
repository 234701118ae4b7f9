package models

import (
	"encoding/json"
	"fmt"
)

// FlexString is a string field that tolerates clients sending numbers.
// The upload-URL endpoint hands out the ticket id as a number, so create and
// update requests arrive with either form; the table stores strings only.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(num.String())
		return nil
	}

	return fmt.Errorf("value %s is neither string nor number", string(data))
}

func (s FlexString) String() string {
	return string(s)
}
