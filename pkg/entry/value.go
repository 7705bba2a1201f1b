package entry

import (
	"encoding/json"
	"fmt"
)

// Value is a record's val field. The wire type is the discriminator: the JSON
// literal true is the check marker, any JSON string is a log text. The string
// "true" is therefore a log text, and false or numbers never decode.
type Value struct {
	text    string
	checked bool
}

func CheckValue() Value {
	return Value{checked: true}
}

func LogValue(text string) Value {
	return Value{text: text}
}

// IsCheck reports whether the value is the check marker.
func (v Value) IsCheck() bool {
	return v.checked
}

// Text returns the log text and whether the value is a log text at all.
func (v Value) Text() (string, bool) {
	if v.checked {
		return "", false
	}
	return v.text, true
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.checked {
		return []byte("true"), nil
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		if !flag {
			return fmt.Errorf("entry: val false is not a record value")
		}
		*v = Value{checked: true}
		return nil
	}
	var text string
	if err := json.Unmarshal(b, &text); err != nil {
		return fmt.Errorf("entry: val must be true or a string, got %s", string(b))
	}
	*v = Value{text: text}
	return nil
}

func (v Value) String() string {
	if v.checked {
		return "true"
	}
	return v.text
}
