package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// User is a record from the remote users endpoint. Fields are opaque text
// owned by the remote side; no local validation.
type User struct {
	ID    UserID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserID is an opaque identifier. The endpoint sends numbers, other sources
// send strings; both decode to their textual form.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

func (id UserID) String() string { return string(id) }
