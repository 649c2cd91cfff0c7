package gateway

import (
	"encoding/json"
	"strings"
)

// UnknownErrorMessage is the synthetic message used when a backend call
// fails before a parseable envelope exists (network error, non-JSON body,
// missing base URL).
const UnknownErrorMessage = "An unknown error occurred"

// Message is the backend's human-readable result text. Backends emit either
// a single string or an array of strings (one per validation failure), so
// Message decodes both forms.
type Message []string

// UnmarshalJSON accepts a JSON string or array of strings.
func (m *Message) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = Message{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = Message(many)
	return nil
}

// MarshalJSON emits the single-string form when there is one part.
func (m Message) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return json.Marshal(m[0])
	}
	return json.Marshal([]string(m))
}

// String joins the message parts for display.
func (m Message) String() string {
	return strings.Join(m, "; ")
}

// Envelope is the normalized result of every backend call:
// {success, status, message, data}. When Success is false, Data must not be
// trusted; callers branch on Success, never on HTTP status alone — some
// backends signal domain failure inside a 200 response.
type Envelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message Message         `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func failureEnvelope(status int, message string) Envelope {
	return Envelope{
		Success: false,
		Status:  status,
		Message: Message{message},
	}
}
