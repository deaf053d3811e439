package domain

import "encoding/json"

// SubActionResult is the outcome of one atomic operation performed by the
// automation engine while fulfilling a prompt.
type SubActionResult struct {
	Label       string
	OK          bool
	ErrorDetail string
}

// Result is the normalized outcome of a dispatched command. Produced once
// per command, never mutated after creation.
type Result struct {
	OK          bool
	Message     string
	ErrorDetail string
	Details     string
	SubActions  []SubActionResult
}

// apiResponse mirrors the wire payload of the trading-automation API.
// Every field is optional on the wire.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Actions []apiAction `json:"actions"`
	Error   string      `json:"error"`
	Details string      `json:"details"`
}

type apiAction struct {
	Tool    string `json:"tool"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DecodeResult maps a raw API payload into a Result. Decoding is defensive:
// missing fields default to absent/false, a top-level error field forces
// OK=false regardless of the success field. A payload that carries none of
// the expected keys decodes to a failed Result with all fields empty.
func DecodeResult(raw json.RawMessage) Result {
	var payload apiResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Result{}
	}

	result := Result{
		OK:      payload.Success,
		Message: payload.Message,
		Details: payload.Details,
	}
	for _, action := range payload.Actions {
		result.SubActions = append(result.SubActions, SubActionResult{
			Label:       action.Tool,
			OK:          action.Success,
			ErrorDetail: action.Error,
		})
	}
	if payload.Error != "" {
		result.OK = false
		result.ErrorDetail = payload.Error
	}

	return result
}
