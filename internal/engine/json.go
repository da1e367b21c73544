package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/match-evaluator/internal/schemas"
	"github.com/jonathan/match-evaluator/internal/types"
)

// Error codes returned across the engine boundary. Errors are data: callers
// branch on the "error" key, never on a raised exception.
const (
	ErrValidationFailed  = "validation_failed"
	ErrCalculationFailed = "calculation_failed"
)

// errorResponse is the failure shape: details carry per-field violations for
// validation failures and a message for calculation failures.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details"`
}

// EvaluateJSON evaluates a raw request document and returns either the
// ScoreCard JSON or an error object. It never panics across the boundary;
// unexpected faults become calculation_failed.
func EvaluateJSON(document []byte) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			out = errorJSON(ErrCalculationFailed, fmt.Sprint(r))
		}
	}()

	if err := schemas.ValidateMatchRequest(document); err != nil {
		return validationJSON(err)
	}

	var req types.MatchRequest
	if err := json.Unmarshal(document, &req); err != nil {
		return errorJSON(ErrValidationFailed, err.Error())
	}
	if err := req.Validate(); err != nil {
		return validationJSON(err)
	}

	card, err := Evaluate(&req)
	if err != nil {
		return errorJSON(ErrCalculationFailed, err.Error())
	}

	rendered, err := json.Marshal(card)
	if err != nil {
		return errorJSON(ErrCalculationFailed, err.Error())
	}
	return rendered
}

// validationJSON renders a validation error, carrying per-field details when
// the error provides them.
func validationJSON(err error) []byte {
	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		return errorJSON(ErrValidationFailed, ve.Errors)
	}
	return errorJSON(ErrValidationFailed, err.Error())
}

func errorJSON(code string, details any) []byte {
	rendered, err := json.Marshal(errorResponse{Error: code, Details: details})
	if err != nil {
		// Details can always degrade to a string.
		rendered, _ = json.Marshal(errorResponse{Error: code, Details: fmt.Sprint(details)})
	}
	return rendered
}
