package cascade

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/giuseppedipinto/io-functions-admin/internal/eraser/failure"
)

var (
	fiscalCodePattern = regexp.MustCompile(`^[A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z]$`)
	requestIDPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Input is the activity input handed over by the workflow orchestrator.
type Input struct {
	FiscalCode              string `json:"fiscalCode"`
	UserDataDeleteRequestID string `json:"userDataDeleteRequestId"`
}

func (in Input) validate() error {
	if !fiscalCodePattern.MatchString(in.FiscalCode) {
		return fmt.Errorf("fiscalCode %q does not match the expected format", in.FiscalCode)
	}
	if !requestIDPattern.MatchString(in.UserDataDeleteRequestID) {
		return fmt.Errorf("userDataDeleteRequestId %q does not match the expected format", in.UserDataDeleteRequestID)
	}
	return nil
}

// DecodeInput parses and validates a raw activity input. Any decode or shape
// error is an INVALID_INPUT_FAILURE carrying the reason; no further step of
// the activity runs after that.
func DecodeInput(data []byte) (Input, *failure.Failure) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, failure.InvalidInput(fmt.Sprintf("decode activity input: %v", err))
	}
	if err := in.validate(); err != nil {
		return Input{}, failure.InvalidInput(err.Error())
	}
	return in, nil
}
