package pipeline

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

var ErrAlreadyRun = errors.New("pipeline has already run")

// StepError is returned when a step fails. It unwraps to the underlying error, so
// errors.Is(err, model.ErrUnknownAttribute) and errors.Is(err, model.ErrConfig) both work.
type StepError struct {
	Index int
	Kind  model.StepKind
	Name  string
	Field string
	Err   error
}

func newStepError(info *model.StepInfo, err error) *StepError {
	stepErr := &StepError{
		Index: info.Index,
		Kind:  info.Kind,
		Name:  info.Name,
		Err:   err,
	}

	var fieldErr *model.FieldError
	if errors.As(err, &fieldErr) {
		stepErr.Field = fieldErr.Field
		if err == error(fieldErr) {
			stepErr.Err = fieldErr.Err
		}
	}

	return stepErr
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("step %d (%s %q)", e.Index, e.Kind, e.Name)
	if e.Field != "" {
		msg += " field " + e.Field
	}

	return msg + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}
