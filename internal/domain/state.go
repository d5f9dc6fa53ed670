package domain

type State string

const (
	StateReceived     State = "received"
	StateValidated    State = "validated"
	StateInputStored  State = "input_stored"
	StateConverting   State = "converting"
	StateOutputStored State = "output_stored"
	StateRecorded     State = "recorded"
	StateCompleted    State = "completed"

	StateValidationFailed State = "validation_failed"
	StateConversionFailed State = "conversion_failed"
	StateFailed           State = "failed"
)
