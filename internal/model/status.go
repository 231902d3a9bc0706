package model

// RequestStatus represents the current state of the generation form
type RequestStatus string

const (
	// RequestStatusIdle means nothing has been submitted yet
	RequestStatusIdle RequestStatus = "Idle"

	// RequestStatusLoading means a request is in flight
	RequestStatusLoading RequestStatus = "Loading"

	// RequestStatusSuccess means the last applied response carried a card list
	RequestStatusSuccess RequestStatus = "Success"

	// RequestStatusError means the last applied request failed
	RequestStatusError RequestStatus = "Error"
)

// String returns the string representation of RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

// IsActive returns true while a request is in flight
func (rs RequestStatus) IsActive() bool {
	return rs == RequestStatusLoading
}

// IsFinished returns true if the request resolved (success or error)
func (rs RequestStatus) IsFinished() bool {
	return rs == RequestStatusSuccess || rs == RequestStatusError
}
