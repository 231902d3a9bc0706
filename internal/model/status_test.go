package model

import "testing"

func TestRequestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		expected bool
	}{
		{RequestStatusIdle, false},
		{RequestStatusLoading, true},
		{RequestStatusSuccess, false},
		{RequestStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("RequestStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRequestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		expected bool
	}{
		{RequestStatusIdle, false},
		{RequestStatusLoading, false},
		{RequestStatusSuccess, true},
		{RequestStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("RequestStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRequestStatus_String(t *testing.T) {
	status := RequestStatusLoading
	expected := "Loading"
	result := status.String()

	if result != expected {
		t.Errorf("RequestStatus.String() = %s, expected %s", result, expected)
	}
}
