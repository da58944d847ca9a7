package yelphelp

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewBotNonContinuableError(t *testing.T) {
	errorContent := "This is fatal."
	err := NewBotNonContinuableError(errorContent)

	typed, ok := err.(*BotNonContinuableError)
	if !ok {
		t.Fatalf("Returned value is not instance of BotNonContinuableError: %#v", err)
	}

	if typed.Error() != errorContent {
		t.Errorf("Expected error message is not returned: %s.", typed.Error())
	}
}

func TestNewBlockedInputError(t *testing.T) {
	i := 123
	err := NewBlockedInputError(i)

	if err == nil {
		t.Fatal("Instance of BlockedInputError is not returned.")
	}

	concreteErr, ok := err.(*BlockedInputError)
	if !ok {
		t.Fatalf("Returned value is not instance of BlockedInputError: %#v", err)
	}

	if concreteErr.ContinuationCount != i {
		t.Errorf("Returned instance has different count than expected one. Expected: %d. Returned: %d.", i, concreteErr.ContinuationCount)
	}
}

func TestBlockedInputError_Error(t *testing.T) {
	i := 123
	err := NewBlockedInputError(i)

	if !strings.Contains(err.Error(), strconv.Itoa(i)) {
		t.Errorf("Returned string does not contain the count of error occurrence: %s.", err.Error())
	}
}
