package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	s.Equal("Account not found", GetErrorMessage(AccountNotFound))
	s.Equal("Cannot transfer to the same account", GetErrorMessage(TransferSameAccount))
	s.Equal("An interest run is already in progress", GetErrorMessage(InterestRunInProgress))
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_001")))
	s.False(IsValidErrorCode(ErrorCode("NOPE_001")))
}

func (s *CodesTestSuite) TestAllErrorCodesHaveUniqueMessagesAndFormat() {
	format := regexp.MustCompile(`^[A-Z]+_\d{3}$`)
	seen := make(map[ErrorCode]bool)

	for code, message := range errorMessages {
		s.Regexp(format, string(code))
		s.NotEmpty(message)
		s.False(seen[code])
		seen[code] = true
	}
}
