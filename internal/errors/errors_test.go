package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "species not found",
			expected: "NOT_FOUND: species not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "roster is empty",
			expected: "FAILED_PRECONDITION: roster is empty",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("species not found").
		WithMeta("species", "Mewtwo").
		WithMeta("catalogue_size", 15)

	s.Assert().Equal("Mewtwo", err.Meta["species"])
	s.Assert().Equal(15, err.Meta["catalogue_size"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to store battle record")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to store battle record", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.FailedPrecondition("queue is empty")
	wrapped := errors.Wrap(baseErr, "failed to fetch front pokemon")

	s.Assert().Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Assert().Equal("failed to fetch front pokemon", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestIsHelpers() {
	s.Assert().True(errors.IsNotFound(errors.NotFoundf("no species %q", "Mewtwo")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad mode")))
	s.Assert().True(errors.IsResourceExhausted(errors.ResourceExhaustedf("full (%d)", 6)))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("empty roster")))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain error")))

	// Codes survive wrapping
	wrapped := errors.Wrap(errors.ResourceExhausted("full"), "assign failed")
	s.Assert().True(errors.IsResourceExhausted(wrapped))
	s.Assert().False(errors.IsNotFound(wrapped))
}
