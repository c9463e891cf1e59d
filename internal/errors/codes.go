package errors

// Code represents an error code
type Code string

// Error codes. The battle-domain taxonomy maps onto these: configuration
// problems (bad mode, unknown criterion, malformed instantiation) use
// INVALID_ARGUMENT, roster overflow uses RESOURCE_EXHAUSTED, and starting a
// battle with an empty side uses FAILED_PRECONDITION.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
