package sbrqmf

// Error represents a filter bank construction error code.
type Error int

// Error codes.
const (
	ErrNone               Error = 0
	ErrInvalidNumChannels Error = 1
	ErrInvalidBandCount   Error = 2
	ErrInvalidMode        Error = 3
	ErrInvalidParallelism Error = 4
)

// errMessages is indexed by Error.
var errMessages = [5]string{
	"No error",
	"Invalid number of channels",
	"Invalid number of synthesis bands",
	"Invalid filter bank mode",
	"Invalid parallelism",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
