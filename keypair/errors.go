package keypair

import (
	"fmt"

	"github.com/spikeekips/nearanywhere/common"
)

const (
	UnknownKeyTypeErrorCode common.ErrorCode = iota + 1
	InvalidLengthErrorCode
	InvalidDataErrorCode
	SignatureVerificationFailedErrorCode
)

var (
	UnknownKeyTypeError = common.NewErrorType(
		"keypair",
		UnknownKeyTypeErrorCode,
		"unknown key type",
	)
	InvalidLengthError = common.NewErrorType(
		"keypair",
		InvalidLengthErrorCode,
		"invalid length",
	)
	InvalidDataError = common.NewErrorType(
		"keypair",
		InvalidDataErrorCode,
		"invalid data",
	)
	SignatureVerificationFailedError = common.NewErrorType(
		"keypair",
		SignatureVerificationFailedErrorCode,
		"signature verification failed",
	)
)

// UnknownKeyType carries the unrecognized curve name or byte code.
type UnknownKeyType struct {
	Value string
}

func (e UnknownKeyType) Error() string {
	return fmt.Sprintf("%s; value=%q", UnknownKeyTypeError.Message(), e.Value)
}

func (e UnknownKeyType) Is(err error) bool {
	return UnknownKeyTypeError.Is(err)
}

type InvalidLength struct {
	KeyType  KeyType
	Expected int
	Received int
}

func (e InvalidLength) Error() string {
	return fmt.Sprintf(
		"%s; %s; expected=%d received=%d",
		InvalidLengthError.Message(), e.KeyType, e.Expected, e.Received,
	)
}

func (e InvalidLength) Is(err error) bool {
	return InvalidLengthError.Is(err)
}

type InvalidData struct {
	KeyType KeyType
	Message string
}

func (e InvalidData) Error() string {
	return fmt.Sprintf("%s; %s; %s", InvalidDataError.Message(), e.KeyType, e.Message)
}

func (e InvalidData) Is(err error) bool {
	return InvalidDataError.Is(err)
}
