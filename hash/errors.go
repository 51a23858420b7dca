package hash

import "github.com/spikeekips/nearanywhere/common"

const (
	HashFailedErrorCode common.ErrorCode = iota + 1
	InvalidHashInputErrorCode
)

var (
	HashFailedError       = common.NewErrorType("hash", HashFailedErrorCode, "failed to make hash")
	InvalidHashInputError = common.NewErrorType("hash", InvalidHashInputErrorCode, "invalid hash input value")
)
