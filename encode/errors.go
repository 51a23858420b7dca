package encode

import "github.com/spikeekips/nearanywhere/common"

const (
	EncodeFailedErrorCode common.ErrorCode = iota + 1
	DecodeFailedErrorCode
)

var (
	EncodeFailedError = common.NewErrorType("encode", EncodeFailedErrorCode, "failed to encode")
	DecodeFailedError = common.NewErrorType("encode", DecodeFailedErrorCode, "failed to decode")
)
