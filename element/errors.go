package element

import "github.com/spikeekips/nearanywhere/common"

const (
	_ common.ErrorCode = iota
	UnknownActionErrorCode
	UnknownReceiptErrorCode
	UnknownAccessKeyPermissionErrorCode
	TransactionNotWellformedErrorCode
	InvalidSignatureErrorCode
	InvalidBlockReferenceErrorCode
	AmountOverflowErrorCode
)

var (
	UnknownActionError = common.NewErrorType(
		"element",
		UnknownActionErrorCode,
		"unknown action",
	)
	UnknownReceiptError = common.NewErrorType(
		"element",
		UnknownReceiptErrorCode,
		"unknown receipt",
	)
	UnknownAccessKeyPermissionError = common.NewErrorType(
		"element",
		UnknownAccessKeyPermissionErrorCode,
		"unknown access key permission",
	)
	TransactionNotWellformedError = common.NewErrorType(
		"element",
		TransactionNotWellformedErrorCode,
		"transaction not wellformed",
	)
	InvalidSignatureError = common.NewErrorType(
		"element",
		InvalidSignatureErrorCode,
		"invalid signature",
	)
	InvalidBlockReferenceError = common.NewErrorType(
		"element",
		InvalidBlockReferenceErrorCode,
		"invalid block reference",
	)
	AmountOverflowError = common.NewErrorType(
		"element",
		AmountOverflowErrorCode,
		"amount overflows u128",
	)
)
