package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// InternalServiceError is the error code for internal service errors
	InternalServiceError        ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError             ErrorCode = "VALIDATION_ERROR"
	AlreadyStaked               ErrorCode = "ALREADY_STAKED"
	NoActiveStake               ErrorCode = "NO_ACTIVE_STAKE"
	NotStakeOwner               ErrorCode = "NOT_STAKE_OWNER"
	CustodyTransferFailed       ErrorCode = "CUSTODY_TRANSFER_FAILED"
	InsufficientRewardLiquidity ErrorCode = "INSUFFICIENT_REWARD_LIQUIDITY"
	RewardOverflow              ErrorCode = "REWARD_OVERFLOW"
	Unauthorized                ErrorCode = "UNAUTHORIZED"
	InvalidRate                 ErrorCode = "INVALID_RATE"
)

// Error represents an error with an HTTP status code and an application
// specific error code.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

const UninitializedStatusCode = 0

func (e *Error) Error() string {
	if e.Err == nil {
		return "no error message provided"
	}
	return e.Err.Error()
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}
