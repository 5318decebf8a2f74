package errors

import (
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"google.golang.org/api/googleapi"
)

const (
	ERROR_CODE_PREFIX = "KEYROTATOR"

	// Forbidden occurs when the caller is not allowed to manage keys for the account
	ErrorForbidden       ServiceErrorCode = 4
	ErrorForbiddenReason string           = "Forbidden to perform this action"

	// NotFound occurs when the service account or key does not exist
	ErrorNotFound       ServiceErrorCode = 7
	ErrorNotFoundReason string           = "Resource not found"

	// Validation occurs when command input fails validation
	ErrorValidation       ServiceErrorCode = 8
	ErrorValidationReason string           = "General validation failure"

	// General occurs when an error fails to match any other error code
	ErrorGeneral       ServiceErrorCode = 9
	ErrorGeneralReason string           = "Unspecified error"

	// Unauthenticated occurs when the provided credentials cannot be validated
	ErrorUnauthenticated       ServiceErrorCode = 15
	ErrorUnauthenticatedReason string           = "Account authentication could not be verified"

	// Failed to create service account key
	ErrorFailedToCreateKey       ServiceErrorCode = 110
	ErrorFailedToCreateKeyReason string           = "Failed to create service account key"

	// Failed to list service account keys
	ErrorFailedToListKeys       ServiceErrorCode = 111
	ErrorFailedToListKeysReason string           = "Failed to list service account keys"

	// Failed to delete service account key
	ErrorFailedToDeleteKey       ServiceErrorCode = 112
	ErrorFailedToDeleteKeyReason string           = "Failed to delete service account key"
)

type ServiceErrorCode int

type ServiceErrors []ServiceError

func Find(code ServiceErrorCode) (bool, *ServiceError) {
	for _, err := range Errors() {
		if err.Code == code {
			return true, &err
		}
	}
	return false, nil
}

func Errors() ServiceErrors {
	return ServiceErrors{
		ServiceError{ErrorForbidden, ErrorForbiddenReason, ExitRemoteFailure},
		ServiceError{ErrorNotFound, ErrorNotFoundReason, ExitRemoteFailure},
		ServiceError{ErrorValidation, ErrorValidationReason, ExitBadInput},
		ServiceError{ErrorGeneral, ErrorGeneralReason, ExitGeneralFailure},
		ServiceError{ErrorUnauthenticated, ErrorUnauthenticatedReason, ExitRemoteFailure},
		ServiceError{ErrorFailedToCreateKey, ErrorFailedToCreateKeyReason, ExitRemoteFailure},
		ServiceError{ErrorFailedToListKeys, ErrorFailedToListKeysReason, ExitRemoteFailure},
		ServiceError{ErrorFailedToDeleteKey, ErrorFailedToDeleteKeyReason, ExitRemoteFailure},
	}
}

// Exit codes reported by the CLI when a command fails.
const (
	ExitGeneralFailure = 1
	ExitBadInput       = 2
	ExitRemoteFailure  = 3
)

type ServiceError struct {
	// Code is the numeric and distinct ID for the error
	Code ServiceErrorCode
	// Reason is the context-specific reason the error was generated
	Reason string
	// ExitCode is the process exit code associated with the error when it
	// terminates a command
	ExitCode int
}

// Reason can be a string with format verbs, which will be replaced by the specified values
func New(code ServiceErrorCode, reason string, values ...interface{}) *ServiceError {
	// If the code isn't defined, use the general error code
	var err *ServiceError
	exists, err := Find(code)
	if !exists {
		glog.Errorf("Undefined error code used: %d", code)
		err = &ServiceError{ErrorGeneral, ErrorGeneralReason, ExitGeneralFailure}
	}

	// If the reason is unspecified, use the default
	if reason != "" {
		err.Reason = fmt.Sprintf(reason, values...)
	}

	return err
}

// NewErrorFromGoogleAPI converts an error returned by the IAM admin API into a
// ServiceError. Errors that are not googleapi errors map to the general error code.
func NewErrorFromGoogleAPI(err error, reason string, values ...interface{}) *ServiceError {
	prefix := fmt.Sprintf(reason, values...)
	if gerr, ok := err.(*googleapi.Error); ok {
		switch gerr.Code {
		case http.StatusNotFound:
			return NotFound("%s: %s", prefix, gerr.Message)
		case http.StatusForbidden:
			return Forbidden("%s: %s", prefix, gerr.Message)
		case http.StatusUnauthorized:
			return Unauthenticated("%s: %s", prefix, gerr.Message)
		case http.StatusBadRequest:
			return Validation("%s: %s", prefix, gerr.Message)
		}
	}
	return GeneralError("%s: %s", prefix, err.Error())
}

func ToServiceError(err error) *ServiceError {
	switch convertedErr := err.(type) {
	case *ServiceError:
		return convertedErr
	default:
		return GeneralError(convertedErr.Error())
	}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", CodeStr(e.Code), e.Reason)
}

func (e *ServiceError) Is404() bool {
	return e.Code == NotFound("").Code
}

func (e *ServiceError) IsForbidden() bool {
	return e.Code == Forbidden("").Code
}

func (e *ServiceError) IsValidation() bool {
	return e.Code == Validation("").Code
}

func (e *ServiceError) IsFailedToCreateKey() bool {
	return e.Code == FailedToCreateKey("").Code
}

func (e *ServiceError) IsFailedToListKeys() bool {
	return e.Code == FailedToListKeys("").Code
}

func (e *ServiceError) IsFailedToDeleteKey() bool {
	return e.Code == FailedToDeleteKey("").Code
}

func CodeStr(code ServiceErrorCode) string {
	return fmt.Sprintf("%s-%d", ERROR_CODE_PREFIX, code)
}

func NotFound(reason string, values ...interface{}) *ServiceError {
	return New(ErrorNotFound, reason, values...)
}

func GeneralError(reason string, values ...interface{}) *ServiceError {
	return New(ErrorGeneral, reason, values...)
}

func Unauthenticated(reason string, values ...interface{}) *ServiceError {
	return New(ErrorUnauthenticated, reason, values...)
}

func Forbidden(reason string, values ...interface{}) *ServiceError {
	return New(ErrorForbidden, reason, values...)
}

func Validation(reason string, values ...interface{}) *ServiceError {
	return New(ErrorValidation, reason, values...)
}

func FailedToCreateKey(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToCreateKey, reason, values...)
}

func FailedToListKeys(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToListKeys, reason, values...)
}

func FailedToDeleteKey(reason string, values ...interface{}) *ServiceError {
	return New(ErrorFailedToDeleteKey, reason, values...)
}
