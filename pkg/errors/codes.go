package errors

import "net/http"

// ErrorCode is a string identifier for a specific error condition.
// Prefixes group codes by module: COMMON_ (cross-cutting), RUL_ (rule
// store), CMP_ (cultural validation), TRM_ (terminology).
type ErrorCode string

func (c ErrorCode) String() string { return string(c) }

// Common error codes.
const (
	ErrCodeUnknown            ErrorCode = "COMMON_000"
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTimeout            ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeSerialization      ErrorCode = "COMMON_007"
	ErrCodeDatabaseError      ErrorCode = "COMMON_008"
	ErrCodeCacheError         ErrorCode = "COMMON_009"

	ErrCodeOK ErrorCode = "OK"
)

// Rule store error codes.
const (
	ErrCodeRuleStoreUnavailable ErrorCode = "RUL_001"
	ErrCodeRuleInvalid          ErrorCode = "RUL_002"
	ErrCodeMarketUnknown        ErrorCode = "RUL_003"
)

// Cultural validation error codes.
const (
	ErrCodeContentEmpty       ErrorCode = "CMP_001"
	ErrCodeNoTargetMarkets    ErrorCode = "CMP_002"
	ErrCodeValidationFailed   ErrorCode = "CMP_003"
	ErrCodeAllMarketsFailed   ErrorCode = "CMP_004"
	ErrCodeInvalidAssetType   ErrorCode = "CMP_005"
)

// Terminology error codes.
const (
	ErrCodeTermNotFound          ErrorCode = "TRM_001"
	ErrCodeInvalidContext        ErrorCode = "TRM_002"
	ErrCodeTermAnalysisFailed    ErrorCode = "TRM_003"
	ErrCodeTranslationMemoryDown ErrorCode = "TRM_004"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,

	ErrCodeRuleStoreUnavailable: http.StatusServiceUnavailable,
	ErrCodeRuleInvalid:          http.StatusInternalServerError,
	ErrCodeMarketUnknown:        http.StatusNotFound,

	ErrCodeContentEmpty:     http.StatusBadRequest,
	ErrCodeNoTargetMarkets:  http.StatusBadRequest,
	ErrCodeValidationFailed: http.StatusInternalServerError,
	ErrCodeAllMarketsFailed: http.StatusServiceUnavailable,
	ErrCodeInvalidAssetType: http.StatusBadRequest,

	ErrCodeTermNotFound:          http.StatusNotFound,
	ErrCodeInvalidContext:        http.StatusBadRequest,
	ErrCodeTermAnalysisFailed:    http.StatusInternalServerError,
	ErrCodeTranslationMemoryDown: http.StatusServiceUnavailable,
}

// HTTPStatusForCode returns the HTTP status for an ErrorCode, defaulting to
// 500 for unmapped codes.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether the code maps to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the code maps to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}
