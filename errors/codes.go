package errors

// ErrorCode identifies an application error category. Codes are grouped by
// concern: 1xxx general, 2xxx extraction/transcription, 3xxx integrations,
// 4xxx database.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_EXTRACTION_FAILED     ErrorCode = 2000
	ErrorCode_TRANSCRIPTION_FAILED  ErrorCode = 2001
	ErrorCode_PROCESSING_FAILED     ErrorCode = 2002
	ErrorCode_FILE_TYPE_NOT_ALLOWED ErrorCode = 2003
	ErrorCode_MISSING_AUDIO_SOURCE  ErrorCode = 2004

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 3000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 3001

	ErrorCode_DB_QUERY_FAILED ErrorCode = 4000
)

// String returns the symbolic name of the code for logs.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_EXTRACTION_FAILED:
		return "EXTRACTION_FAILED"
	case ErrorCode_TRANSCRIPTION_FAILED:
		return "TRANSCRIPTION_FAILED"
	case ErrorCode_PROCESSING_FAILED:
		return "PROCESSING_FAILED"
	case ErrorCode_FILE_TYPE_NOT_ALLOWED:
		return "FILE_TYPE_NOT_ALLOWED"
	case ErrorCode_MISSING_AUDIO_SOURCE:
		return "MISSING_AUDIO_SOURCE"
	case ErrorCode_INTEGRATION_STORAGE_FAILED:
		return "INTEGRATION_STORAGE_FAILED"
	case ErrorCode_INTEGRATION_CACHE_FAILED:
		return "INTEGRATION_CACHE_FAILED"
	case ErrorCode_DB_QUERY_FAILED:
		return "DB_QUERY_FAILED"
	default:
		return "UNKNOWN"
	}
}
