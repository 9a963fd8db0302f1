package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ValidationErrorCode     = 1
	InternalServerErrorCode = 500

	LocalDateTimeFormat = "2006-01-02T15:04"
)
