package errno

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	SuccessCode = 0

	InvalidIdentifierCode = 40001
	MissingFieldCode      = 40002
	SelfSubscriptionCode  = 40003
	ErrBindCode           = 40004
	UnauthorizedCode      = 40101
	LoginErrCode          = 40102
	ForbiddenCode         = 40301
	NotFoundCode          = 40401
	ConflictCode          = 40901
	TooManyRequestsCode   = 42901
	ServiceErrCode        = 50001
	UpstreamErrCode       = 50002
)

// ErrNo is the error carried back to the client. The HTTP status of a
// business code is its first three digits.
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

// Is matches on the code only, so a re-worded error still satisfies
// errors.Is against its base value.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	return ok && t.ErrCode == e.ErrCode
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

func (e ErrNo) WithMessagef(format string, args ...interface{}) ErrNo {
	e.ErrMsg = fmt.Sprintf(format, args...)
	return e
}

// StatusCode maps the business code onto an HTTP status.
func (e ErrNo) StatusCode() int {
	if e.ErrCode == SuccessCode {
		return http.StatusOK
	}
	return int(e.ErrCode / 100)
}

var (
	Success           = NewErrNo(SuccessCode, "Success")
	InvalidIdentifier = NewErrNo(InvalidIdentifierCode, "Invalid identifier")
	MissingField      = NewErrNo(MissingFieldCode, "Missing required field")
	SelfSubscription  = NewErrNo(SelfSubscriptionCode, "You cannot subscribe to yourself")
	ErrBind           = NewErrNo(ErrBindCode, "Malformed request parameters")
	TokenInvalidErr   = NewErrNo(UnauthorizedCode, "Token is invalid or expired")
	LoginErr          = NewErrNo(LoginErrCode, "Wrong username or password")
	Forbidden         = NewErrNo(ForbiddenCode, "Not authorized")
	NotFound          = NewErrNo(NotFoundCode, "Resource not found")
	Conflict          = NewErrNo(ConflictCode, "Resource already exists")
	TooManyRequests   = NewErrNo(TooManyRequestsCode, "Too many requests")
	ServiceErr        = NewErrNo(ServiceErrCode, "Internal server error")
	UpstreamErr       = NewErrNo(UpstreamErrCode, "Upstream service failure")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}

	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
