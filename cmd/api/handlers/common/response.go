package common

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// Empty is the payload of a removal.
var Empty = map[string]interface{}{}

func SendResponse(c *app.RequestContext, status int, data interface{}, message string) {
	c.JSON(status, Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// SendError writes err as an error envelope. Errors outside the errno
// taxonomy become 500s; their text is logged, never sent.
func SendError(ctx context.Context, c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	status := e.StatusCode()
	if status >= http.StatusInternalServerError {
		hlog.CtxErrorf(ctx, "%s %s: %v", c.Method(), c.Path(), err)
	}
	if e.ErrCode == errno.ServiceErrCode {
		e = errno.ServiceErr
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Message:    e.ErrMsg,
		Success:    false,
	})
}

// PathID validates the named path parameter as a record identifier.
func PathID(c *app.RequestContext, name string) (int64, error) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		return 0, errno.InvalidIdentifier.WithMessagef("Invalid %s", name)
	}
	return id, nil
}

// ActingUser returns the id the auth middleware attached to the request.
func ActingUser(c *app.RequestContext) (int64, error) {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return 0, errno.TokenInvalidErr
	}
	id := utils.Transfer(v)
	if id <= 0 {
		return 0, errno.TokenInvalidErr
	}
	return id, nil
}

// ViewerID is the acting user on routes where identity is optional, 0 for an
// anonymous request.
func ViewerID(c *app.RequestContext) int64 {
	id, err := ActingUser(c)
	if err != nil {
		return 0
	}
	return id
}

// PageParams reads page and limit, leaving normalization to the services.
// Non-numeric values are rejected.
func PageParams(c *app.RequestContext) (page, limit int64, err error) {
	var q struct {
		Page  int64 `query:"page"`
		Limit int64 `query:"limit"`
	}
	if err = c.BindQuery(&q); err != nil {
		return 0, 0, errno.ErrBind.WithMessage("page and limit must be integers")
	}
	return q.Page, q.Limit, nil
}
