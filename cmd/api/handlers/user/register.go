package handlers

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"
)

type RegisterParam struct {
	UserName string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginParam struct {
	UserName string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		common.SendError(ctx, c, errno.ErrBind)
		return
	}
	user, err := service.NewUserService(ctx).Register(&service.RegisterRequest{
		UserName: param.UserName,
		Email:    param.Email,
		Password: param.Password,
	})
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, http.StatusCreated, user, "User registered successfully")
}
