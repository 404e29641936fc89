package mw

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"

	"vidtube.com/cmd/api/handlers/common"
	userhandlers "vidtube.com/cmd/api/handlers/user"
	"vidtube.com/cmd/model"
	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

var JwtMiddleware *jwt.HertzJWTMiddleware

type tokenPayload struct {
	Token  string    `json:"token"`
	Expire time.Time `json:"expire"`
}

// InitJwt builds the middleware issuing and checking access tokens. The
// user id travels as a decimal string claim.
func InitJwt(secret string, timeout, maxRefresh time.Duration) error {
	var err error
	JwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           []byte(secret),
		Timeout:       timeout,
		MaxRefresh:    maxRefresh,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, query: token, cookie: jwt",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{constants.IdentityKey: utils.FormatID(user.UserId)}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[constants.IdentityKey])
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var param userhandlers.LoginParam
			if err := c.BindAndValidate(&param); err != nil {
				return nil, errno.ErrBind
			}
			return service.NewUserService(ctx).Login(param.UserName, param.Password)
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			common.SendResponse(c, code, tokenPayload{Token: token, Expire: expire}, "Login Success")
		},
		RefreshResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			common.SendResponse(c, code, tokenPayload{Token: token, Expire: expire}, "Token refreshed")
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			return errno.ConvertErr(e).ErrMsg
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			hlog.CtxDebugf(ctx, "unauthorized %s: %s", c.Path(), message)
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrorResponse{
				StatusCode: http.StatusUnauthorized,
				Message:    message,
				Success:    false,
			})
		},
	})
	return err
}

// OptionalIdentity attaches the user of a valid token and lets every other
// request through anonymously.
func OptionalIdentity() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if claims, err := JwtMiddleware.GetClaimsFromJWT(ctx, c); err == nil {
			if id := utils.Transfer(claims[constants.IdentityKey]); id > 0 {
				c.Set(constants.IdentityKey, id)
			}
		}
		c.Next(ctx)
	}
}
