package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type RegisterRequest struct {
	UserName string
	Email    string
	Password string
}

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

func (s *UserService) Register(req *RegisterRequest) (*model.User, error) {
	username := strings.TrimSpace(req.UserName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || req.Password == "" {
		return nil, errno.MissingField.WithMessage("Username, email and password are required")
	}
	if !utils.IsValidEmail(email) {
		return nil, errno.ErrBind.WithMessage("Email is malformed")
	}
	dup, err := db.CheckUserDuplicate(s.ctx, username, email)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckUserDuplicate failed")
	}
	if dup {
		return nil, errno.Conflict.WithMessage("Username or email already registered")
	}
	password, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	user := &model.User{
		UserId:   utils.NextID(),
		UserName: username,
		Email:    email,
		Password: password,
	}
	if err = db.CreateUser(s.ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.Conflict.WithMessage("Username or email already registered")
		}
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}
	hlog.CtxInfof(s.ctx, "registered user %d (%s)", user.UserId, user.UserName)
	return user, nil
}

// Login checks the credentials. Unknown users and wrong passwords fail the
// same way.
func (s *UserService) Login(username, password string) (*model.User, error) {
	user, err := db.GetUserByName(s.ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.LoginErr
		}
		return nil, errors.WithMessage(err, "dao.GetUserByName failed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.LoginErr
	}
	return user, nil
}
