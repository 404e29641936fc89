package db

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrap(err, "CreateUser failed")
	}
	return nil
}

// GetUserByName returns gorm.ErrRecordNotFound when absent.
func GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckUserDuplicate reports whether the username or email is taken.
func CheckUserDuplicate(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? OR email = ?", username, email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "CheckUserDuplicate failed")
	}
	return count > 0, nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed, user_id=%d", userId)
	}
	return count > 0, nil
}

func GetUserBrief(ctx context.Context, userId int64) (*model.UserBrief, error) {
	var brief model.UserBrief
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).First(&brief).Error; err != nil {
		return nil, err
	}
	return &brief, nil
}

// MGetUserBriefs loads the owner projections for a batch of ids. Unknown ids
// are simply missing from the map.
func MGetUserBriefs(ctx context.Context, userIds []int64) (map[int64]*model.UserBrief, error) {
	res := make(map[int64]*model.UserBrief, len(userIds))
	if len(userIds) == 0 {
		return res, nil
	}
	var briefs []*model.UserBrief
	if err := DB.WithContext(ctx).Where("user_id IN ?", dedup(userIds)).Find(&briefs).Error; err != nil {
		return nil, errors.Wrap(err, "MGetUserBriefs failed")
	}
	for _, b := range briefs {
		res[b.UserId] = b
	}
	return res, nil
}

func dedup(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
