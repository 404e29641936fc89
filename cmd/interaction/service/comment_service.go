package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/ownership"
	"vidtube.com/pkg/utils"
)

const kindComment = "Comment"

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (s *CommentService) ListComments(videoId, page, limit int64) (*CommentPage, error) {
	page, limit = utils.NormalizePage(page, limit)
	comments, total, err := db.ListVideoComments(s.ctx, videoId, page, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListVideoComments failed")
	}
	if err = userdb.AttachCommentAuthors(s.ctx, comments); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachCommentAuthors failed")
	}
	return &CommentPage{
		Comments:   comments,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

func (s *CommentService) AddComment(actorId, videoId int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.MissingField.WithMessage("Comment content is required")
	}
	exist, err := videodb.CheckVideoVisible(s.ctx, videoId, actorId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckVideoVisible failed")
	}
	if !exist {
		return nil, errno.NotFound.WithMessage("Video not found")
	}

	comment := &model.Comment{
		CommentId: utils.NextID(),
		VideoId:   videoId,
		UserId:    actorId,
		Content:   content,
	}
	if err = db.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	if err = userdb.AttachCommentAuthors(s.ctx, []*model.Comment{comment}); err != nil {
		return nil, errors.WithMessage(err, "dao.AttachCommentAuthors failed")
	}
	mq.Emit(s.ctx, mq.NewEvent(mq.EventCommentCreated, actorId, constants.LikeTargetVideo, videoId))
	return comment, nil
}

func (s *CommentService) UpdateComment(actorId, commentId int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.MissingField.WithMessage("Comment content is required")
	}
	comment, err := ownership.LoadOwned(s.ctx, kindComment, commentId, actorId, "update", db.GetComment)
	if err != nil {
		return nil, err
	}
	comment.Content = content
	if err = db.UpdateCommentContent(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateCommentContent failed")
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(actorId, commentId int64) error {
	if _, err := ownership.LoadOwned(s.ctx, kindComment, commentId, actorId, "delete", db.GetComment); err != nil {
		return err
	}
	if err := db.DeleteCommentCascade(s.ctx, commentId); err != nil {
		return errors.WithMessage(err, "dao.DeleteCommentCascade failed")
	}
	return nil
}
