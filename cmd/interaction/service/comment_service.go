package service

import (
	"context"
	"strings"
	"time"

	"vidtube.com/cmd/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// CommentItem 评论列表项 附带所有者投影
type CommentItem struct {
	CommentId int64  `json:"comment_id"`
	Content   string `json:"content"`
	UserName  string `json:"user_name"`
	AvatarUrl string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
}

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (service *CommentService) ListComments(videoId, page, limit int64) ([]*CommentItem, error) {
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.VideoNotExistErr
	}

	if page <= 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	comments, err := db.GetCommentsByVideo(service.ctx, videoId, int((page-1)*limit), int(limit))
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []*CommentItem{}, nil
	}

	ownerIds := make([]int64, 0, len(comments))
	for _, comment := range comments {
		ownerIds = append(ownerIds, comment.UserId)
	}
	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, err
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, owner := range owners {
		ownerById[owner.UserId] = owner
	}

	items := make([]*CommentItem, 0, len(comments))
	for _, comment := range comments {
		item := &CommentItem{
			CommentId: comment.CommentId,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if owner, ok := ownerById[comment.UserId]; ok {
			item.UserName = owner.UserName
			item.AvatarUrl = owner.AvatarUrl
		}
		items = append(items, item)
	}
	return items, nil
}

func (service *CommentService) AddComment(userId, videoId int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ParamErr.WithMessage("Comment content should not be empty")
	}
	exist, err := db.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.VideoNotExistErr
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(userId, commentId int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errno.ParamErr.WithMessage("Comment content should not be empty")
	}
	comment, err := service.ownComment(userId, commentId)
	if err != nil {
		return err
	}
	return db.UpdateCommentContent(service.ctx, comment.CommentId, content, time.Now().Format(constants.DataFormate))
}

func (service *CommentService) DeleteComment(userId, commentId int64) error {
	comment, err := service.ownComment(userId, commentId)
	if err != nil {
		return err
	}
	return db.DeleteComment(service.ctx, comment.CommentId)
}

// ownComment 仅评论所有者可以改动自己的评论
func (service *CommentService) ownComment(userId, commentId int64) (*model.Comment, error) {
	exist, err := db.IsCommentExist(service.ctx, commentId)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errno.CommentNotExistErr
	}
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		return nil, err
	}
	if comment.UserId != userId {
		return nil, errno.AuthorizationErr
	}
	return comment, nil
}
