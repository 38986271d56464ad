package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	UserKeyPrefix         = "user:%s"
	PostKeyPrefix         = "post:%s"
	PostLikesKeyPrefix    = "post:%s:likes"
	CommentLikesKeyPrefix = "comment:%s:likes"
)

const (
	UserTTL      = 5 * time.Minute
	PostTTL      = 30 * time.Minute
	LikeCountTTL = 1 * time.Minute
)

func UserKey(userID uuid.UUID) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uuid.UUID) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func PostLikesKey(postID uuid.UUID) string {
	return fmt.Sprintf(PostLikesKeyPrefix, postID)
}

func CommentLikesKey(commentID uuid.UUID) string {
	return fmt.Sprintf(CommentLikesKeyPrefix, commentID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uuid.UUID) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uuid.UUID) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidatePostLikes(ctx context.Context, postID uuid.UUID) {
	Invalidate(ctx, PostLikesKey(postID))
}

func InvalidateCommentLikes(ctx context.Context, commentID uuid.UUID) {
	Invalidate(ctx, CommentLikesKey(commentID))
}
