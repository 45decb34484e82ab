package types

import "Warble/models"

type CreateMessageRequest struct {
	Text string `json:"text" binding:"required,max=140"`
}

// LikeRequest location 是调用方回跳地址，原样带回，不参与业务
type LikeRequest struct {
	Location string `json:"location"`
}

// MessageResponse 单条消息视图，Liked 是当前访问者的点赞状态
type MessageResponse struct {
	Message *models.Message `json:"message"`
	Liked   bool            `json:"liked"`
}

type LikeResponse struct {
	Liked    bool   `json:"liked"`
	Location string `json:"location,omitempty"`
}

// FeedResponse 时间线数据，匿名访问时 Anon 为 true 且列表为空
type FeedResponse struct {
	Messages []*models.Message `json:"messages"`
	Anon     bool              `json:"anon"`
}
