package dto

// CreateReviewRequest HTTP创建评论请求
// grade越界（含0和6）在应用层再次校验，绑定层先挡掉明显非法值
type CreateReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required,min=1" example:"1"`
	Grade     int    `json:"grade" binding:"required,min=1,max=5" example:"5"`
	Comment   string `json:"comment" binding:"max=2000" example:"质量很好，发货快"`
}

// ReviewResponse HTTP评论响应
type ReviewResponse struct {
	ID          uint   `json:"id" example:"1"`
	UserID      uint   `json:"user_id" example:"100"`
	ProductID   uint   `json:"product_id" example:"1"`
	Grade       int    `json:"grade" example:"5"`
	Comment     string `json:"comment" example:"质量很好，发货快"`
	CommentDate string `json:"comment_date" example:"2024-01-15 10:30:00"`
}
