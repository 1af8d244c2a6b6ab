package dto

// CreateCategoryRequest HTTP创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100" example:"数码产品"`
	Description string `json:"description" binding:"max=500" example:"手机、电脑及周边配件"`
	ParentID    *uint  `json:"parent_id" binding:"omitempty,min=1" example:"1"` // 顶级分类不传
}

// UpdateCategoryRequest HTTP更新分类请求
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100" example:"数码产品"`
	Description string `json:"description" binding:"max=500" example:"手机、电脑及周边配件"`
	ParentID    *uint  `json:"parent_id" binding:"omitempty,min=1" example:"1"`
}

// CategoryResponse HTTP分类响应
type CategoryResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"数码产品"`
	Description string `json:"description" example:"手机、电脑及周边配件"`
	ParentID    *uint  `json:"parent_id,omitempty" example:"1"`
	CreatedAt   string `json:"created_at" example:"2024-01-15 10:30:00"`
}
