package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/mall/internal/application/review"
	"github.com/xiebiao/mall/internal/interface/http/dto"
	"github.com/xiebiao/mall/internal/interface/http/middleware"
	"github.com/xiebiao/mall/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	createUseCase        *appreview.CreateReviewUseCase
	deleteUseCase        *appreview.DeleteReviewUseCase
	listUseCase          *appreview.ListReviewsUseCase
	listByProductUseCase *appreview.ListProductReviewsUseCase
	getUseCase           *appreview.GetReviewUseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(
	createUseCase *appreview.CreateReviewUseCase,
	deleteUseCase *appreview.DeleteReviewUseCase,
	listUseCase *appreview.ListReviewsUseCase,
	listByProductUseCase *appreview.ListProductReviewsUseCase,
	getUseCase *appreview.GetReviewUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		createUseCase:        createUseCase,
		deleteUseCase:        deleteUseCase,
		listUseCase:          listUseCase,
		listByProductUseCase: listByProductUseCase,
		getUseCase:           getUseCase,
	}
}

// Create 创建评论
// @Summary      创建评论
// @Description  买家对在线商品发表评论，同步重算商品打分
// @Tags         评论
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReviewRequest true "评论信息"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      400 {object} response.Response "打分越界或参数错误"
// @Failure      401 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appreview.CreateReviewRequest{
		Actor:     middleware.MustGetActor(c),
		ProductID: req.ProductID,
		Grade:     req.Grade,
		Comment:   req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReviewDTO(result))
}

// Delete 删除评论
// @Summary      删除评论
// @Description  管理员删除评论（软删除），同步重算商品打分
// @Tags         评论
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), appreview.DeleteReviewRequest{
		Actor: middleware.MustGetActor(c),
		ID:    id,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// List 评论列表
// @Summary      评论列表
// @Description  查询全部在线评论，按评论时间倒序（匿名可访问）
// @Tags         评论
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.ReviewResponse}
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ReviewResponse, len(result.List))
	for i := range result.List {
		list[i] = *toReviewDTO(&result.List[i])
	}
	response.Success(c, list)
}

// ListByProduct 商品评论列表
// @Summary      商品评论列表
// @Description  查询在线商品下的在线评论，按评论时间倒序（匿名可访问）
// @Tags         评论
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=[]dto.ReviewResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.listByProductUseCase.Execute(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ReviewResponse, len(result.List))
	for i := range result.List {
		list[i] = *toReviewDTO(&result.List[i])
	}
	response.Success(c, list)
}

// Get 评论详情
// @Summary      评论详情
// @Description  查询在线评论详情（匿名可访问）
// @Tags         评论
// @Produce      json
// @Param        id path int true "评论ID"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReviewDTO(result))
}

// toReviewDTO 应用层DTO → HTTP层DTO
func toReviewDTO(r *appreview.ReviewResponse) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Grade:       r.Grade,
		Comment:     r.Comment,
		CommentDate: r.CommentDate,
	}
}
