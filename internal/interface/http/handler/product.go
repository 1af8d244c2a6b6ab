package handler

import (
	"github.com/gin-gonic/gin"

	appproduct "github.com/xiebiao/mall/internal/application/product"
	"github.com/xiebiao/mall/internal/interface/http/dto"
	"github.com/xiebiao/mall/internal/interface/http/middleware"
	"github.com/xiebiao/mall/pkg/response"
)

// ProductHandler 商品HTTP处理器
type ProductHandler struct {
	createUseCase *appproduct.CreateProductUseCase
	updateUseCase *appproduct.UpdateProductUseCase
	deleteUseCase *appproduct.DeleteProductUseCase
	getUseCase    *appproduct.GetProductUseCase
	listUseCase   *appproduct.ListProductsUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	createUseCase *appproduct.CreateProductUseCase,
	updateUseCase *appproduct.UpdateProductUseCase,
	deleteUseCase *appproduct.DeleteProductUseCase,
	getUseCase *appproduct.GetProductUseCase,
	listUseCase *appproduct.ListProductsUseCase,
) *ProductHandler {
	return &ProductHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// Create 上架商品
// @Summary      上架商品
// @Description  卖家上架商品，卖家身份取自令牌，分类引用必须指向在线分类
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appproduct.CreateProductRequest{
		Actor:       middleware.MustGetActor(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toProductDTO(result))
}

// Update 更新商品
// @Summary      更新商品
// @Description  卖家更新本人商品，打分不可由本接口修改
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.UpdateProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      401 {object} response.Response "无权限或非本人商品"
// @Failure      404 {object} response.Response "商品或分类不存在"
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appproduct.UpdateProductRequest{
		Actor:       middleware.MustGetActor(c),
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toProductDTO(result))
}

// Delete 下架商品
// @Summary      下架商品
// @Description  卖家下架本人商品（软删除），商品评论不级联删除
// @Tags         商品
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "无权限或非本人商品"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), appproduct.DeleteProductRequest{
		Actor: middleware.MustGetActor(c),
		ID:    id,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Get 商品详情
// @Summary      商品详情
// @Description  查询在线商品详情（匿名可访问），走缓存旁路
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=dto.ProductResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toProductDTO(result))
}

// List 商品列表
// @Summary      商品列表
// @Description  分页查询在线商品，支持关键词搜索和排序（匿名可访问）
// @Tags         商品
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        keyword query string false "搜索关键词"
// @Param        sort_by query string false "排序方式" Enums(price_asc, price_desc, rating_desc, created_at_desc)
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appproduct.ListProductsRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		SortBy:   req.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ProductListItem, len(result.List))
	for i, item := range result.List {
		list[i] = toProductListItemDTO(item)
	}
	response.SuccessWithPage(c, list, result.Total, result.Page, result.PageSize)
}

// toProductDTO 应用层DTO → HTTP层DTO
func toProductDTO(r *appproduct.ProductResponse) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		PriceYuan:   r.PriceYuan,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		CategoryID:  r.CategoryID,
		SellerID:    r.SellerID,
		Rating:      r.Rating,
		CreatedAt:   r.CreatedAt,
	}
}

func toProductListItemDTO(item appproduct.ProductListItem) dto.ProductListItem {
	return dto.ProductListItem{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		PriceYuan:  item.PriceYuan,
		Stock:      item.Stock,
		ImageURL:   item.ImageURL,
		CategoryID: item.CategoryID,
		Rating:     item.Rating,
		CreatedAt:  item.CreatedAt,
	}
}
