package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/mall/internal/application/category"
	appproduct "github.com/xiebiao/mall/internal/application/product"
	"github.com/xiebiao/mall/internal/interface/http/dto"
	"github.com/xiebiao/mall/internal/interface/http/middleware"
	"github.com/xiebiao/mall/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	createUseCase       *appcategory.CreateCategoryUseCase
	updateUseCase       *appcategory.UpdateCategoryUseCase
	deleteUseCase       *appcategory.DeleteCategoryUseCase
	listUseCase         *appcategory.ListCategoriesUseCase
	getUseCase          *appcategory.GetCategoryUseCase
	listProductsUseCase *appproduct.ListCategoryProductsUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	createUseCase *appcategory.CreateCategoryUseCase,
	updateUseCase *appcategory.UpdateCategoryUseCase,
	deleteUseCase *appcategory.DeleteCategoryUseCase,
	listUseCase *appcategory.ListCategoriesUseCase,
	getUseCase *appcategory.GetCategoryUseCase,
	listProductsUseCase *appproduct.ListCategoryProductsUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		listProductsUseCase: listProductsUseCase,
	}
}

// Create 创建分类
// @Summary      创建分类
// @Description  管理员创建商品分类，可指定父分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "父分类不存在"
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appcategory.CreateCategoryRequest{
		Actor:       middleware.MustGetActor(c),
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCategoryDTO(result))
}

// Update 更新分类
// @Summary      更新分类
// @Description  管理员更新分类信息，父分类引用必须指向在线分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      401 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appcategory.UpdateCategoryRequest{
		Actor:       middleware.MustGetActor(c),
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCategoryDTO(result))
}

// Delete 下线分类
// @Summary      删除分类
// @Description  管理员下线分类（软删除），分类下的商品不级联下架
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), appcategory.DeleteCategoryRequest{
		Actor: middleware.MustGetActor(c),
		ID:    id,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// List 分类列表
// @Summary      分类列表
// @Description  查询所有在线分类（匿名可访问）
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.CategoryResponse}
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.CategoryResponse, len(result.List))
	for i := range result.List {
		list[i] = *toCategoryDTO(&result.List[i])
	}
	response.Success(c, list)
}

// Get 分类详情
// @Summary      分类详情
// @Description  查询在线分类详情（匿名可访问）
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCategoryDTO(result))
}

// ListProducts 分类下的商品
// @Summary      分类商品列表
// @Description  查询在线分类下的在线商品（匿名可访问）
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=[]dto.ProductListItem}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id}/products [get]
func (h *CategoryHandler) ListProducts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.listProductsUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ProductListItem, len(result))
	for i, item := range result {
		list[i] = toProductListItemDTO(item)
	}
	response.Success(c, list)
}

// toCategoryDTO 应用层DTO → HTTP层DTO
func toCategoryDTO(r *appcategory.CategoryResponse) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ParentID:    r.ParentID,
		CreatedAt:   r.CreatedAt,
	}
}

// parseIDParam 解析路径中的ID参数
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, 40900, "无效的ID")
		return 0, false
	}
	return uint(id), true
}
