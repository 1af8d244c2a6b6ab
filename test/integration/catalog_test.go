package integration

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 目录模块集成测试
//
// 测试场景覆盖：
// 1. 分类的创建/查询/下线（管理员专属）
// 2. 商品的上架/更新/下架（卖家专属，且只能操作本人商品）
// 3. 软删除后读路径不可见、重复删除返回不存在
// 4. 角色越权的统一拒绝

// TestCategoryLifecycle 测试分类生命周期
func TestCategoryLifecycle(t *testing.T) {
	RequireServer(t)
	adminToken := LoginAdmin(t)

	t.Run("管理员创建分类", func(t *testing.T) {
		name := fmt.Sprintf("数码产品_%d", time.Now().UnixNano())
		resp := PostJSON(t, BaseURL+"/categories", map[string]interface{}{
			"name":        name,
			"description": "手机、电脑及周边配件",
		}, adminToken)

		require.Equal(t, 0, resp.Code, "创建分类应该成功: %s", resp.Message)

		var data CategoryData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.NotZero(t, data.ID)
		assert.Equal(t, name, data.Name)
		assert.Nil(t, data.ParentID, "顶级分类没有父分类")

		t.Logf("✓ 分类创建成功，ID: %d", data.ID)
	})

	t.Run("买家创建分类应被拒绝", func(t *testing.T) {
		_, buyerToken := RegisterTestUser(t, "category_buyer", "buyer")

		resp := PostJSON(t, BaseURL+"/categories", map[string]interface{}{
			"name": "越权分类",
		}, buyerToken)

		assert.Equal(t, 40104, resp.Code, "买家创建分类应返回无权限")
	})

	t.Run("子分类引用已下线父分类应失败", func(t *testing.T) {
		parentID := CreateTestCategory(t, adminToken, "临时父分类")

		// 下线父分类
		deleteResp := DeleteJSON(t, fmt.Sprintf("%s/categories/%d", BaseURL, parentID), adminToken)
		require.Equal(t, 0, deleteResp.Code, "下线分类应该成功")

		// 引用已下线分类作为父分类
		resp := PostJSON(t, BaseURL+"/categories", map[string]interface{}{
			"name":      fmt.Sprintf("孤儿分类_%d", time.Now().UnixNano()),
			"parent_id": parentID,
		}, adminToken)

		assert.Equal(t, 40410, resp.Code, "引用已下线父分类应返回引用不存在")
	})

	t.Run("下线后分类对读路径不可见", func(t *testing.T) {
		categoryID := CreateTestCategory(t, adminToken, "待下线分类")

		deleteResp := DeleteJSON(t, fmt.Sprintf("%s/categories/%d", BaseURL, categoryID), adminToken)
		require.Equal(t, 0, deleteResp.Code)

		getResp := GetJSON(t, fmt.Sprintf("%s/categories/%d", BaseURL, categoryID), "")
		assert.Equal(t, 40402, getResp.Code, "已下线分类详情应返回不存在")

		// 重复删除：目标已是终态
		repeatResp := DeleteJSON(t, fmt.Sprintf("%s/categories/%d", BaseURL, categoryID), adminToken)
		assert.Equal(t, 40402, repeatResp.Code, "重复下线应返回不存在")
	})
}

// TestProductLifecycle 测试商品生命周期
func TestProductLifecycle(t *testing.T) {
	RequireServer(t)
	adminToken := LoginAdmin(t)
	categoryID := CreateTestCategory(t, adminToken, "商品测试分类")
	_, sellerToken := RegisterTestUser(t, "product_seller", "seller")

	t.Run("卖家上架商品", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/products", map[string]interface{}{
			"name":        "机械键盘",
			"description": "87键茶轴机械键盘",
			"price":       29900,
			"stock":       50,
			"category_id": categoryID,
		}, sellerToken)

		require.Equal(t, 0, resp.Code, "商品上架应该成功: %s", resp.Message)

		var data ProductData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.NotZero(t, data.ID)
		assert.Equal(t, "299.00", data.PriceYuan)
		assert.Equal(t, "0.00", data.Rating, "新商品无评论，打分为0.00")
		assert.NotZero(t, data.SellerID, "卖家ID应取自令牌")

		t.Logf("✓ 商品上架成功，ID: %d", data.ID)
	})

	t.Run("买家上架商品应被拒绝", func(t *testing.T) {
		_, buyerToken := RegisterTestUser(t, "product_buyer", "buyer")

		resp := PostJSON(t, BaseURL+"/products", map[string]interface{}{
			"name":        "越权商品",
			"price":       100,
			"category_id": categoryID,
		}, buyerToken)

		assert.Equal(t, 40104, resp.Code, "买家上架商品应返回无权限")
	})

	t.Run("卖家不能更新他人商品", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "归属测试商品")
		_, otherSellerToken := RegisterTestUser(t, "other_seller", "seller")

		resp := PutJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), map[string]interface{}{
			"name":        "篡改商品",
			"price":       1,
			"category_id": categoryID,
		}, otherSellerToken)

		assert.Equal(t, 40104, resp.Code, "非本人商品应返回无权限，而非不存在")
	})

	t.Run("引用已下线分类上架商品应失败", func(t *testing.T) {
		deadCategoryID := CreateTestCategory(t, adminToken, "待下线商品分类")
		deleteResp := DeleteJSON(t, fmt.Sprintf("%s/categories/%d", BaseURL, deadCategoryID), adminToken)
		require.Equal(t, 0, deleteResp.Code)

		resp := PostJSON(t, BaseURL+"/products", map[string]interface{}{
			"name":        "无家可归商品",
			"price":       100,
			"category_id": deadCategoryID,
		}, sellerToken)

		assert.Equal(t, 40410, resp.Code, "引用已下线分类应返回引用不存在")
	})

	t.Run("下架后商品对读路径不可见", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "待下架商品")

		deleteResp := DeleteJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), sellerToken)
		require.Equal(t, 0, deleteResp.Code, "卖家下架本人商品应该成功")

		getResp := GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), "")
		assert.Equal(t, 40403, getResp.Code, "已下架商品详情应返回不存在")

		repeatResp := DeleteJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), sellerToken)
		assert.Equal(t, 40403, repeatResp.Code, "重复下架应返回不存在")
	})

	t.Run("商品列表分页查询", func(t *testing.T) {
		CreateTestProduct(t, sellerToken, categoryID, "列表测试商品A")
		CreateTestProduct(t, sellerToken, categoryID, "列表测试商品B")

		resp := GetJSON(t, BaseURL+"/products?page=1&page_size=10", "")
		require.Equal(t, 0, resp.Code, "商品列表查询应该成功")

		var page struct {
			List     []json.RawMessage `json:"list"`
			Total    int64             `json:"total"`
			Page     int               `json:"page"`
			PageSize int               `json:"page_size"`
		}
		err := json.Unmarshal(resp.Data, &page)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, page.Total, int64(2))
		assert.Equal(t, 1, page.Page)
	})
}
