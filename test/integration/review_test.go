package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 评论模块集成测试
//
// 核心验证点：
// 1. 评论写入与商品打分重算在同一个工作单元内（读到的打分永远与在线评论一致）
// 2. 打分 = 在线评论grade的算术平均，保留两位小数，无评论为0.00
// 3. 买家创建、管理员删除的角色边界
// 4. 对已下架商品发评论返回引用不存在

// getProductRating 查询商品当前打分
func getProductRating(t *testing.T, productID uint) string {
	t.Helper()

	resp := GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), "")
	require.Equal(t, 0, resp.Code, "查询商品详情失败: %s", resp.Message)

	var data ProductData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	return data.Rating
}

// createReview 创建评论并返回评论ID
func createReview(t *testing.T, token string, productID uint, grade int) uint {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
		"product_id": productID,
		"grade":      grade,
		"comment":    "集成测试评论",
	}, token)
	require.Equal(t, 0, resp.Code, "创建评论失败: %s", resp.Message)

	var data ReviewData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	return data.ID
}

// TestReviewRatingFlow 测试评论与打分重算流程
func TestReviewRatingFlow(t *testing.T) {
	RequireServer(t)
	adminToken := LoginAdmin(t)
	categoryID := CreateTestCategory(t, adminToken, "评论测试分类")
	_, sellerToken := RegisterTestUser(t, "review_seller", "seller")
	_, buyerToken := RegisterTestUser(t, "review_buyer", "buyer")

	t.Run("评论创建后打分同步更新", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "打分测试商品")
		assert.Equal(t, "0.00", getProductRating(t, productID), "无评论时打分为0.00")

		createReview(t, buyerToken, productID, 4)
		assert.Equal(t, "4.00", getProductRating(t, productID))

		createReview(t, buyerToken, productID, 5)
		assert.Equal(t, "4.50", getProductRating(t, productID), "打分应为(4+5)/2")

		createReview(t, buyerToken, productID, 3)
		assert.Equal(t, "4.00", getProductRating(t, productID), "打分应为(4+5+3)/3")
	})

	t.Run("管理员删除评论后打分回落", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "删除评论测试商品")
		reviewID := createReview(t, buyerToken, productID, 2)
		createReview(t, buyerToken, productID, 5)
		require.Equal(t, "3.50", getProductRating(t, productID))

		deleteResp := DeleteJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), adminToken)
		require.Equal(t, 0, deleteResp.Code, "管理员删除评论应该成功")

		assert.Equal(t, "5.00", getProductRating(t, productID), "删除后打分只剩存活评论的均值")

		// 评论列表不再包含已删除评论
		listResp := GetJSON(t, fmt.Sprintf("%s/products/%d/reviews", BaseURL, productID), "")
		require.Equal(t, 0, listResp.Code)
		var listData struct {
			List []ReviewData `json:"list"`
		}
		err := json.Unmarshal(listResp.Data, &listData)
		require.NoError(t, err)
		assert.Len(t, listData.List, 1)
	})

	t.Run("删除最后一条评论打分归零", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "归零测试商品")
		reviewID := createReview(t, buyerToken, productID, 5)

		deleteResp := DeleteJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), adminToken)
		require.Equal(t, 0, deleteResp.Code)

		assert.Equal(t, "0.00", getProductRating(t, productID), "无在线评论时打分回到0.00")
	})

	t.Run("卖家和管理员不能发评论", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "角色边界商品")

		sellerResp := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"product_id": productID,
			"grade":      5,
		}, sellerToken)
		assert.Equal(t, 40104, sellerResp.Code, "卖家发评论应返回无权限")

		adminResp := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"product_id": productID,
			"grade":      5,
		}, adminToken)
		assert.Equal(t, 40104, adminResp.Code, "管理员发评论应返回无权限")
	})

	t.Run("买家不能删除评论", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "删除权限商品")
		reviewID := createReview(t, buyerToken, productID, 4)

		resp := DeleteJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), buyerToken)
		assert.Equal(t, 40104, resp.Code, "买家删除评论应返回无权限")
	})

	t.Run("对已下架商品发评论应失败", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "已下架评论商品")
		deleteResp := DeleteJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, productID), sellerToken)
		require.Equal(t, 0, deleteResp.Code)

		resp := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"product_id": productID,
			"grade":      5,
		}, buyerToken)
		assert.Equal(t, 40410, resp.Code, "商品是评论的引用，已下架应返回引用不存在")
	})

	t.Run("打分越界被拒绝", func(t *testing.T) {
		productID := CreateTestProduct(t, sellerToken, categoryID, "越界打分商品")

		for _, grade := range []int{0, 6, -3, 100} {
			resp := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
				"product_id": productID,
				"grade":      grade,
			}, buyerToken)
			assert.Equal(t, 40900, resp.Code, "grade=%d应返回参数错误", grade)
		}

		assert.Equal(t, "0.00", getProductRating(t, productID), "越界打分不应影响商品打分")
	})
}
