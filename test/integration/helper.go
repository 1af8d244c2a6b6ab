package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 使用真实的数据库和Redis，测试完整的API流程
// （Handler → UseCase → Service → Repository → Database）
//
// 运行方式：
//   make test-integration   # 需要先启动Docker环境和API服务
//   go test -v ./test/integration/...

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second

	// 管理员账号由数据库迁移脚本预置（角色无法通过注册接口获得）
	AdminEmail    = "admin@mall.local"
	AdminPassword = "Admin1234"
)

// RequireServer API服务不可达时跳过测试
// 集成测试依赖运行中的服务，本地没有环境时不应让测试失败
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("API服务不可达，跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterData 注册响应数据
type RegisterData struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CategoryData 分类响应数据
type CategoryData struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}

// ProductData 商品响应数据
type ProductData struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	PriceYuan  string `json:"price_yuan"`
	Stock      int    `json:"stock"`
	CategoryID uint   `json:"category_id"`
	SellerID   uint   `json:"seller_id"`
	Rating     string `json:"rating"`
}

// ReviewData 评论响应数据
type ReviewData struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Grade     int    `json:"grade"`
	Comment   string `json:"comment"`
}

// doJSON 发送带JSON body的请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, "POST", url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, "PUT", url, data, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, "DELETE", url, nil, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, "GET", url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳确保测试重复运行时邮箱不冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// RegisterTestUser 注册测试用户并返回Token
// role只能是buyer或seller，管理员账号走LoginAdmin
func RegisterTestUser(t *testing.T, nickname, role string) (email string, token string) {
	t.Helper()

	email = GenerateTestEmail(nickname)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
		"nickname": nickname,
		"role":     role,
	}

	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// LoginAdmin 登录预置管理员账号并返回Token
// 管理员账号不存在时跳过测试（环境未初始化）
func LoginAdmin(t *testing.T) string {
	t.Helper()

	loginReq := map[string]string{
		"email":    AdminEmail,
		"password": AdminPassword,
	}

	loginResp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	if loginResp.Code != 0 {
		t.Skipf("管理员账号不可用（需要数据库迁移预置），跳过: %s", loginResp.Message)
	}

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return loginData.AccessToken
}

// CreateTestCategory 创建测试分类并返回分类ID
func CreateTestCategory(t *testing.T, adminToken, name string) uint {
	t.Helper()

	categoryReq := map[string]interface{}{
		"name":        fmt.Sprintf("%s_%d", name, time.Now().UnixNano()),
		"description": "集成测试用分类",
	}

	resp := PostJSON(t, BaseURL+"/categories", categoryReq, adminToken)
	require.Equal(t, 0, resp.Code, "创建分类失败: %s", resp.Message)

	var data CategoryData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析分类响应失败")

	return data.ID
}

// CreateTestProduct 上架测试商品并返回商品ID
func CreateTestProduct(t *testing.T, sellerToken string, categoryID uint, name string) uint {
	t.Helper()

	productReq := map[string]interface{}{
		"name":        name,
		"description": "集成测试用商品",
		"price":       8900, // 89.00元
		"stock":       50,
		"category_id": categoryID,
	}

	resp := PostJSON(t, BaseURL+"/products", productReq, sellerToken)
	require.Equal(t, 0, resp.Code, "商品上架失败: %s", resp.Message)

	var data ProductData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析商品响应失败")

	return data.ID
}
