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
// 这些测试要求服务已在本机启动(依赖MySQL/Redis);
// 服务不可达时整组跳过,不算失败

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// BookData 图书响应数据
type BookData struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List  []BookData `json:"list"`
	Total int        `json:"total"`
}

// EntityData 作者/分类/顾客/门店响应数据
type EntityData struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LibraryData 门店书架响应数据
type LibraryData struct {
	Store string     `json:"store"`
	Books []BookData `json:"books"`
}

// PurchaseHistoryData 顾客购买历史响应数据
type PurchaseHistoryData struct {
	Customer string     `json:"customer"`
	Books    []BookData `json:"books"`
}

// RequireServer 检查服务是否可达,不可达时跳过当前测试
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务不可达,跳过集成测试: %v", err)
	}
	resp.Body.Close()
}

// doJSON 发送携带JSON体的请求并解析响应
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
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// GenerateTestName 生成唯一的测试名称,避免重复运行时重名冲突
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// RegisterTestOperator 注册测试操作员并返回Token
func RegisterTestOperator(t *testing.T, nickname string) (username string, token string) {
	username = fmt.Sprintf("op_%d", time.Now().UnixNano()%1000000000)
	registerReq := map[string]string{
		"username": username,
		"password": "Test1234",
		"nickname": nickname,
	}

	registerResp := PostJSON(t, BaseURL+"/operators/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"username": username,
		"password": "Test1234",
	}
	loginResp := PostJSON(t, BaseURL+"/operators/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return username, loginData.AccessToken
}

// AddTestBook 录入测试图书并返回书名
func AddTestBook(t *testing.T, token, prefix string, price int64) string {
	title := GenerateTestName(prefix)
	bookReq := map[string]interface{}{
		"title":  title,
		"author": "集成测试作者",
		"genre":  "集成测试分类",
		"price":  price,
	}

	bookResp := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, bookResp.Code, "图书录入失败: %s", bookResp.Message)
	return title
}

// AddTestEntity 创建名称型实体(门店/顾客等)并返回名称
func AddTestEntity(t *testing.T, token, path, prefix string) string {
	name := GenerateTestName(prefix)
	resp := PostJSON(t, BaseURL+path, map[string]string{"name": name}, token)
	require.Equal(t, 0, resp.Code, "创建实体失败(%s): %s", path, resp.Message)
	return name
}
