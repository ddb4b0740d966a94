package integration

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 库存分配模块集成测试
//
// 测试场景覆盖:
// 1. 图书上架/下架与重复上架拒绝
// 2. 门店书架查询
// 3. 购买记录与购买历史
//
// 注意:购买历史断言要求服务配置inventory.purchase_scope为none或
// store(默认none);catalog范围会把已购图书整体删除,历史展示时跳过

// TestAssignAndUnassign 测试图书上架下架
func TestAssignAndUnassign(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestOperator(t, "库存测试员")

	store := AddTestEntity(t, token, "/stores", "测试门店")
	title := AddTestBook(t, token, "上架图书", 1250)
	storeBooks := BaseURL + "/stores/" + url.PathEscape(store) + "/books"

	t.Run("正常上架", func(t *testing.T) {
		resp := PostJSON(t, storeBooks, map[string]string{"title": title}, token)
		require.Equal(t, 0, resp.Code, "上架失败: %s", resp.Message)

		libResp := GetJSON(t, storeBooks, "")
		require.Equal(t, 0, libResp.Code)
		var lib LibraryData
		require.NoError(t, json.Unmarshal(libResp.Data, &lib))
		require.Len(t, lib.Books, 1)
		assert.Equal(t, title, lib.Books[0].Title)

		t.Logf("✓ 上架成功, 门店: %s", store)
	})

	t.Run("重复上架拒绝", func(t *testing.T) {
		resp := PostJSON(t, storeBooks, map[string]string{"title": title}, token)
		assert.Equal(t, 40010, resp.Code, "重复上架应返回已上架错误码")

		// 书架长度不变
		libResp := GetJSON(t, storeBooks, "")
		require.Equal(t, 0, libResp.Code)
		var lib LibraryData
		require.NoError(t, json.Unmarshal(libResp.Data, &lib))
		assert.Len(t, lib.Books, 1, "拒绝后书架长度不变")
	})

	t.Run("下架后书架为空且可重新上架", func(t *testing.T) {
		resp := DeleteJSON(t, storeBooks+"/"+url.PathEscape(title), token)
		require.Equal(t, 0, resp.Code, "下架失败: %s", resp.Message)

		libResp := GetJSON(t, storeBooks, "")
		require.Equal(t, 0, libResp.Code)
		var lib LibraryData
		require.NoError(t, json.Unmarshal(libResp.Data, &lib))
		assert.Empty(t, lib.Books)

		again := PostJSON(t, storeBooks, map[string]string{"title": title}, token)
		assert.Equal(t, 0, again.Code, "下架后重新上架应成功")
	})

	t.Run("下架未上架图书静默无操作", func(t *testing.T) {
		other := AddTestBook(t, token, "未上架图书", 500)
		resp := DeleteJSON(t, storeBooks+"/"+url.PathEscape(other), token)
		assert.Equal(t, 0, resp.Code, "没有匹配不是错误")
	})

	t.Run("门店不存在", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/stores/不存在的门店xyz/books",
			map[string]string{"title": title}, token)
		assert.Equal(t, 40400, resp.Code)
	})
}

// TestPurchaseHistory 测试购买记录与历史
func TestPurchaseHistory(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestOperator(t, "购买测试员")

	customer := AddTestEntity(t, token, "/customers", "测试顾客")
	store := AddTestEntity(t, token, "/stores", "购买门店")
	titleA := AddTestBook(t, token, "购买甲", 1250)
	titleB := AddTestBook(t, token, "购买乙", 980)

	buy := func(title string) *Response {
		return PostJSON(t, BaseURL+"/purchases", map[string]string{
			"customer": customer,
			"store":    store,
			"title":    title,
		}, token)
	}

	t.Run("购买记录按顺序追加", func(t *testing.T) {
		require.Equal(t, 0, buy(titleA).Code)
		require.Equal(t, 0, buy(titleB).Code)

		histResp := GetJSON(t, BaseURL+"/customers/"+url.PathEscape(customer)+"/purchases", "")
		require.Equal(t, 0, histResp.Code)

		var hist PurchaseHistoryData
		require.NoError(t, json.Unmarshal(histResp.Data, &hist))
		require.Len(t, hist.Books, 2, "两次购买应有两条记录")
		assert.Equal(t, titleA, hist.Books[0].Title, "历史按购买顺序排列")
		assert.Equal(t, titleB, hist.Books[1].Title)

		t.Logf("✓ 购买历史: %s -> %s", hist.Books[0].Title, hist.Books[1].Title)
	})

	t.Run("顾客不存在拒绝", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/purchases", map[string]string{
			"customer": "不存在的顾客xyz",
			"store":    store,
			"title":    titleA,
		}, token)
		assert.Equal(t, 40400, resp.Code)
	})

	t.Run("未登录不能记录购买", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/purchases", map[string]string{
			"customer": customer,
			"store":    store,
			"title":    titleA,
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})
}
