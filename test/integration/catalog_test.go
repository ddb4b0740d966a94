package integration

import (
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 目录模块集成测试
//
// 测试场景覆盖:
// 1. 图书录入(需要认证)与重名拒绝
// 2. 按书名查询/更新/删除
// 3. 作者改名后图书展示跟随
// 4. 图书组合(合并/求差/缩放)

// TestBookLifecycle 测试图书完整生命周期
func TestBookLifecycle(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestOperator(t, "目录测试员")

	title := GenerateTestName("一九八四")

	t.Run("正常录入图书", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title":  title,
			"author": "乔治·奥威尔",
			"genre":  "反乌托邦",
			"price":  1250,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, token)
		require.Equal(t, 0, resp.Code, "录入应该成功: %s", resp.Message)

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "图书ID应该大于0")
		assert.Equal(t, title, data.Title)
		assert.Equal(t, "乔治·奥威尔", data.Author, "作者应自动建档并回显名称")
		assert.Equal(t, int64(1250), data.Price)

		t.Logf("✓ 录入成功, 图书ID: %d", data.ID)
	})

	t.Run("未登录不能录入", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title":  GenerateTestName("未授权图书"),
			"author": "测试作者",
			"genre":  "测试分类",
			"price":  100,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, "")
		assert.NotEqual(t, 0, resp.Code, "未登录应该失败")
	})

	t.Run("重名录入拒绝", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title":  title, // 与上面同名
			"author": "另一位作者",
			"genre":  "另一个分类",
			"price":  9999,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, token)
		assert.Equal(t, 40009, resp.Code, "重名应返回冲突错误码")

		// 原图书不受影响
		getResp := GetJSON(t, BaseURL+"/books/"+url.PathEscape(title), "")
		require.Equal(t, 0, getResp.Code)
		var data BookData
		require.NoError(t, json.Unmarshal(getResp.Data, &data))
		assert.Equal(t, int64(1250), data.Price, "重名录入不应覆盖已有图书")

		t.Logf("✓ 重名正确被拒绝: %s", resp.Message)
	})

	t.Run("更新价格后查询反映新值", func(t *testing.T) {
		resp := PutJSON(t, BaseURL+"/books/"+url.PathEscape(title), map[string]interface{}{
			"price": 1500,
		}, token)
		require.Equal(t, 0, resp.Code, "更新应该成功: %s", resp.Message)

		getResp := GetJSON(t, BaseURL+"/books/"+url.PathEscape(title), "")
		require.Equal(t, 0, getResp.Code)
		var data BookData
		require.NoError(t, json.Unmarshal(getResp.Data, &data))
		assert.Equal(t, int64(1500), data.Price)
		assert.Equal(t, "15.00", data.PriceYuan)
	})

	t.Run("删除后查询返回不存在", func(t *testing.T) {
		resp := DeleteJSON(t, BaseURL+"/books/"+url.PathEscape(title), token)
		require.Equal(t, 0, resp.Code, "删除应该成功: %s", resp.Message)

		getResp := GetJSON(t, BaseURL+"/books/"+url.PathEscape(title), "")
		assert.Equal(t, 40400, getResp.Code, "删除后应返回不存在")

		// 重复删除同样返回不存在
		again := DeleteJSON(t, BaseURL+"/books/"+url.PathEscape(title), token)
		assert.Equal(t, 40400, again.Code)
	})
}

// TestAuthorRenameFollows 测试作者改名后图书展示跟随
func TestAuthorRenameFollows(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestOperator(t, "作者测试员")

	oldName := GenerateTestName("奥威尔")
	newName := GenerateTestName("乔治·奥威尔")

	// 建作者并录入引用他的图书
	resp := PostJSON(t, BaseURL+"/authors", map[string]string{"name": oldName}, token)
	require.Equal(t, 0, resp.Code, "创建作者失败: %s", resp.Message)

	title := GenerateTestName("动物农场")
	bookResp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
		"title":  title,
		"author": oldName,
		"genre":  "寓言",
		"price":  980,
	}, token)
	require.Equal(t, 0, bookResp.Code)

	// 改名
	renameResp := PutJSON(t, BaseURL+"/authors/"+url.PathEscape(oldName),
		map[string]string{"new_name": newName}, token)
	require.Equal(t, 0, renameResp.Code, "改名失败: %s", renameResp.Message)

	// 图书展示跟随新名称
	getResp := GetJSON(t, BaseURL+"/books/"+url.PathEscape(title), "")
	require.Equal(t, 0, getResp.Code)
	var data BookData
	require.NoError(t, json.Unmarshal(getResp.Data, &data))
	assert.Equal(t, newName, data.Author, "改名后图书展示应解析到新名称")

	t.Logf("✓ 作者改名跟随: %s -> %s", oldName, newName)
}

// TestCombineBooks 测试图书组合
func TestCombineBooks(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestOperator(t, "组合测试员")

	titleA := AddTestBook(t, token, "组合甲", 1250)
	titleB := AddTestBook(t, token, "组合乙", 980)

	t.Run("合并价格相加", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books/combine", map[string]interface{}{
			"op":      "combine",
			"title_a": titleA,
			"title_b": titleB,
		}, "")
		require.Equal(t, 0, resp.Code, "组合失败: %s", resp.Message)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, fmt.Sprintf("%s %s", titleA, titleB), data.Title)
		assert.Equal(t, int64(2230), data.Price)
	})

	t.Run("缩放价格乘倍数", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books/combine", map[string]interface{}{
			"op":      "scale",
			"title_a": titleA,
			"factor":  3,
		}, "")
		require.Equal(t, 0, resp.Code)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, int64(3750), data.Price)
		assert.Equal(t, titleA, data.Title, "缩放不改名称")
	})

	t.Run("合成结果不进目录", func(t *testing.T) {
		combined := fmt.Sprintf("%s %s", titleA, titleB)
		getResp := GetJSON(t, BaseURL+"/books/"+url.PathEscape(combined), "")
		assert.Equal(t, 40400, getResp.Code, "合成书不应出现在目录里")
	})
}
