package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCombine 测试图书合并
func TestCombine(t *testing.T) {
	a := BookView{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250}
	b := BookView{Title: "动物农场", Author: "奥威尔", Genre: "寓言", Price: 980}

	c := Combine(a, b)

	assert.Equal(t, "1984 动物农场", c.Title, "书名以空格拼接")
	assert.Equal(t, "奥威尔 奥威尔", c.Author)
	assert.Equal(t, "反乌托邦 寓言", c.Genre)
	assert.Equal(t, int64(2230), c.Price, "价格相加")

	// 入参不被修改
	assert.Equal(t, int64(1250), a.Price)
	assert.Equal(t, "动物农场", b.Title)
}

// TestDifference 测试图书求差
func TestDifference(t *testing.T) {
	a := BookView{Title: "1984", Price: 1250}
	b := BookView{Title: "动物农场", Price: 1500}

	d := Difference(a, b)

	assert.Equal(t, "1984 动物农场", d.Title)
	assert.Equal(t, int64(-250), d.Price, "合成值允许为负,不做校验")
}

// TestScale 测试价格缩放
func TestScale(t *testing.T) {
	v := BookView{Title: "1984", Author: "奥威尔", Price: 1250}

	s := Scale(v, 3)

	assert.Equal(t, int64(3750), s.Price)
	assert.Equal(t, "1984", s.Title, "名称字段不变")
	assert.Equal(t, "奥威尔", s.Author)

	zero := Scale(v, 0)
	assert.Equal(t, int64(0), zero.Price)
}

// TestEqualViews 测试视图相等性
func TestEqualViews(t *testing.T) {
	a := BookView{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250}
	b := BookView{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250}
	c := Scale(a, 2)

	assert.True(t, EqualViews(a, b))
	assert.False(t, EqualViews(a, c))
}

// TestJoinFieldEmptySide 测试一侧为空时的拼接
func TestJoinFieldEmptySide(t *testing.T) {
	a := BookView{Title: "1984", Author: "奥威尔", Price: 1250}
	b := BookView{Title: "无名书", Author: "", Price: 100}

	c := Combine(a, b)
	assert.Equal(t, "奥威尔", c.Author, "一侧为空时不引入多余空格")

	d := Combine(b, a)
	assert.Equal(t, "奥威尔", d.Author)
}

// TestViewOfDanglingRefs 测试悬空引用的视图解析
func TestViewOfDanglingRefs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	author, err := svc.AddAuthor(ctx, "奥威尔")
	require.NoError(t, err)
	genre, err := svc.AddGenre(ctx, "反乌托邦")
	require.NoError(t, err)
	b, err := svc.AddBook(ctx, "1984", author.ID, genre.ID, 1250)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveGenre(ctx, "反乌托邦"))

	view := svc.ViewOf(b)
	assert.Equal(t, "奥威尔", view.Author)
	assert.Equal(t, "", view.Genre, "已删除的分类解析为空串")
}
