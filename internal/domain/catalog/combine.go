package catalog

// BookView 展示视图:ID引用解析为名称后的扁平图书记录
// 说明:悬空引用(作者/分类已删除)解析为空串,由展示层决定呈现方式
type BookView struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Price  int64  `json:"price"` // 分
}

// ViewOf 将图书实体解析为展示视图
func (s *Service) ViewOf(b *Book) BookView {
	v := BookView{Title: b.Title, Price: b.Price}
	if a, ok := s.authors.getByID(b.AuthorID); ok {
		v.Author = a.Name
	}
	if g, ok := s.genres.getByID(b.GenreID); ok {
		v.Genre = g.Name
	}
	return v
}

// 图书组合器
// 说明:由两本书拼出一本"合成书"的展示功能,语义是字符串拼接加价格加减。
// 刻意实现为具名纯函数而不是运算符风格的方法,合成结果不进目录。

// Combine 合并两本书:名称字段拼接,价格相加
func Combine(a, b BookView) BookView {
	return BookView{
		Title:  joinField(a.Title, b.Title),
		Author: joinField(a.Author, b.Author),
		Genre:  joinField(a.Genre, b.Genre),
		Price:  a.Price + b.Price,
	}
}

// Difference 求差:名称字段拼接,价格相减(可能为负,合成值不做校验)
func Difference(a, b BookView) BookView {
	return BookView{
		Title:  joinField(a.Title, b.Title),
		Author: joinField(a.Author, b.Author),
		Genre:  joinField(a.Genre, b.Genre),
		Price:  a.Price - b.Price,
	}
}

// Scale 价格按整数倍缩放,名称字段不变
func Scale(v BookView, n int64) BookView {
	v.Price = v.Price * n
	return v
}

// EqualViews 视图相等性:逐字段比较
func EqualViews(a, b BookView) bool {
	return a == b
}

// joinField 拼接名称字段;一侧为空时不引入多余空格
func joinField(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
