package dto

import "fmt"

// AddBookRequest HTTP图书录入请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
type AddBookRequest struct {
	Title  string `json:"title" binding:"required,max=200" example:"1984"`
	Author string `json:"author" binding:"required,max=100" example:"乔治·奥威尔"`
	Genre  string `json:"genre" binding:"required,max=100" example:"反乌托邦"`
	Price  int64  `json:"price" binding:"min=0,max=99999999" example:"1250"` // 价格(分),12.50元
}

// UpdateBookRequest HTTP图书更新请求
// 省略的字段保持原值
type UpdateBookRequest struct {
	NewTitle string `json:"new_title" binding:"omitempty,max=200" example:"动物农场"`
	Author   string `json:"author" binding:"omitempty,max=100" example:"乔治·奥威尔"`
	Genre    string `json:"genre" binding:"omitempty,max=100" example:"政治讽刺"`
	Price    *int64 `json:"price" binding:"omitempty,min=0,max=99999999" example:"1500"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID        uint   `json:"id,omitempty" example:"1"`
	Title     string `json:"title" example:"1984"`
	Author    string `json:"author" example:"乔治·奥威尔"`
	Genre     string `json:"genre" example:"反乌托邦"`
	Price     int64  `json:"price" example:"1250"`       // 价格(分)
	PriceYuan string `json:"price_yuan" example:"12.50"` // 价格(元),方便前端显示
}

// BookListResponse HTTP图书列表响应
type BookListResponse struct {
	List  []BookResponse `json:"list"`
	Total int            `json:"total" example:"3"`
}

// CombineBooksRequest HTTP图书组合请求
type CombineBooksRequest struct {
	Op     string `json:"op" binding:"required,oneof=combine difference scale" example:"combine"`
	TitleA string `json:"title_a" binding:"required,max=200" example:"1984"`
	TitleB string `json:"title_b" binding:"omitempty,max=200" example:"动物农场"`
	Factor int64  `json:"factor" binding:"omitempty" example:"3"` // 仅scale使用
}

// NamedEntityRequest 名称型实体(作者/分类/顾客/门店)的创建请求
type NamedEntityRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"乔治·奥威尔"`
}

// RenameRequest 改名请求
type RenameRequest struct {
	NewName string `json:"new_name" binding:"required,max=100" example:"George Orwell"`
}

// NamedEntityResponse 名称型实体响应
type NamedEntityResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"乔治·奥威尔"`
}

// NamedEntityListResponse 名称型实体列表响应
type NamedEntityListResponse struct {
	List  []NamedEntityResponse `json:"list"`
	Total int                   `json:"total" example:"2"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:1250分 → "12.50"
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
