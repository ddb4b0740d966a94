package dto

// AssignBookRequest HTTP图书上架/下架请求
type AssignBookRequest struct {
	Title string `json:"title" binding:"required,max=200" example:"1984"`
}

// PurchaseRequest HTTP购买请求
type PurchaseRequest struct {
	Customer string `json:"customer" binding:"required,max=100" example:"张三"`
	Store    string `json:"store" binding:"required,max=100" example:"中央门店"`
	Title    string `json:"title" binding:"required,max=200" example:"1984"`
}

// LibraryResponse HTTP门店书架响应
type LibraryResponse struct {
	Store string         `json:"store" example:"中央门店"`
	Books []BookResponse `json:"books"`
}

// PurchaseHistoryResponse HTTP购买历史响应
type PurchaseHistoryResponse struct {
	Customer string         `json:"customer" example:"张三"`
	Books    []BookResponse `json:"books"`
}
