package handler

import (
	"github.com/gin-gonic/gin"

	appinventory "github.com/xiebiao/bookshop/internal/application/inventory"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// InventoryHandler 库存分配HTTP处理器
type InventoryHandler struct {
	assignUseCase          *appinventory.AssignBookUseCase
	unassignUseCase        *appinventory.UnassignBookUseCase
	storeLibraryUseCase    *appinventory.StoreLibraryUseCase
	purchaseUseCase        *appinventory.PurchaseUseCase
	purchaseHistoryUseCase *appinventory.PurchaseHistoryUseCase
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(
	assignUseCase *appinventory.AssignBookUseCase,
	unassignUseCase *appinventory.UnassignBookUseCase,
	storeLibraryUseCase *appinventory.StoreLibraryUseCase,
	purchaseUseCase *appinventory.PurchaseUseCase,
	purchaseHistoryUseCase *appinventory.PurchaseHistoryUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		assignUseCase:          assignUseCase,
		unassignUseCase:        unassignUseCase,
		storeLibraryUseCase:    storeLibraryUseCase,
		purchaseUseCase:        purchaseUseCase,
		purchaseHistoryUseCase: purchaseHistoryUseCase,
	}
}

// AssignBook 图书上架
// @Summary      图书上架
// @Description  把在册图书分配到门店书架;同名图书重复上架拒绝
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "门店名"
// @Param        request body dto.AssignBookRequest true "图书"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "40010 已在书架上 / 40400 门店或图书不存在"
// @Router       /api/v1/stores/{name}/books [post]
func (h *InventoryHandler) AssignBook(c *gin.Context) {
	var req dto.AssignBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	err := h.assignUseCase.Execute(c.Request.Context(), appinventory.AssignBookRequest{
		Store: c.Param("name"),
		Title: req.Title,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UnassignBook 图书下架
// @Summary      图书下架
// @Description  移除书架上所有匹配条目;没有匹配时静默无操作
// @Tags         库存
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "门店名"
// @Param        title path string true "书名"
// @Success      200 {object} response.Response
// @Router       /api/v1/stores/{name}/books/{title} [delete]
func (h *InventoryHandler) UnassignBook(c *gin.Context) {
	err := h.unassignUseCase.Execute(c.Request.Context(), appinventory.AssignBookRequest{
		Store: c.Param("name"),
		Title: c.Param("title"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// StoreLibrary 门店书架
// @Summary      门店书架
// @Description  门店当前在架图书;残留的已删图书引用跳过
// @Tags         库存
// @Produce      json
// @Param        name path string true "门店名"
// @Success      200 {object} response.Response{data=dto.LibraryResponse}
// @Router       /api/v1/stores/{name}/books [get]
func (h *InventoryHandler) StoreLibrary(c *gin.Context) {
	result, err := h.storeLibraryUseCase.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	books := make([]dto.BookResponse, len(result.Books))
	for i, v := range result.Books {
		books[i] = dto.BookResponse{
			Title:     v.Title,
			Author:    v.Author,
			Genre:     v.Genre,
			Price:     v.Price,
			PriceYuan: dto.FormatPriceYuan(v.Price),
		}
	}
	response.Success(c, &dto.LibraryResponse{Store: result.Store, Books: books})
}

// Purchase 记录购买
// @Summary      记录购买
// @Description  追加购买记录;随后按配置的副作用范围处理书架/目录
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PurchaseRequest true "购买信息"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "40400 顾客/门店/图书不存在"
// @Router       /api/v1/purchases [post]
func (h *InventoryHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	err := h.purchaseUseCase.Execute(c.Request.Context(), appinventory.PurchaseRequest{
		Customer: req.Customer,
		Store:    req.Store,
		Title:    req.Title,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PurchaseHistory 顾客购买历史
// @Summary      顾客购买历史
// @Description  按购买顺序返回;残留的已删图书引用跳过
// @Tags         顾客
// @Produce      json
// @Param        name path string true "顾客名"
// @Success      200 {object} response.Response{data=dto.PurchaseHistoryResponse}
// @Router       /api/v1/customers/{name}/purchases [get]
func (h *InventoryHandler) PurchaseHistory(c *gin.Context) {
	result, err := h.purchaseHistoryUseCase.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	books := make([]dto.BookResponse, len(result.Books))
	for i, v := range result.Books {
		books[i] = dto.BookResponse{
			Title:     v.Title,
			Author:    v.Author,
			Genre:     v.Genre,
			Price:     v.Price,
			PriceYuan: dto.FormatPriceYuan(v.Price),
		}
	}
	response.Success(c, &dto.PurchaseHistoryResponse{Customer: result.Customer, Books: books})
}
