package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/bookshop/internal/application/catalog"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	addBookUseCase      *appcatalog.AddBookUseCase
	updateBookUseCase   *appcatalog.UpdateBookUseCase
	removeBookUseCase   *appcatalog.RemoveBookUseCase
	listBooksUseCase    *appcatalog.ListBooksUseCase
	findBookUseCase     *appcatalog.FindBookUseCase
	combineBooksUseCase *appcatalog.CombineBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	addBookUseCase *appcatalog.AddBookUseCase,
	updateBookUseCase *appcatalog.UpdateBookUseCase,
	removeBookUseCase *appcatalog.RemoveBookUseCase,
	listBooksUseCase *appcatalog.ListBooksUseCase,
	findBookUseCase *appcatalog.FindBookUseCase,
	combineBooksUseCase *appcatalog.CombineBooksUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:      addBookUseCase,
		updateBookUseCase:   updateBookUseCase,
		removeBookUseCase:   removeBookUseCase,
		listBooksUseCase:    listBooksUseCase,
		findBookUseCase:     findBookUseCase,
		combineBooksUseCase: combineBooksUseCase,
	}
}

// AddBook 录入图书
// @Summary      录入图书
// @Description  按书名/作者/分类/价格录入新书,重名拒绝
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40009 书名重复 / 40900 参数错误"
// @Router       /api/v1/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), appcatalog.AddBookRequest{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookResponse{
		ID:        result.ID,
		Title:     result.Title,
		Author:    result.Author,
		Genre:     result.Genre,
		Price:     result.Price,
		PriceYuan: dto.FormatPriceYuan(result.Price),
	})
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按加入顺序返回全部在册图书
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.BookResponse, len(result.Books))
	for i, v := range result.Books {
		list[i] = dto.BookResponse{
			Title:     v.Title,
			Author:    v.Author,
			Genre:     v.Genre,
			Price:     v.Price,
			PriceYuan: dto.FormatPriceYuan(v.Price),
		}
	}
	response.Success(c, &dto.BookListResponse{List: list, Total: result.Total})
}

// GetBook 按书名查询图书
// @Summary      查询图书
// @Tags         图书
// @Produce      json
// @Param        title path string true "书名"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40400 图书不存在"
// @Router       /api/v1/books/{title} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	title := c.Param("title")

	view, err := h.findBookUseCase.Execute(c.Request.Context(), title)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookResponse{
		Title:     view.Title,
		Author:    view.Author,
		Genre:     view.Genre,
		Price:     view.Price,
		PriceYuan: dto.FormatPriceYuan(view.Price),
	})
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  按字段更新;省略的字段保持原值,全部省略则无操作
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title path string true "书名"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40400 图书不存在 / 40009 新书名重复"
// @Router       /api/v1/books/{title} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	title := c.Param("title")

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appcatalog.UpdateBookRequest{
		Title:    title,
		NewTitle: req.NewTitle,
		Author:   req.Author,
		Genre:    req.Genre,
		Price:    req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookResponse{
		ID:        result.ID,
		Title:     result.Title,
		Author:    result.Author,
		Genre:     result.Genre,
		Price:     result.Price,
		PriceYuan: dto.FormatPriceYuan(result.Price),
	})
}

// RemoveBook 删除图书
// @Summary      删除图书
// @Description  从目录删除;不级联清理门店书架与购买历史
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        title path string true "书名"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "40400 图书不存在"
// @Router       /api/v1/books/{title} [delete]
func (h *BookHandler) RemoveBook(c *gin.Context) {
	title := c.Param("title")

	if err := h.removeBookUseCase.Execute(c.Request.Context(), title); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// CombineBooks 图书组合
// @Summary      图书组合
// @Description  两本书的展示合成:名称拼接,价格相加/相减/缩放,结果不进目录
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CombineBooksRequest true "组合操作"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Router       /api/v1/books/combine [post]
func (h *BookHandler) CombineBooks(c *gin.Context) {
	var req dto.CombineBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	view, err := h.combineBooksUseCase.Execute(c.Request.Context(), appcatalog.CombineBooksRequest{
		Op:     req.Op,
		TitleA: req.TitleA,
		TitleB: req.TitleB,
		Factor: req.Factor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookResponse{
		Title:     view.Title,
		Author:    view.Author,
		Genre:     view.Genre,
		Price:     view.Price,
		PriceYuan: dto.FormatPriceYuan(view.Price),
	})
}
