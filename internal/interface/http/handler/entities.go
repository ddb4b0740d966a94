package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/bookshop/internal/application/catalog"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/pkg/response"
)

// EntityHandler 作者/分类/顾客/门店HTTP处理器
// 四类实体的接口形态一致(新增/删除/列表,作者另有改名),集中在一个处理器
type EntityHandler struct {
	authorUseCase   *appcatalog.AuthorUseCase
	genreUseCase    *appcatalog.GenreUseCase
	customerUseCase *appcatalog.CustomerUseCase
	storeUseCase    *appcatalog.StoreUseCase
}

// NewEntityHandler 创建实体处理器
func NewEntityHandler(
	authorUseCase *appcatalog.AuthorUseCase,
	genreUseCase *appcatalog.GenreUseCase,
	customerUseCase *appcatalog.CustomerUseCase,
	storeUseCase *appcatalog.StoreUseCase,
) *EntityHandler {
	return &EntityHandler{
		authorUseCase:   authorUseCase,
		genreUseCase:    genreUseCase,
		customerUseCase: customerUseCase,
		storeUseCase:    storeUseCase,
	}
}

// bindName 解析名称型实体创建请求
func bindName(c *gin.Context) (string, bool) {
	var req dto.NamedEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return "", false
	}
	return req.Name, true
}

func toEntityList(entities []appcatalog.NamedEntity) *dto.NamedEntityListResponse {
	list := make([]dto.NamedEntityResponse, len(entities))
	for i, e := range entities {
		list[i] = dto.NamedEntityResponse{ID: e.ID, Name: e.Name}
	}
	return &dto.NamedEntityListResponse{List: list, Total: len(list)}
}

// =========================================
// 作者
// =========================================

// AddAuthor 新增作者
// @Summary      新增作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.NamedEntityRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.NamedEntityResponse}
// @Failure      200 {object} response.Response "40009 作者重名"
// @Router       /api/v1/authors [post]
func (h *EntityHandler) AddAuthor(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	result, err := h.authorUseCase.Add(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.NamedEntityResponse{ID: result.ID, Name: result.Name})
}

// RenameAuthor 作者改名
// @Summary      作者改名
// @Description  图书通过ID引用作者,改名后图书展示自动跟随
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "作者名"
// @Param        request body dto.RenameRequest true "新名称"
// @Success      200 {object} response.Response{data=dto.NamedEntityResponse}
// @Failure      200 {object} response.Response "40400 作者不存在 / 40009 新名称重复"
// @Router       /api/v1/authors/{name} [put]
func (h *EntityHandler) RenameAuthor(c *gin.Context) {
	var req dto.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.authorUseCase.Rename(c.Request.Context(), c.Param("name"), req.NewName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.NamedEntityResponse{ID: result.ID, Name: result.Name})
}

// RemoveAuthor 删除作者
// @Summary      删除作者
// @Description  不级联处理引用该作者的图书,展示时作者留空
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "作者名"
// @Success      200 {object} response.Response
// @Router       /api/v1/authors/{name} [delete]
func (h *EntityHandler) RemoveAuthor(c *gin.Context) {
	if err := h.authorUseCase.Remove(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=dto.NamedEntityListResponse}
// @Router       /api/v1/authors [get]
func (h *EntityHandler) ListAuthors(c *gin.Context) {
	response.Success(c, toEntityList(h.authorUseCase.List(c.Request.Context())))
}

// =========================================
// 分类
// =========================================

// AddGenre 新增分类
// @Summary      新增分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.NamedEntityRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.NamedEntityResponse}
// @Router       /api/v1/genres [post]
func (h *EntityHandler) AddGenre(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	result, err := h.genreUseCase.Add(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.NamedEntityResponse{ID: result.ID, Name: result.Name})
}

// RemoveGenre 删除分类
// @Summary      删除分类
// @Tags         分类
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "分类名"
// @Success      200 {object} response.Response
// @Router       /api/v1/genres/{name} [delete]
func (h *EntityHandler) RemoveGenre(c *gin.Context) {
	if err := h.genreUseCase.Remove(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListGenres 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=dto.NamedEntityListResponse}
// @Router       /api/v1/genres [get]
func (h *EntityHandler) ListGenres(c *gin.Context) {
	response.Success(c, toEntityList(h.genreUseCase.List(c.Request.Context())))
}

// =========================================
// 顾客
// =========================================

// AddCustomer 新增顾客
// @Summary      新增顾客
// @Tags         顾客
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.NamedEntityRequest true "顾客信息"
// @Success      200 {object} response.Response{data=dto.NamedEntityResponse}
// @Router       /api/v1/customers [post]
func (h *EntityHandler) AddCustomer(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	result, err := h.customerUseCase.Add(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.NamedEntityResponse{ID: result.ID, Name: result.Name})
}

// RemoveCustomer 删除顾客
// @Summary      删除顾客
// @Tags         顾客
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "顾客名"
// @Success      200 {object} response.Response
// @Router       /api/v1/customers/{name} [delete]
func (h *EntityHandler) RemoveCustomer(c *gin.Context) {
	if err := h.customerUseCase.Remove(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListCustomers 顾客列表
// @Summary      顾客列表
// @Tags         顾客
// @Produce      json
// @Success      200 {object} response.Response{data=dto.NamedEntityListResponse}
// @Router       /api/v1/customers [get]
func (h *EntityHandler) ListCustomers(c *gin.Context) {
	response.Success(c, toEntityList(h.customerUseCase.List(c.Request.Context())))
}

// =========================================
// 门店
// =========================================

// AddStore 新增门店
// @Summary      新增门店
// @Tags         门店
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.NamedEntityRequest true "门店信息"
// @Success      200 {object} response.Response{data=dto.NamedEntityResponse}
// @Router       /api/v1/stores [post]
func (h *EntityHandler) AddStore(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	result, err := h.storeUseCase.Add(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.NamedEntityResponse{ID: result.ID, Name: result.Name})
}

// RemoveStore 删除门店
// @Summary      删除门店
// @Tags         门店
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "门店名"
// @Success      200 {object} response.Response
// @Router       /api/v1/stores/{name} [delete]
func (h *EntityHandler) RemoveStore(c *gin.Context) {
	if err := h.storeUseCase.Remove(c.Request.Context(), c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListStores 门店列表
// @Summary      门店列表
// @Tags         门店
// @Produce      json
// @Success      200 {object} response.Response{data=dto.NamedEntityListResponse}
// @Router       /api/v1/stores [get]
func (h *EntityHandler) ListStores(c *gin.Context) {
	response.Success(c, toEntityList(h.storeUseCase.List(c.Request.Context())))
}
