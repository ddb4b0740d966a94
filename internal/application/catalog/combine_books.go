package catalog

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// CombineBooksUseCase 图书组合用例
// 把两本在册图书按组合器拼成一条"合成"展示记录:
// 名称字段拼接,价格按操作相加/相减/缩放。合成结果只用于展示,不进目录
type CombineBooksUseCase struct {
	catalogService *catalog.Service
}

// NewCombineBooksUseCase 创建图书组合用例
func NewCombineBooksUseCase(catalogService *catalog.Service) *CombineBooksUseCase {
	return &CombineBooksUseCase{catalogService: catalogService}
}

// CombineBooksRequest 组合请求DTO
type CombineBooksRequest struct {
	Op     string // combine | difference | scale
	TitleA string // 第一本书书名
	TitleB string // 第二本书书名(scale时忽略)
	Factor int64  // 缩放倍数(仅scale使用)
}

// Execute 执行图书组合
func (uc *CombineBooksUseCase) Execute(ctx context.Context, req CombineBooksRequest) (*catalog.BookView, error) {
	a, err := uc.catalogService.FindBook(req.TitleA)
	if err != nil {
		return nil, err
	}
	viewA := uc.catalogService.ViewOf(a)

	var result catalog.BookView
	switch req.Op {
	case "scale":
		result = catalog.Scale(viewA, req.Factor)
	case "combine", "difference":
		b, err := uc.catalogService.FindBook(req.TitleB)
		if err != nil {
			return nil, err
		}
		viewB := uc.catalogService.ViewOf(b)
		if req.Op == "combine" {
			result = catalog.Combine(viewA, viewB)
		} else {
			result = catalog.Difference(viewA, viewB)
		}
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidValue, "无效的组合操作")
	}

	return &result, nil
}
