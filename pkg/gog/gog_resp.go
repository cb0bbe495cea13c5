package gog

import "strings"

// ==================== 目录接口响应 ====================

// CatalogResp GOG 商品目录接口响应
// GET https://catalog.gog.com/v1/catalog?order=desc&page=1
// 注意：products 在响应体顶层，没有额外包装
type CatalogResp struct {
	Pages        int              `json:"pages"`
	ProductCount int              `json:"productCount"`
	Products     []CatalogProduct `json:"products"`
}

// CatalogProduct 目录里的单个商品（只读输入，抓取侧不回写）
type CatalogProduct struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"` // 详情页路径用的 slug，带下划线
	Price            Price    `json:"price"`
	ReleaseDate      string   `json:"releaseDate"` // 格式固定 YYYY.MM.DD
	Developers       []string `json:"developers"`
	Publishers       []string `json:"publishers"`
	Genres           []Genre  `json:"genres"`
	OperatingSystems []string `json:"operatingSystems"`
	CoverHorizontal  string   `json:"coverHorizontal"`
	Screenshots      []string `json:"screenshots"` // 带 {formatter} 占位符的模板 URL
}

type Genre struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Price struct {
	FinalMoney Money `json:"finalMoney"`
}

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ==================== 截图 URL 模板 ====================

// ScreenshotFormatter 截图模板里 {formatter} 的取值
// 对应商品卡片规格的图，体积适中
const ScreenshotFormatter = "product_card_v2_mobile_slider_639"

// ExpandScreenshotURL 把截图模板 URL 展开成可下载地址
func ExpandScreenshotURL(tmpl string) string {
	return strings.ReplaceAll(tmpl, "{formatter}", ScreenshotFormatter)
}
