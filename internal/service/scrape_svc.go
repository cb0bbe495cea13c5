package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/pkg/utils"
)

// ==================== 配置 ====================

type ScrapeConfig struct {
	BaseURL string // 默认 https://www.gog.com/en
	Timeout time.Duration
}

// shortDescriptionLimit 短描述长度上限（按字符算，硬截断）
const shortDescriptionLimit = 160

// ==================== 抓取结果 ====================

// ScrapedMetadata 详情页抓取结果
// 临时数据：只用于拼装游戏记录，不单独落库
type ScrapedMetadata struct {
	Description      string // .description 节点的内部 HTML
	ShortDescription string // 同节点纯文本，最多 160 字符
	Rating           model.Rating
}

// ==================== 服务实现 ====================

// ScrapeService 商品详情页抓取
// 详情数据不在目录接口里，只能从门户站的 HTML 里抠
type ScrapeService struct {
	config *ScrapeConfig
	client *resty.Client
}

func NewScrapeService(cfg *ScrapeConfig) *ScrapeService {
	if cfg == nil {
		cfg = &ScrapeConfig{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.gog.com/en"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}

	return &ScrapeService{
		config: cfg,
		client: utils.NewHTTPClient(cfg.Timeout),
	}
}

// GetGameInfo 抓取一个商品的详情页
// 描述节点是必填项，缺了算抓取失败；分级图标缺失不算错误，落回默认分级
func (s *ScrapeService) GetGameInfo(ctx context.Context, productSlug string) (*ScrapedMetadata, error) {
	pageURL := fmt.Sprintf("%s/game/%s", s.config.BaseURL, productSlug)

	resp, err := s.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("详情页请求失败 %s: %w", productSlug, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("详情页响应异常 %s [%d]", productSlug, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("详情页解析失败 %s: %v", productSlug, err)
	}

	desc := doc.Find(".description").First()
	if desc.Length() == 0 {
		return nil, fmt.Errorf("详情页缺少描述节点 %s", productSlug)
	}

	descHTML, err := desc.Html()
	if err != nil {
		return nil, fmt.Errorf("提取描述失败 %s: %v", productSlug, err)
	}

	// 硬截断到 160 字符，按 rune 数，不在字中间劈开多字节字符
	text := []rune(desc.Text())
	if len(text) > shortDescriptionLimit {
		text = text[:shortDescriptionLimit]
	}

	return &ScrapedMetadata{
		Description:      descHTML,
		ShortDescription: string(text),
		Rating:           model.ClassifyRating(s.extractRatingToken(doc)),
	}, nil
}

// extractRatingToken 从分级图标的 use 节点取原始 token
// HTML 解析器会把 SVG 里的 xlink:href 归一成 href，两种 key 都要试
// 图标缺失时返回空串，分级归一化后就是默认值
func (s *ScrapeService) extractRatingToken(doc *goquery.Document) string {
	icon := doc.Find(".age-restrictions__icon use").First()
	if icon.Length() == 0 {
		return ""
	}

	href, ok := icon.Attr("xlink:href")
	if !ok {
		href, _ = icon.Attr("href")
	}

	// "#BR_18" -> "BR18"
	return strings.ReplaceAll(strings.TrimPrefix(href, "#"), "_", "")
}
