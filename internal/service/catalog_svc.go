package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"gog_sync_v1_202601/pkg/gog"
	"gog_sync_v1_202601/pkg/utils"
)

// ==================== 配置 ====================

type CatalogConfig struct {
	BaseURL string // 默认 https://catalog.gog.com/v1/catalog
	Timeout time.Duration
}

// ==================== 服务实现 ====================

// CatalogService GOG 商品目录客户端
// 只负责按页拉取，翻页策略由调用方掌握
type CatalogService struct {
	config *CatalogConfig
	client *resty.Client
}

func NewCatalogService(cfg *CatalogConfig) *CatalogService {
	if cfg == nil {
		cfg = &CatalogConfig{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://catalog.gog.com/v1/catalog"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}

	return &CatalogService{
		config: cfg,
		client: utils.NewHTTPClient(cfg.Timeout),
	}
}

// FetchPage 拉取一页目录（按最近更新倒序）
// 网络失败或非 200 对整次同步是致命的：没有目录就没有后续
func (s *CatalogService) FetchPage(ctx context.Context, page int) ([]gog.CatalogProduct, error) {
	if page <= 0 {
		page = 1
	}

	var res gog.CatalogResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"order": "desc",
			"page":  strconv.Itoa(page),
		}).
		SetResult(&res).
		Get(s.config.BaseURL)

	if err != nil {
		return nil, fmt.Errorf("目录请求失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("目录接口异常 [%d]: %s", resp.StatusCode(), resp.String())
	}

	return res.Products, nil
}
