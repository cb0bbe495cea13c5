package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// NewHTTPClient 创建一个配置好超时的 Resty 客户端
// 它是全系统统一的对外请求出口，所有出站请求都必须有界超时
func NewHTTPClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 20 * time.Second // 详情页偶尔比较慢，默认给 20s
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "GOG-Sync-App/1.0")
}
