package utils

import (
	"fmt"
	"log"
	"time"
)

// Retry 带指数退避的同步重试
// 只适合快速、无副作用的操作（比如单次下载）；跨进程的持久重试由任务队列负责
func Retry(operation string, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	var lastErr error
	delay := baseDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < maxAttempts {
			log.Printf("[Retry] %s 失败 (第 %d/%d 次): %v, %v 后重试",
				operation, attempt, maxAttempts, lastErr, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s 连续 %d 次失败: %w", operation, maxAttempts, lastErr)
}
