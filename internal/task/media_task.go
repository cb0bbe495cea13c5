package task

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/internal/repository"
	"gog_sync_v1_202601/internal/service"
)

// ==================== MediaUploadTask 媒体下载任务 ====================

// MediaUploadTask 媒体任务队列的后台消费者
// 消费策略：
//   - 启动后延迟 5 秒先清一次积压
//   - 之后每分钟捞一批到期任务（失败任务按退避时间到期后重新进批）
type MediaUploadTask struct {
	mediaRepo    *repository.MediaRepo
	mediaService *service.MediaService
	cron         *cron.Cron

	// 并发控制
	concurrencyLimit int // 同一批内并发下载数（同一游戏的 gallery 会并发）
	batchSize        int
	maxAttempts      int
	retryBaseDelay   time.Duration
}

// NewMediaUploadTask 创建媒体任务消费者
func NewMediaUploadTask(
	mediaRepo *repository.MediaRepo,
	mediaService *service.MediaService,
) *MediaUploadTask {
	return &MediaUploadTask{
		mediaRepo:        mediaRepo,
		mediaService:     mediaService,
		cron:             cron.New(cron.WithSeconds()),
		concurrencyLimit: 5,
		batchSize:        50,
		maxAttempts:      3,
		retryBaseDelay:   time.Minute,
	}
}

// SetLimits 调整消费参数
func (t *MediaUploadTask) SetLimits(concurrency, batchSize, maxAttempts int, retryBase time.Duration) {
	if concurrency > 0 {
		t.concurrencyLimit = concurrency
	}
	if batchSize > 0 {
		t.batchSize = batchSize
	}
	if maxAttempts > 0 {
		t.maxAttempts = maxAttempts
	}
	if retryBase > 0 {
		t.retryBaseDelay = retryBase
	}
}

// Start 启动消费者
func (t *MediaUploadTask) Start() {
	// 首次执行（延迟 5 秒，等服务完全起来）
	go func() {
		time.Sleep(5 * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		t.Drain(ctx)
	}()

	// 每分钟消费一批
	_, _ = t.cron.AddFunc("0 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		t.Drain(ctx)
	})

	t.cron.Start()
	log.Println("[MediaTask] 已启动 (每分钟消费一批)")
}

// Stop 停止消费者
func (t *MediaUploadTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[MediaTask] 已停止")
}

// Drain 捞一批到期任务并发消费
// 任务之间互不依赖（各写各的资产槽位），放开并发没有一致性问题
func (t *MediaUploadTask) Drain(ctx context.Context) {
	tasks, err := t.mediaRepo.PendingTasks(ctx, t.batchSize, time.Now())
	if err != nil {
		log.Printf("[MediaTask] 捞取任务失败: %v", err)
		return
	}
	if len(tasks) == 0 {
		return
	}

	log.Printf("[MediaTask] 本批 %d 个任务", len(tasks))

	sem := make(chan struct{}, t.concurrencyLimit)
	var wg sync.WaitGroup

	for i := range tasks {
		taskRow := tasks[i]
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			t.process(ctx, &taskRow)
		}()
	}

	wg.Wait()
}

// process 消费单个任务并回写状态
func (t *MediaUploadTask) process(ctx context.Context, taskRow *model.MediaTask) {
	if err := t.mediaService.ProcessTask(ctx, taskRow); err != nil {
		log.Printf("[MediaTask] 任务 %d 失败 (第 %d 次): %v", taskRow.ID, taskRow.Attempts+1, err)
		if markErr := t.mediaRepo.MarkFailed(ctx, taskRow, err.Error(), t.maxAttempts, t.retryBaseDelay); markErr != nil {
			log.Printf("[MediaTask] 回写失败状态出错: %v", markErr)
		}
		return
	}
	if err := t.mediaRepo.MarkDone(ctx, taskRow); err != nil {
		log.Printf("[MediaTask] 回写完成状态出错: %v", err)
	}
}
