package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/internal/repository"
	"gog_sync_v1_202601/pkg/gog"
	"gog_sync_v1_202601/pkg/utils"
)

// maxGalleryImages 每个游戏最多收前 5 张截图，后面的忽略
const maxGalleryImages = 5

// MediaService 媒体处理：入队、下载、落盘、登记资产
type MediaService struct {
	mediaRepo  *repository.MediaRepo
	storage    StorageProvider
	httpClient *http.Client
}

func NewMediaService(mediaRepo *repository.MediaRepo, storage StorageProvider) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		storage:   storage,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // 图片可能比较大，比页面请求宽一点
		},
	}
}

// ==================== 入队 ====================

// EnqueueGameMedia 游戏建档成功后入队封面和截图下载任务
// 只入队不下载：下载由后台 worker 异步消费，同步主循环不等它
func (s *MediaService) EnqueueGameMedia(ctx context.Context, game *model.Game, product *gog.CatalogProduct) (int, error) {
	var tasks []model.MediaTask

	if product.CoverHorizontal != "" {
		tasks = append(tasks, model.MediaTask{
			GameID:    game.ID,
			SourceURL: product.CoverHorizontal,
			Field:     model.MediaFieldCover,
			Filename:  game.Slug + ".jpg",
		})
	}

	shots := product.Screenshots
	if len(shots) > maxGalleryImages {
		shots = shots[:maxGalleryImages]
	}
	for i, tmpl := range shots {
		tasks = append(tasks, model.MediaTask{
			GameID:    game.ID,
			SourceURL: gog.ExpandScreenshotURL(tmpl),
			Field:     model.MediaFieldGallery,
			Filename:  fmt.Sprintf("%s_%d.jpg", game.Slug, i+1),
		})
	}

	if len(tasks) == 0 {
		return 0, nil
	}
	if err := s.mediaRepo.Enqueue(ctx, tasks); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// ==================== 消费 ====================

// ProcessTask 处理单个下载任务：下载 → 存储 → 登记资产
// 这里只做一次快速的进程内重试；跨 tick 的持久重试由队列状态驱动
func (s *MediaService) ProcessTask(ctx context.Context, task *model.MediaTask) error {
	var data []byte
	var contentType string

	err := utils.Retry(fmt.Sprintf("下载图片 %s", task.Filename), 2, time.Second, func() error {
		var dlErr error
		data, contentType, dlErr = utils.DownloadImage(ctx, s.httpClient, task.SourceURL)
		return dlErr
	})
	if err != nil {
		return err
	}

	url, err := s.storage.Upload(ctx, data, task.Filename, contentType)
	if err != nil {
		return err
	}

	log.Printf("[Media] %s 图片已落盘: %s", task.Field, task.Filename)

	return s.mediaRepo.CreateAsset(ctx, &model.MediaAsset{
		GameID:      task.GameID,
		Field:       task.Field,
		Filename:    task.Filename,
		URL:         url,
		ContentType: contentType,
		Size:        int64(len(data)),
	})
}

// ==================== 手动挂载 ====================

// Attach 管理端直接上传附件（对应资产挂载接口）
func (s *MediaService) Attach(ctx context.Context, gameID int64, field, filename string, data []byte, contentType string) (*model.MediaAsset, error) {
	if !model.ValidMediaField(field) {
		return nil, fmt.Errorf("非法的挂载字段: %q", field)
	}

	url, err := s.storage.Upload(ctx, data, filename, contentType)
	if err != nil {
		return nil, err
	}

	asset := &model.MediaAsset{
		GameID:      gameID,
		Field:       field,
		Filename:    filename,
		URL:         url,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	if err := s.mediaRepo.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}
