package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gog_sync_v1_202601/internal/model"
)

// MediaRepo 媒体任务队列 + 媒体资产
type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

// ==================== 任务队列 ====================

// Enqueue 批量入队下载任务
func (r *MediaRepo) Enqueue(ctx context.Context, tasks []model.MediaTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

// PendingTasks 捞一批到期的待处理任务
// next_retry_at 为零值表示新任务，立即可处理
func (r *MediaRepo) PendingTasks(ctx context.Context, limit int, now time.Time) ([]model.MediaTask, error) {
	var tasks []model.MediaTask
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_retry_at <= ?", model.MediaTaskPending, now).
		Order("id ASC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

// MarkDone 标记任务完成
func (r *MediaRepo) MarkDone(ctx context.Context, task *model.MediaTask) error {
	return r.db.WithContext(ctx).Model(task).Updates(map[string]interface{}{
		"status":     model.MediaTaskDone,
		"attempts":   task.Attempts + 1,
		"last_error": "",
	}).Error
}

// MarkFailed 记录一次失败
// 次数没用尽就留在 pending 并按 2^attempts 退避；用尽则置为 failed
func (r *MediaRepo) MarkFailed(ctx context.Context, task *model.MediaTask, errMsg string, maxAttempts int, baseDelay time.Duration) error {
	attempts := task.Attempts + 1
	updates := map[string]interface{}{
		"attempts":   attempts,
		"last_error": errMsg,
	}
	if attempts >= maxAttempts {
		updates["status"] = model.MediaTaskFailed
	} else {
		updates["status"] = model.MediaTaskPending
		updates["next_retry_at"] = time.Now().Add(baseDelay << (attempts - 1))
	}
	return r.db.WithContext(ctx).Model(task).Updates(updates).Error
}

// TasksByGame 某个游戏的全部任务（状态查询用）
func (r *MediaRepo) TasksByGame(ctx context.Context, gameID int64) ([]model.MediaTask, error) {
	var tasks []model.MediaTask
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

// CountByStatus 各状态任务数（监控用）
func (r *MediaRepo) CountByStatus(ctx context.Context, status int) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.MediaTask{}).
		Where("status = ?", status).Count(&total).Error
	return total, err
}

// ==================== 媒体资产 ====================

// CreateAsset 登记一条媒体资产
// cover 每个游戏只保留一张：新 cover 进来时先清掉旧的
func (r *MediaRepo) CreateAsset(ctx context.Context, asset *model.MediaAsset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if asset.Field == model.MediaFieldCover {
			if err := tx.Where("game_id = ? AND field = ?", asset.GameID, model.MediaFieldCover).
				Delete(&model.MediaAsset{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(asset).Error
	})
}

// AssetsByGame 某个游戏的全部媒体资产
func (r *MediaRepo) AssetsByGame(ctx context.Context, gameID int64) ([]model.MediaAsset, error) {
	var assets []model.MediaAsset
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("field ASC, id ASC").
		Find(&assets).Error
	return assets, err
}
