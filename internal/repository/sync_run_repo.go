package repository

import (
	"context"

	"gorm.io/gorm"

	"gog_sync_v1_202601/internal/model"
)

// SyncRunRepo 同步运行记录
type SyncRunRepo struct {
	db *gorm.DB
}

func NewSyncRunRepo(db *gorm.DB) *SyncRunRepo {
	return &SyncRunRepo{db: db}
}

// Create 新建运行记录
func (r *SyncRunRepo) Create(ctx context.Context, run *model.SyncRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// Update 更新运行记录
func (r *SyncRunRepo) Update(ctx context.Context, run *model.SyncRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// GetByID 获取单条运行记录
func (r *SyncRunRepo) GetByID(ctx context.Context, id int64) (*model.SyncRun, error) {
	var run model.SyncRun
	if err := r.db.WithContext(ctx).First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRecent 最近的运行记录，按开始时间倒序
func (r *SyncRunRepo) ListRecent(ctx context.Context, limit int) ([]model.SyncRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var runs []model.SyncRun
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}
