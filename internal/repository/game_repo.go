package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gog_sync_v1_202601/internal/model"
)

// GameListFilter 游戏列表查询条件
type GameListFilter struct {
	Keyword  string // 名称模糊搜索
	Page     int
	PageSize int
}

type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

// Upsert 按 slug 幂等写入
// 不存在则建档（连带分类关联）；已存在则覆盖内容字段并重建关联，
// 返回是否为新建。games.slug 的唯一索引兜底并发重跑
func (r *GameRepo) Upsert(ctx context.Context, game *model.Game) (created bool, err error) {
	var existing model.Game
	err = r.db.WithContext(ctx).Where("slug = ?", game.Slug).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	// 已存在：覆盖内容字段，不动 created_at
	game.ID = existing.ID
	updates := map[string]interface{}{
		"name":              game.Name,
		"price":             game.Price,
		"description":       game.Description,
		"short_description": game.ShortDescription,
		"rating":            game.Rating,
		"release_date":      game.ReleaseDate,
		"screenshot_urls":   game.ScreenshotURLs,
		"raw_catalog":       game.RawCatalog,
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return false, err
	}

	// 重建分类关联：目录是权威来源，整组替换
	anchor := &model.Game{BaseModel: model.BaseModel{ID: existing.ID}}
	if err := r.db.WithContext(ctx).Model(anchor).Association("Developers").Replace(game.Developers); err != nil {
		return false, err
	}
	if err := r.db.WithContext(ctx).Model(anchor).Association("Publishers").Replace(game.Publishers); err != nil {
		return false, err
	}
	if err := r.db.WithContext(ctx).Model(anchor).Association("Categories").Replace(game.Categories); err != nil {
		return false, err
	}
	if err := r.db.WithContext(ctx).Model(anchor).Association("Platforms").Replace(game.Platforms); err != nil {
		return false, err
	}

	return false, nil
}

// GetByID 获取游戏详情（含分类与媒体）
func (r *GameRepo) GetByID(ctx context.Context, id int64) (*model.Game, error) {
	var game model.Game
	err := r.db.WithContext(ctx).
		Preload("Developers").
		Preload("Publishers").
		Preload("Categories").
		Preload("Platforms").
		Preload("MediaAssets").
		First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetBySlug 按 slug 获取游戏
func (r *GameRepo) GetBySlug(ctx context.Context, gameSlug string) (*model.Game, error) {
	var game model.Game
	err := r.db.WithContext(ctx).Where("slug = ?", gameSlug).First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// List 分页列表查询
func (r *GameRepo) List(ctx context.Context, filter GameListFilter) ([]model.Game, int64, error) {
	var list []model.Game
	var total int64

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	db := r.db.WithContext(ctx).Model(&model.Game{})
	if filter.Keyword != "" {
		db = db.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := db.Order("release_date DESC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// Count 游戏总数
func (r *GameRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Game{}).Count(&total).Error
	return total, err
}
