package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gog_sync_v1_202601/internal/model"
)

// TaxonomyRepo 四类分类实体的统一查找/创建仓库
// 约束：每个维度内 (name) 唯一，靠各表的唯一索引兜底
type TaxonomyRepo struct {
	db *gorm.DB
}

func NewTaxonomyRepo(db *gorm.DB) *TaxonomyRepo {
	return &TaxonomyRepo{db: db}
}

// ==================== find-or-create ====================
// 流程统一：先精确查 name，查到直接返回；
// 查不到就插入（冲突忽略）再回查。并发下两边同时插入也只会留下一条，
// 回查拿到的一定是库内那条权威记录。

// FindOrCreateDeveloper 按名称取开发商，不存在则创建
func (r *TaxonomyRepo) FindOrCreateDeveloper(ctx context.Context, name string) (*model.Developer, error) {
	var out model.Developer
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entity := model.Developer{Name: name, Slug: slug.Make(name)}
	if err := r.insertIgnoreConflict(ctx, &entity); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// FindOrCreatePublisher 按名称取发行商，不存在则创建
func (r *TaxonomyRepo) FindOrCreatePublisher(ctx context.Context, name string) (*model.Publisher, error) {
	var out model.Publisher
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entity := model.Publisher{Name: name, Slug: slug.Make(name)}
	if err := r.insertIgnoreConflict(ctx, &entity); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// FindOrCreateCategory 按名称取分类，不存在则创建
func (r *TaxonomyRepo) FindOrCreateCategory(ctx context.Context, name string) (*model.Category, error) {
	var out model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entity := model.Category{Name: name, Slug: slug.Make(name)}
	if err := r.insertIgnoreConflict(ctx, &entity); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// FindOrCreatePlatform 按名称取平台，不存在则创建
func (r *TaxonomyRepo) FindOrCreatePlatform(ctx context.Context, name string) (*model.Platform, error) {
	var out model.Platform
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entity := model.Platform{Name: name, Slug: slug.Make(name)}
	if err := r.insertIgnoreConflict(ctx, &entity); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// insertIgnoreConflict 插入一条分类实体，撞唯一索引时静默跳过
func (r *TaxonomyRepo) insertIgnoreConflict(ctx context.Context, entity interface{}) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(entity).Error
}

// ==================== 按维度查询 ====================

// ListByKind 分页列出某个维度下的全部实体
// 维度非法直接报错，不做兜底
func (r *TaxonomyRepo) ListByKind(ctx context.Context, kind model.TaxonomyKind, page, pageSize int) (interface{}, int64, error) {
	if !kind.Valid() {
		return nil, 0, fmt.Errorf("非法的分类维度: %q", kind)
	}
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	db := r.db.WithContext(ctx)
	switch kind {
	case model.KindDeveloper:
		var list []model.Developer
		var total int64
		if err := db.Model(&model.Developer{}).Count(&total).Error; err != nil {
			return nil, 0, err
		}
		err := db.Order("name ASC").Limit(pageSize).Offset(offset).Find(&list).Error
		return list, total, err
	case model.KindPublisher:
		var list []model.Publisher
		var total int64
		if err := db.Model(&model.Publisher{}).Count(&total).Error; err != nil {
			return nil, 0, err
		}
		err := db.Order("name ASC").Limit(pageSize).Offset(offset).Find(&list).Error
		return list, total, err
	case model.KindCategory:
		var list []model.Category
		var total int64
		if err := db.Model(&model.Category{}).Count(&total).Error; err != nil {
			return nil, 0, err
		}
		err := db.Order("name ASC").Limit(pageSize).Offset(offset).Find(&list).Error
		return list, total, err
	default: // KindPlatform，Valid 已经保证不会落到别的值
		var list []model.Platform
		var total int64
		if err := db.Model(&model.Platform{}).Count(&total).Error; err != nil {
			return nil, 0, err
		}
		err := db.Order("name ASC").Limit(pageSize).Offset(offset).Find(&list).Error
		return list, total, err
	}
}
