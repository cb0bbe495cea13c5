package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Game 游戏主记录
type Game struct {
	BaseModel

	// --- 基本信息 ---
	Name string `gorm:"size:255;not null" json:"name"`
	// 幂等关键：重跑同一页目录时按 slug 覆盖而不是重复建档
	Slug  string  `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Price float64 `gorm:"default:0" json:"price"`

	// --- 详情页抓取内容 ---
	Description      string `gorm:"type:text" json:"description"` // HTML 片段
	ShortDescription string `gorm:"size:160" json:"short_description"`
	Rating           Rating `gorm:"size:8;default:BR0" json:"rating"`

	ReleaseDate time.Time `gorm:"index" json:"release_date"`

	// --- 分类关联 ---
	Developers []Developer `gorm:"many2many:game_developers;" json:"developers,omitempty"`
	Publishers []Publisher `gorm:"many2many:game_publishers;" json:"publishers,omitempty"`
	Categories []Category  `gorm:"many2many:game_categories;" json:"categories,omitempty"`
	Platforms  []Platform  `gorm:"many2many:game_platforms;" json:"platforms,omitempty"`

	// --- 媒体 ---
	MediaAssets []MediaAsset `gorm:"foreignKey:GameID" json:"media_assets,omitempty"`

	// --- 上游原始数据 ---
	// 截图模板 URL 原样落库，媒体任务展开后再下载
	ScreenshotURLs pq.StringArray `gorm:"type:text[]" json:"screenshot_urls"`
	RawCatalog     datatypes.JSON `gorm:"type:jsonb" json:"-"` // 目录商品原始 JSON 快照
}

func (Game) TableName() string { return "games" }
