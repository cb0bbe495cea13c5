package model

import "time"

// ==================== 挂载字段 ====================

// 媒体挂载字段：cover 每个游戏最多一张，gallery 可以多张
const (
	MediaFieldCover   = "cover"
	MediaFieldGallery = "gallery"
)

// ValidMediaField 校验挂载字段
func ValidMediaField(field string) bool {
	return field == MediaFieldCover || field == MediaFieldGallery
}

// ==================== 媒体资产 ====================

// MediaAsset 已经落库的媒体资源
type MediaAsset struct {
	BaseModel
	GameID int64 `gorm:"index;not null" json:"game_id"`
	Game   *Game `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Field       string `gorm:"size:16;index" json:"field"` // cover / gallery
	Filename    string `gorm:"size:255" json:"filename"`
	URL         string `gorm:"size:512" json:"url"` // 存储层返回的访问地址
	ContentType string `gorm:"size:64" json:"content_type"`
	Size        int64  `gorm:"default:0" json:"size"`
}

func (MediaAsset) TableName() string { return "media_assets" }

// ==================== 媒体任务队列 ====================

// 任务状态
const (
	MediaTaskPending = 0 // 等待下载（含退避等待中）
	MediaTaskDone    = 1
	MediaTaskFailed  = 2 // 重试次数用尽
)

// MediaTask 媒体下载任务（持久化队列）
// 游戏建档成功后入队，由后台 worker 消费
// 下载失败不影响游戏记录，带退避重试，状态可查
type MediaTask struct {
	BaseModel
	GameID    int64  `gorm:"index;not null" json:"game_id"`
	SourceURL string `gorm:"size:512;not null" json:"source_url"`
	Field     string `gorm:"size:16" json:"field"`
	Filename  string `gorm:"size:255" json:"filename"`

	Status      int       `gorm:"default:0;index" json:"status"`
	Attempts    int       `gorm:"default:0" json:"attempts"`
	LastError   string    `gorm:"size:1024" json:"last_error"`
	NextRetryAt time.Time `gorm:"index" json:"next_retry_at"`
}

func (MediaTask) TableName() string { return "media_tasks" }
