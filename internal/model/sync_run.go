package model

import "time"

// 同步运行状态
const (
	SyncRunning   = "RUNNING"
	SyncCompleted = "COMPLETED"
	SyncFailed    = "FAILED"
)

// SyncRun 一次目录同步的运行记录
// 接口只返回简单确认，失败明细靠这里和日志
type SyncRun struct {
	BaseModel
	Page   int    `gorm:"default:1" json:"page"`
	Status string `gorm:"size:16;index" json:"status"`

	// --- 计数 ---
	ProductsSeen   int `gorm:"default:0" json:"products_seen"`
	GamesCreated   int `gorm:"default:0" json:"games_created"`
	GamesUpdated   int `gorm:"default:0" json:"games_updated"`
	ProductsFailed int `gorm:"default:0" json:"products_failed"`
	MediaEnqueued  int `gorm:"default:0" json:"media_enqueued"`

	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
	Error      string     `gorm:"size:1024" json:"error,omitempty"`
}

func (SyncRun) TableName() string { return "sync_runs" }
