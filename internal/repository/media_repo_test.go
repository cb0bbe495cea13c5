package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gog_sync_v1_202601/internal/model"
)

func setupMediaTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.MediaTask{}, &model.MediaAsset{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

// 失败次数没用尽：留在 pending 并且带退避时间
func TestMediaRepo_MarkFailed_Backoff(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepo(db)
	ctx := context.Background()

	tasks := []model.MediaTask{{
		GameID: 1, SourceURL: "http://img.test/a.jpg",
		Field: model.MediaFieldCover, Filename: "a.jpg",
	}}
	if err := repo.Enqueue(ctx, tasks); err != nil {
		t.Fatalf("入队失败: %v", err)
	}

	task := &tasks[0]
	if err := repo.MarkFailed(ctx, task, "连接超时", 3, time.Minute); err != nil {
		t.Fatalf("MarkFailed 失败: %v", err)
	}

	var stored model.MediaTask
	db.First(&stored, task.ID)
	if stored.Status != model.MediaTaskPending {
		t.Errorf("status = %d, want pending", stored.Status)
	}
	if stored.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", stored.Attempts)
	}
	if !stored.NextRetryAt.After(time.Now().Add(30 * time.Second)) {
		t.Errorf("退避时间太近: %v", stored.NextRetryAt)
	}

	// 退避中的任务不该被捞出来
	pending, err := repo.PendingTasks(ctx, 10, time.Now())
	if err != nil {
		t.Fatalf("PendingTasks 失败: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("退避中的任务被提前捞出: %d 个", len(pending))
	}
}

// 次数用尽：置为 failed，不再进批
func TestMediaRepo_MarkFailed_Exhausted(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepo(db)
	ctx := context.Background()

	tasks := []model.MediaTask{{
		GameID: 1, SourceURL: "http://img.test/a.jpg",
		Field: model.MediaFieldGallery, Filename: "a.jpg",
	}}
	if err := repo.Enqueue(ctx, tasks); err != nil {
		t.Fatalf("入队失败: %v", err)
	}

	task := &tasks[0]
	task.Attempts = 2 // 已经失败过两次
	if err := repo.MarkFailed(ctx, task, "404", 3, time.Minute); err != nil {
		t.Fatalf("MarkFailed 失败: %v", err)
	}

	var stored model.MediaTask
	db.First(&stored, task.ID)
	if stored.Status != model.MediaTaskFailed {
		t.Errorf("status = %d, want failed", stored.Status)
	}
	if stored.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", stored.Attempts)
	}
}

// cover 只保留一张：新 cover 顶掉旧的，gallery 可以攒多张
func TestMediaRepo_CreateAsset_CoverReplaced(t *testing.T) {
	db := setupMediaTestDB(t)
	repo := NewMediaRepo(db)
	ctx := context.Background()

	first := &model.MediaAsset{GameID: 7, Field: model.MediaFieldCover, Filename: "old.jpg"}
	if err := repo.CreateAsset(ctx, first); err != nil {
		t.Fatalf("首张 cover 失败: %v", err)
	}
	second := &model.MediaAsset{GameID: 7, Field: model.MediaFieldCover, Filename: "new.jpg"}
	if err := repo.CreateAsset(ctx, second); err != nil {
		t.Fatalf("第二张 cover 失败: %v", err)
	}
	for i := 0; i < 3; i++ {
		g := &model.MediaAsset{GameID: 7, Field: model.MediaFieldGallery, Filename: "shot.jpg"}
		if err := repo.CreateAsset(ctx, g); err != nil {
			t.Fatalf("gallery 失败: %v", err)
		}
	}

	assets, err := repo.AssetsByGame(ctx, 7)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	var covers, gallery int
	for _, a := range assets {
		switch a.Field {
		case model.MediaFieldCover:
			covers++
			if a.Filename != "new.jpg" {
				t.Errorf("cover 没被替换: %s", a.Filename)
			}
		case model.MediaFieldGallery:
			gallery++
		}
	}
	if covers != 1 {
		t.Errorf("cover 数量 = %d, want 1", covers)
	}
	if gallery != 3 {
		t.Errorf("gallery 数量 = %d, want 3", gallery)
	}
}
