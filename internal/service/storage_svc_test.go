package service

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(&StorageConfig{LocalDir: dir})
	if err != nil {
		t.Fatalf("创建本地存储失败: %v", err)
	}

	ctx := context.Background()
	data := []byte("fake jpeg bytes")

	url, err := storage.Upload(ctx, data, "cover.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if !strings.HasPrefix(url, dir) {
		t.Errorf("返回路径不在存储目录内: %s", url)
	}
	if !strings.HasSuffix(url, "_cover.jpg") {
		t.Errorf("文件名应保留原始后缀: %s", url)
	}

	stored, err := os.ReadFile(url)
	if err != nil {
		t.Fatalf("读取落盘文件失败: %v", err)
	}
	if string(stored) != string(data) {
		t.Error("落盘内容与上传内容不一致")
	}

	if err := storage.Delete(ctx, url); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := os.Stat(url); !os.IsNotExist(err) {
		t.Error("删除后文件仍然存在")
	}
}

func TestLocalStorage_UniqueFilenames(t *testing.T) {
	storage, err := NewLocalStorage(&StorageConfig{LocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("创建本地存储失败: %v", err)
	}

	ctx := context.Background()
	first, err := storage.Upload(ctx, []byte("a"), "shot.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("第一次上传失败: %v", err)
	}
	second, err := storage.Upload(ctx, []byte("b"), "shot.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("第二次上传失败: %v", err)
	}
	if first == second {
		t.Error("同名文件上传两次不应互相覆盖")
	}
}

func TestLocalStorage_DeleteOutsideDir(t *testing.T) {
	storage, err := NewLocalStorage(&StorageConfig{LocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("创建本地存储失败: %v", err)
	}

	if err := storage.Delete(context.Background(), "/etc/passwd"); err == nil {
		t.Fatal("存储目录外的路径不允许删除")
	}
}

func TestNewStorageProvider_Unknown(t *testing.T) {
	if _, err := NewStorageProvider(&StorageConfig{Provider: "ftp"}); err == nil {
		t.Fatal("未知存储提供者应该报错")
	}
}
