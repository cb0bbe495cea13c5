package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"gog_sync_v1_202601/internal/model"
)

// fakeDetailServer 按固定 HTML 应答所有详情页请求
func fakeDetailServer(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/game/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, html)
	}))
}

func TestScrapeService_GetGameInfo(t *testing.T) {
	server := fakeDetailServer(t, `<html><body>
		<div class="age-restrictions">
			<svg class="age-restrictions__icon"><use xlink:href="#BR_18"></use></svg>
		</div>
		<div class="description"><p>Great <b>game</b></p></div>
	</body></html>`)
	defer server.Close()

	svc := NewScrapeService(&ScrapeConfig{BaseURL: server.URL})
	meta, err := svc.GetGameInfo(context.Background(), "sample_game")
	if err != nil {
		t.Fatalf("GetGameInfo 失败: %v", err)
	}

	if !strings.Contains(meta.Description, "<b>game</b>") {
		t.Errorf("描述应保留内部 HTML: %q", meta.Description)
	}
	if meta.ShortDescription != "Great game" {
		t.Errorf("短描述 = %q, want %q", meta.ShortDescription, "Great game")
	}
	if meta.Rating != model.RatingBR18 {
		t.Errorf("rating = %q, want %q", meta.Rating, model.RatingBR18)
	}
}

func TestScrapeService_GetGameInfo_MissingDescription(t *testing.T) {
	server := fakeDetailServer(t, `<html><body><div class="other">nothing here</div></body></html>`)
	defer server.Close()

	svc := NewScrapeService(&ScrapeConfig{BaseURL: server.URL})
	if _, err := svc.GetGameInfo(context.Background(), "broken_page"); err == nil {
		t.Fatal("缺少描述节点应该报错")
	}
}

func TestScrapeService_GetGameInfo_MissingRatingIcon(t *testing.T) {
	server := fakeDetailServer(t, `<html><body>
		<div class="description">Great game</div>
	</body></html>`)
	defer server.Close()

	svc := NewScrapeService(&ScrapeConfig{BaseURL: server.URL})
	meta, err := svc.GetGameInfo(context.Background(), "sample_game")
	if err != nil {
		t.Fatalf("GetGameInfo 失败: %v", err)
	}
	if meta.Rating != model.RatingBR0 {
		t.Errorf("图标缺失时 rating = %q, want %q", meta.Rating, model.RatingBR0)
	}
}

func TestScrapeService_GetGameInfo_UnknownRatingToken(t *testing.T) {
	server := fakeDetailServer(t, `<html><body>
		<div class="age-restrictions">
			<svg class="age-restrictions__icon"><use xlink:href="#PEGI_16"></use></svg>
		</div>
		<div class="description">Great game</div>
	</body></html>`)
	defer server.Close()

	svc := NewScrapeService(&ScrapeConfig{BaseURL: server.URL})
	meta, err := svc.GetGameInfo(context.Background(), "sample_game")
	if err != nil {
		t.Fatalf("GetGameInfo 失败: %v", err)
	}
	if meta.Rating != model.RatingBR0 {
		t.Errorf("未知 token 应落回默认分级, got %q", meta.Rating)
	}
}

func TestScrapeService_GetGameInfo_ShortDescriptionTruncated(t *testing.T) {
	long := strings.Repeat("很", 200)
	server := fakeDetailServer(t, `<html><body>
		<div class="description">`+long+`</div>
	</body></html>`)
	defer server.Close()

	svc := NewScrapeService(&ScrapeConfig{BaseURL: server.URL})
	meta, err := svc.GetGameInfo(context.Background(), "long_description")
	if err != nil {
		t.Fatalf("GetGameInfo 失败: %v", err)
	}

	if got := utf8.RuneCountInString(meta.ShortDescription); got != 160 {
		t.Errorf("短描述字符数 = %d, want 160", got)
	}
	if !utf8.ValidString(meta.ShortDescription) {
		t.Error("截断把多字节字符劈坏了")
	}
}
