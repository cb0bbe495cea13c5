package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gog_sync_v1_202601/internal/controller"
	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/internal/repository"
	"gog_sync_v1_202601/internal/service"
)

// setupAPITest 组装整条 HTTP 链路：假目录站 + 假详情站 + sqlite + 本地存储
func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "连接测试数据库")
	require.NoError(t, db.AutoMigrate(
		&model.Developer{}, &model.Publisher{}, &model.Category{}, &model.Platform{},
		&model.Game{}, &model.MediaAsset{}, &model.MediaTask{}, &model.SyncRun{},
	), "建表")

	catalogSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"pages": 1,
			"productCount": 1,
			"products": [
				{
					"id": "1001",
					"title": "Sample Game",
					"slug": "sample_game",
					"price": {"finalMoney": {"amount": 999, "currency": "USD"}},
					"releaseDate": "2024.05.01",
					"developers": ["Acme"],
					"publishers": ["Acme"],
					"genres": [{"name": "Action", "slug": "action"}],
					"operatingSystems": ["Windows"]
				}
			]
		}`)
	}))
	t.Cleanup(catalogSrv.Close)

	detailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><div class="description">Great game</div></body></html>`)
	}))
	t.Cleanup(detailSrv.Close)

	storage, err := service.NewLocalStorage(&service.StorageConfig{LocalDir: t.TempDir()})
	require.NoError(t, err, "创建本地存储")

	taxonomyRepo := repository.NewTaxonomyRepo(db)
	gameRepo := repository.NewGameRepo(db)
	mediaRepo := repository.NewMediaRepo(db)
	runRepo := repository.NewSyncRunRepo(db)

	mediaService := service.NewMediaService(mediaRepo, storage)
	populateService := service.NewPopulateService(
		service.NewCatalogService(&service.CatalogConfig{BaseURL: catalogSrv.URL}),
		service.NewScrapeService(&service.ScrapeConfig{BaseURL: detailSrv.URL}),
		mediaService,
		taxonomyRepo, gameRepo, runRepo,
	)

	engine := SetupRouter(&Controllers{
		Sync:   controller.NewSyncController(populateService, runRepo, taxonomyRepo),
		Game:   controller.NewGameController(gameRepo, mediaRepo),
		Upload: controller.NewUploadController(mediaService),
	})
	return engine, db
}

func doRequest(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAPI_PopulateThenQuery(t *testing.T) {
	engine, _ := setupAPITest(t)

	// 触发同步
	w := doRequest(engine, httptest.NewRequest(http.MethodPost, "/api/sync/populate?page=1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var syncResp struct {
		Code int `json:"code"`
		Data struct {
			ID           int64  `json:"id"`
			Status       string `json:"status"`
			GamesCreated int    `json:"games_created"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &syncResp))
	assert.Equal(t, 0, syncResp.Code)
	assert.Equal(t, model.SyncCompleted, syncResp.Data.Status)
	assert.Equal(t, 1, syncResp.Data.GamesCreated)

	// 运行记录可查
	w = doRequest(engine, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/sync/runs/%d", syncResp.Data.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// 游戏列表
	w = doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/games?keyword=Sample", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Total int64 `json:"total"`
		Data  []struct {
			ID   int64  `json:"id"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Equal(t, int64(1), listResp.Total)
	assert.Equal(t, "sample-game", listResp.Data[0].Slug)

	// 游戏详情
	w = doRequest(engine, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/games/%d", listResp.Data[0].ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Great game")

	// 分类查询
	w = doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/taxonomy?kind=developer", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
}

// swagger 文档路由要能拿到注册好的 spec，而不是空文档报错
func TestAPI_SwaggerDocServed(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/sync/populate")
	assert.Contains(t, w.Body.String(), "dto.GameListResp")
}

func TestAPI_TaxonomyInvalidKind(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/taxonomy?kind=genre", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_GameNotFound(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/games/9999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/games/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_UploadCover(t *testing.T) {
	engine, db := setupAPITest(t)

	game := &model.Game{Name: "Sample Game", Slug: "sample-game"}
	require.NoError(t, db.Create(game).Error)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("refId", fmt.Sprintf("%d", game.ID)))
	require.NoError(t, mw.WriteField("field", model.MediaFieldCover))
	fw, err := mw.CreateFormFile("files", "cover.jpg")
	require.NoError(t, err)
	fw.Write([]byte("fake jpeg bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := doRequest(engine, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 资产接口能查到刚挂载的封面
	w = doRequest(engine, httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/games/%d/media", game.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.MediaFieldCover)

	var assetCount int64
	db.Model(&model.MediaAsset{}).Count(&assetCount)
	assert.Equal(t, int64(1), assetCount)
}

func TestAPI_UploadInvalidField(t *testing.T) {
	engine, _ := setupAPITest(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.WriteField("refId", "1")
	mw.WriteField("field", "banner")
	fw, _ := mw.CreateFormFile("files", "a.jpg")
	fw.Write([]byte("x"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := doRequest(engine, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
