package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gog_sync_v1_202601/internal/api/dto"
	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/internal/repository"
	"gog_sync_v1_202601/internal/service"
)

type SyncController struct {
	populateService *service.PopulateService
	runRepo         *repository.SyncRunRepo
	taxonomyRepo    *repository.TaxonomyRepo
}

func NewSyncController(
	populateService *service.PopulateService,
	runRepo *repository.SyncRunRepo,
	taxonomyRepo *repository.TaxonomyRepo,
) *SyncController {
	return &SyncController{
		populateService: populateService,
		runRepo:         runRepo,
		taxonomyRepo:    taxonomyRepo,
	}
}

// Populate 触发一次目录同步
// @Summary 同步一页 GOG 目录到本地库
// @Tags Sync
// @Param page query int false "目录页码" default(1)
// @Success 200 {object} dto.SyncRunResp
// @Router /api/sync/populate [post]
func (ctrl *SyncController) Populate(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	run, err := ctrl.populateService.Populate(c.Request.Context(), page)
	if err != nil {
		// 目录拉取失败才会走到这里；单个商品失败只体现在计数里
		c.JSON(500, gin.H{"code": 500, "message": "同步失败: " + err.Error()})
		return
	}

	c.JSON(200, dto.SyncRunResp{Code: 0, Message: "success", Data: run})
}

// GetRuns 最近的同步运行记录
// @Summary 查询最近的同步运行记录
// @Tags Sync
// @Param limit query int false "条数" default(20)
// @Success 200 {object} dto.SyncRunListResp
// @Router /api/sync/runs [get]
func (ctrl *SyncController) GetRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	runs, err := ctrl.runRepo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(200, dto.SyncRunListResp{Code: 0, Message: "success", Data: runs})
}

// GetRun 单条运行记录详情
// @Summary 查询单次同步运行
// @Tags Sync
// @Param id path int true "运行ID"
// @Success 200 {object} dto.SyncRunResp
// @Router /api/sync/runs/{id} [get]
func (ctrl *SyncController) GetRun(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的运行 ID"})
		return
	}

	run, err := ctrl.runRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "运行记录不存在"})
		return
	}

	c.JSON(200, dto.SyncRunResp{Code: 0, Message: "success", Data: run})
}

// GetTaxonomy 按维度查询分类实体
// @Summary 查询某个维度下的分类实体
// @Tags Sync
// @Param kind query string true "维度: developer/publisher/category/platform"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(50)
// @Success 200 {object} dto.TaxonomyListResp
// @Router /api/taxonomy [get]
func (ctrl *SyncController) GetTaxonomy(c *gin.Context) {
	kind := model.TaxonomyKind(c.Query("kind"))
	if !kind.Valid() {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 kind，可选: developer/publisher/category/platform"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	list, total, err := ctrl.taxonomyRepo.ListByKind(c.Request.Context(), kind, page, pageSize)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(200, dto.TaxonomyListResp{
		Code:    0,
		Message: "success",
		Kind:    string(kind),
		Data:    list,
		Total:   total,
	})
}
