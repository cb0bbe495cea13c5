package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gog_sync_v1_202601/internal/api/dto"
	"gog_sync_v1_202601/internal/repository"
)

type GameController struct {
	gameRepo  *repository.GameRepo
	mediaRepo *repository.MediaRepo
}

func NewGameController(gameRepo *repository.GameRepo, mediaRepo *repository.MediaRepo) *GameController {
	return &GameController{gameRepo: gameRepo, mediaRepo: mediaRepo}
}

// GetGames 获取游戏列表
// @Summary 分页获取游戏列表
// @Tags Game
// @Param keyword query string false "名称搜索"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.GameListResp
// @Router /api/games [get]
func (ctrl *GameController) GetGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := repository.GameListFilter{
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	}

	games, total, err := ctrl.gameRepo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	respList := make([]dto.GameResp, 0, len(games))
	for i := range games {
		respList = append(respList, dto.ToGameResp(&games[i]))
	}

	c.JSON(200, dto.GameListResp{
		Code:     0,
		Message:  "success",
		Data:     respList,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// GetGame 获取游戏详情
// @Summary 获取单个游戏详情（含分类与媒体）
// @Tags Game
// @Param id path int true "游戏ID"
// @Success 200 {object} dto.GameDetailResp
// @Router /api/games/{id} [get]
func (ctrl *GameController) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的游戏 ID"})
		return
	}

	game, err := ctrl.gameRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"code": 404, "message": "游戏不存在"})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data": dto.GameDetailResp{
			GameResp:    dto.ToGameResp(game),
			Description: game.Description,
			MediaAssets: game.MediaAssets,
		},
	})
}

// GetGameMedia 获取游戏的媒体资产
// @Summary 获取游戏已挂载的媒体资产
// @Tags Game
// @Param id path int true "游戏ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/games/{id}/media [get]
func (ctrl *GameController) GetGameMedia(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的游戏 ID"})
		return
	}

	assets, err := ctrl.mediaRepo.AssetsByGame(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": assets})
}
