package controller

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/internal/service"
)

type UploadController struct {
	mediaService *service.MediaService
}

func NewUploadController(mediaService *service.MediaService) *UploadController {
	return &UploadController{mediaService: mediaService}
}

// Upload 手动挂载媒体附件
// multipart 字段沿用资产挂载约定: refId(游戏ID) / field(cover|gallery) / files
// @Summary 给游戏挂载媒体附件
// @Tags Upload
// @Accept multipart/form-data
// @Param refId formData int true "游戏ID"
// @Param field formData string false "挂载字段" default(cover)
// @Param files formData file true "文件，可多个"
// @Success 200 {object} map[string]interface{}
// @Router /api/upload [post]
func (ctrl *UploadController) Upload(c *gin.Context) {
	refID, err := strconv.ParseInt(c.PostForm("refId"), 10, 64)
	if err != nil || refID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 refId"})
		return
	}

	field := c.DefaultPostForm("field", model.MediaFieldCover)
	if !model.ValidMediaField(field) {
		c.JSON(400, gin.H{"code": 400, "message": "无效的 field，可选: cover/gallery"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "解析 multipart 失败: " + err.Error()})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(400, gin.H{"code": 400, "message": "缺少上传文件"})
		return
	}
	// cover 只收一个文件，多传的忽略
	if field == model.MediaFieldCover && len(files) > 1 {
		files = files[:1]
	}

	var assets []model.MediaAsset
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(400, gin.H{"code": 400, "message": "读取文件失败: " + err.Error()})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(400, gin.H{"code": 400, "message": "读取文件失败: " + err.Error()})
			return
		}

		asset, err := ctrl.mediaService.Attach(
			c.Request.Context(), refID, field, fh.Filename,
			data, fh.Header.Get("Content-Type"),
		)
		if err != nil {
			c.JSON(500, gin.H{"code": 500, "message": "挂载失败: " + err.Error()})
			return
		}
		assets = append(assets, *asset)
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": assets})
}
