package dto

import "gog_sync_v1_202601/internal/model"

// SyncRunResp 单次同步运行的响应
type SyncRunResp struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    *model.SyncRun `json:"data,omitempty"`
}

// SyncRunListResp 运行记录列表响应
type SyncRunListResp struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    []model.SyncRun `json:"data"`
}

// TaxonomyListResp 分类实体列表响应
// data 的具体元素类型由查询的维度决定（四类实体字段一致）
type TaxonomyListResp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Kind    string      `json:"kind"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
}
