package dto

import "gog_sync_v1_202601/internal/model"

// GameResp 游戏列表/详情响应体
type GameResp struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Price            float64  `json:"price"`
	ShortDescription string   `json:"short_description"`
	Rating           string   `json:"rating"`
	ReleaseDate      string   `json:"release_date"`
	Developers       []string `json:"developers,omitempty"`
	Publishers       []string `json:"publishers,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	Platforms        []string `json:"platforms,omitempty"`
}

// GameDetailResp 详情响应：比列表多原始描述和媒体
type GameDetailResp struct {
	GameResp
	Description string             `json:"description"`
	MediaAssets []model.MediaAsset `json:"media_assets"`
}

// GameListResp 游戏列表响应
type GameListResp struct {
	Code     int        `json:"code"`
	Message  string     `json:"message"`
	Data     []GameResp `json:"data"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// ToGameResp Model -> 响应体
func ToGameResp(g *model.Game) GameResp {
	resp := GameResp{
		ID:               g.ID,
		Name:             g.Name,
		Slug:             g.Slug,
		Price:            g.Price,
		ShortDescription: g.ShortDescription,
		Rating:           string(g.Rating),
		ReleaseDate:      g.ReleaseDate.Format("2006-01-02"),
	}
	for _, d := range g.Developers {
		resp.Developers = append(resp.Developers, d.Name)
	}
	for _, p := range g.Publishers {
		resp.Publishers = append(resp.Publishers, p.Name)
	}
	for _, c := range g.Categories {
		resp.Categories = append(resp.Categories, c.Name)
	}
	for _, p := range g.Platforms {
		resp.Platforms = append(resp.Platforms, p.Name)
	}
	return resp
}
