package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gosimple/slug"

	"gog_sync_v1_202601/internal/model"
	"gog_sync_v1_202601/internal/repository"
	"gog_sync_v1_202601/pkg/gog"
)

// releaseDateLayout 目录里的发售日期格式 YYYY.MM.DD
const releaseDateLayout = "2006.01.02"

// PopulateService 目录同步编排
// 流程：拉目录 → 逐个商品（分类解析 → 详情抓取 → 游戏落库 → 媒体入队）
// 数据只向前流动，后面的环节不会回调前面的
type PopulateService struct {
	catalog      *CatalogService
	scraper      *ScrapeService
	media        *MediaService
	taxonomyRepo *repository.TaxonomyRepo
	gameRepo     *repository.GameRepo
	runRepo      *repository.SyncRunRepo
}

func NewPopulateService(
	catalog *CatalogService,
	scraper *ScrapeService,
	media *MediaService,
	taxonomyRepo *repository.TaxonomyRepo,
	gameRepo *repository.GameRepo,
	runRepo *repository.SyncRunRepo,
) *PopulateService {
	return &PopulateService{
		catalog:      catalog,
		scraper:      scraper,
		media:        media,
		taxonomyRepo: taxonomyRepo,
		gameRepo:     gameRepo,
		runRepo:      runRepo,
	}
}

// Populate 同步一页目录
// 单个商品失败只记日志并继续，整页不会因为一条坏数据中断；
// 目录本身拉不下来才算整次运行失败
func (s *PopulateService) Populate(ctx context.Context, page int) (*model.SyncRun, error) {
	if page <= 0 {
		page = 1
	}

	run := &model.SyncRun{
		Page:      page,
		Status:    model.SyncRunning,
		StartedAt: time.Now(),
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("创建运行记录失败: %w", err)
	}

	products, err := s.catalog.FetchPage(ctx, page)
	if err != nil {
		s.finishRun(ctx, run, err)
		return run, err
	}
	run.ProductsSeen = len(products)
	log.Printf("[Populate] 第 %d 页拉到 %d 个商品", page, len(products))

	// 商品必须串行处理：每个商品的分类解析和落库完整结束后才轮到下一个
	for i := range products {
		product := &products[i]

		created, err := s.ingestProduct(ctx, run, product)
		if err != nil {
			run.ProductsFailed++
			log.Printf("[Populate] 商品处理失败 %q: %v", product.Title, err)
			continue
		}
		if created {
			run.GamesCreated++
		} else {
			run.GamesUpdated++
		}
	}

	s.finishRun(ctx, run, nil)
	log.Printf("[Populate] 第 %d 页同步完成: 新建 %d / 更新 %d / 失败 %d / 媒体入队 %d",
		page, run.GamesCreated, run.GamesUpdated, run.ProductsFailed, run.MediaEnqueued)
	return run, nil
}

// ingestProduct 处理单个商品，返回游戏是否为新建
func (s *PopulateService) ingestProduct(ctx context.Context, run *model.SyncRun, product *gog.CatalogProduct) (bool, error) {
	rel, err := s.resolveTaxonomy(ctx, product)
	if err != nil {
		return false, fmt.Errorf("分类解析失败: %w", err)
	}

	meta, err := s.scraper.GetGameInfo(ctx, product.Slug)
	if err != nil {
		return false, err
	}

	releaseDate, err := time.Parse(releaseDateLayout, product.ReleaseDate)
	if err != nil {
		return false, fmt.Errorf("发售日期格式非法 %q: %v", product.ReleaseDate, err)
	}

	raw, err := json.Marshal(product)
	if err != nil {
		// 快照序列化失败不拦建档，缺快照可以从下次同步补回来
		log.Printf("[Populate] 原始数据快照序列化失败 %q: %v", product.Title, err)
		raw = nil
	}

	game := &model.Game{
		Name:             product.Title,
		Slug:             slug.Make(product.Title),
		Price:            product.Price.FinalMoney.Amount,
		Description:      meta.Description,
		ShortDescription: meta.ShortDescription,
		Rating:           meta.Rating,
		ReleaseDate:      releaseDate,
		Developers:       rel.developers,
		Publishers:       rel.publishers,
		Categories:       rel.categories,
		Platforms:        rel.platforms,
		ScreenshotURLs:   product.Screenshots,
		RawCatalog:       raw,
	}

	log.Printf("[Populate] 写入游戏 %q (%s)", product.Title, game.Slug)
	created, err := s.gameRepo.Upsert(ctx, game)
	if err != nil {
		return false, fmt.Errorf("游戏落库失败: %w", err)
	}

	// 只有新建档的游戏才入媒体队列，重跑不重复下载
	if created {
		n, err := s.media.EnqueueGameMedia(ctx, game, product)
		if err != nil {
			// 入队失败不影响已建档的游戏，留给日志和队列监控
			log.Printf("[Populate] 媒体任务入队失败 %s: %v", game.Slug, err)
		} else {
			run.MediaEnqueued += n
		}
	}

	return created, nil
}

// taxonomyRelations 单个商品解析出的分类关联
type taxonomyRelations struct {
	developers []model.Developer
	publishers []model.Publisher
	categories []model.Category
	platforms  []model.Platform
}

// resolveTaxonomy 逐个名字解析分类，保持目录里的顺序
// 同名在不同维度下是不同记录（开发商 Acme 和发行商 Acme 各一条）
func (s *PopulateService) resolveTaxonomy(ctx context.Context, product *gog.CatalogProduct) (*taxonomyRelations, error) {
	rel := &taxonomyRelations{}

	for _, name := range product.Developers {
		d, err := s.taxonomyRepo.FindOrCreateDeveloper(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("developer %q: %w", name, err)
		}
		rel.developers = append(rel.developers, *d)
	}

	for _, name := range product.Publishers {
		p, err := s.taxonomyRepo.FindOrCreatePublisher(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("publisher %q: %w", name, err)
		}
		rel.publishers = append(rel.publishers, *p)
	}

	for _, genre := range product.Genres {
		c, err := s.taxonomyRepo.FindOrCreateCategory(ctx, genre.Name)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", genre.Name, err)
		}
		rel.categories = append(rel.categories, *c)
	}

	for _, name := range product.OperatingSystems {
		p, err := s.taxonomyRepo.FindOrCreatePlatform(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("platform %q: %w", name, err)
		}
		rel.platforms = append(rel.platforms, *p)
	}

	return rel, nil
}

// finishRun 收尾运行记录
func (s *PopulateService) finishRun(ctx context.Context, run *model.SyncRun, runErr error) {
	now := time.Now()
	run.FinishedAt = &now
	if runErr != nil {
		run.Status = model.SyncFailed
		run.Error = runErr.Error()
	} else {
		run.Status = model.SyncCompleted
	}
	if err := s.runRepo.Update(ctx, run); err != nil {
		log.Printf("[Populate] 更新运行记录 %d 失败: %v", run.ID, err)
	}
}
