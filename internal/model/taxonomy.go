package model

// ==================== 分类维度 ====================

// TaxonomyKind 分类维度（封闭集合，四选一）
// 用类型收口，非法维度在入口处就被拒绝
type TaxonomyKind string

const (
	KindDeveloper TaxonomyKind = "developer"
	KindPublisher TaxonomyKind = "publisher"
	KindCategory  TaxonomyKind = "category"
	KindPlatform  TaxonomyKind = "platform"
)

// Valid 校验维度取值
func (k TaxonomyKind) Valid() bool {
	switch k {
	case KindDeveloper, KindPublisher, KindCategory, KindPlatform:
		return true
	}
	return false
}

// ==================== 分类实体 ====================
// 四张表结构一致：name 在各自表内唯一，slug 由 name 派生
// 管道只做「查不到就建」，从不更新、从不删除

// Developer 开发商
type Developer struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:255;index" json:"slug"`
}

func (Developer) TableName() string { return "developers" }

// Publisher 发行商
type Publisher struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:255;index" json:"slug"`
}

func (Publisher) TableName() string { return "publishers" }

// Category 游戏分类（来源于目录的 genre）
type Category struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:255;index" json:"slug"`
}

func (Category) TableName() string { return "categories" }

// Platform 运行平台（来源于目录的 operatingSystem）
type Platform struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:255;index" json:"slug"`
}

func (Platform) TableName() string { return "platforms" }
