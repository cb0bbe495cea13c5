package model

// Rating 内容分级（巴西分级制度，封闭枚举）
type Rating string

const (
	RatingBR0  Rating = "BR0" // 全年龄，也是缺省值
	RatingBR10 Rating = "BR10"
	RatingBR12 Rating = "BR12"
	RatingBR14 Rating = "BR14"
	RatingBR16 Rating = "BR16"
	RatingBR18 Rating = "BR18"
)

// ClassifyRating 把抓取到的原始 token 归一化为合法分级
// 纯函数，永不失败：不在枚举里的 token 一律落回 BR0
func ClassifyRating(raw string) Rating {
	switch r := Rating(raw); r {
	case RatingBR0, RatingBR10, RatingBR12, RatingBR14, RatingBR16, RatingBR18:
		return r
	}
	return RatingBR0
}
