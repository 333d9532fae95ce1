package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model

	// 菜谱基础信息
	Title       string          `gorm:"column:title"`                   // 标题
	Description string          `gorm:"column:description"`             // 详细介绍
	TimeMinutes int             `gorm:"column:time_minutes"`            // 准备耗时（分钟）
	Price       decimal.Decimal `gorm:"column:price;type:numeric(5,2)"` // 价格（两位小数）
	Link        *string         `gorm:"column:link"`                    // 外部链接， NULL 表示没有

	// 所属用户，所有读写都必须按它过滤
	UserID uint `gorm:"column:user_id;index"`

	// 连接模型时使用
	User User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // 所属用户
	Tags []Tag `gorm:"many2many:recipe_tags"`                         // 关联标签，不要求标签属于同一用户
}
