package models

import "gorm.io/gorm"

type Tag struct {
	gorm.Model

	Name   string `gorm:"column:name"`          // 标签名称
	UserID uint   `gorm:"column:user_id;index"` // 所属用户，只有所属用户可见

	// 连接模型时使用
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // 所属用户
}
