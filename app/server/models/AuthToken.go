package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthToken struct {
	gorm.Model

	Key    uuid.UUID `gorm:"column:key;type:uuid;index"` // 对外的不透明凭据，不包含任何信息
	UserID uint      `gorm:"column:user_id;uniqueIndex"` // 所属用户，一个用户至多一条记录

	// 连接模型时使用
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // 所属用户
}
