package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Email string `gorm:"column:email;uniqueIndex"` // 邮箱，作为登录标识，全局唯一
	Name  string `gorm:"column:name"`              // 显示名称

	// 登录与授权认证相关
	Password    string `gorm:"column:password"`     // 密码，使用 argon2id 储存
	IsActive    bool   `gorm:"column:is_active"`    // 是否启用：停用的账号无法登录和访问
	IsStaff     bool   `gorm:"column:is_staff"`     // 是否为内部人员
	IsSuperuser bool   `gorm:"column:is_superuser"` // 是否为超级管理员
}
