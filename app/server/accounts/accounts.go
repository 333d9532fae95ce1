package accounts

import (
	"context"
	"errors"
	"fmt"
	"recipe-box/app/server/constants"
	"recipe-box/app/server/models"
	"recipe-box/app/server/utils"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", constants.PasswordMinLength)

	// 用户不存在和密码错误使用同一个错误，避免泄露账号是否存在
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CreateUser 创建普通用户：规范化邮箱、散列密码后落库。
// 唯一索引冲突时返回 gorm.ErrDuplicatedKey ，由调用方决定如何呈现。
func CreateUser(ctx context.Context, db *gorm.DB, email string, password string, name string) (*models.User, error) {
	// 校验输入
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < constants.PasswordMinLength {
		return nil, ErrPasswordTooShort
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 创建用户
	user := models.User{
		Email:    utils.NormalizeEmail(email),
		Name:     name,
		Password: passwordHash,
		IsActive: true,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateSuperuser 创建超级管理员，在普通用户基础上附加 staff 与 superuser 标记
func CreateSuperuser(ctx context.Context, db *gorm.DB, email string, password string) (*models.User, error) {
	user, err := CreateUser(ctx, db, email, password, "")
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"is_staff":     true,
		"is_superuser": true,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to set superuser flags: %w", err)
	}

	user.IsStaff = true
	user.IsSuperuser = true
	return user, nil
}

// VerifyCredential 校验邮箱密码，只有散列匹配且账号启用才返回用户
func VerifyCredential(ctx context.Context, db *gorm.DB, email string, password string) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).First(&user, "email = ?", utils.NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		return nil, fmt.Errorf("failed to check password: %w", err)
	} else if !match {
		// 密码不一致
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
