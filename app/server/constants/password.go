package constants

const (
	PasswordMinLength = 6 // 密码最短长度
)
