package utils

import "strings"

// NormalizeEmail 规范化邮箱：域名部分转为小写，本地部分保持原样
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}
