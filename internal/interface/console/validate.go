package console

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// 输入校验规则
// 设计说明:
// 1. 核心服务假定输入已预校验,所有格式检查都在控制台层完成
// 2. 电话:可选+号开头,7-15位数字(不含分隔符)
// 3. 日期:严格YYYY-MM-DD格式
// 4. 价格:以"元"输入(如59.90),最多两位小数,内部转换为"分"

// phonePattern 电话号码格式
var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

// ValidPhoneNumber 校验电话号码格式
func ValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ParseDate 解析YYYY-MM-DD格式的日期
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("日期格式不正确,应为YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// ParsePriceYuan 解析以"元"为单位的价格字符串,返回"分"
// 接受:59、59.9、59.90;拒绝:负数、超过两位小数、非数字
func ParsePriceYuan(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("价格必须是非负数字: %q", s)
	}

	parts := strings.SplitN(s, ".", 2)

	yuan, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("价格必须是非负数字: %q", s)
	}

	var fen int64
	if len(parts) == 2 {
		frac := parts[1]
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("价格最多两位小数: %q", s)
		}
		// "9" → 90分,"95" → 95分
		if len(frac) == 1 {
			frac += "0"
		}
		fen, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("价格必须是非负数字: %q", s)
		}
	}

	return yuan*100 + fen, nil
}

// ParsePositiveUint 解析正整数(用于各类ID和数量)
func ParsePositiveUint(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("必须输入大于0的整数: %q", s)
	}
	return uint(n), nil
}

// ParseNonNegativeInt 解析非负整数(用于库存)
func ParseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("必须输入非负整数: %q", s)
	}
	return n, nil
}
