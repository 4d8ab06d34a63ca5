package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 执行 dto 上 validate 标签声明的规则，binding 标签之外的长度类
// 约束都靠它兜底。校验失败返回 validator.ValidationErrors，response 层映射为 400。
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
