package moderation

import (
	"errors"
	"net/url"
	"strings"
)

const MaxMediaURLLength = 2048

var (
	ErrMediaURLTooLong     = errors.New("媒体链接过长")
	ErrMediaURLMalformed   = errors.New("媒体链接格式不正确")
	ErrMediaURLScheme      = errors.New("媒体链接必须使用 https")
	ErrMediaHostNotAllowed = errors.New("媒体链接域名不在白名单内")
)

// ValidateMediaURL 校验媒体链接：长度、格式、协议，以及可选的域名白名单。
// 空串视为无媒体，直接通过；任何一项不通过都拒绝，不做静默放行。
func ValidateMediaURL(raw string, requireHTTPS bool, allowedHosts []string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}

	if len(trimmed) > MaxMediaURLLength {
		return "", ErrMediaURLTooLong
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return "", ErrMediaURLMalformed
	}

	if requireHTTPS {
		if parsed.Scheme != "https" {
			return "", ErrMediaURLScheme
		}
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", ErrMediaURLScheme
	}

	if len(allowedHosts) > 0 {
		allowed := false
		for _, host := range allowedHosts {
			if strings.EqualFold(parsed.Hostname(), host) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", ErrMediaHostNotAllowed
		}
	}

	return parsed.String(), nil
}
