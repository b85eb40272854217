package config

import "github.com/hollowflare/eventbus/casing"

func toScreamingSnakeCase(s string) string {
	return casing.ToScreamingSnake(s)
}

func toKebabCase(s string) string {
	return casing.ToKebab(s)
}
