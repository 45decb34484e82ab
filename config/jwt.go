package config

// Jwt 令牌配置信息
type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	Expire int    `json:"expire" yaml:"expire"` // 有效期，单位秒
}
