package config

type config struct {
	Mysql      mysql      `yaml:"mysql" mapstructure:"mysql"`
	Server     server     `yaml:"server" mapstructure:"server"`
	Jwt        jwt        `yaml:"jwt" mapstructure:"jwt"`
	Pagination pagination `yaml:"pagination" mapstructure:"pagination"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type server struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

type jwt struct {
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	Issuer    string `yaml:"issuer"`
}

type pagination struct {
	// StrictPages 为true时按固定页大小返回；为false时保留旧版
	// skip=(page-1)*limit take=page*limit 的累计窗口行为
	StrictPages bool `yaml:"strict_pages" mapstructure:"strict_pages"`
}
