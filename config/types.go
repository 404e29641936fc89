package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Jaeger   jaeger   `yaml:"jaeger" mapstructure:"jaeger"`
	Sentinel sentinel `yaml:"sentinel" mapstructure:"sentinel"`
}

type server struct {
	Addr           string   `yaml:"addr"`
	AllowOrigins   []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	MaxBodySize    int      `yaml:"max_body_size" mapstructure:"max_body_size"`
	UploadDir      string   `yaml:"upload_dir" mapstructure:"upload_dir"`
	PprofAddr      string   `yaml:"pprof_addr" mapstructure:"pprof_addr"`
	WorkerID       int64    `yaml:"worker_id" mapstructure:"worker_id"`
	DatacenterID   int64    `yaml:"datacenter_id" mapstructure:"datacenter_id"`
	TLSCert        string   `yaml:"tls_cert" mapstructure:"tls_cert"`
	TLSKey         string   `yaml:"tls_key" mapstructure:"tls_key"`
	TLSClientCA    string   `yaml:"tls_client_ca" mapstructure:"tls_client_ca"`
}

type mysql struct {
	Addr         string `yaml:"addr"`
	Database     string `yaml:"database"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Charset      string `yaml:"charset"`
	MaxOpenConns int    `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	PublicURL string `yaml:"public_url" mapstructure:"public_url"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type jwt struct {
	Secret     string `yaml:"secret"`
	Timeout    string `yaml:"timeout"`
	MaxRefresh string `yaml:"max_refresh" mapstructure:"max_refresh"`
}

type jaeger struct {
	Addr string `yaml:"addr"`
}

type sentinel struct {
	QPS float64 `yaml:"qps"`
}
