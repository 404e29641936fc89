package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init loads config.yml. Every key may be overridden from the environment,
// e.g. VIDTUBE_MYSQL_ADDR for mysql.addr.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")
	viper.SetEnvPrefix("vidtube")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults and environment: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	load()

	logrus.Infof("Config loaded - server: %s, MySQL: %s:%s@%s/%s",
		ConfigInfo.Server.Addr, ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Redis.Addr == "" {
		logrus.Warn("No redis configured, toggles run without a distributed lock")
	}
	if ConfigInfo.RabbitMq.Addr == "" {
		logrus.Warn("No rabbitmq configured, domain events are dropped")
	}
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("jwt.secret is empty!")
	}
}

func setDefaults() {
	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("server.max_body_size", 1<<30)
	viper.SetDefault("server.upload_dir", filepath.Join(os.TempDir(), "vidtube-uploads"))
	viper.SetDefault("server.worker_id", 1)
	viper.SetDefault("server.datacenter_id", 1)
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("mysql.max_open_conns", 50)
	viper.SetDefault("mysql.max_idle_conns", 10)
	viper.SetDefault("jwt.timeout", "24h")
	viper.SetDefault("jwt.max_refresh", "72h")
	viper.SetDefault("sentinel.qps", 500)
}

// load copies values out of viper key by key, env overrides only apply to
// keys read through viper.Get*.
func load() {
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.AllowOrigins = viper.GetStringSlice("server.allow_origins")
	ConfigInfo.Server.MaxBodySize = viper.GetInt("server.max_body_size")
	ConfigInfo.Server.UploadDir = viper.GetString("server.upload_dir")
	ConfigInfo.Server.PprofAddr = viper.GetString("server.pprof_addr")
	ConfigInfo.Server.WorkerID = viper.GetInt64("server.worker_id")
	ConfigInfo.Server.DatacenterID = viper.GetInt64("server.datacenter_id")
	ConfigInfo.Server.TLSCert = viper.GetString("server.tls_cert")
	ConfigInfo.Server.TLSKey = viper.GetString("server.tls_key")
	ConfigInfo.Server.TLSClientCA = viper.GetString("server.tls_client_ca")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")
	ConfigInfo.Mysql.MaxOpenConns = viper.GetInt("mysql.max_open_conns")
	ConfigInfo.Mysql.MaxIdleConns = viper.GetInt("mysql.max_idle_conns")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicURL = viper.GetString("minio.public_url")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Timeout = viper.GetString("jwt.timeout")
	ConfigInfo.Jwt.MaxRefresh = viper.GetString("jwt.max_refresh")

	ConfigInfo.Jaeger.Addr = viper.GetString("jaeger.addr")

	ConfigInfo.Sentinel.QPS = viper.GetFloat64("sentinel.qps")
}

// RabbitMqURL assembles the amqp url, empty when rabbitmq is not configured.
func RabbitMqURL() string {
	if ConfigInfo.RabbitMq.Addr == "" {
		return ""
	}
	return "amqp://" + ConfigInfo.RabbitMq.Username + ":" + ConfigInfo.RabbitMq.Password + "@" + ConfigInfo.RabbitMq.Addr + "/"
}
