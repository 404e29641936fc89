package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"

	"vidtube.com/cmd/api/handlers/common"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/cmd/api/mw"
	"vidtube.com/cmd/api/router"
	"vidtube.com/cmd/dal"
	"vidtube.com/config"
	"vidtube.com/config/pprof"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/database"
	"vidtube.com/pkg/lock"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/security"
	"vidtube.com/pkg/tracer"
	"vidtube.com/pkg/utils"
)

func Init() {
	conf := config.ConfigInfo

	db, err := database.Open()
	if err != nil {
		logrus.Fatalf("database init failed: %v", err)
	}
	dal.Init(db)

	if err = utils.InitSnowflake(conf.Server.WorkerID, conf.Server.DatacenterID); err != nil {
		logrus.Fatalf("snowflake init failed: %v", err)
	}

	if conf.Redis.Addr != "" {
		if _, err = lock.Init(conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB); err != nil {
			logrus.Fatalf("redis init failed: %v", err)
		}
	}
	if conf.Minio.Endpoint != "" {
		if err = oss.Init(conf.Minio.Endpoint, conf.Minio.AccessKey, conf.Minio.SecretKey, conf.Minio.UseSSL, conf.Minio.PublicURL); err != nil {
			logrus.Fatalf("minio init failed: %v", err)
		}
	}
	if url := config.RabbitMqURL(); url != "" {
		if err = mq.Init(url, constants.EventExchange); err != nil {
			// events are best effort, the api still serves without a broker
			logrus.Warnf("rabbitmq init failed, events disabled: %v", err)
		}
	}

	timeout, err := time.ParseDuration(conf.Jwt.Timeout)
	if err != nil {
		logrus.Fatalf("jwt.timeout: %v", err)
	}
	maxRefresh, err := time.ParseDuration(conf.Jwt.MaxRefresh)
	if err != nil {
		logrus.Fatalf("jwt.max_refresh: %v", err)
	}
	if err = mw.InitJwt(conf.Jwt.Secret, timeout, maxRefresh); err != nil {
		logrus.Fatalf("jwt init failed: %v", err)
	}
	if err = mw.InitSentinel(conf.Sentinel.QPS); err != nil {
		logrus.Fatalf("sentinel init failed: %v", err)
	}

	if conf.Server.UploadDir != "" {
		if err = os.MkdirAll(conf.Server.UploadDir, 0o755); err != nil {
			logrus.Fatalf("upload dir: %v", err)
		}
		video.UploadDir = conf.Server.UploadDir
	}
}

func serverOptions() []hertzconfig.Option {
	conf := config.ConfigInfo.Server
	opts := []hertzconfig.Option{
		server.WithHostPorts(conf.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(conf.MaxBodySize),
	}
	if conf.TLSCert != "" && conf.TLSKey != "" {
		tlsConf, err := security.ServerTLS(conf.TLSCert, conf.TLSKey, conf.TLSClientCA)
		if err != nil {
			logrus.Fatalf("tls init failed: %v", err)
		}
		// netpoll has no tls support
		opts = append(opts, server.WithTLS(tlsConf), server.WithTransport(standard.NewTransporter))
	}
	return opts
}

// corsConfig allows every origin when none is configured.
func corsConfig(origins []string) cors.Config {
	conf := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		conf.AllowOrigins = nil
		conf.AllowAllOrigins = true
	}
	return conf
}

func main() {
	config.Init()
	closer := tracer.Init(constants.ServiceName, config.ConfigInfo.Jaeger.Addr)
	defer closer.Close()

	Init()
	pprof.Load(config.ConfigInfo.Server.PprofAddr)

	h := server.New(serverOptions()...)

	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.AbortWithStatusJSON(http.StatusInternalServerError, common.ErrorResponse{
				StatusCode: http.StatusInternalServerError,
				Message:    "Internal server error",
				Success:    false,
			})
		})))

	h.Use(cors.New(corsConfig(config.ConfigInfo.Server.AllowOrigins)))
	h.Use(mw.Tracing(), mw.AccessLog(), mw.Sentinel())

	router.Register(h.Engine, router.Auth{
		Required: mw.JwtMiddleware.MiddlewareFunc(),
		Optional: mw.OptionalIdentity(),
		Login:    mw.JwtMiddleware.LoginHandler,
		Refresh:  mw.JwtMiddleware.RefreshHandler,
	})

	h.Spin()
}
