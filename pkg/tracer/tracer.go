package tracer

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// Init installs a jaeger tracer as the global opentracing tracer. An empty
// agent address leaves the noop tracer in place.
func Init(service, agentAddr string) io.Closer {
	if agentAddr == "" {
		return nopCloser{}
	}
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: agentAddr,
		},
	}
	t, closer, err := cfg.NewTracer()
	if err != nil {
		logrus.Warnf("init jaeger tracer: %v", err)
		return nopCloser{}
	}
	opentracing.SetGlobalTracer(t)
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
