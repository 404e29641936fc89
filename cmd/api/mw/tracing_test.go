package mw

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
)

func TestTracingRecordsSpan(t *testing.T) {
	tracer := mocktracer.New()
	old := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(tracer)
	defer opentracing.SetGlobalTracer(old)

	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.Use(Tracing(), AccessLog())
	engine.GET("/videos/:videoId", func(ctx context.Context, c *app.RequestContext) {
		if opentracing.SpanFromContext(ctx) == nil {
			t.Error("handler context carries no span")
		}
		c.Status(http.StatusTeapot)
	})

	w := ut.PerformRequest(engine, http.MethodGet, "/videos/1", nil)
	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d", w.Code)
	}
	spans := tracer.FinishedSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d", len(spans))
	}
	if spans[0].OperationName != "GET /videos/:videoId" {
		t.Fatalf("operation = %q", spans[0].OperationName)
	}
	if got := spans[0].Tag("http.status_code"); got != uint16(http.StatusTeapot) {
		t.Fatalf("status tag = %v", got)
	}
}
