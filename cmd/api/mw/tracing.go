package mw

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Tracing opens one server span per request. Store spans recorded by the
// gorm plugin hang below it through the request context.
func Tracing() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		name := string(c.Method()) + " " + c.FullPath()
		span, ctx := opentracing.StartSpanFromContext(ctx, name)
		ext.SpanKindRPCServer.Set(span)
		ext.HTTPMethod.Set(span, string(c.Method()))
		ext.HTTPUrl.Set(span, string(c.Request.URI().Path()))
		defer span.Finish()

		c.Next(ctx)

		status := c.Response.StatusCode()
		ext.HTTPStatusCode.Set(span, uint16(status))
		if status >= 500 {
			ext.Error.Set(span, true)
		}
	}
}

func AccessLog() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)
		hlog.CtxInfof(ctx, "%s %s %d %v", c.Method(), c.Request.URI().PathOriginal(), c.Response.StatusCode(), time.Since(start))
	}
}
