// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context carries the per-statement execution context: a cancelable
// context, a logger and a tracer. Pipeline stages open a span per stage.
type Context struct {
	context.Context
	logger *logrus.Entry
	tracer opentracing.Tracer
}

type ContextOption func(*Context)

func WithLogger(logger *logrus.Entry) ContextOption {
	return func(ctx *Context) { ctx.logger = logger }
}

func WithTracer(tracer opentracing.Tracer) ContextOption {
	return func(ctx *Context) { ctx.tracer = tracer }
}

func NewContext(parent context.Context, opts ...ContextOption) *Context {
	if parent == nil {
		parent = context.Background()
	}
	ctx := &Context{
		Context: parent,
		logger:  logrus.NewEntry(logrus.StandardLogger()),
		tracer:  opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// NewEmptyContext is a convenience for tests.
func NewEmptyContext() *Context { return NewContext(context.Background()) }

func (ctx *Context) Logger() *logrus.Entry { return ctx.logger }

// Span starts a tracing span; callers must Finish it.
func (ctx *Context) Span(operation string, opts ...opentracing.StartSpanOption) opentracing.Span {
	return ctx.tracer.StartSpan(operation, opts...)
}
