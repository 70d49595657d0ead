// Package render 实现与目标语法无关的渲染引擎
//
// 每个节点类别一条处理器链（Chain），通用处理器实现与具体语法无关的部分
// （输出顺序、栈纪律、语句结束、数字字面量），语法相关的文本全部来自 Profile 钩子。
package render

import (
	"go.uber.org/zap"

	"github.com/tangzhangming/codedom/internal/ast"
)

// Renderer 绑定了某个配置的渲染器
type Renderer[X any] struct {
	profile *Profile[X]
	logger  *zap.Logger
}

// NewRenderer 创建渲染器，配置的必填钩子缺失时返回 ArgumentError
func NewRenderer[X any](p *Profile[X], logger *zap.Logger) (*Renderer[X], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer[X]{profile: p, logger: logger.With(zap.String("profile", p.Name))}, nil
}

// Name 配置名称
func (r *Renderer[X]) Name() string { return r.profile.Name }

// Registry 创建装配好通用处理器与配置处理器的注册表
func (r *Renderer[X]) Registry() *Registry[X] {
	reg := NewRegistry[X]()
	reg.registerCommon()
	if r.profile.ExtraHandlers != nil {
		r.profile.ExtraHandlers(reg)
	}
	return reg
}

// NewContext 创建一次渲染使用的上下文
func (r *Renderer[X]) NewContext(sink TextSink, opts *Options) *Context[X] {
	return newContext(r.profile, r.Registry(), sink, opts, r.logger)
}

// Render 渲染编译单元
func (r *Renderer[X]) Render(unit *ast.CompileUnit, sink TextSink, opts *Options) error {
	ctx := r.NewContext(sink, opts)
	ok, err := ctx.reg.Units.Handle(ctx, unit)
	if err != nil {
		return err
	}
	if !ok {
		ctx.skipped(CategoryCompileUnit, unit)
	}
	return nil
}

// RenderString 渲染到字符串
func (r *Renderer[X]) RenderString(unit *ast.CompileUnit, opts *Options) (string, error) {
	sink := NewStringSink()
	if err := r.Render(unit, sink, opts); err != nil {
		return "", err
	}
	return sink.String(), nil
}
