// Package codegen 按配置标识选择渲染器
//
// render 包的渲染器以配置私有状态为类型参数，这里把它们统一为
// 不带类型参数的入口，供命令行与其他调用方使用。
package codegen

import (
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/render"
	"github.com/tangzhangming/codedom/internal/render/csharp"
	"github.com/tangzhangming/codedom/internal/render/vb"
)

// ProfileID 目标语法标识
type ProfileID string

const (
	CSharp ProfileID = csharp.Name
	VB     ProfileID = vb.Name
)

// renderFunc 绑定了配置的渲染入口
type renderFunc func(unit *ast.CompileUnit, sink render.TextSink, opts *render.Options, logger *zap.Logger) error

var profiles = map[ProfileID]renderFunc{
	CSharp: bind(csharp.New),
	VB:     bind(vb.New),
}

// aliases 命令行中常见的别名
var aliases = map[string]ProfileID{
	"cs":          CSharp,
	"c#":          CSharp,
	"visualbasic": VB,
	"vbnet":       VB,
	"vb.net":      VB,
}

func bind[X any](newProfile func() *render.Profile[X]) renderFunc {
	return func(unit *ast.CompileUnit, sink render.TextSink, opts *render.Options, logger *zap.Logger) error {
		r, err := render.NewRenderer(newProfile(), logger)
		if err != nil {
			return err
		}
		return r.Render(unit, sink, opts)
	}
}

// Profiles 所有可用的配置，按名称排序
func Profiles() []ProfileID {
	ids := make([]ProfileID, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ParseProfileID 解析配置名称（大小写不敏感，接受别名）
func ParseProfileID(name string) (ProfileID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := profiles[ProfileID(key)]; ok {
		return ProfileID(key), nil
	}
	if id, ok := aliases[key]; ok {
		return id, nil
	}
	return "", errors.NewArgument(errors.G0204, "profile", name)
}

// ============================================================================
// Generator
// ============================================================================

// Generator 带日志记录器的渲染入口
type Generator struct {
	logger *zap.Logger
}

// New 创建 Generator，logger 为 nil 时不记录日志
func New(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Render 用指定配置把编译单元渲染到 sink
func (g *Generator) Render(unit *ast.CompileUnit, sink render.TextSink, id ProfileID, opts *render.Options) error {
	fn, ok := profiles[id]
	if !ok {
		return errors.NewArgument(errors.G0204, "profile", string(id))
	}
	g.logger.Debug("rendering compile unit",
		zap.String("profile", string(id)),
		zap.Int("namespaces", len(unit.Namespaces)))
	return fn(unit, sink, opts, g.logger)
}

// RenderString 渲染到字符串
func (g *Generator) RenderString(unit *ast.CompileUnit, id ProfileID, opts *render.Options) (string, error) {
	sink := render.NewStringSink()
	if err := g.Render(unit, sink, id, opts); err != nil {
		return "", err
	}
	return sink.String(), nil
}

// RenderTo 渲染到 io.Writer，返回渲染错误或第一个写入错误
func (g *Generator) RenderTo(w io.Writer, unit *ast.CompileUnit, id ProfileID, opts *render.Options) error {
	sink := render.NewWriterSink(w)
	if err := g.Render(unit, sink, id, opts); err != nil {
		return err
	}
	return sink.Err()
}

var std = New(nil)

// Render 使用默认 Generator 渲染
func Render(unit *ast.CompileUnit, sink render.TextSink, id ProfileID, opts *render.Options) error {
	return std.Render(unit, sink, id, opts)
}

// RenderString 使用默认 Generator 渲染到字符串
func RenderString(unit *ast.CompileUnit, id ProfileID, opts *render.Options) (string, error) {
	return std.RenderString(unit, id, opts)
}
