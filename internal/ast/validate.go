package ast

import (
	"go.uber.org/multierr"

	"github.com/tangzhangming/codedom/internal/errors"
)

// ============================================================================
// 一致性检查
// ============================================================================
//
// 这些检查只在严格模式下由渲染器调用；Validate 可以在不渲染的情况下
// 一次性收集整棵树的所有违规。
//
// ============================================================================

// CheckTypeDecl 检查类型声明的种类标志与枚举约束
func CheckTypeDecl(d *TypeDecl) error {
	if n := d.KindCount(); n != 1 {
		return errors.NewConsistency(errors.G0100, d.Name, d.Name, n)
	}
	if !d.IsEnum {
		return nil
	}
	for _, m := range d.Members {
		if _, ok := m.(*Field); !ok {
			return errors.NewConsistency(errors.G0101, d.Name, d.Name, m.Base().Name, m.Kind())
		}
	}
	if len(d.TypeParams) > 0 {
		return errors.NewConsistency(errors.G0102, d.Name, d.Name)
	}
	if len(d.BaseTypes) > 0 {
		return errors.NewConsistency(errors.G0103, d.Name, d.Name)
	}
	return nil
}

// CheckAccess 检查访问修饰符位集合能否解析为唯一级别
func CheckAccess(name string, a Access) error {
	if _, ok := a.Resolve(); !ok {
		return errors.NewConsistency(errors.G0104, name, name, a.String())
	}
	return nil
}

// CheckScope 检查作用域是否为已知取值
func CheckScope(name string, s Scope) error {
	if !s.IsValid() {
		return errors.NewConsistency(errors.G0105, name, name, int(s))
	}
	return nil
}

// CheckMember 检查成员的修饰符
func CheckMember(m Member) error {
	b := m.Base()
	return multierr.Append(
		CheckAccess(b.Name, b.Modifiers.Access),
		CheckScope(b.Name, b.Modifiers.Scope),
	)
}

// Validate 收集编译单元中所有的一致性错误
//
// 返回值可用 multierr.Errors 拆分为单个错误。
func Validate(unit *CompileUnit) error {
	var err error
	Inspect(unit, func(n Node) bool {
		switch n := n.(type) {
		case *TypeDecl:
			err = multierr.Append(err, CheckTypeDecl(n))
			err = multierr.Append(err, CheckAccess(n.Name, n.Modifiers.Access))
		case Member:
			err = multierr.Append(err, CheckMember(n))
		}
		return true
	})
	return err
}
