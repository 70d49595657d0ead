package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// 常量定义
const (
	ConfigFileName    = "codedom.toml" // 配置文件名
	DefaultIndentUnit = "    "         // 默认缩进（4 个空格）
)

// Options 渲染选项
type Options struct {
	// 缩进单位，每层缩进输出一次
	IndentUnit string `toml:"indent_unit"`

	// 严格模式：一致性错误与无人处理的节点都会使渲染失败
	Strict bool `toml:"strict"`

	// 总是输出完全限定的类型名
	FullyQualify bool `toml:"fully_qualify"`

	// 移除多余的括号（需要配置支持）
	RemoveRedundantParens bool `toml:"remove_redundant_parens"`

	// 以下选项被接受但暂不生效
	CheckNaming bool `toml:"check_naming"`
	ForceBraces bool `toml:"force_braces"`
}

// fileConfig 配置文件结构
type fileConfig struct {
	Render *Options `toml:"render"`
}

// DefaultOptions 返回默认选项
func DefaultOptions() *Options {
	return &Options{
		IndentUnit:            DefaultIndentUnit,
		Strict:                false,
		FullyQualify:          false,
		RemoveRedundantParens: true,
	}
}

// ParseOptions 解析 TOML 内容，未出现的键保持默认值
func ParseOptions(data []byte) (*Options, error) {
	cfg := fileConfig{Render: DefaultOptions()}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Render == nil {
		cfg.Render = DefaultOptions()
	}
	return cfg.Render, nil
}

// LoadOptions 从文件加载选项
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseOptions(data)
}

// Save 保存选项到文件
func (o *Options) Save(path string) error {
	if err := os.WriteFile(path, []byte(o.withComments()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// withComments 生成带注释的配置文件内容
func (o *Options) withComments() string {
	var sb strings.Builder

	sb.WriteString("[render]\n")
	sb.WriteString("# 每层缩进输出的字符串\n")
	sb.WriteString(fmt.Sprintf("indent_unit = %q\n\n", o.IndentUnit))
	sb.WriteString("# 严格模式：结构不一致或目标语法无法表达时报错\n")
	sb.WriteString(fmt.Sprintf("strict = %t\n\n", o.Strict))
	sb.WriteString("# 总是输出完全限定的类型名\n")
	sb.WriteString(fmt.Sprintf("fully_qualify = %t\n\n", o.FullyQualify))
	sb.WriteString("# 移除多余的括号\n")
	sb.WriteString(fmt.Sprintf("remove_redundant_parens = %t\n\n", o.RemoveRedundantParens))
	sb.WriteString("# 保留选项，目前不生效\n")
	sb.WriteString(fmt.Sprintf("check_naming = %t\n", o.CheckNaming))
	sb.WriteString(fmt.Sprintf("force_braces = %t\n", o.ForceBraces))

	return sb.String()
}

// indentUnit 返回缩进单位，空字符串时使用默认值
func (o *Options) indentUnit() string {
	if o == nil || o.IndentUnit == "" {
		return DefaultIndentUnit
	}
	return o.IndentUnit
}
