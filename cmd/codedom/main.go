// Command codedom 把 JSON 描述的程序树渲染为 C# 或 Visual Basic 源码
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tangzhangming/codedom/internal/codegen"
	"github.com/tangzhangming/codedom/internal/i18n"
	"github.com/tangzhangming/codedom/internal/render"
)

const Version = "0.1.0"

// errReported 错误已经输出过，只需要以非零状态退出
var errReported = errors.New("errors reported")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// app 命令之间共享的全局参数与运行时状态
type app struct {
	verbose bool
	config  string
	profile string
	strict  bool
	lang    string

	logger *zap.Logger
	opts   *render.Options
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "codedom",
		Short:         "Render language-neutral program trees as C# or Visual Basic source",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLanguage(a.lang)
			logger, err := newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return a.loadOptions(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&a.config, "config", "c", "", "config file (default ./"+render.ConfigFileName+" when present)")
	flags.StringVarP(&a.profile, "profile", "p", string(codegen.CSharp), "target profile")
	flags.BoolVar(&a.strict, "strict", false, "fail on inconsistent or unrenderable nodes")
	flags.StringVar(&a.lang, "lang", "", "message language (en|zh)")

	root.AddCommand(
		newRenderCmd(a),
		newCheckCmd(a),
		newDumpCmd(a),
		newProfilesCmd(a),
		newInitCmd(a),
	)
	return root
}

// newLogger 默认只输出警告以上的日志，--verbose 时切换到开发配置
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// annotationNoConfig 标记不读取配置文件的命令
const annotationNoConfig = "codedom/no-config"

// loadOptions 按 --config、当前目录配置文件、默认值的顺序确定渲染选项
func (a *app) loadOptions(cmd *cobra.Command) error {
	path := a.config
	if path == "" {
		if _, err := os.Stat(render.ConfigFileName); err == nil {
			path = render.ConfigFileName
		}
	}

	a.opts = render.DefaultOptions()
	if path != "" && cmd.Annotations[annotationNoConfig] == "" {
		opts, err := render.LoadOptions(path)
		if err != nil {
			return err
		}
		a.opts = opts
		a.logger.Debug(i18n.T(i18n.MsgConfigLoaded, path))
	}
	if cmd.Flags().Changed("strict") {
		a.opts.Strict = a.strict
	}
	return nil
}

func (a *app) profileID() (codegen.ProfileID, error) {
	return codegen.ParseProfileID(a.profile)
}
