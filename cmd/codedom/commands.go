package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/codec"
	"github.com/tangzhangming/codedom/internal/codegen"
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/i18n"
	"github.com/tangzhangming/codedom/internal/render"
)

// ============================================================================
// render
// ============================================================================

func newRenderCmd(a *app) *cobra.Command {
	var output, indent string

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render a JSON program tree with the selected profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.profileID()
			if err != nil {
				return a.report(cmd, err)
			}
			unit, err := codec.DecodeFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("indent") {
				a.opts.IndentUnit = indent
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := codegen.New(a.logger).RenderTo(w, unit, id, a.opts); err != nil {
				return a.report(cmd, err)
			}
			if output != "" {
				a.logger.Info(i18n.T(i18n.MsgWroteOutput, output), zap.String("profile", string(id)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&indent, "indent", render.DefaultIndentUnit, "indent unit")
	return cmd
}

// ============================================================================
// check
// ============================================================================

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|->",
		Short: "Validate a program tree and try a strict render without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.profileID()
			if err != nil {
				return a.report(cmd, err)
			}
			unit, err := codec.DecodeFile(args[0])
			if err != nil {
				return err
			}

			errs := ast.Validate(unit)
			strict := *a.opts
			strict.Strict = true
			if err := codegen.New(a.logger).RenderTo(io.Discard, unit, id, &strict); err != nil && !errors.IsConsistency(err) {
				// 一致性错误已经由 Validate 全部收集
				errs = multierr.Append(errs, err)
			}
			if errs != nil {
				return a.report(cmd, errs)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T(i18n.MsgCheckOK, args[0]))
			return nil
		},
	}
}

// ============================================================================
// dump
// ============================================================================

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file|->",
		Short: "Print the decoded program tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := codec.DecodeFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%# v\n", pretty.Formatter(unit))
			return nil
		},
	}
}

// ============================================================================
// profiles
// ============================================================================

func newProfilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List available target profiles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, id := range codegen.Profiles() {
				if id == codegen.CSharp {
					fmt.Fprintf(out, "%s %s\n", id, i18n.T(i18n.MsgProfileDefault))
					continue
				}
				fmt.Fprintln(out, id)
			}
		},
	}
}

// ============================================================================
// init
// ============================================================================

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a default " + render.ConfigFileName + " to the current directory",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := render.ConfigFileName
			if a.config != "" {
				path = a.config
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s", i18n.T(i18n.MsgConfigExists, path))
			}
			if err := a.opts.Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T(i18n.MsgConfigCreated, path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

// ============================================================================
// 错误输出
// ============================================================================

// report 把 multierr 合并的错误逐条格式化到标准错误
func (a *app) report(cmd *cobra.Command, err error) error {
	f := errors.NewFormatter()
	if cmd.ErrOrStderr() != io.Writer(os.Stderr) {
		f.Colors = false
	}
	fmt.Fprint(cmd.ErrOrStderr(), f.FormatAll(multierr.Errors(err)))
	return errReported
}
