package render

import (
	"io"
	"strings"
)

// IndentSource 提供当前缩进信息
type IndentSource interface {
	IndentLevel() int
	IndentUnit() string
}

// TextSink 输出目标
//
// 写入被假定总是成功；需要感知错误的实现自行记录。
type TextSink interface {
	Write(text string)
	Newline()
	Indent(src IndentSource)
}

// StringSink 写入内存的输出目标
type StringSink struct {
	buf strings.Builder
}

// NewStringSink 创建内存输出目标
func NewStringSink() *StringSink {
	return &StringSink{}
}

// Write 写入文本
func (s *StringSink) Write(text string) { s.buf.WriteString(text) }

// Newline 写入换行
func (s *StringSink) Newline() { s.buf.WriteString("\n") }

// Indent 写入当前缩进
func (s *StringSink) Indent(src IndentSource) {
	s.buf.WriteString(strings.Repeat(src.IndentUnit(), src.IndentLevel()))
}

// String 返回已写入的文本
func (s *StringSink) String() string { return s.buf.String() }

// WriterSink 写入 io.Writer 的输出目标，记录第一个写入错误
type WriterSink struct {
	w   io.Writer
	err error
}

// NewWriterSink 创建输出目标
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) write(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

// Write 写入文本
func (s *WriterSink) Write(text string) { s.write(text) }

// Newline 写入换行
func (s *WriterSink) Newline() { s.write("\n") }

// Indent 写入当前缩进
func (s *WriterSink) Indent(src IndentSource) {
	s.write(strings.Repeat(src.IndentUnit(), src.IndentLevel()))
}

// Err 返回第一个写入错误
func (s *WriterSink) Err() error { return s.err }
