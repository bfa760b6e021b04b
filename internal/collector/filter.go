package collector

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	errs "github.com/livp123/grouplog/pkg/errors"
)

// FilterEnv is the environment a filter expression is evaluated against.
// Unset fields are empty strings and a zero timestamp.
// FilterEnv 是过滤表达式的求值环境，缺失字段为空字符串，时间戳为 0。
type FilterEnv struct {
	Group     string  `expr:"group"`
	From      string  `expr:"from"`
	Text      string  `expr:"text"`
	Timestamp float64 `expr:"timestamp"`
}

// Filter decides which entries are written.
// Filter 决定哪些条目会被写入。
type Filter struct {
	src     string
	program *vm.Program
}

// CompileFilter compiles a boolean expression. An empty source yields a nil
// filter, which accepts everything.
// CompileFilter 编译布尔表达式，空表达式返回 nil（接受所有条目）。
func CompileFilter(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, errs.NewFilterError(src, err)
	}
	return &Filter{src: src, program: program}, nil
}

// Allow evaluates the filter. A nil filter allows every entry.
func (f *Filter) Allow(e Entry) (bool, error) {
	if f == nil {
		return true, nil
	}
	ts, _ := e.Timestamp.Float()
	env := FilterEnv{
		Group:     e.Group.Value,
		From:      e.From.Value,
		Text:      e.Text.Value,
		Timestamp: ts,
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.src
}
