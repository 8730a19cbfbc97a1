package uvl

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fcafm/fm"
)

// ErrNilModel indicates Write was given a nil model or a model without root.
var ErrNilModel = errors.New("uvl: nil model")

// Option configures Write.
type Option func(*options)

type options struct {
	estimates bool
}

// WithEstimates appends each feature's and group's estimated configuration
// count as a trailing " // <n>" comment.
func WithEstimates() Option {
	return func(o *options) { o.estimates = true }
}

// item is one pending line of the features section.
type item struct {
	feature *fm.Feature
	group   *fm.Group
	depth   int
}

// Write encodes m to w.
func Write(w io.Writer, m *fm.Model, opts ...Option) error {
	if m == nil || m.Root == nil {
		return ErrNilModel
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("features\n")

	// pre-order over features and group headers
	stack := []item{{feature: m.Root, depth: 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		indent(bw, it.depth)

		if it.group != nil {
			bw.WriteString(it.group.Keyword())
			if o.estimates {
				writeEstimate(bw, it.group.Estimate)
			}
			bw.WriteByte('\n')
			for i := len(it.group.Features) - 1; i >= 0; i-- {
				stack = append(stack, item{feature: it.group.Features[i], depth: it.depth + 1})
			}
			continue
		}

		f := it.feature
		bw.WriteString(Quote(f.Name))
		if f.Abstract {
			bw.WriteString(" {abstract}")
		}
		if o.estimates {
			writeEstimate(bw, f.Estimate)
		}
		bw.WriteByte('\n')
		for i := len(f.Groups) - 1; i >= 0; i-- {
			stack = append(stack, item{group: f.Groups[i], depth: it.depth + 1})
		}
	}

	if len(m.Constraints) > 0 {
		bw.WriteString("constraints\n")
		for _, c := range m.Constraints {
			bw.WriteByte('\t')
			bw.WriteString(Quote(c.Left))
			bw.WriteString(" => ")
			if c.Kind == fm.Exclusive {
				bw.WriteByte('!')
			}
			bw.WriteString(Quote(c.Right))
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// Encode returns the text encoding of m; an empty string for a nil model.
func Encode(m *fm.Model, opts ...Option) string {
	var sb strings.Builder
	if err := Write(&sb, m, opts...); err != nil {
		return ""
	}

	return sb.String()
}

// Quote wraps name in double quotes, escaping '"' and '\'.
func Quote(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(name); i++ {
		if name[i] == '"' || name[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(name[i])
	}
	sb.WriteByte('"')

	return sb.String()
}

func indent(bw *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		bw.WriteByte('\t')
	}
}

func writeEstimate(bw *bufio.Writer, v float64) {
	bw.WriteString(" // ")
	bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}
