package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/config"
	apperrors "github.com/agbru/bigint/internal/errors"
	"github.com/agbru/bigint/internal/logging"
)

// Run executes the configured operation and returns the process exit
// code. Results are written to out, diagnostics to the error writer.
func (a *Application) Run(out io.Writer) int {
	cfg := config.FromEnv()
	log := logging.NewLeveledLogger(a.ErrWriter, "bigcalc", cfg.LogLevel)
	if cfg.AllocStats || cfg.LogLevel != "disabled" {
		bigint.EnableInstrumentation(prometheus.DefaultRegisterer)
		defer bigint.DisableInstrumentation()
	}

	signed := a.Config.Signed ||
		strings.HasPrefix(a.Config.A, "-") || strings.HasPrefix(a.Config.B, "-")
	log.Debug("running operation",
		logging.String("op", a.Config.Op),
		logging.String("a", a.Config.A),
		logging.String("b", a.Config.B))

	var err error
	if signed {
		err = a.runSigned(out)
	} else {
		err = a.runUnsigned(out)
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "bigcalc: %v\n", err)
		var cfgErr apperrors.ConfigError
		if errors.As(err, &cfgErr) {
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) runUnsigned(out io.Writer) error {
	av, err := strconv.ParseUint(a.Config.A, 10, 64)
	if err != nil {
		return apperrors.NewConfigError("operand -a %q is not a 64-bit unsigned integer", a.Config.A)
	}
	bv, err := strconv.ParseUint(a.Config.B, 10, 64)
	if err != nil {
		return apperrors.NewConfigError("operand -b %q is not a 64-bit unsigned integer", a.Config.B)
	}

	x := bigint.FromUint64(av)
	y := bigint.FromUint64(bv)

	switch a.Config.Op {
	case "add":
		r, overflow := x.Add(y)
		defer r.Free()
		defer y.Free()
		printUnsigned(out, overflow, r)
	case "sub":
		r, overflow := x.Sub(y)
		defer r.Free()
		defer y.Free()
		printUnsigned(out, overflow, r)
	case "mul":
		r, overflow := x.Mul(y)
		defer r.Free()
		defer y.Free()
		printUnsigned(out, overflow, r)
	case "pow":
		r, overflow := x.Pow(y)
		defer r.Free()
		defer y.Free()
		printUnsigned(out, overflow, r)
	case "div":
		quot, rem, err := x.Div(y)
		defer quot.Free()
		defer rem.Free()
		if err != nil {
			return apperrors.WrapError(err, "dividing %d by %d", av, bv)
		}
		printUnsigned(out, false, quot, rem)
	case "sqrt":
		root, rem, err := x.Sqrt()
		defer root.Free()
		defer rem.Free()
		defer y.Free()
		if err != nil {
			return err
		}
		printUnsigned(out, false, root, rem)
	case "cbrt":
		root, _, err := x.Cbrt()
		defer root.Free()
		defer y.Free()
		if err != nil {
			return err
		}
		printUnsigned(out, false, root)
	default:
		x.Free()
		y.Free()
		return apperrors.NewConfigError("unknown operation %q", a.Config.Op)
	}
	return nil
}

func (a *Application) runSigned(out io.Writer) error {
	av, err := strconv.ParseInt(a.Config.A, 10, 64)
	if err != nil {
		return apperrors.NewConfigError("operand -a %q is not a 64-bit integer", a.Config.A)
	}
	bv, err := strconv.ParseInt(a.Config.B, 10, 64)
	if err != nil {
		return apperrors.NewConfigError("operand -b %q is not a 64-bit integer", a.Config.B)
	}

	x := bigint.FromInt64(av)
	y := bigint.FromInt64(bv)

	switch a.Config.Op {
	case "add":
		r, overflow := x.Add(y)
		defer r.Free()
		defer y.Free()
		printSigned(out, overflow, r)
	case "sub":
		r, overflow := x.Sub(y)
		defer r.Free()
		defer y.Free()
		printSigned(out, overflow, r)
	case "mul":
		r, overflow := x.Mul(y)
		defer r.Free()
		defer y.Free()
		printSigned(out, overflow, r)
	case "pow":
		r, overflow := x.Pow(y)
		defer r.Free()
		defer y.Free()
		printSigned(out, overflow, r)
	case "div":
		quot, rem, err := x.Div(y)
		defer quot.Free()
		defer rem.Free()
		if err != nil {
			return apperrors.WrapError(err, "dividing %d by %d", av, bv)
		}
		printSigned(out, false, quot, rem)
	case "sqrt":
		root, rem, err := x.Sqrt()
		defer root.Free()
		defer rem.Free()
		defer y.Free()
		if err != nil {
			return err
		}
		printSigned(out, false, root, rem)
	case "cbrt":
		root, _, err := x.Cbrt()
		defer root.Free()
		defer y.Free()
		if err != nil {
			return err
		}
		printSigned(out, false, root)
	default:
		x.Free()
		y.Free()
		return apperrors.NewConfigError("unknown operation %q", a.Config.Op)
	}
	return nil
}

func printUnsigned(out io.Writer, overflow bool, values ...bigint.Unsigned) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(decodeUint64(v.Bytes()), 10)
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
	if overflow {
		fmt.Fprintln(out, "overflow")
	}
}

func printSigned(out io.Writer, overflow bool, values ...bigint.Signed) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(decodeInt64(v.Bytes()), 10)
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
	if overflow {
		fmt.Fprintln(out, "overflow")
	}
}

// decodeUint64 reads up to eight little-endian bytes.
func decodeUint64(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// decodeInt64 reads up to eight little-endian bytes, sign-extending
// from the top byte.
func decodeInt64(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}
	v := decodeUint64(b)
	if b[len(b)-1]&0x80 != 0 {
		for i := len(b); i < 8; i++ {
			v |= 0xFF << (8 * i)
		}
	}
	return int64(v)
}
