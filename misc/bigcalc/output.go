package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bigint "github.com/shabbyrobe/go-bigint"
)

var json = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

type result struct {
	Op       string     `json:"op"`
	Result   bigint.Int `json:"result"`
	Hex      string     `json:"hex"`
	Negative bool       `json:"negative"`
	Words    int        `json:"words"`
	Bits     int        `json:"bits"`
}

type printer struct {
	w     io.Writer
	cfg   *config
	label *color.Color
}

func newPrinter(w io.Writer, cfg *config) *printer {
	label := color.New(color.FgCyan, color.Bold)
	switch cfg.Color() {
	case "on":
		label.EnableColor()
	case "off":
		label.DisableColor()
	default:
		if f, ok := w.(*os.File); !ok || !isTerminal(f) {
			label.DisableColor()
		}
	}
	return &printer{w: w, cfg: cfg, label: label}
}

func (p *printer) Print(op string, v bigint.Int) error {
	switch {
	case p.cfg.JSON():
		bts, err := json.Marshal(result{
			Op:       op,
			Result:   v,
			Hex:      v.Hex(),
			Negative: v.Sign() < 0,
			Words:    v.Len(),
			Bits:     v.BitLen(),
		})
		if err != nil {
			return errors.Wrap(err, "bigcalc: encode json")
		}
		_, err = fmt.Fprintf(p.w, "%s\n", bts)
		return err

	case p.cfg.Dump():
		cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true}
		p.label.Fprintf(p.w, "%s:\n", op)
		cs.Fdump(p.w, v)
		return nil

	case p.cfg.Hex():
		p.label.Fprintf(p.w, "%s: ", op)
		_, err := fmt.Fprintf(p.w, "%s\n", v.Hex())
		return err

	default:
		p.label.Fprintf(p.w, "%s: ", op)
		_, err := fmt.Fprintf(p.w, "%s\n", v)
		return err
	}
}
