package check

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/matkrin/lspwire/lsp"
)

type Status int

const (
	StatusOK Status = iota
	StatusFailed
	StatusDrift
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusDrift:
		return "drift"
	case StatusSkipped:
		return "skipped"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

type Options struct {
	// Method forces every value to be decoded as a payload of this method.
	Method string
	// Result treats forced payloads as results instead of params.
	Result bool
	// Drift enables the round-trip comparison.
	Drift         bool
	IgnoreMethods []string
}

// Result is the outcome of checking one JSON value.
type Result struct {
	File   string
	Index  int
	Method string
	// Payload is "params" or "result".
	Payload string
	Status  Status
	Err     error
	Drift   []string
	Reason  string
	// Decoded holds the typed value on success.
	Decoded any
}

type Summary struct {
	OK      int
	Failed  int
	Drift   int
	Skipped int
}

func (s Summary) Total() int { return s.OK + s.Failed + s.Drift + s.Skipped }

func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			s.OK++
		case StatusFailed:
			s.Failed++
		case StatusDrift:
			s.Drift++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// Checker decodes recorded LSP traffic through the method table. It holds no
// mutable state and is safe for concurrent use.
type Checker struct {
	opts   Options
	ignore map[string]bool
}

var ErrUnknownForcedMethod = errors.New("unknown method")

func New(opts Options) (*Checker, error) {
	if opts.Method != "" {
		if _, ok := lsp.LookupMethod(opts.Method); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownForcedMethod, opts.Method)
		}
	}
	c := &Checker{opts: opts, ignore: make(map[string]bool, len(opts.IgnoreMethods))}
	for _, m := range opts.IgnoreMethods {
		c.ignore[m] = true
	}
	return c, nil
}

// Check reads a stream of JSON values from r and checks each of them. A
// syntax error ends the stream with a failed result; read errors are returned.
func (c *Checker) Check(file string, r io.Reader) ([]Result, error) {
	dec := json.NewDecoder(r)
	var results []Result
	for index := 0; ; index++ {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return results, nil
		}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			results = append(results, Result{
				File:   file,
				Index:  index,
				Status: StatusFailed,
				Err:    &lsp.DecodeError{Kind: lsp.KindSyntax, Type: "JSON", Detail: err.Error(), Err: err},
			})
			return results, nil
		}
		if err != nil {
			return results, fmt.Errorf("read %s: %w", file, err)
		}
		res := c.CheckValue(raw)
		res.File = file
		res.Index = index
		slog.Debug("Checked value", "file", file, "index", index, "method", res.Method, "status", res.Status)
		results = append(results, res)
	}
}

// CheckValue checks a single JSON value.
func (c *Checker) CheckValue(raw json.RawMessage) Result {
	if !isMessage(raw) {
		if c.opts.Method == "" {
			return Result{Status: StatusFailed, Err: errors.New("bare payload without a method")}
		}
		payload := "params"
		if c.opts.Result {
			payload = "result"
		}
		return c.checkPayload(c.opts.Method, payload, raw)
	}

	msg, err := lsp.ParseMessage(raw)
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	switch msg.Kind() {
	case lsp.RequestMessage, lsp.NotificationMessage:
		return c.checkPayload(msg.Method, "params", msg.Params)
	}
	if c.opts.Method == "" {
		return Result{Status: StatusSkipped, Reason: "response without a method"}
	}
	if msg.Error != nil {
		return Result{Method: c.opts.Method, Status: StatusSkipped, Reason: "error response"}
	}
	return c.checkPayload(c.opts.Method, "result", msg.Result)
}

func (c *Checker) checkPayload(method, payload string, raw json.RawMessage) Result {
	res := Result{Method: method, Payload: payload}
	if c.ignore[method] {
		res.Status = StatusSkipped
		res.Reason = "ignored"
		return res
	}

	var v any
	var err error
	if payload == "result" {
		v, err = lsp.DecodeResult(method, raw)
	} else {
		v, err = lsp.DecodeParams(method, raw)
	}
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Decoded = v
	res.Status = StatusOK
	if !c.opts.Drift {
		return res
	}

	encoded, err := lsp.Marshal(v)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	drift, err := Drift(raw, encoded)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	if len(drift) > 0 {
		res.Status = StatusDrift
		res.Drift = drift
	}
	return res
}

func isMessage(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	_, ok := obj["jsonrpc"]
	return ok
}

// Drift compares two JSON documents after normalisation and returns the paths
// where they differ. Keys whose value is null or [] count as absent, and an
// absent payload equals null.
func Drift(want, got []byte) ([]string, error) {
	a, err := normalize(want)
	if err != nil {
		return nil, err
	}
	b, err := normalize(got)
	if err != nil {
		return nil, err
	}
	var paths []string
	diff("", a, b, &paths)
	slices.Sort(paths)
	return paths, nil
}

func normalize(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return prune(v), nil
}

func prune(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			item = prune(item)
			if empty(item) {
				delete(v, k)
				continue
			}
			v[k] = item
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = prune(item)
		}
		return v
	}
	return v
}

func empty(v any) bool {
	if v == nil {
		return true
	}
	arr, ok := v.([]any)
	return ok && len(arr) == 0
}

func diff(path string, a, b any, out *[]string) {
	label := path
	if label == "" {
		label = "$"
	}
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			*out = append(*out, label)
			return
		}
		for k, item := range av {
			diff(join(path, k), item, bv[k], out)
		}
		for k, item := range bv {
			if _, seen := av[k]; !seen {
				diff(join(path, k), nil, item, out)
			}
		}
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			*out = append(*out, label)
			return
		}
		for i := range av {
			diff(fmt.Sprintf("%s[%d]", label, i), av[i], bv[i], out)
		}
	case json.Number:
		bv, ok := b.(json.Number)
		if !ok || !sameNumber(av, bv) {
			*out = append(*out, label)
		}
	default:
		if a != b {
			*out = append(*out, label)
		}
	}
}

func sameNumber(a, b json.Number) bool {
	if a == b {
		return true
	}
	af, errA := a.Float64()
	bf, errB := b.Float64()
	return errA == nil && errB == nil && af == bf
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
