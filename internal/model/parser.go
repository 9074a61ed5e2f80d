package model

import (
	"encoding/json"
	"errors"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/idilsaglam/playgrounds/internal/logger"
)

// RawRecord is an untrusted, loosely typed record such as a decoded payload.
type RawRecord map[string]any

// Payload keys.
const (
	KeyDescription = "description"
	KeyCompleted   = "completed"
	KeyDueOn       = "due_on"
)

// Hook is called once per parse with the final error (nil on success).
type Hook func(err error)

// Option configures a Parser.
type Option func(*Parser)

// WithHook registers a hook run when a parse completes.
func WithHook(h Hook) Option {
	return func(p *Parser) { p.hooks = append(p.hooks, h) }
}

// WithCollectAll makes Parse report every invalid field instead of the first.
func WithCollectAll() Option {
	return func(p *Parser) { p.collectAll = true }
}

// Parser converts raw records into TodoItems.
type Parser struct {
	lggr       logger.Logger
	hooks      []Hook
	collectAll bool
}

// NewParser returns a Parser logging through lggr; a nil lggr discards logs.
func NewParser(lggr logger.Logger, opts ...Option) *Parser {
	if lggr == nil {
		lggr = logger.Nop()
	}
	p := &Parser{lggr: lggr}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse validates raw and builds a TodoItem. On failure the returned item is
// the zero value and err matches ErrInvalidData.
func (p *Parser) Parse(raw RawRecord) (item TodoItem, err error) {
	defer func() { p.complete(err) }()

	description, descErr := requireString(raw, KeyDescription, DescriptionInvalid)
	completed, compErr := requireBool(raw, KeyCompleted, CompletedInvalid)
	dueDate, dueErr := optionalString(raw, KeyDueOn, DueDateInvalid)

	if verr := p.combine(descErr, compErr, dueErr); verr != nil {
		return TodoItem{}, verr
	}
	return TodoItem{description: description, dueDate: dueDate, completed: completed}, nil
}

// TryParse collapses any failure into an absent value.
func (p *Parser) TryParse(raw RawRecord) mo.Option[TodoItem] {
	item, err := p.Parse(raw)
	if err != nil {
		return mo.None[TodoItem]()
	}
	return mo.Some(item)
}

// ParseResult is Parse with its outcome held in a single value.
func (p *Parser) ParseResult(raw RawRecord) mo.Result[TodoItem] {
	item, err := p.Parse(raw)
	return mo.TupleToResult(item, err)
}

// ParseJSON decodes one JSON object and parses it.
func (p *Parser) ParseJSON(data []byte) (TodoItem, error) {
	var raw RawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		err = &DecodeError{Err: err}
		p.complete(err)
		return TodoItem{}, err
	}
	return p.Parse(raw)
}

// ParseAll parses records in order. It returns every valid item and, when
// some records fail, a joined error of *RecordError.
func (p *Parser) ParseAll(records []RawRecord) ([]TodoItem, error) {
	var errs []error
	items := lo.FilterMap(records, func(raw RawRecord, i int) (TodoItem, bool) {
		item, err := p.Parse(raw)
		if err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})
			return TodoItem{}, false
		}
		return item, true
	})
	return items, errors.Join(errs...)
}

func (p *Parser) complete(err error) {
	if err != nil {
		p.lggr.Debugw("parsing complete", "ok", false, "error", err.Error())
	} else {
		p.lggr.Debugw("parsing complete", "ok", true)
	}
	for _, h := range p.hooks {
		h(err)
	}
}

func (p *Parser) combine(errs ...error) error {
	if p.collectAll {
		return errors.Join(errs...)
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ------- field extractors -------

func requireString(raw RawRecord, key string, kind Kind) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", &FieldError{Kind: kind, Key: key, Reason: ReasonMissing}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Kind: kind, Key: key, Reason: ReasonWrongType, Want: "string", Got: v}
	}
	if s == "" {
		return "", &FieldError{Kind: kind, Key: key, Reason: ReasonEmpty, Got: v}
	}
	return s, nil
}

func requireBool(raw RawRecord, key string, kind Kind) (bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return false, &FieldError{Kind: kind, Key: key, Reason: ReasonMissing}
	}
	b, ok := v.(bool)
	if !ok {
		return false, &FieldError{Kind: kind, Key: key, Reason: ReasonWrongType, Want: "bool", Got: v}
	}
	return b, nil
}

func optionalString(raw RawRecord, key string, kind Kind) (mo.Option[string], error) {
	switch v := raw[key].(type) {
	case nil:
		return mo.None[string](), nil
	case string:
		return mo.Some(v), nil
	case *string:
		if v == nil {
			return mo.None[string](), nil
		}
		return mo.Some(*v), nil
	default:
		return mo.None[string](), &FieldError{Kind: kind, Key: key, Reason: ReasonWrongType, Want: "string", Got: v}
	}
}
