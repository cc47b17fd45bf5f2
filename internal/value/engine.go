package value

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"datashell/internal/codec"
	"datashell/internal/config"
	"datashell/internal/datatype"
	"datashell/internal/diagnostic"
	"datashell/internal/format"
	"datashell/internal/transform"
)

// Nominal wrapper types usable in transformations, e.g. "Data:Text<text/csv>".
const (
	DataType = "Data"
	TextType = "Text"
)

// Engine converts values through the transformer registry.
type Engine struct {
	root      transform.Transformer
	registry  *transform.Any
	logger    *zap.Logger
	astFormat string
}

type options struct {
	codec     codec.Options
	logger    *zap.Logger
	extra     []transform.Transformer
	astFormat string
}

// Option configures NewEngine.
type Option func(*options)

// WithConfig applies loaded settings.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.codec = cfg.CodecOptions()
		if f, err := cfg.ASTFormat(); err == nil {
			o.astFormat = f
		}
	}
}

// WithCodecOptions replaces the codec settings.
func WithCodecOptions(opts codec.Options) Option {
	return func(o *options) {
		o.codec = opts
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTransformers registers custom leaf transformers ahead of the
// built-in ones.
func WithTransformers(transformers ...transform.Transformer) Option {
	return func(o *options) {
		o.extra = append(o.extra, transformers...)
	}
}

// NewEngine builds an engine. The registry is fixed once built.
func NewEngine(opts ...Option) *Engine {
	o := options{
		codec:     codec.DefaultOptions(),
		logger:    zap.NewNop(),
		astFormat: format.JavaScript,
	}

	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{logger: o.logger, astFormat: o.astFormat}

	leaves := make([]transform.Transformer, 0, len(o.extra)+16)
	leaves = append(leaves, o.extra...)
	leaves = append(leaves, codec.Default(o.codec)...)

	e.registry = transform.NewAny(o.logger, leaves...)

	text := transform.NewWrapping(e.textSpec(), e.registry)
	data := transform.NewWrapping(e.dataSpec(), text)
	e.root = transform.NewTransformationRecording(transform.NewSourcePreserving(data))

	o.logger.Debug("engine ready", zap.Int("transformers", e.registry.Len()))

	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared engine with default settings.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine()
	})

	return defaultEngine
}

func (e *Engine) dataSpec() transform.WrapperSpec {
	return transform.WrapperSpec{
		Name:      DataType,
		ValueType: datatype.Object(),
		Unwrap: func(input any) (any, string, bool) {
			switch x := input.(type) {
			case *Data:
				return x.value, "", true
			case *Response:
				return x.Data.value, "", true
			default:
				return nil, "", false
			}
		},
		Wrap: func(v any, _ string) any {
			return &Data{value: v, eng: e}
		},
	}
}

func (e *Engine) textSpec() transform.WrapperSpec {
	return transform.WrapperSpec{
		Name:      TextType,
		ValueType: datatype.String(""),
		Unwrap: func(input any) (any, string, bool) {
			if t, ok := input.(*Text); ok {
				return t.value, t.format, true
			}

			return nil, "", false
		},
		Wrap: func(v any, f string) any {
			s, ok := v.(string)
			if !ok {
				s, _ = codec.Stringify(v)
			}

			return &Text{value: s, format: f, eng: e}
		},
		KeepsFormat: true,
	}
}

// Transform converts v as requested by t.
func (e *Engine) Transform(v any, t datatype.Transformation) (any, error) {
	return e.root.Transform(v, t)
}

// TransformString is Transform with a "base:target" query string.
func (e *Engine) TransformString(v any, t string) (any, error) {
	tr, err := datatype.ParseTransformation(t)
	if err != nil {
		return nil, err
	}

	return e.Transform(v, tr)
}

// Supports reports whether t can be served for v.
func (e *Engine) Supports(v any, t datatype.Transformation) bool {
	return e.root.Supports(v, t)
}

// Transformations lists the transformations of every registered
// transformer that declares them, in priority order.
func (e *Engine) Transformations() []datatype.Transformation {
	return e.registry.Declared()
}

// Diagnose audits the registry for shadowed or unreachable
// declarations and logs each finding.
func (e *Engine) Diagnose() diagnostic.Diagnostics {
	d := diagnostic.CheckRegistry(e.registry.Transformers())
	for _, diag := range d.Errors {
		e.logger.Error("registry", zap.String("finding", diag.String()))
	}

	for _, diag := range d.Warnings {
		e.logger.Warn("registry", zap.String("finding", diag.String()))
	}

	return d
}

// Logger returns the engine logger.
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

// Data wraps v. A *Data is returned as is.
func (e *Engine) Data(v any) *Data {
	if d, ok := v.(*Data); ok {
		return d
	}

	return &Data{value: v, eng: e}
}

// Text wraps s in the given format; aliases such as "json" are resolved.
func (e *Engine) Text(s, f string) *Text {
	if f != "" {
		f = format.Resolve(f)
	}

	return &Text{value: s, format: f, eng: e}
}

// Load reads item into a Text whose format follows the item extension
// and whose source is item.
func (e *Engine) Load(item Item) (*Text, error) {
	content, err := item.Read()
	if err != nil {
		return nil, err
	}

	f, _ := format.FromExt(filepath.Ext(item.Path()))

	e.logger.Debug("loaded item", zap.String("path", item.Path()), zap.String("format", f))

	t := e.Text(content, f)
	t.source = item

	return t, nil
}

// NewData wraps v using the default engine.
func NewData(v any) *Data {
	return Default().Data(v)
}

// NewText wraps s using the default engine.
func NewText(s, f string) *Text {
	return Default().Text(s, f)
}
