package rpc

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillsenselab/rpckit/authctx"
	"github.com/skillsenselab/rpckit/errors"
	"github.com/skillsenselab/rpckit/logger"
	"github.com/skillsenselab/rpckit/observability"
	"github.com/skillsenselab/rpckit/validation"
)

// Handler is the typed function an endpoint wraps. It only ever runs with an
// authorization context produced by the endpoint's authorizer for the current
// call. The context.Context is the seam for caller-imposed timeouts: handler
// invocation is the one pipeline step with unbounded external behavior.
type Handler[In, Ctx, Out any] func(ctx context.Context, ac Ctx, in In) (Out, error)

// Endpoint binds an input type, an authorization-context type, an output
// type, and a handler into an invocable pipeline. The type parameters tie the
// authorizer's produced context to the handler's expected context at
// declaration time, so shape mismatches cannot compile.
type Endpoint[In, Ctx, Out any] struct {
	name        string
	description string
	authorizer  Authorizer[In, Ctx]
	handler     Handler[In, Ctx, Out]

	log            *logger.Logger
	metrics        *observability.Metrics
	skipValidation bool
}

// Option configures an Endpoint.
type Option func(*endpointOptions)

type endpointOptions struct {
	log            *logger.Logger
	metrics        *observability.Metrics
	skipValidation bool
}

// WithLogger sets the logger used for pipeline failures. Defaults to the
// global logger tagged with the endpoint name.
func WithLogger(log *logger.Logger) Option {
	return func(o *endpointOptions) { o.log = log }
}

// WithMetrics enables per-call metric recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *endpointOptions) { o.metrics = m }
}

// WithoutValidation disables struct-tag validation of the decoded input.
func WithoutValidation() Option {
	return func(o *endpointOptions) { o.skipValidation = true }
}

// NewEndpoint declares an endpoint. name and description feed the endpoint's
// Descriptor; the authorizer and handler are invoked in pipeline order on
// every call.
func NewEndpoint[In, Ctx, Out any](
	name, description string,
	authorizer Authorizer[In, Ctx],
	handler Handler[In, Ctx, Out],
	opts ...Option,
) *Endpoint[In, Ctx, Out] {
	var o endpointOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.WithComponent("rpc." + name)
	}
	return &Endpoint[In, Ctx, Out]{
		name:           name,
		description:    description,
		authorizer:     authorizer,
		handler:        handler,
		log:            o.log,
		metrics:        o.metrics,
		skipValidation: o.skipValidation,
	}
}

// Name returns the endpoint name.
func (e *Endpoint[In, Ctx, Out]) Name() string { return e.name }

// Description returns the endpoint description.
func (e *Endpoint[In, Ctx, Out]) Description() string { return e.description }

// Describe returns the endpoint's introspection descriptor.
func (e *Endpoint[In, Ctx, Out]) Describe() Descriptor {
	return Descriptor{
		Name:         e.name,
		Description:  e.description,
		InputSchema:  SchemaOf[In](),
		OutputSchema: SchemaOf[Out](),
	}
}

// Invoke runs the pipeline for one request: decode, authorize, invoke,
// encode. Every step is a synchronous transform; a failure at any step aborts
// the call with no partial effects, and no error is retried internally.
func (e *Endpoint[In, Ctx, Out]) Invoke(ctx context.Context, req Request) ([]byte, error) {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, observability.SpanPipelineInvoke,
		trace.WithAttributes(attribute.String(observability.AttrEndpoint, e.name)))
	defer span.End()

	encoded, err := e.run(ctx, req)

	if e.metrics != nil {
		e.metrics.RecordCall(ctx, e.name, statusOf(err), time.Since(start))
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return encoded, err
}

func (e *Endpoint[In, Ctx, Out]) run(ctx context.Context, req Request) ([]byte, error) {
	in, err := e.decode(ctx, req)
	if err != nil {
		e.log.Warn("request body rejected", logger.Fields(
			logger.FieldOperation, e.name,
			logger.FieldError, err.Error(),
		))
		return nil, err
	}

	ac, err := e.authorize(ctx, req, in)
	if err != nil {
		return nil, err
	}

	out, err := e.handle(ctx, ac, in)
	if err != nil {
		return nil, err
	}

	return e.encode(ctx, out)
}

// decode parses the raw body into the declared input type. Unknown fields are
// ignored; a malformed body or a missing required field fails with
// DECODE_FAILED before authorization is attempted.
func (e *Endpoint[In, Ctx, Out]) decode(ctx context.Context, req Request) (In, error) {
	_, span := observability.StartSpan(ctx, observability.SpanPipelineDecode)
	defer span.End()

	var in In
	if err := json.Unmarshal([]byte(req.Body), &in); err != nil {
		span.RecordError(err)
		return in, errors.Decode(err)
	}

	if !e.skipValidation && reflect.ValueOf(&in).Elem().Kind() == reflect.Struct {
		if err := validation.Validate(in); err != nil {
			span.RecordError(err)
			return in, errors.Decode(err)
		}
	}
	return in, nil
}

// authorize derives the authorization context for this exact (request, input)
// pair. Rejections are logged with the reason but surfaced generically.
func (e *Endpoint[In, Ctx, Out]) authorize(ctx context.Context, req Request, in In) (Ctx, error) {
	_, span := observability.StartSpan(ctx, observability.SpanPipelineAuthorize)
	defer span.End()

	ac, err := e.authorizer.Authorize(req, in)
	if err != nil {
		span.RecordError(err)
		e.log.Warn("call rejected", logger.Fields(
			logger.FieldOperation, e.name,
			logger.FieldError, err.Error(),
		))
		var zero Ctx
		return zero, err
	}

	// An authorizer that succeeds without constructing a context broke its
	// contract. This is a wiring defect, not a caller error, and must stay
	// distinguishable from UNAUTHORIZED in logs and metrics.
	if reflect.ValueOf(&ac).Elem().IsZero() {
		contractErr := errors.Contract(e.name, "authorizer returned zero context with nil error")
		span.RecordError(contractErr)
		e.log.Error("authorization contract violated", logger.Fields(
			logger.FieldOperation, e.name,
			logger.FieldError, contractErr.Error(),
		))
		var zero Ctx
		return zero, contractErr
	}

	return ac, nil
}

func (e *Endpoint[In, Ctx, Out]) handle(ctx context.Context, ac Ctx, in In) (Out, error) {
	hctx, span := observability.StartSpan(ctx, observability.SpanPipelineHandle)
	defer span.End()

	// Code the handler calls into can read the authorization context without
	// threading it through every signature.
	hctx = authctx.Set(hctx, ac)

	out, err := e.handler(hctx, ac, in)
	if err != nil {
		span.RecordError(err)
	}
	return out, err
}

// encode serializes the handler output. A failure here means the handler
// returned a value violating its own declared shape — a programming error,
// not a normal failure.
func (e *Endpoint[In, Ctx, Out]) encode(ctx context.Context, out Out) ([]byte, error) {
	_, span := observability.StartSpan(ctx, observability.SpanPipelineEncode)
	defer span.End()

	encoded, err := json.Marshal(out)
	if err != nil {
		span.RecordError(err)
		e.log.Error("handler output could not be encoded", logger.Fields(
			logger.FieldOperation, e.name,
			logger.FieldError, err.Error(),
		))
		return nil, errors.Encode(err)
	}
	return encoded, nil
}

// statusOf maps an invocation error to a metric status label.
func statusOf(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return strings.ToLower(string(appErr.Code))
	}
	return "error"
}
