// File: engine.go
// Title: MCL High-Level Engine
// Description: Runs MCL source through lexer and parser, enforces the
//              source size limit and packages the resulting variables and
//              token log into a Result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial engine implementation

package mcl

import (
	"context"
	"time"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	mclog "github.com/msto63/mcalc/foundation/core/log"
	"github.com/msto63/mcalc/foundation/mcl/parser"
	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

// DefaultMaxSourceBytes bounds program size when Options leaves it unset
const DefaultMaxSourceBytes = 1 << 20

// Engine evaluates MCL programs
type Engine struct {
	logger  *mclog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger *mclog.Logger

	// Operators selects the language dialect. Zero means ArithmeticOperators.
	Operators parser.OperatorSet

	// RecordTokens fills Result.Tokens with the consumed tokens.
	RecordTokens bool

	// MaxSourceBytes rejects larger programs. Zero means
	// DefaultMaxSourceBytes, negative disables the check.
	MaxSourceBytes int
}

// Result is the outcome of a successful run
type Result struct {
	Variables  []symtab.Entry `json:"variables" yaml:"variables"`
	Tokens     []parser.Token `json:"-" yaml:"-"`
	Statements int            `json:"statements" yaml:"statements"`
	Duration   time.Duration  `json:"duration" yaml:"duration"`
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mclog.GetDefault()
	}
	if opts.Operators == 0 {
		opts.Operators = parser.ArithmeticOperators
	}
	if opts.MaxSourceBytes == 0 {
		opts.MaxSourceBytes = DefaultMaxSourceBytes
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "mcl-engine"),
		options: opts,
	}
}

// Operators returns the dialect the engine evaluates
func (e *Engine) Operators() parser.OperatorSet {
	return e.options.Operators
}

// Evaluate runs source against a fresh symbol table. On failure the
// returned Result is nil.
func (e *Engine) Evaluate(ctx context.Context, source string) (*Result, error) {
	return e.evaluate(ctx, source, symtab.New())
}

// Tokenize returns the full token stream of source including EOF. On a
// lexical error the tokens read before it are returned with the error.
func (e *Engine) Tokenize(ctx context.Context, source string) ([]parser.Token, error) {
	if err := e.checkSource(ctx, source); err != nil {
		return nil, err
	}
	return parser.NewLexer(source, e.options.Operators).Tokenize()
}

// evaluate parses source into table. The caller owns table and must
// discard it when an error is returned.
func (e *Engine) evaluate(ctx context.Context, source string, table *symtab.Table) (*Result, error) {
	if err := e.checkSource(ctx, source); err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("evaluate")

	p := parser.New(parser.NewLexer(source, e.options.Operators), parser.Options{
		Logger:       e.logger,
		Symbols:      table,
		RecordTokens: e.options.RecordTokens,
	})

	if err := p.ParseProgram(); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	return &Result{
		Variables:  table.Entries(),
		Tokens:     p.Tokens(),
		Statements: p.Statements(),
		Duration:   timer.WithField("statements", p.Statements()).Stop(),
	}, nil
}

// checkSource rejects cancelled contexts and oversized programs
func (e *Engine) checkSource(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return mcerror.Wrap(err, "evaluation cancelled").
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("engine.Evaluate")
	}

	limit := e.options.MaxSourceBytes
	if limit > 0 && len(source) > limit {
		return mcerror.Newf("source of %d bytes exceeds limit of %d bytes", len(source), limit).
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("engine.Evaluate").
			WithDetail("size", len(source)).
			WithDetail("limit", limit)
	}

	return nil
}
