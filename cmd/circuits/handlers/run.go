package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/circuits/config"
	"github.com/katalvlaran/circuits/spanning"
)

// BoundedReport is the JSON form of a bounded walk.
type BoundedReport struct {
	Budget  int    `json:"budget"`
	Edges   int    `json:"edges"`
	Merges  int    `json:"merges"`
	Skips   int    `json:"skips"`
	Sizes   []int  `json:"sizes"`
	Product uint64 `json:"product"`
}

// SpanReport is the JSON form of a span walk.
type SpanReport struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Index    int     `json:"index"`
	Merges   int     `json:"merges"`
	Skips    int     `json:"skips"`
	Product  uint64  `json:"product"`
}

// SolveReport is the JSON form of both walks.
type SolveReport struct {
	Bounded BoundedReport `json:"bounded"`
	Span    SpanReport    `json:"span"`
}

// TreeReport is the JSON form of a minimum spanning tree summary.
type TreeReport struct {
	Edges   int     `json:"edges"`
	Total   float64 `json:"total"`
	Longest float64 `json:"longest"`
}

func boundedReport(budget int, res spanning.BoundedResult) BoundedReport {
	return BoundedReport{
		Budget:  budget,
		Edges:   res.Edges,
		Merges:  res.Merges,
		Skips:   res.Skips,
		Sizes:   res.Sizes,
		Product: res.Product,
	}
}

func spanReport(res spanning.SpanResult) SpanReport {
	return SpanReport{
		From:     res.Edge.A.String(),
		To:       res.Edge.B.String(),
		Distance: res.Edge.Distance(),
		Index:    res.Index,
		Merges:   res.Merges,
		Skips:    res.Skips,
		Product:  res.Product,
	}
}

// Bounded walks the cfg.Edges shortest edges and prints the product of the
// three largest cluster sizes.
func Bounded(ctx context.Context, cfg config.Config, input string, streams IO) (err error) {
	s, err := openSession(cfg, input, streams)
	if err != nil {
		return err
	}
	defer func() { err = s.close(err) }()

	c, err := s.controller(ctx)
	if err != nil {
		return err
	}
	res, err := c.Bounded(cfg.Edges)
	if err != nil {
		return err
	}

	return s.emit(boundedReport(cfg.Edges, res), strconv.FormatUint(res.Product, 10))
}

// Span walks until one cluster remains and prints the product of the X
// coordinates of the completing edge.
func Span(ctx context.Context, cfg config.Config, input string, streams IO) (err error) {
	s, err := openSession(cfg, input, streams)
	if err != nil {
		return err
	}
	defer func() { err = s.close(err) }()

	c, err := s.controller(ctx)
	if err != nil {
		return err
	}
	res, err := c.Span()
	if err != nil {
		return err
	}

	return s.emit(spanReport(res), strconv.FormatUint(res.Product, 10))
}

// Solve runs both walks over one set of sorted edges and prints both answers,
// bounded first.
func Solve(ctx context.Context, cfg config.Config, input string, streams IO) (err error) {
	s, err := openSession(cfg, input, streams)
	if err != nil {
		return err
	}
	defer func() { err = s.close(err) }()

	c, err := s.controller(ctx)
	if err != nil {
		return err
	}
	bounded, err := c.Bounded(cfg.Edges)
	if err != nil {
		return err
	}
	span, err := c.Span()
	if err != nil {
		return err
	}

	report := SolveReport{Bounded: boundedReport(cfg.Edges, bounded), Span: spanReport(span)}

	return s.emit(report, fmt.Sprintf("%d\n%d", bounded.Product, span.Product))
}

// Tree prints the total and longest edge length of a minimum spanning tree.
func Tree(_ context.Context, cfg config.Config, input string, streams IO) (err error) {
	s, err := openSession(cfg, input, streams)
	if err != nil {
		return err
	}
	defer func() { err = s.close(err) }()

	tree, total, err := spanning.Tree(s.points)
	if err != nil {
		return err
	}
	var longest float64
	if e, ok := spanning.LongestEdge(tree); ok {
		longest = e.Distance()
	}

	report := TreeReport{Edges: len(tree), Total: total, Longest: longest}

	return s.emit(report, fmt.Sprintf("%s %s",
		strconv.FormatFloat(total, 'f', 3, 64),
		strconv.FormatFloat(longest, 'f', 3, 64)))
}
