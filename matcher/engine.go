package matcher

import (
	"fmt"
	"iter"

	"github.com/shibukawa/tagcheck/container"
	"github.com/shibukawa/tagcheck/tokenizer"
)

// anomaly is a queued tag together with the kind it is reported as
type anomaly struct {
	tag  tokenizer.Tag
	kind DefectKind
}

// Engine matches tags of one document. It owns its stack and queues and
// must not be shared or reused across documents.
type Engine struct {
	open   *container.Stack[tokenizer.Tag]
	errors *container.Queue[anomaly] // closers without opener, tags unwound or left open
	extras *container.Queue[anomaly] // closers without any candidate ancestor

	errorsFound bool
	defects     []Defect
	faults      []error

	verdict *Verdict
}

// NewEngine creates an engine with an empty stack and empty queues
func NewEngine() *Engine {
	return &Engine{
		open:   container.NewStack[tokenizer.Tag](),
		errors: container.NewQueue[anomaly](),
		extras: container.NewQueue[anomaly](),
	}
}

// Validate runs a fresh engine over tags and returns its verdict
func Validate(tags iter.Seq[tokenizer.Tag]) (*Verdict, error) {
	e := NewEngine()
	for tag := range tags {
		e.Observe(tag)
	}

	return e.Finish()
}

// Observe feeds the next tag in document order
func (e *Engine) Observe(tag tokenizer.Tag) {
	if e.verdict != nil {
		e.fault(fmt.Errorf("%w: %s at line %d", ErrEngineFinished, tag.Text, tag.Position.Line))
		return
	}

	switch tag.Kind {
	case tokenizer.SelfClosing:
	case tokenizer.Opening:
		if err := e.open.Push(tag); err != nil {
			e.fault(err)
		}
	case tokenizer.Closing:
		e.close(tag)
	}
}

func (e *Engine) close(tag tokenizer.Tag) {
	// 1. closes the innermost open tag
	if top, err := e.open.Peek(); err == nil && top.Name == tag.Name {
		e.pop()
		return
	}

	// 2. pairs with the oldest pending anomaly, which is reported now
	if front, err := e.errors.Peek(); err == nil && front.tag.Name == tag.Name {
		e.report(e.errors)
		return
	}

	// 3. nothing is open at all
	if e.open.IsEmpty() {
		e.record(e.errors, tag, UnexpectedClose)
		return
	}

	// 4. closes an outer tag; everything above it was left open
	if !e.isOpen(tag.Name) {
		e.record(e.extras, tag, Orphaned)
		return
	}

	for {
		top, ok := e.pop()
		if !ok || top.Name == tag.Name {
			return
		}
		e.record(e.errors, top, Misnested)
	}
}

func (e *Engine) isOpen(name string) bool {
	for open := range e.open.All() {
		if open.Name == name {
			return true
		}
	}

	return false
}

func (e *Engine) pop() (tokenizer.Tag, bool) {
	tag, err := e.open.Pop()
	if err != nil {
		e.fault(err)
		return tag, false
	}

	return tag, true
}

func (e *Engine) record(q *container.Queue[anomaly], tag tokenizer.Tag, kind DefectKind) {
	e.errorsFound = true
	if err := q.Enqueue(anomaly{tag: tag, kind: kind}); err != nil {
		e.fault(err)
	}
}

// report dequeues the front of q and appends it to the defect list
func (e *Engine) report(q *container.Queue[anomaly]) bool {
	a, err := q.Dequeue()
	if err != nil {
		e.fault(err)
		return false
	}

	e.defects = append(e.defects, Defect{Tag: a.tag, Kind: a.kind})

	return true
}

func (e *Engine) fault(err error) {
	e.faults = append(e.faults, fmt.Errorf("%w: %w", ErrInvariantViolation, err))
}
