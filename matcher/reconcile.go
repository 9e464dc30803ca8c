package matcher

import (
	"errors"
	"slices"

	"github.com/shibukawa/tagcheck/container"
)

// Finish runs reconciliation once the whole document has been observed and
// returns the verdict. Later calls return the same verdict.
//
// Leftover anomalies are cross-checked: a closer nobody opened and an opener
// nobody closed with the same name describe one crossing, so neither is
// reported. Report order follows queue order, which is not always document
// order.
//
// If a container failure was recorded, the partial verdict is returned
// together with an error wrapping ErrInvariantViolation.
func (e *Engine) Finish() (*Verdict, error) {
	if e.verdict == nil {
		e.reconcile()
		e.verdict = &Verdict{
			ErrorsFound: e.errorsFound,
			Defects:     slices.Clip(e.defects),
		}
	}

	return e.verdict, errors.Join(e.faults...)
}

func (e *Engine) reconcile() {
	for {
		for !e.open.IsEmpty() {
			tag, ok := e.pop()
			if !ok {
				return
			}
			e.record(e.errors, tag, Unclosed)
		}

		errorsEmpty, extrasEmpty := e.errors.IsEmpty(), e.extras.IsEmpty()

		switch {
		case errorsEmpty && extrasEmpty:
			return
		case errorsEmpty != extrasEmpty:
			if !e.drain(e.errors) || !e.drain(e.extras) {
				return
			}
		default:
			front, err1 := e.errors.Peek()
			extra, err2 := e.extras.Peek()
			if err := errors.Join(err1, err2); err != nil {
				e.fault(err)
				return
			}

			if front.tag.Name != extra.tag.Name {
				if !e.report(e.errors) {
					return
				}
				continue
			}

			if _, err := e.errors.Dequeue(); err != nil {
				e.fault(err)
				return
			}
			if _, err := e.extras.Dequeue(); err != nil {
				e.fault(err)
				return
			}
		}
	}
}

// drain reports every element of q in queue order
func (e *Engine) drain(q *container.Queue[anomaly]) bool {
	for !q.IsEmpty() {
		if !e.report(q) {
			return false
		}
	}

	return true
}
