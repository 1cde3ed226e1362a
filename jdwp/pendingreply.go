package jdwp

import "github.com/javabrew/jdwp/pkg/syncmap"

// replyResult is what the reader goroutine delivers to a caller blocked in
// AwaitReply: the reply's error code translated to an error, plus its raw
// body bytes. The core never parses the body; decoding it is left to the
// caller.
type replyResult struct {
	err  error
	body []byte
}

// pendingReplies correlates outstanding command ids to the channel their
// eventual reply should be delivered on.
type pendingReplies struct {
	m syncmap.Map[uint32, chan replyResult]
}

func (p *pendingReplies) register(id uint32) chan replyResult {
	ch := make(chan replyResult, 1)
	p.m.Store(id, ch)
	return ch
}

func (p *pendingReplies) fulfill(id uint32, res replyResult) bool {
	ch, ok := p.m.LoadAndDelete(id)
	if !ok {
		return false
	}
	ch <- res
	return true
}

func (p *pendingReplies) abandon(id uint32) {
	p.m.Delete(id)
}

// failAll delivers err to every still-pending reply, used when the
// connection is closing and no more replies will ever arrive.
func (p *pendingReplies) failAll(err error) {
	p.m.Range(func(id uint32, _ chan replyResult) bool {
		// LoadAndDelete, so a reply that fulfill or a concurrent failAll
		// already took is not sent to a second time.
		if ch, ok := p.m.LoadAndDelete(id); ok {
			ch <- replyResult{err: err}
		}
		return true
	})
}
