package pool

import "github.com/hollowflare/eventbus/queue"

// workerLoop implements the per-worker contract: dequeue, exit on
// shutdown, consume a shrink credit if one is waiting, otherwise run
// the item with panics contained at this boundary.
func (p *Pool) workerLoop() error {
	for {
		item, sig := p.fifo.Dequeue(p.hasShrinkCredit)
		switch sig {
		case queue.SignalShutdown:
			return nil
		case queue.SignalPoke:
			if p.tryConsumeShrinkCredit() {
				return nil
			}
			continue
		case queue.SignalItem:
			work, _ := item.(func())
			if work == nil {
				continue
			}
			p.markBusy()
			p.runWork(work)
			p.markIdle()
		}
	}
}

func (p *Pool) runWork(work func()) {
	defer func() {
		if r := recover(); r != nil {
			p.cfg.Logger.Printf("pool: worker recovered from panic: %v", r)
			if p.cfg.PanicHandler != nil {
				p.cfg.PanicHandler(r)
			}
		}
	}()
	work()
}
