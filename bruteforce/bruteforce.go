// Package bruteforce implements the parallel worker-pool factoring engine:
// given a public exponent and a small composite RSA modulus, it recovers
// the two prime factors and the matching private exponent by partitioning
// the odd-candidate search range across a fixed-size worker pool.
package bruteforce

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/factor"
	"github.com/vkuznetsov/bigrsa/internal/tsslog"
	"github.com/vkuznetsov/bigrsa/primality"
)

const (
	// DefaultWorkers is used when the caller requests 0 workers.
	DefaultWorkers = 8
	MinWorkers     = 1
	MaxWorkers     = 64
	// MaxModulusDigits bounds the decimal length of a modulus this engine
	// will attempt to crack.
	MaxModulusDigits = 10
)

var one = bignum.FromInt64(1)

// Result is the (p, q, n, e, d) tuple recovered by the factoring engine,
// with p <= q, both prime, n = p*q, e coprime to phi(n), and d = e^-1 mod
// phi(n), d > 0.
type Result struct {
	P, Q, N, E, D *bignum.BigInt
}

type taskKind int

const (
	newJobKind taskKind = iota
	terminateKind
)

type job struct {
	kind taskKind
	run  func()
}

type outcome struct {
	result *Result
	err    error
}

// pool holds the job channel (main -> workers, shared receiver guarded by
// a mutex) and result channel (workers -> main, many producers).
type pool struct {
	jobs        chan job
	jobsMu      sync.Mutex
	results     chan outcome
	workerCount int
	wg          sync.WaitGroup
}

func newPool(workerCount int) *pool {
	return &pool{
		jobs:        make(chan job, workerCount),
		results:     make(chan outcome, workerCount),
		workerCount: workerCount,
	}
}

func (p *pool) receiveJob() job {
	p.jobsMu.Lock()
	defer p.jobsMu.Unlock()
	return <-p.jobs
}

func (p *pool) startWorkers() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				j := p.receiveJob()
				if j.kind == terminateKind {
					return
				}
				p.runJob(j)
			}
		}()
	}
}

// runJob executes a single worker job, converting a panic into a
// Terminate-shaped outcome instead of letting it take down the pool.
func (p *pool) runJob(j job) {
	defer func() {
		if r := recover(); r != nil {
			p.results <- outcome{err: errors.Errorf("bruteforce: worker panicked: %v", r)}
		}
	}()
	j.run()
}

// terminate broadcasts one Terminate job per worker and waits for every
// worker to finish its current job before returning - a worker already
// past its job-channel receive completes its (short, CPU-bound) job
// before noticing the terminate.
func (p *pool) terminate() {
	for i := 0; i < p.workerCount; i++ {
		p.jobs <- job{kind: terminateKind}
	}
	p.wg.Wait()
}

// Run partitions the odd-candidate search range for n across workerCount
// workers (0 defaults to DefaultWorkers; otherwise must be 1..=64) and
// returns the first (p, q, n, e, d) tuple found by any worker, or a fatal
// error. It also returns if ctx is cancelled first.
func Run(ctx context.Context, n, e *bignum.BigInt, workerCount int) (*Result, error) {
	if workerCount == 0 {
		workerCount = DefaultWorkers
	}
	if workerCount < MinWorkers || workerCount > MaxWorkers {
		return nil, errors.Errorf("bruteforce: worker count %d out of range [%d, %d]", workerCount, MinWorkers, MaxWorkers)
	}
	if len(n.Digits()) > MaxModulusDigits {
		return nil, errors.Errorf("bruteforce: modulus has %d decimal digits, exceeds bound of %d", len(n.Digits()), MaxModulusDigits)
	}
	if n.IsZero() || n.Sign() == bignum.Negative || primality.IsPrimeProbabilistic(n, 20) {
		return nil, errors.New("bruteforce: modulus must be a positive composite integer")
	}

	starts := partition(n, workerCount)
	tsslog.Log.Debugf("bruteforce: partitioned %d-digit modulus across %d workers", len(n.Digits()), workerCount)

	p := newPool(workerCount)
	p.startWorkers()
	defer p.terminate()

	var jobsDone sync.WaitGroup
	jobsDone.Add(workerCount)
	allDone := make(chan struct{})
	go func() {
		jobsDone.Wait()
		close(allDone)
	}()

	for _, start := range starts {
		start := start
		p.jobs <- job{kind: newJobKind, run: func() {
			defer jobsDone.Done()
			worker(n, e, start, p.results)
		}}
	}

	select {
	case o := <-p.results:
		if o.err != nil {
			tsslog.Log.Warnf("bruteforce: worker reported a fatal error: %v", o.err)
			return nil, o.err
		}
		tsslog.Log.Debugf("bruteforce: found p=%s q=%s", o.result.P, o.result.Q)
		return o.result, nil
	case <-allDone:
		return nil, drainErrors(p.results)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func worker(n, e, start *bignum.BigInt, results chan<- outcome) {
	factors := factor.RSAModulus(n, start)
	if len(factors) == 0 {
		return
	}
	if len(factors) != 2 {
		results <- outcome{err: errors.New("bruteforce: search produced more than two factors")}
		return
	}

	p, q := factors[0], factors[1]
	phi := p.Sub(one).Mul(q.Sub(one))

	if !primality.IsCoprime(e, phi) {
		results <- outcome{err: errors.New("bruteforce: e not coprime to phi(n)")}
		return
	}

	egcd := e.ExtGCD(phi)
	d := egcd.X
	if d.Sign() == bignum.Negative {
		results <- outcome{err: errors.New("bruteforce: derived private exponent is negative")}
		return
	}

	results <- outcome{result: &Result{P: p, Q: q, N: n, E: e, D: d}}
}

// drainErrors collects any buffered worker errors once every job has
// completed without a single success reaching the select in Run, and
// aggregates them with go-multierror; absent any worker error, it reports
// a plain not-found outcome.
func drainErrors(results <-chan outcome) error {
	var merr *multierror.Error
	for {
		select {
		case o := <-results:
			if o.err != nil {
				merr = multierror.Append(merr, o.err)
			}
		default:
			if merr != nil {
				return merr
			}
			return errors.New("bruteforce: no factors found in any worker's partition")
		}
	}
}

// partition computes the per-worker starting points for the odd-candidate
// search: M is a digit vector of length ceil(len(n)/2) filled with nines,
// divided by workerCount to obtain the step; worker i starts at
// 3 + i*step, nudged up by one if even. The divisor is the requested
// worker count rather than a fixed constant. Starting points repeat when
// step is below 2, i.e. when M is less than twice workerCount.
func partition(n *bignum.BigInt, workerCount int) []*bignum.BigInt {
	halfLen := (len(n.Digits()) + 1) / 2
	nines := make([]int8, halfLen)
	for i := range nines {
		nines[i] = 9
	}
	m := bignum.FromDigits(nines)
	step := m.Div(bignum.FromInt64(int64(workerCount)))

	three := bignum.FromInt64(3)
	two := bignum.FromInt64(2)

	starts := make([]*bignum.BigInt, workerCount)
	for i := 0; i < workerCount; i++ {
		start := three.Add(step.Mul(bignum.FromInt64(int64(i))))
		if start.Mod(two).IsZero() {
			start = start.Add(one)
		}
		starts[i] = start
	}
	return starts
}
