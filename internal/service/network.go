package service

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/nikkjke/finance-tracker/internal/logging"
)

// Operation names, used for latency lookup and fault targeting.
const (
	OpListExpenses  = "expenses.list"
	OpGetExpense    = "expenses.get"
	OpCreateExpense = "expenses.create"
	OpUpdateExpense = "expenses.update"
	OpDeleteExpense = "expenses.delete"
	OpListBudgets   = "budgets.list"
	OpGetBudget     = "budgets.get"
	OpCreateBudget  = "budgets.create"
	OpUpdateBudget  = "budgets.update"
	OpDeleteBudget  = "budgets.delete"
	OpLogin         = "auth.login"
	OpRegister      = "auth.register"
)

// Delays holds the base latency of each remote operation.
var Delays = map[string]time.Duration{
	OpListExpenses:  500 * time.Millisecond,
	OpGetExpense:    300 * time.Millisecond,
	OpCreateExpense: 600 * time.Millisecond,
	OpUpdateExpense: 500 * time.Millisecond,
	OpDeleteExpense: 400 * time.Millisecond,
	OpListBudgets:   400 * time.Millisecond,
	OpGetBudget:     300 * time.Millisecond,
	OpCreateBudget:  500 * time.Millisecond,
	OpUpdateBudget:  400 * time.Millisecond,
	OpDeleteBudget:  300 * time.Millisecond,
	OpLogin:         600 * time.Millisecond,
	OpRegister:      600 * time.Millisecond,
}

// DefaultFaultRate is the failure probability of the default injector.
const DefaultFaultRate = 0.05

// FaultInjector decides whether a remote operation fails.
type FaultInjector interface {
	ShouldFail(op string) bool
}

// FixedRate fails each call independently with probability Rate.
type FixedRate struct {
	Rate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFixedRate returns an injector failing with the given probability.
func NewFixedRate(rate float64) *FixedRate {
	return &FixedRate{Rate: rate}
}

// NewSeededFixedRate returns a reproducible injector.
func NewSeededFixedRate(rate float64, seed uint64) *FixedRate {
	return &FixedRate{Rate: rate, rng: rand.New(rand.NewPCG(seed, seed))}
}

func (f *FixedRate) ShouldFail(string) bool {
	if f.Rate <= 0 {
		return false
	}
	if f.rng == nil {
		return rand.Float64() < f.Rate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.Float64() < f.Rate
}

type noFaults struct{}

func (noFaults) ShouldFail(string) bool { return false }

type alwaysFail struct{}

func (alwaysFail) ShouldFail(string) bool { return true }

var (
	// NoFaults never fails.
	NoFaults FaultInjector = noFaults{}
	// AlwaysFail fails every operation.
	AlwaysFail FaultInjector = alwaysFail{}
)

// FailOn fails exactly the named operations.
func FailOn(ops ...string) FaultInjector {
	return failOn(slices.Clone(ops))
}

type failOn []string

func (f failOn) ShouldFail(op string) bool { return slices.Contains(f, op) }

// Network simulates a remote API: a per-operation delay followed by a
// fault roll.
type Network struct {
	// Scale multiplies every base delay; zero disables waiting.
	Scale  float64
	Faults FaultInjector
}

// NewNetwork returns a network with the given latency scale and injector.
// A nil injector fails at DefaultFaultRate.
func NewNetwork(scale float64, faults FaultInjector) *Network {
	if faults == nil {
		faults = NewFixedRate(DefaultFaultRate)
	}
	return &Network{Scale: scale, Faults: faults}
}

// Instant is a network without latency or faults.
func Instant() *Network {
	return &Network{Faults: NoFaults}
}

// Call waits the latency of op and then rolls for a fault. failure is the
// message of the resulting transient error. A cancelled context aborts the
// wait with the context's error.
func (n *Network) Call(ctx context.Context, op, failure string) error {
	if err := n.wait(ctx, op); err != nil {
		return err
	}
	if n.Faults != nil && n.Faults.ShouldFail(op) {
		logging.Debugf("network: injected fault on %s", op)
		return &Error{
			Kind:    KindTransient,
			Op:      op,
			Message: "Internal server error: " + failure + " Please try again.",
		}
	}
	return nil
}

func (n *Network) wait(ctx context.Context, op string) error {
	d := time.Duration(float64(Delays[op]) * n.Scale)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
