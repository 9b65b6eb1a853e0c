package retry

import (
	"time"
)

// Policy determines how long a Handler waits in between attempts, and
// when it gives up.
type Policy interface {
	name() string
	newSchedule(start time.Time) schedule
}

// schedule holds the state of a single call to Handler.Perform().
type schedule interface {
	// next returns the delay before the next attempt, or false if
	// the retry budget has been exhausted.
	next(now time.Time) (time.Duration, bool)
}

type fixedWaitPolicy struct {
	delay         time.Duration
	totalDuration time.Duration
}

// NewFixedWaitPolicy creates a Policy that waits a constant amount of
// time in between attempts. Attempts continue for as long as the time
// elapsed since the first attempt, including the upcoming delay, does
// not exceed totalDuration.
func NewFixedWaitPolicy(delay, totalDuration time.Duration) Policy {
	return &fixedWaitPolicy{
		delay:         delay,
		totalDuration: totalDuration,
	}
}

func (fixedWaitPolicy) name() string {
	return "FixedWait"
}

func (p *fixedWaitPolicy) newSchedule(start time.Time) schedule {
	return &fixedWaitSchedule{policy: p, deadline: start.Add(p.totalDuration)}
}

type fixedWaitSchedule struct {
	policy   *fixedWaitPolicy
	deadline time.Time
}

func (s *fixedWaitSchedule) next(now time.Time) (time.Duration, bool) {
	if now.Add(s.policy.delay).After(s.deadline) {
		return 0, false
	}
	return s.policy.delay, true
}

type fixedRetriesPolicy struct {
	initialSleep  time.Duration
	maximumSleep  time.Duration
	backoffFactor float64
	retries       int
}

// NewFixedRetriesPolicy creates a Policy that performs up to a fixed
// number of retries after the initial attempt. The delay starts at
// initialSleep and is multiplied by backoffFactor after every retry,
// never exceeding maximumSleep. A backoffFactor of at most one yields
// a constant delay.
func NewFixedRetriesPolicy(initialSleep, maximumSleep time.Duration, backoffFactor float64, retries int) Policy {
	if backoffFactor < 1 {
		backoffFactor = 1
	}
	if maximumSleep < initialSleep {
		maximumSleep = initialSleep
	}
	return &fixedRetriesPolicy{
		initialSleep:  initialSleep,
		maximumSleep:  maximumSleep,
		backoffFactor: backoffFactor,
		retries:       retries,
	}
}

func (fixedRetriesPolicy) name() string {
	return "FixedRetries"
}

func (p *fixedRetriesPolicy) newSchedule(start time.Time) schedule {
	return &fixedRetriesSchedule{policy: p, delay: p.initialSleep}
}

type fixedRetriesSchedule struct {
	policy  *fixedRetriesPolicy
	retried int
	delay   time.Duration
}

func (s *fixedRetriesSchedule) next(now time.Time) (time.Duration, bool) {
	if s.retried >= s.policy.retries {
		return 0, false
	}
	s.retried++
	delay := s.delay
	if next := time.Duration(float64(s.delay) * s.policy.backoffFactor); next < s.policy.maximumSleep {
		s.delay = next
	} else {
		s.delay = s.policy.maximumSleep
	}
	return delay, true
}
