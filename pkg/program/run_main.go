package program

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"
)

// exitStatus describes how gor_cat leaves the process once all reads,
// writes and their dependencies (diagnostics HTTP server, pushgateway
// pusher, span flushing) have drained. A non-nil signal takes
// precedence over the exit code.
type exitStatus struct {
	code   int
	signal os.Signal
}

// mainShutdown records the first reason the command stopped. Later
// reasons are ignored, so a read that fails while a SIGTERM drain is in
// progress does not turn the signal into exit code 1.
type mainShutdown struct {
	once   sync.Once
	status exitStatus
	cancel context.CancelFunc
}

func (s *mainShutdown) begin(status exitStatus) {
	s.once.Do(func() {
		s.status = status
		s.cancel()
	})
}

// Log is called for every routine that fails. The first failure cancels
// the remaining reads and selects exit code 1.
func (s *mainShutdown) Log(err error) {
	log.Print("Fatal error: ", err)
	s.begin(exitStatus{code: 1})
}

// runUntilDone runs the command's routine tree, canceling it when a
// signal arrives on signals, and reports how the process should exit.
func runUntilDone(ctx context.Context, routine Routine, signals <-chan os.Signal) exitStatus {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	shutdown := &mainShutdown{cancel: cancel}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case receivedSignal := <-signals:
			log.Printf("Received %#v signal. Canceling outstanding reads.", receivedSignal.String())
			shutdown.begin(exitStatus{signal: receivedSignal})
		case <-done:
		}
	}()

	run(ctx, shutdown, routine)
	shutdown.begin(exitStatus{})
	return shutdown.status
}

// raiseSignal ends the process with the signal that interrupted it, so
// that shells and pipelines see gor_cat die the same way a plain cat
// would.
func raiseSignal(terminationSignal os.Signal) {
	if runtime.GOOS == "windows" {
		// Signals cannot be sent to the own process.
		os.Exit(1)
	}
	signal.Reset(terminationSignal)
	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		panic(err)
	}
	if err := process.Signal(terminationSignal); err != nil {
		panic(err)
	}

	// Delivery may land on another thread, and signals ignored by the
	// process group survive signal.Reset(). See
	// https://github.com/golang/go/issues/19326 and
	// https://github.com/golang/go/issues/46321.
	time.Sleep(5 * time.Second)
	os.Exit(1)
}

var terminationSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// RunMain is the entry point of gor_cat. It never returns:
//
//   - When every read and its dependencies finish cleanly, the process
//     exits with code 0.
//
//   - When any routine fails, the error is printed and the process
//     exits with code 1 after the remaining routines are canceled.
//
//   - On SIGINT or SIGTERM, outstanding reads and uploads are canceled
//     (partially written destinations are aborted), dependencies are
//     flushed and the process dies of the same signal.
func RunMain(routine Routine) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, terminationSignals...)

	status := runUntilDone(context.Background(), routine, signals)
	if status.signal != nil {
		raiseSignal(status.signal)
	}
	os.Exit(status.code)
}
