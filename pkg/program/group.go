package program

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gorpipe/gor-source/pkg/util"
)

// Routine that can be executed as part of a program, such as a batch
// of reads against object stores.
//
// Each routine may launch additional routines that either run as
// siblings, or as dependencies of the current routine and its
// siblings. Siblings are all canceled at the same time, while
// dependencies are only canceled after all siblings of the current
// routine have completed.
type Routine func(ctx context.Context, siblingsGroup, dependenciesGroup Group) error

// Group of routines. This interface can be used to launch additional
// routines.
type Group interface {
	Go(routine Routine)
}

// groupsRoot contains bookkeeping that is shared by all groups of a
// program.
type groupsRoot struct {
	errorLogger         util.ErrorLogger
	siblingsGroupsCount sync.WaitGroup
}

// siblingsGroup is a group of routines that are all siblings with
// respect to each other.
type siblingsGroup struct {
	root                *groupsRoot
	siblingsActive      atomic.Uint32
	siblingsContext     context.Context
	dependenciesContext context.Context
	dependenciesCancel  context.CancelFunc
}

// newSiblingsGroup creates a siblingsGroup that contains exactly one
// routine. The caller must call runRoutine() to start it.
func newSiblingsGroup(siblingsContext context.Context, root *groupsRoot) *siblingsGroup {
	dependenciesContext, dependenciesCancel := context.WithCancel(context.WithoutCancel(siblingsContext))
	sg := &siblingsGroup{
		root:                root,
		siblingsContext:     siblingsContext,
		dependenciesContext: dependenciesContext,
		dependenciesCancel:  dependenciesCancel,
	}
	sg.siblingsActive.Store(1)
	root.siblingsGroupsCount.Add(1)
	return sg
}

func (sg *siblingsGroup) runRoutine(routine Routine) {
	if err := routine(sg.siblingsContext, sg, dependenciesGroup{siblingsGroup: sg}); err != nil {
		sg.root.errorLogger.Log(err)
	}

	if sg.siblingsActive.Add(^uint32(0)) == 0 {
		// Last sibling to terminate. Dependencies may now be
		// canceled.
		sg.dependenciesCancel()
		sg.root.siblingsGroupsCount.Done()
	}
}

func (sg *siblingsGroup) Go(routine Routine) {
	if sg.siblingsActive.Add(1) < 2 {
		panic("Attempted to create a goroutine in a group that is already completed")
	}
	go sg.runRoutine(routine)
}

type dependenciesGroup struct {
	siblingsGroup *siblingsGroup
}

func (dg dependenciesGroup) Go(routine Routine) {
	sg := dg.siblingsGroup
	if sg.siblingsActive.Load() == 0 {
		panic("Attempted to create a goroutine in a group that is already completed")
	}
	childSG := newSiblingsGroup(sg.dependenciesContext, sg.root)
	go childSG.runRoutine(routine)
}

// run a routine and all of the routines it spawns, returning once all
// of them have completed. Errors returned by routines are passed to the
// error logger.
func run(ctx context.Context, errorLogger util.ErrorLogger, routine Routine) {
	root := groupsRoot{errorLogger: errorLogger}
	newSiblingsGroup(ctx, &root).runRoutine(routine)
	root.siblingsGroupsCount.Wait()
}
