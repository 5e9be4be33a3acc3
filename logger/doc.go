// Package logger is the public API of relaylog. Most users only need to
// import this package.
//
// relaylog is an asynchronous logging pipeline: producer goroutines check
// a severity gate, build a record, and hand it to an unbounded queue; one
// background dispatcher drains the queue and fans every record out to the
// registered sinks. Producers never block on sink I/O, and sinks never see
// concurrent calls.
//
// A process turns the pipeline on exactly once:
//
//	logger.Init(10)
//
// or, with extra sinks after the always-first console sink:
//
//	fh, _ := handler.NewFileHandler(handler.FileConfig{Path: "app.log"})
//	logger.InitWithHandlers([]handler.Handler{fh}, 10)
//
// A second initialization returns ErrAlreadyInitialized and changes
// nothing; logging before initialization is a no-op. Messages are logged
// under Kind descriptors, either the predefined ones or caller-defined:
//
//	var Audit = logger.NewKind(35, "AUDIT", "\x1b[35m")
//
//	logger.Info.Log("listening")
//	Audit.Logf("user %s deleted project %s", user, proj)
//
// Level checks happen before any allocation or formatting, so a
// filtered-out Logf costs one atomic load and an integer comparison. When
// a message is expensive to assemble beyond formatting, guard it:
//
//	if Audit.Active() {
//	    Audit.Log(buildExpensiveReport())
//	}
//
// For tests and embedded use, New creates an independent Runtime with the
// same API, so nothing in this package forces shared global state.
package logger
