package cpu

// evaluation is the outcome of executing one instruction.
type evaluation int

const (
	evalContinue = evaluation(iota) // Keep running.
	evalInput                       // Suspend until fed.
	evalOutput                      // Suspend with a value.
	evalHalt                        // Clean halt.
	evalFault                       // Decode error or execution fault.
)

// result carries the evaluation and its payload back to Resume.
type result struct {
	eval  evaluation
	dest  Parameter // evalInput destination.
	value int64     // evalOutput value.
	err   error     // evalFault cause.
}

// status converts a suspending result into the Process status.
func (res result) status() (status Status) {
	switch res.eval {
	case evalInput:
		status = Status{Kind: STATUS_AWAITING, Destination: res.dest}
	case evalOutput:
		status = Status{Kind: STATUS_OUTPUTTING, Value: res.value}
	case evalHalt, evalFault:
		status = Status{Kind: STATUS_EXIT}
	default:
		status = Status{Kind: STATUS_PAUSED}
	}

	return
}
