package output

// DefaultThreshold is the largest result count printed to the console
// without asking.
const DefaultThreshold = 100

// Decision is the outcome of the size guard.
type Decision int

const (
	Proceed Decision = iota
	ForceFileOutput
	Abort
)

func (d Decision) String() string {
	switch d {
	case ForceFileOutput:
		return "force_file_output"
	case Abort:
		return "abort"
	default:
		return "proceed"
	}
}

// AskFunc asks the user what to do with an oversized console result.
type AskFunc func(count, threshold int) Decision

// Guard decides whether count results may be printed. Above threshold with
// no target, ask decides between forcing file output and aborting; a nil
// ask aborts.
func Guard(count, threshold int, target Target, ask AskFunc) Decision {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if count <= threshold || target != TargetNone {
		return Proceed
	}
	if ask == nil {
		return Abort
	}

	switch d := ask(count, threshold); d {
	case ForceFileOutput, Abort:
		return d
	default:
		return Abort
	}
}
