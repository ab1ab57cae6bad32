package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	asked := 0
	force := func(count, threshold int) Decision {
		asked++
		return ForceFileOutput
	}
	abort := func(count, threshold int) Decision {
		asked++
		return Abort
	}
	undecided := func(count, threshold int) Decision {
		asked++
		return Proceed
	}

	testCases := []struct {
		desc      string
		count     int
		target    Target
		ask       AskFunc
		want      Decision
		wantAsked int
	}{
		{desc: "empty result proceeds", count: 0, ask: force, want: Proceed},
		{desc: "at threshold proceeds", count: 100, ask: force, want: Proceed},
		{desc: "above threshold with file target proceeds", count: 101, target: TargetCSV, ask: force, want: Proceed},
		{desc: "above threshold forces file output", count: 101, ask: force, want: ForceFileOutput, wantAsked: 1},
		{desc: "above threshold aborts", count: 101, ask: abort, want: Abort, wantAsked: 1},
		{desc: "above threshold without a collaborator aborts", count: 500, want: Abort},
		{desc: "proceed is not a valid answer", count: 101, ask: undecided, want: Abort, wantAsked: 1},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			asked = 0
			assert.Equal(t, tC.want, Guard(tC.count, DefaultThreshold, tC.target, tC.ask))
			assert.Equal(t, tC.wantAsked, asked)
		})
	}
}

func TestGuardDefaultThreshold(t *testing.T) {
	assert.Equal(t, Proceed, Guard(100, 0, TargetNone, nil))
	assert.Equal(t, Abort, Guard(101, 0, TargetNone, nil))
	assert.Equal(t, Proceed, Guard(101, 200, TargetNone, nil))
}
