package dmg

import (
	"fmt"
	"log"
	"regexp"
	"runtime"
	"time"
)

// TimeTrack logs how long the calling function took to run. Useful for
// spotting a frame loop that has started missing its 16ms budget.
func TimeTrack(start time.Time) {
	elapsed := time.Since(start)

	pc, _, _, _ := runtime.Caller(1)
	funcObj := runtime.FuncForPC(pc)

	runtimeFunc := regexp.MustCompile(`^.*\.(.*)$`)
	name := runtimeFunc.ReplaceAllString(funcObj.Name(), "$1")

	log.Println(fmt.Sprintf("%s took %s", name, elapsed))
}

// setBit sets or clears a single bit in b at bitIdx, used by the CB-prefixed
// SET/RES instructions.
func setBit(b *byte, bitIdx int, newBit byte) {
	if newBit == 0 {
		*b &^= (1 << bitIdx)
	} else {
		*b |= (1 << bitIdx)
	}
}

// testBit reports whether bit bitIdx of b is set, used by CB BIT.
func testBit(b byte, bitIdx int) bool {
	return b&(1<<bitIdx) != 0
}
